package calculations

import (
	"errors"
	"fmt"

	"github.com/cloud-ru/mcp-mortgage-go/pkg/utils"
)

// ErrInvalidTerms возвращается при недопустимых условиях кредита
var ErrInvalidTerms = errors.New("недопустимые условия кредита")

// InvalidTermsError описывает конкретное нарушенное условие
type InvalidTermsError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InvalidTermsError) Error() string {
	return fmt.Sprintf("%s: %s=%v: %s", ErrInvalidTerms, e.Field, e.Value, e.Reason)
}

// Is позволяет сравнивать ошибку с ErrInvalidTerms через errors.Is
func (e *InvalidTermsError) Is(target error) bool {
	return target == ErrInvalidTerms
}

func invalid(field string, value float64, reason string) error {
	return &InvalidTermsError{Field: field, Value: value, Reason: reason}
}

// Validate проверяет структурную корректность условий.
// Диапазоны для интерфейса проверяются в пакете validators.
func (t LoanTerms) Validate() error {
	switch {
	case !utils.IsFinite(t.Principal):
		return invalid("principal", t.Principal, "значение не является конечным числом")
	case t.Principal <= 0:
		return invalid("principal", t.Principal, "сумма кредита должна быть положительной")
	case !utils.IsFinite(t.AnnualRatePercent):
		return invalid("annual_rate_percent", t.AnnualRatePercent, "значение не является конечным числом")
	case t.AnnualRatePercent < 0:
		return invalid("annual_rate_percent", t.AnnualRatePercent, "ставка не может быть отрицательной")
	case t.TermYears <= 0:
		return invalid("term_years", float64(t.TermYears), "срок должен быть не меньше одного года")
	case !utils.IsFinite(t.BonusPrincipal):
		return invalid("bonus_principal", t.BonusPrincipal, "значение не является конечным числом")
	case t.BonusPrincipal < 0:
		return invalid("bonus_principal", t.BonusPrincipal, "бонусная часть не может быть отрицательной")
	case t.BonusPrincipal > t.Principal:
		return invalid("bonus_principal", t.BonusPrincipal, "бонусная часть превышает сумму кредита")
	case t.HasBonus() && t.BonusFrequency != BonusAnnual && t.BonusFrequency != BonusSemiAnnual:
		return invalid("bonus_frequency", float64(t.BonusFrequency), "допустимы только 1 или 2 платежа в год")
	}
	return nil
}
