package calculations

import (
	"github.com/cloud-ru/mcp-mortgage-go/pkg/utils"
)

// CompareBonusSplit сравнивает график с бонусным погашением и без него.
// Разница считается по фактическим суммам графиков, а не по номинальным итогам Summarize.
func CompareBonusSplit(terms LoanTerms, costs HousingCosts) (*ComparisonResult, error) {
	if err := terms.Validate(); err != nil {
		return nil, err
	}

	withPlan, withSchedule, err := BuildSchedule(terms)
	if err != nil {
		return nil, err
	}

	plain := terms
	plain.BonusPrincipal = 0
	withoutPlan, withoutSchedule, err := BuildSchedule(plain)
	if err != nil {
		return nil, err
	}

	withTotals := ScheduleTotals(withSchedule)
	withoutTotals := ScheduleTotals(withoutSchedule)

	// Вычисляем разницу
	totalPaidDiff := utils.Round2(withTotals.TotalPayment - withoutTotals.TotalPayment)
	interestDiff := utils.Round2(withTotals.Interest - withoutTotals.Interest)
	monthlyDiff := utils.Round2(withoutPlan.MonthlyPayment - withPlan.MonthlyPayment)

	var cheaper string
	var recommendation string

	switch {
	case !terms.HasBonus():
		cheaper = "равны"
		recommendation = "Бонусное погашение не задано, графики совпадают."
	case totalPaidDiff < 0:
		cheaper = "с бонусами"
		recommendation = "Бонусное погашение уменьшает общую сумму выплат и ежемесячный платеж. Учтите, что бонусные платежи должны быть обеспечены доходом дважды или один раз в год."
	case totalPaidDiff > 0:
		cheaper = "без бонусов"
		recommendation = "Бонусное погашение снижает ежемесячный платеж, но увеличивает общую сумму выплат."
	default:
		cheaper = "равны"
		recommendation = "Оба варианта имеют одинаковую общую сумму выплат."
	}

	comparison := map[string]interface{}{
		"principal":           utils.Round2(terms.Principal),
		"annual_rate_percent": utils.Round2(terms.AnnualRatePercent),
		"term_years":          terms.TermYears,
		"bonus_principal":     utils.Round2(terms.BonusPrincipal),
		"with_bonus": map[string]interface{}{
			"total_paid":     utils.Round2(withTotals.TotalPayment),
			"interest":       utils.Round2(withTotals.Interest),
			"bonus_payments": withTotals.BonusCount,
		},
		"without_bonus": map[string]interface{}{
			"total_paid": utils.Round2(withoutTotals.TotalPayment),
			"interest":   utils.Round2(withoutTotals.Interest),
		},
		"difference": map[string]interface{}{
			"total_paid_diff":      totalPaidDiff,
			"interest_diff":        interestDiff,
			"monthly_payment_diff": monthlyDiff,
			"cheaper":              cheaper,
		},
	}

	return &ComparisonResult{
		Comparison:         comparison,
		WithBonus:          Summarize(terms, withPlan, costs),
		WithoutBonus:       Summarize(plain, withoutPlan, costs),
		WithBonusTotals:    withTotals,
		WithoutBonusTotals: withoutTotals,
		Recommendation:     recommendation,
	}, nil
}
