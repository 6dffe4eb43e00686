package calculations

import (
	"fmt"

	"github.com/cloud-ru/mcp-mortgage-go/pkg/utils"
)

// SimulateSchedule строит помесячный график по двум независимым остаткам:
// ежемесячной и бонусной части. Последний период не корректируется,
// остаток только ограничивается снизу нулем.
func SimulateSchedule(terms LoanTerms, plan PaymentPlan) ([]PeriodRecord, error) {
	if err := terms.Validate(); err != nil {
		return nil, err
	}
	if !utils.IsFinite(plan.MonthlyPayment) || plan.MonthlyPayment < 0 {
		return nil, fmt.Errorf("некорректный ежемесячный платеж: %v", plan.MonthlyPayment)
	}
	if !utils.IsFinite(plan.BonusPayment) || plan.BonusPayment < 0 {
		return nil, fmt.Errorf("некорректный бонусный платеж: %v", plan.BonusPayment)
	}

	r := terms.MonthlyRate()
	n := terms.NumPayments()

	monthlyRemaining := terms.MonthlyPrincipal()
	bonusRemaining := terms.BonusPrincipal

	schedule := make([]PeriodRecord, 0, n)

	for m := 1; m <= n; m++ {
		bonusDue := terms.IsBonusMonth(m) && bonusRemaining > 0

		monthlyInterest := monthlyRemaining * r
		monthlyPrincipalPart := plan.MonthlyPayment - monthlyInterest

		var bonusInterest, bonusPrincipalPart, bonusPaid float64
		if bonusDue {
			bonusInterest = bonusRemaining * r
			// последний бонусный платеж может быть меньше расчетного
			bonusPrincipalPart = min(plan.BonusPayment-bonusInterest, bonusRemaining)
			bonusPaid = bonusInterest + bonusPrincipalPart
			bonusRemaining -= bonusPrincipalPart
		}

		monthlyRemaining -= monthlyPrincipalPart

		balance := monthlyRemaining + bonusRemaining
		if balance < 0 {
			balance = 0.0
		}

		schedule = append(schedule, PeriodRecord{
			Period:         m,
			TotalPayment:   plan.MonthlyPayment + bonusPaid,
			MonthlyPayment: plan.MonthlyPayment,
			BonusPayment:   bonusPaid,
			Principal:      monthlyPrincipalPart + bonusPrincipalPart,
			Interest:       monthlyInterest + bonusInterest,
			EndingBalance:  balance,
			MonthlyBalance: monthlyRemaining,
			BonusBalance:   bonusRemaining,
		})
	}

	return schedule, nil
}

// BuildSchedule рассчитывает платежи и график за один вызов
func BuildSchedule(terms LoanTerms) (PaymentPlan, []PeriodRecord, error) {
	plan, err := ComputePaymentPlan(terms)
	if err != nil {
		return PaymentPlan{}, nil, err
	}
	schedule, err := SimulateSchedule(terms, plan)
	if err != nil {
		return PaymentPlan{}, nil, err
	}
	return plan, schedule, nil
}
