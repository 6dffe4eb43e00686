package calculations

import (
	"math"
)

// annuityPayment возвращает аннуитетный платеж для ставки r за период и n периодов
func annuityPayment(principal, r float64, n int) float64 {
	growth := math.Pow(1.0+r, float64(n))
	return principal * (r * growth) / (growth - 1.0)
}

// ComputePaymentPlan рассчитывает ежемесячный и бонусный платежи.
// Бонусная часть амортизируется отдельно: TermYears периодов по ставке
// MonthlyRate()*BonusFrequency, как в номинальном приближении банковских калькуляторов.
func ComputePaymentPlan(terms LoanTerms) (PaymentPlan, error) {
	if err := terms.Validate(); err != nil {
		return PaymentPlan{}, err
	}

	r := terms.MonthlyRate()
	n := terms.NumPayments()
	monthlyPrincipal := terms.MonthlyPrincipal()

	if r == 0.0 {
		plan := PaymentPlan{MonthlyPayment: monthlyPrincipal / float64(n)}
		if terms.HasBonus() {
			plan.BonusPayment = terms.BonusPrincipal / float64(terms.TermYears*terms.BonusFrequency)
		}
		return plan, nil
	}

	plan := PaymentPlan{MonthlyPayment: annuityPayment(monthlyPrincipal, r, n)}
	if terms.HasBonus() {
		plan.BonusPayment = annuityPayment(terms.BonusPrincipal, r*float64(terms.BonusFrequency), terms.TermYears)
	}
	return plan, nil
}
