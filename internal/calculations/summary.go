package calculations

// Summarize формирует сводные показатели по плану платежей.
// Итоги номинальные: платежи умножаются на их количество за весь срок.
func Summarize(terms LoanTerms, plan PaymentPlan, costs HousingCosts) LoanSummary {
	var annualBonus float64
	if terms.HasBonus() {
		annualBonus = plan.BonusPayment * float64(terms.BonusFrequency)
	}

	totalMonthly := plan.MonthlyPayment * float64(terms.NumPayments())
	totalBonus := annualBonus * float64(terms.TermYears)
	totalPaid := totalMonthly + totalBonus

	summary := LoanSummary{
		Principal:           terms.Principal,
		AnnualRatePercent:   terms.AnnualRatePercent,
		TermYears:           terms.TermYears,
		MonthlyPrincipal:    terms.MonthlyPrincipal(),
		BonusPrincipal:      terms.BonusPrincipal,
		MonthlyPayment:      plan.MonthlyPayment,
		BonusPayment:        plan.BonusPayment,
		AnnualBonusPayment:  annualBonus,
		TotalMonthlyPaid:    totalMonthly,
		TotalBonusPaid:      totalBonus,
		TotalPaid:           totalPaid,
		TotalInterest:       totalPaid - terms.Principal,
		HousingCosts:        costs.Total(),
		MonthlyTotalPayment: plan.MonthlyPayment + costs.Total(),
	}
	if terms.HasBonus() {
		summary.BonusFrequency = terms.BonusFrequency
	}
	return summary
}

// YearlyRollup сворачивает график в годовые итоги по блокам из 12 периодов
func YearlyRollup(schedule []PeriodRecord) []YearSummary {
	years := (len(schedule) + MonthsPerYear - 1) / MonthsPerYear
	rollup := make([]YearSummary, 0, years)

	for y := 0; y < years; y++ {
		start := y * MonthsPerYear
		end := start + MonthsPerYear
		if end > len(schedule) {
			end = len(schedule)
		}

		ys := YearSummary{Year: y + 1}
		for _, rec := range schedule[start:end] {
			ys.TotalPayment += rec.TotalPayment
			ys.MonthlyPayment += rec.MonthlyPayment
			ys.BonusPayment += rec.BonusPayment
			ys.Principal += rec.Principal
			ys.Interest += rec.Interest
		}
		ys.EndingBalance = schedule[end-1].EndingBalance
		rollup = append(rollup, ys)
	}

	return rollup
}

// Head возвращает копию первых n записей
func Head(schedule []PeriodRecord, n int) []PeriodRecord {
	if n > len(schedule) {
		n = len(schedule)
	}
	if n <= 0 {
		return []PeriodRecord{}
	}
	return append([]PeriodRecord(nil), schedule[:n]...)
}

// Tail возвращает копию последних n записей
func Tail(schedule []PeriodRecord, n int) []PeriodRecord {
	if n > len(schedule) {
		n = len(schedule)
	}
	if n <= 0 {
		return []PeriodRecord{}
	}
	return append([]PeriodRecord(nil), schedule[len(schedule)-n:]...)
}

// ScheduleTotals считает фактические суммы по графику
func ScheduleTotals(schedule []PeriodRecord) Totals {
	totals := Totals{Periods: len(schedule)}
	for _, rec := range schedule {
		totals.TotalPayment += rec.TotalPayment
		totals.BonusPayment += rec.BonusPayment
		totals.Principal += rec.Principal
		totals.Interest += rec.Interest
		if rec.BonusPayment > 0 {
			totals.BonusCount++
		}
	}
	return totals
}

// Calculate строит график и все производные итоги
func Calculate(terms LoanTerms, costs HousingCosts) (*CalculationResult, error) {
	plan, schedule, err := BuildSchedule(terms)
	if err != nil {
		return nil, err
	}

	return &CalculationResult{
		Summary:  Summarize(terms, plan, costs),
		Plan:     plan,
		Totals:   ScheduleTotals(schedule),
		Yearly:   YearlyRollup(schedule),
		Schedule: schedule,
	}, nil
}
