package calculations

// Допустимые значения частоты бонусных платежей
const (
	BonusAnnual     = 1 // декабрь
	BonusSemiAnnual = 2 // июнь и декабрь

	MonthsPerYear = 12
)

// LoanTerms содержит условия кредита
type LoanTerms struct {
	Principal         float64 `json:"principal" yaml:"principal"`
	AnnualRatePercent float64 `json:"annual_rate_percent" yaml:"annual_rate_percent"`
	TermYears         int     `json:"term_years" yaml:"term_years"`
	BonusPrincipal    float64 `json:"bonus_principal,omitempty" yaml:"bonus_principal"`
	BonusFrequency    int     `json:"bonus_frequency,omitempty" yaml:"bonus_frequency"`
}

// MonthlyPrincipal возвращает часть долга, погашаемую ежемесячными платежами
func (t LoanTerms) MonthlyPrincipal() float64 {
	return t.Principal - t.BonusPrincipal
}

// NumPayments возвращает количество ежемесячных платежей
func (t LoanTerms) NumPayments() int {
	return t.TermYears * MonthsPerYear
}

// MonthlyRate возвращает месячную ставку
func (t LoanTerms) MonthlyRate() float64 {
	return t.AnnualRatePercent / 100.0 / 12.0
}

// HasBonus сообщает, используется ли бонусное погашение
func (t LoanTerms) HasBonus() bool {
	return t.BonusPrincipal > 0
}

// IsBonusMonth сообщает, приходится ли на период бонусный платеж по календарю.
// Остаток бонусной части здесь не учитывается.
func (t LoanTerms) IsBonusMonth(period int) bool {
	m := period % MonthsPerYear
	switch t.BonusFrequency {
	case BonusSemiAnnual:
		return m == 6 || m == 0
	case BonusAnnual:
		return m == 0
	}
	return false
}

// PaymentPlan содержит рассчитанные размеры платежей
type PaymentPlan struct {
	MonthlyPayment float64 `json:"monthly_payment"`
	BonusPayment   float64 `json:"bonus_payment"`
}

// PeriodRecord представляет одну запись в графике платежей
type PeriodRecord struct {
	Period         int     `json:"period"`
	TotalPayment   float64 `json:"total_payment"`
	MonthlyPayment float64 `json:"monthly_payment"`
	BonusPayment   float64 `json:"bonus_payment"`
	Principal      float64 `json:"principal"`
	Interest       float64 `json:"interest"`
	EndingBalance  float64 `json:"ending_balance"`
	MonthlyBalance float64 `json:"monthly_balance"`
	BonusBalance   float64 `json:"bonus_balance"`
}

// HousingCosts содержит ежемесячные расходы на содержание жилья
type HousingCosts struct {
	ManagementFee float64 `json:"management_fee" yaml:"management_fee"`
	RepairReserve float64 `json:"repair_reserve" yaml:"repair_reserve"`
}

// Total возвращает сумму ежемесячных расходов
func (c HousingCosts) Total() float64 {
	return c.ManagementFee + c.RepairReserve
}

// LoanSummary представляет сводку по кредиту
type LoanSummary struct {
	Principal           float64 `json:"principal"`
	AnnualRatePercent   float64 `json:"annual_rate_percent"`
	TermYears           int     `json:"term_years"`
	MonthlyPrincipal    float64 `json:"monthly_principal"`
	BonusPrincipal      float64 `json:"bonus_principal"`
	BonusFrequency      int     `json:"bonus_frequency,omitempty"`
	MonthlyPayment      float64 `json:"monthly_payment"`
	BonusPayment        float64 `json:"bonus_payment"`
	AnnualBonusPayment  float64 `json:"annual_bonus_payment"`
	TotalMonthlyPaid    float64 `json:"total_monthly_paid"`
	TotalBonusPaid      float64 `json:"total_bonus_paid"`
	TotalPaid           float64 `json:"total_paid"`
	TotalInterest       float64 `json:"total_interest"`
	HousingCosts        float64 `json:"housing_costs"`
	MonthlyTotalPayment float64 `json:"monthly_total_payment"`
}

// YearSummary представляет итоги за один год графика
type YearSummary struct {
	Year           int     `json:"year"`
	TotalPayment   float64 `json:"total_payment"`
	MonthlyPayment float64 `json:"monthly_payment"`
	BonusPayment   float64 `json:"bonus_payment"`
	Principal      float64 `json:"principal"`
	Interest       float64 `json:"interest"`
	EndingBalance  float64 `json:"ending_balance"`
}

// Totals содержит фактические суммы по графику
type Totals struct {
	Periods      int     `json:"periods"`
	TotalPayment float64 `json:"total_payment"`
	BonusPayment float64 `json:"bonus_payment"`
	Principal    float64 `json:"principal"`
	Interest     float64 `json:"interest"`
	BonusCount   int     `json:"bonus_count"`
}

// CalculationResult представляет результат расчета графика
type CalculationResult struct {
	Summary  LoanSummary    `json:"summary"`
	Plan     PaymentPlan    `json:"plan"`
	Totals   Totals         `json:"totals"`
	Yearly   []YearSummary  `json:"yearly"`
	Schedule []PeriodRecord `json:"schedule"`
}

// ComparisonResult представляет сравнение графика с бонусами и без них
type ComparisonResult struct {
	Comparison         map[string]interface{} `json:"comparison"`
	WithBonus          LoanSummary            `json:"with_bonus"`
	WithoutBonus       LoanSummary            `json:"without_bonus"`
	WithBonusTotals    Totals                 `json:"with_bonus_totals"`
	WithoutBonusTotals Totals                 `json:"without_bonus_totals"`
	Recommendation     string                 `json:"recommendation"`
}
