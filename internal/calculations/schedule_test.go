package calculations

import (
	"math"
	"testing"

	"github.com/cloud-ru/mcp-mortgage-go/pkg/utils"
)

func sumPrincipal(schedule []PeriodRecord) float64 {
	total := 0.0
	for _, rec := range schedule {
		total += rec.Principal
	}
	return total
}

func bonusPeriods(schedule []PeriodRecord) []int {
	var periods []int
	for _, rec := range schedule {
		if rec.BonusPayment > 0 {
			periods = append(periods, rec.Period)
		}
	}
	return periods
}

func TestSimulateSchedule(t *testing.T) {
	tests := []struct {
		name          string
		terms         LoanTerms
		wantError     bool
		checkSchedule func(*testing.T, PaymentPlan, []PeriodRecord)
	}{
		{
			name:  "no bonus 25 years",
			terms: LoanTerms{Principal: 20000000, AnnualRatePercent: 1.05, TermYears: 25},
			checkSchedule: func(t *testing.T, plan PaymentPlan, schedule []PeriodRecord) {
				if len(schedule) != 300 {
					t.Fatalf("expected 300 periods, got %d", len(schedule))
				}
				if math.Round(plan.MonthlyPayment) != 75828 {
					t.Errorf("expected monthly payment 75828, got %f", plan.MonthlyPayment)
				}
				last := schedule[len(schedule)-1]
				if math.Abs(last.EndingBalance) > 1e-4 {
					t.Errorf("expected ending balance 0, got %f", last.EndingBalance)
				}
				if got := sumPrincipal(schedule); utils.RelativeDiff(got, 20000000) > 1e-6 {
					t.Errorf("expected principal sum 20000000, got %f", got)
				}
				if periods := bonusPeriods(schedule); len(periods) != 0 {
					t.Errorf("expected no bonus periods, got %v", periods)
				}
			},
		},
		{
			name: "semi-annual bonus",
			terms: LoanTerms{
				Principal:         20000000,
				AnnualRatePercent: 1.05,
				TermYears:         25,
				BonusPrincipal:    5000000,
				BonusFrequency:    BonusSemiAnnual,
			},
			checkSchedule: func(t *testing.T, plan PaymentPlan, schedule []PeriodRecord) {
				if len(schedule) != 300 {
					t.Fatalf("expected 300 periods, got %d", len(schedule))
				}
				// ежемесячная часть считается от 15 млн
				want := annuityPayment(15000000, 1.05/100/12, 300)
				if plan.MonthlyPayment != want {
					t.Errorf("expected monthly payment %f, got %f", want, plan.MonthlyPayment)
				}
				for _, p := range bonusPeriods(schedule) {
					if p%6 != 0 {
						t.Errorf("bonus payment in period %d", p)
					}
				}
				last := schedule[len(schedule)-1]
				if last.BonusBalance != 0 {
					t.Errorf("expected bonus balance 0, got %f", last.BonusBalance)
				}
				if got := sumPrincipal(schedule); utils.RelativeDiff(got, 20000000) > 1e-6 {
					t.Errorf("expected principal sum 20000000, got %f", got)
				}
			},
		},
		{
			name: "annual bonus",
			terms: LoanTerms{
				Principal:         30000000,
				AnnualRatePercent: 2.5,
				TermYears:         35,
				BonusPrincipal:    6000000,
				BonusFrequency:    BonusAnnual,
			},
			checkSchedule: func(t *testing.T, plan PaymentPlan, schedule []PeriodRecord) {
				for _, p := range bonusPeriods(schedule) {
					if p%12 != 0 {
						t.Errorf("bonus payment in period %d", p)
					}
				}
				last := schedule[len(schedule)-1]
				if math.Abs(last.BonusBalance) > 1e-4 {
					t.Errorf("expected bonus balance 0, got %f", last.BonusBalance)
				}
				if got := sumPrincipal(schedule); utils.RelativeDiff(got, 30000000) > 1e-6 {
					t.Errorf("expected principal sum 30000000, got %f", got)
				}
			},
		},
		{
			name: "zero rate",
			terms: LoanTerms{
				Principal:         20000000,
				AnnualRatePercent: 0,
				TermYears:         25,
				BonusPrincipal:    5000000,
				BonusFrequency:    BonusSemiAnnual,
			},
			checkSchedule: func(t *testing.T, plan PaymentPlan, schedule []PeriodRecord) {
				if plan.MonthlyPayment != 15000000.0/300 {
					t.Errorf("expected monthly payment 50000, got %f", plan.MonthlyPayment)
				}
				if plan.BonusPayment != 5000000.0/50 {
					t.Errorf("expected bonus payment 100000, got %f", plan.BonusPayment)
				}
				for _, rec := range schedule {
					if rec.Interest != 0 {
						t.Fatalf("period %d: expected zero interest, got %f", rec.Period, rec.Interest)
					}
				}
				if got := len(bonusPeriods(schedule)); got != 50 {
					t.Errorf("expected 50 bonus payments, got %d", got)
				}
			},
		},
		{
			name: "one year semi-annual",
			terms: LoanTerms{
				Principal:         1000000,
				AnnualRatePercent: 3,
				TermYears:         1,
				BonusPrincipal:    200000,
				BonusFrequency:    BonusSemiAnnual,
			},
			checkSchedule: func(t *testing.T, plan PaymentPlan, schedule []PeriodRecord) {
				if len(schedule) != 12 {
					t.Fatalf("expected 12 periods, got %d", len(schedule))
				}
				// расчетный бонус покрывает всю бонусную часть за один платеж
				periods := bonusPeriods(schedule)
				if len(periods) != 1 || periods[0] != 6 {
					t.Errorf("expected bonus only in period 6, got %v", periods)
				}
				if schedule[5].BonusBalance != 0 {
					t.Errorf("expected bonus balance 0 after period 6, got %f", schedule[5].BonusBalance)
				}
			},
		},
		{
			name:      "zero term",
			terms:     LoanTerms{Principal: 1000000, AnnualRatePercent: 1, TermYears: 0},
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, schedule, err := BuildSchedule(tt.terms)
			if (err != nil) != tt.wantError {
				t.Errorf("BuildSchedule() error = %v, wantError %v", err, tt.wantError)
				return
			}
			if tt.wantError {
				if schedule != nil {
					t.Errorf("expected no schedule on error, got %d records", len(schedule))
				}
				return
			}
			for i, rec := range schedule {
				if rec.Period != i+1 {
					t.Fatalf("expected period %d, got %d", i+1, rec.Period)
				}
				if rec.EndingBalance < 0 {
					t.Fatalf("period %d: negative ending balance %f", rec.Period, rec.EndingBalance)
				}
				if i > 0 && rec.EndingBalance > schedule[i-1].EndingBalance+1e-9 {
					t.Fatalf("period %d: balance increased from %f to %f", rec.Period, schedule[i-1].EndingBalance, rec.EndingBalance)
				}
			}
			if tt.checkSchedule != nil {
				tt.checkSchedule(t, plan, schedule)
			}
		})
	}
}

func TestSimulateScheduleOneYearZeroRate(t *testing.T) {
	terms := LoanTerms{
		Principal:      1200000,
		TermYears:      1,
		BonusPrincipal: 600000,
		BonusFrequency: BonusSemiAnnual,
	}
	_, schedule, err := BuildSchedule(terms)
	if err != nil {
		t.Fatalf("BuildSchedule() error = %v", err)
	}

	periods := bonusPeriods(schedule)
	if len(periods) != 2 || periods[0] != 6 || periods[1] != 12 {
		t.Errorf("expected bonus periods [6 12], got %v", periods)
	}
	if schedule[11].EndingBalance != 0 {
		t.Errorf("expected ending balance 0, got %f", schedule[11].EndingBalance)
	}
}

func TestSimulateScheduleBonusCap(t *testing.T) {
	terms := LoanTerms{
		Principal:         10000000,
		AnnualRatePercent: 2,
		TermYears:         10,
		BonusPrincipal:    1000000,
		BonusFrequency:    BonusSemiAnnual,
	}
	// завышенный бонус гасит бонусную часть за один платеж
	plan := PaymentPlan{MonthlyPayment: 90000, BonusPayment: 5000000}

	schedule, err := SimulateSchedule(terms, plan)
	if err != nil {
		t.Fatalf("SimulateSchedule() error = %v", err)
	}

	rec := schedule[5]
	wantInterest := 1000000 * terms.MonthlyRate()
	if math.Abs(rec.BonusPayment-(1000000+wantInterest)) > 1e-6 {
		t.Errorf("expected capped bonus payment %f, got %f", 1000000+wantInterest, rec.BonusPayment)
	}
	if rec.BonusBalance != 0 {
		t.Errorf("expected bonus balance 0, got %f", rec.BonusBalance)
	}
	if got := bonusPeriods(schedule); len(got) != 1 {
		t.Errorf("expected single bonus payment, got %v", got)
	}
}

func TestSimulateScheduleRejectsBadPlan(t *testing.T) {
	terms := LoanTerms{Principal: 1000000, AnnualRatePercent: 1, TermYears: 1}

	tests := []struct {
		name string
		plan PaymentPlan
	}{
		{name: "negative monthly", plan: PaymentPlan{MonthlyPayment: -1}},
		{name: "negative bonus", plan: PaymentPlan{MonthlyPayment: 1, BonusPayment: -1}},
		{name: "NaN monthly", plan: PaymentPlan{MonthlyPayment: math.NaN()}},
		{name: "infinite bonus", plan: PaymentPlan{MonthlyPayment: 1, BonusPayment: math.Inf(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := SimulateSchedule(terms, tt.plan); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestIsBonusMonth(t *testing.T) {
	semi := LoanTerms{BonusFrequency: BonusSemiAnnual}
	annual := LoanTerms{BonusFrequency: BonusAnnual}
	none := LoanTerms{}

	for p := 1; p <= 36; p++ {
		if got, want := semi.IsBonusMonth(p), p%12 == 6 || p%12 == 0; got != want {
			t.Errorf("semi-annual period %d: got %v, want %v", p, got, want)
		}
		if got, want := annual.IsBonusMonth(p), p%12 == 0; got != want {
			t.Errorf("annual period %d: got %v, want %v", p, got, want)
		}
		if none.IsBonusMonth(p) {
			t.Errorf("no frequency period %d: expected false", p)
		}
	}
}
