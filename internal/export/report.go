package export

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/cloud-ru/mcp-mortgage-go/internal/calculations"
)

// WriteSummary печатает основные показатели по кредиту
func WriteSummary(w io.Writer, s calculations.LoanSummary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Сумма кредита\t%s\n", FormatCurrency(s.Principal))
	fmt.Fprintf(tw, "Ставка\t%.3f%%\n", s.AnnualRatePercent)
	fmt.Fprintf(tw, "Срок\t%d лет\n", s.TermYears)
	fmt.Fprintf(tw, "Ежемесячный платеж\t%s\n", FormatCurrency(s.MonthlyPayment))
	fmt.Fprintf(tw, "Ежемесячно с расходами\t%s\n", FormatCurrency(s.MonthlyTotalPayment))
	if s.BonusPrincipal > 0 {
		fmt.Fprintf(tw, "Ежемесячная часть долга\t%s\n", FormatCurrency(s.MonthlyPrincipal))
		fmt.Fprintf(tw, "Бонусная часть долга\t%s\n", FormatCurrency(s.BonusPrincipal))
		fmt.Fprintf(tw, "Бонусный платеж (%d раз в год)\t%s\n", s.BonusFrequency, FormatCurrency(s.BonusPayment))
		fmt.Fprintf(tw, "Бонусные платежи за год\t%s\n", FormatCurrency(s.AnnualBonusPayment))
	} else {
		fmt.Fprintf(tw, "Бонусные платежи\tнет\n")
	}
	fmt.Fprintf(tw, "Расходы на содержание\t%s\n", FormatCurrency(s.HousingCosts))
	fmt.Fprintf(tw, "Всего выплат\t%s\n", FormatCurrency(s.TotalPaid))
	fmt.Fprintf(tw, "Переплата\t%s\n", FormatCurrency(s.TotalInterest))

	return tw.Flush()
}

// WriteTotals печатает фактические суммы по графику
func WriteTotals(w io.Writer, totals calculations.Totals) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Фактически выплачено\t%s\n", FormatCurrency(totals.TotalPayment))
	fmt.Fprintf(tw, "Фактическая переплата\t%s\n", FormatCurrency(totals.Interest))
	fmt.Fprintf(tw, "Бонусных платежей\t%d\n", totals.BonusCount)

	return tw.Flush()
}

// WriteYearly печатает таблицу годовых итогов
func WriteYearly(w io.Writer, rollup []calculations.YearSummary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintln(tw, "Год\tВсего\tЕжемесячно\tБонусы\tДолг\tПроценты\tОстаток\t")
	for _, ys := range rollup {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			ys.Year,
			FormatCurrency(ys.TotalPayment),
			FormatCurrency(ys.MonthlyPayment),
			FormatCurrency(ys.BonusPayment),
			FormatCurrency(ys.Principal),
			FormatCurrency(ys.Interest),
			FormatCurrency(ys.EndingBalance),
		)
	}

	return tw.Flush()
}

// WritePeriods печатает выбранные записи графика
func WritePeriods(w io.Writer, records []calculations.PeriodRecord) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintln(tw, "Месяц\tПлатеж\tЕжемесячно\tБонус\tДолг\tПроценты\tОстаток\t")
	for _, rec := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			strconv.Itoa(rec.Period),
			FormatCurrency(rec.TotalPayment),
			FormatCurrency(rec.MonthlyPayment),
			FormatCurrency(rec.BonusPayment),
			FormatCurrency(rec.Principal),
			FormatCurrency(rec.Interest),
			FormatCurrency(rec.EndingBalance),
		)
	}

	return tw.Flush()
}

// WriteReport печатает полный отчет: сводку, годовые итоги, первые и последние месяцы
func WriteReport(w io.Writer, result *calculations.CalculationResult, excerpt int) error {
	if err := WriteSummary(w, result.Summary); err != nil {
		return err
	}

	fmt.Fprintln(w, "\nГодовые итоги")
	if err := WriteYearly(w, result.Yearly); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nПервые %d месяцев\n", excerpt)
	if err := WritePeriods(w, calculations.Head(result.Schedule, excerpt)); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nПоследние %d месяцев\n", excerpt)
	return WritePeriods(w, calculations.Tail(result.Schedule, excerpt))
}
