package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/cloud-ru/mcp-mortgage-go/internal/calculations"
)

var scheduleHeader = []string{"Period", "TotalPayment", "MonthlyPayment", "BonusPayment", "Principal", "Interest", "EndingBalance"}

var yearlyHeader = []string{"Year", "TotalPayment", "MonthlyPayment", "BonusPayment", "Principal", "Interest", "EndingBalance"}

// WriteCSV выгружает полный график платежей, суммы округлены до целых
func WriteCSV(w io.Writer, schedule []calculations.PeriodRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(scheduleHeader); err != nil {
		return err
	}
	for _, rec := range schedule {
		row := []string{
			strconv.Itoa(rec.Period),
			Amount(rec.TotalPayment).String(),
			Amount(rec.MonthlyPayment).String(),
			Amount(rec.BonusPayment).String(),
			Amount(rec.Principal).String(),
			Amount(rec.Interest).String(),
			Amount(rec.EndingBalance).String(),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteYearlyCSV выгружает годовые итоги
func WriteYearlyCSV(w io.Writer, rollup []calculations.YearSummary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(yearlyHeader); err != nil {
		return err
	}
	for _, ys := range rollup {
		row := []string{
			strconv.Itoa(ys.Year),
			Amount(ys.TotalPayment).String(),
			Amount(ys.MonthlyPayment).String(),
			Amount(ys.BonusPayment).String(),
			Amount(ys.Principal).String(),
			Amount(ys.Interest).String(),
			Amount(ys.EndingBalance).String(),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
