package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cloud-ru/mcp-mortgage-go/internal/calculations"
	"github.com/cloud-ru/mcp-mortgage-go/internal/config"
	"github.com/cloud-ru/mcp-mortgage-go/internal/export"
	"github.com/cloud-ru/mcp-mortgage-go/internal/tools"
)

type options struct {
	termsFile string
	terms     calculations.LoanTerms
	costs     calculations.HousingCosts
	format    string
}

// resolve возвращает параметры инструмента: из файла, если он указан, иначе из флагов
func (o *options) resolve() (map[string]interface{}, error) {
	terms, costs := o.terms, o.costs
	if o.termsFile != "" {
		tf, err := config.LoadTermsFile(o.termsFile)
		if err != nil {
			return nil, err
		}
		terms, costs = tf.Loan, tf.Costs
	}
	return tools.TermsParams(terms, costs), nil
}

func (o *options) validateFormat() error {
	switch o.format {
	case "text", "json":
		return nil
	}
	return fmt.Errorf("unsupported format %q (use text or json)", o.format)
}

func newRootCmd(registry map[string]tools.ToolHandler) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "mortgage-calc",
		Short:         "Расчет аннуитетного графика платежей с бонусным погашением",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.validateFormat()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&opts.termsFile, "terms", "", "YAML file with loan terms (overrides flags)")
	pf.Float64Var(&opts.terms.Principal, "principal", 20000000, "loan principal")
	pf.Float64Var(&opts.terms.AnnualRatePercent, "rate", 1.05, "annual interest rate, percent")
	pf.IntVar(&opts.terms.TermYears, "years", 25, "loan term in years")
	pf.Float64Var(&opts.terms.BonusPrincipal, "bonus-principal", 0, "part of the principal repaid by bonus payments")
	pf.IntVar(&opts.terms.BonusFrequency, "bonus-frequency", calculations.BonusSemiAnnual, "bonus payments per year (1 or 2)")
	pf.Float64Var(&opts.costs.ManagementFee, "management-fee", 10000, "monthly management fee")
	pf.Float64Var(&opts.costs.RepairReserve, "repair-reserve", 8000, "monthly repair reserve")
	pf.StringVar(&opts.format, "format", "text", "output format: text or json")

	root.AddCommand(
		newPlanCmd(opts, registry[tools.ToolPaymentPlan]),
		newScheduleCmd(opts, registry[tools.ToolScheduleBonus]),
		newCompareCmd(opts, registry[tools.ToolCompareBonus]),
	)

	return root
}

func newPlanCmd(opts *options, handler tools.ToolHandler) *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Ежемесячный и бонусный платежи и сводные показатели",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := opts.resolve()
			if err != nil {
				return err
			}
			out, err := handler(cmd.Context(), params)
			if err != nil {
				return err
			}
			result := out.(*tools.PlanResult)

			if opts.format == "json" {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			return export.WriteSummary(cmd.OutOrStdout(), result.Summary)
		},
	}
}

func newScheduleCmd(opts *options, handler tools.ToolHandler) *cobra.Command {
	var csvPath, yearlyCSVPath string
	var excerpt int

	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "График платежей: годовые итоги, первые и последние месяцы",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := opts.resolve()
			if err != nil {
				return err
			}
			out, err := handler(cmd.Context(), params)
			if err != nil {
				return err
			}
			result := out.(*calculations.CalculationResult)

			if csvPath != "" {
				if err := writeFile(csvPath, func(w io.Writer) error { return export.WriteCSV(w, result.Schedule) }); err != nil {
					return err
				}
			}
			if yearlyCSVPath != "" {
				if err := writeFile(yearlyCSVPath, func(w io.Writer) error { return export.WriteYearlyCSV(w, result.Yearly) }); err != nil {
					return err
				}
			}

			if opts.format == "json" {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			return export.WriteReport(cmd.OutOrStdout(), result, excerpt)
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "write the full schedule as CSV to this file")
	cmd.Flags().StringVar(&yearlyCSVPath, "yearly-csv", "", "write yearly totals as CSV to this file")
	cmd.Flags().IntVar(&excerpt, "excerpt", 12, "number of first and last months to print")

	return cmd
}

func newCompareCmd(opts *options, handler tools.ToolHandler) *cobra.Command {
	return &cobra.Command{
		Use:   "compare",
		Short: "Сравнение графика с бонусным погашением и без него",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := opts.resolve()
			if err != nil {
				return err
			}
			out, err := handler(cmd.Context(), params)
			if err != nil {
				return err
			}
			result := out.(*calculations.ComparisonResult)

			if opts.format == "json" {
				return writeJSON(cmd.OutOrStdout(), result)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "С бонусным погашением")
			if err := export.WriteSummary(w, result.WithBonus); err != nil {
				return err
			}
			if err := export.WriteTotals(w, result.WithBonusTotals); err != nil {
				return err
			}
			fmt.Fprintln(w, "\nБез бонусного погашения")
			if err := export.WriteSummary(w, result.WithoutBonus); err != nil {
				return err
			}
			if err := export.WriteTotals(w, result.WithoutBonusTotals); err != nil {
				return err
			}
			fmt.Fprintf(w, "\n%s\n", result.Recommendation)
			return nil
		},
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}
