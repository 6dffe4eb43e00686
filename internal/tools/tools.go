package tools

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/cloud-ru/mcp-mortgage-go/internal/calculations"
	"github.com/cloud-ru/mcp-mortgage-go/internal/config"
	"github.com/cloud-ru/mcp-mortgage-go/internal/logging"
	"github.com/cloud-ru/mcp-mortgage-go/internal/metrics"
	"github.com/cloud-ru/mcp-mortgage-go/internal/validators"
	"github.com/cloud-ru/mcp-mortgage-go/pkg/utils"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Имена инструментов
const (
	ToolPaymentPlan   = "loan_payment_plan"
	ToolScheduleBonus = "loan_schedule_bonus"
	ToolCompareBonus  = "compare_bonus_split"
)

// ToolHandler представляет обработчик инструмента MCP
type ToolHandler func(ctx context.Context, params map[string]interface{}) (interface{}, error)

// PlanResult ответ инструмента loan_payment_plan
type PlanResult struct {
	Plan    calculations.PaymentPlan `json:"plan"`
	Summary calculations.LoanSummary `json:"summary"`
}

// Registry возвращает все инструменты по именам
func Registry(cfg *config.Config, tracer trace.Tracer, logger *zap.Logger) map[string]ToolHandler {
	return map[string]ToolHandler{
		ToolPaymentPlan:   PaymentPlanHandler(cfg, tracer, logger),
		ToolScheduleBonus: ScheduleBonusHandler(cfg, tracer, logger),
		ToolCompareBonus:  CompareBonusSplitHandler(cfg, tracer, logger),
	}
}

// PaymentPlanHandler обрабатывает запрос на расчет ежемесячного и бонусного платежей
func PaymentPlanHandler(cfg *config.Config, tracer trace.Tracer, logger *zap.Logger) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		return runTool(ctx, ToolPaymentPlan, cfg, tracer, logger, params,
			func(terms calculations.LoanTerms, costs calculations.HousingCosts, span trace.Span) (interface{}, error) {
				plan, err := calculations.ComputePaymentPlan(terms)
				if err != nil {
					return nil, err
				}
				span.SetAttributes(
					attribute.Float64("monthly_payment", plan.MonthlyPayment),
					attribute.Float64("bonus_payment", plan.BonusPayment),
				)
				return &PlanResult{Plan: plan, Summary: calculations.Summarize(terms, plan, costs)}, nil
			})
	}
}

// ScheduleBonusHandler обрабатывает запрос на построение графика с бонусными платежами
func ScheduleBonusHandler(cfg *config.Config, tracer trace.Tracer, logger *zap.Logger) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		return runTool(ctx, ToolScheduleBonus, cfg, tracer, logger, params,
			func(terms calculations.LoanTerms, costs calculations.HousingCosts, span trace.Span) (interface{}, error) {
				result, err := calculations.Calculate(terms, costs)
				if err != nil {
					return nil, err
				}
				metrics.SchedulePeriods.Observe(float64(len(result.Schedule)))
				span.SetAttributes(
					attribute.Int("periods", len(result.Schedule)),
					attribute.Float64("total_paid", result.Totals.TotalPayment),
				)
				return result, nil
			})
	}
}

// CompareBonusSplitHandler обрабатывает запрос на сравнение графиков с бонусами и без них
func CompareBonusSplitHandler(cfg *config.Config, tracer trace.Tracer, logger *zap.Logger) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		return runTool(ctx, ToolCompareBonus, cfg, tracer, logger, params,
			func(terms calculations.LoanTerms, costs calculations.HousingCosts, span trace.Span) (interface{}, error) {
				return calculations.CompareBonusSplit(terms, costs)
			})
	}
}

type calculation func(terms calculations.LoanTerms, costs calculations.HousingCosts, span trace.Span) (interface{}, error)

func runTool(ctx context.Context, toolName string, cfg *config.Config, tracer trace.Tracer, logger *zap.Logger,
	params map[string]interface{}, calc calculation) (interface{}, error) {

	logger = logging.OrNop(logger).With(zap.String("tool", toolName))

	_, span := tracer.Start(ctx, toolName)
	defer span.End()

	terms, costs, err := ParseParams(params)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(
		attribute.Float64("principal", terms.Principal),
		attribute.Float64("annual_rate_percent", terms.AnnualRatePercent),
		attribute.Int("term_years", terms.TermYears),
		attribute.Float64("bonus_principal", terms.BonusPrincipal),
		attribute.Int("bonus_frequency", terms.BonusFrequency),
	)

	metrics.APICalls.WithLabelValues("mcp", toolName, "started").Inc()

	// Валидация
	if err := validators.CheckTerms(cfg, terms, costs); err != nil {
		fail(span, toolName, "validation_error", "validation")
		logger.Warn("validation failed", zap.Error(err))
		return nil, fmt.Errorf("неверные параметры: %w", err)
	}

	// Расчет
	result, err := calc(terms, costs, span)
	if err != nil {
		if errors.Is(err, calculations.ErrInvalidTerms) {
			fail(span, toolName, "validation_error", "validation")
			logger.Warn("invalid terms", zap.Error(err))
			return nil, fmt.Errorf("неверные параметры: %w", err)
		}
		fail(span, toolName, "error", "calculation")
		logger.Error("calculation failed", zap.Error(err))
		return nil, fmt.Errorf("ошибка при выполнении расчета: %w", err)
	}

	span.SetAttributes(attribute.Bool("success", true))
	metrics.ToolCalls.WithLabelValues(toolName, "success").Inc()
	metrics.APICalls.WithLabelValues("mcp", toolName, "success").Inc()
	logger.Debug("calculation finished")

	return result, nil
}

func fail(span trace.Span, toolName, status, errorType string) {
	span.SetAttributes(attribute.String("error", errorType+"_error"))
	metrics.ToolCalls.WithLabelValues(toolName, status).Inc()
	metrics.CalculationErrors.WithLabelValues(toolName, errorType).Inc()
	metrics.APICalls.WithLabelValues("mcp", toolName, "error").Inc()
}

// ParseParams извлекает условия кредита из параметров инструмента.
// Бонусные параметры и расходы на содержание необязательны.
func ParseParams(params map[string]interface{}) (calculations.LoanTerms, calculations.HousingCosts, error) {
	var terms calculations.LoanTerms
	var costs calculations.HousingCosts

	principal, ok := params["principal"].(float64)
	if !ok {
		return terms, costs, fmt.Errorf("invalid parameter: principal")
	}
	annualRatePercent, ok := params["annual_rate_percent"].(float64)
	if !ok {
		return terms, costs, fmt.Errorf("invalid parameter: annual_rate_percent")
	}
	yearsFloat, ok := params["term_years"].(float64)
	if !ok || !wholeNumber(yearsFloat) {
		return terms, costs, fmt.Errorf("invalid parameter: term_years")
	}

	terms = calculations.LoanTerms{
		Principal:         principal,
		AnnualRatePercent: annualRatePercent,
		TermYears:         int(yearsFloat),
		BonusFrequency:    calculations.BonusSemiAnnual,
	}

	var err error
	if terms.BonusPrincipal, err = optionalFloat(params, "bonus_principal"); err != nil {
		return terms, costs, err
	}
	if v, present := params["bonus_frequency"]; present {
		f, ok := v.(float64)
		if !ok || !wholeNumber(f) {
			return terms, costs, fmt.Errorf("invalid parameter: bonus_frequency")
		}
		terms.BonusFrequency = int(f)
	}
	if costs.ManagementFee, err = optionalFloat(params, "management_fee"); err != nil {
		return terms, costs, err
	}
	if costs.RepairReserve, err = optionalFloat(params, "repair_reserve"); err != nil {
		return terms, costs, err
	}

	return terms, costs, nil
}

// wholeNumber сообщает, можно ли без потерь привести значение к int
func wholeNumber(v float64) bool {
	return utils.IsFinite(v) && v == math.Trunc(v) && math.Abs(v) <= math.MaxInt32
}

func optionalFloat(params map[string]interface{}, key string) (float64, error) {
	v, present := params[key]
	if !present {
		return 0, nil
	}
	f, ok := v.(float64)
	if !ok {
		return 0, fmt.Errorf("invalid parameter: %s", key)
	}
	return f, nil
}

// TermsParams преобразует условия кредита в параметры инструмента
func TermsParams(terms calculations.LoanTerms, costs calculations.HousingCosts) map[string]interface{} {
	return map[string]interface{}{
		"principal":           terms.Principal,
		"annual_rate_percent": terms.AnnualRatePercent,
		"term_years":          float64(terms.TermYears),
		"bonus_principal":     terms.BonusPrincipal,
		"bonus_frequency":     float64(terms.BonusFrequency),
		"management_fee":      costs.ManagementFee,
		"repair_reserve":      costs.RepairReserve,
	}
}
