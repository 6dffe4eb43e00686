package validators

import (
	"fmt"

	"github.com/cloud-ru/mcp-mortgage-go/internal/calculations"
	"github.com/cloud-ru/mcp-mortgage-go/internal/config"
	"github.com/cloud-ru/mcp-mortgage-go/pkg/utils"
)

// ValidatePositiveNumber проверяет, что число конечное и в допустимом диапазоне
func ValidatePositiveNumber(name string, value float64, minInclusive, maxInclusive float64) error {
	if !utils.IsFinite(value) {
		return fmt.Errorf("%s: значение не является конечным числом", name)
	}
	if value < minInclusive {
		return fmt.Errorf("%s: значение должно быть ≥ %g", name, minInclusive)
	}
	if value > maxInclusive {
		return fmt.Errorf("%s: значение слишком велико (>%g)", name, maxInclusive)
	}
	return nil
}

// ValidateIntRange проверяет, что целое число в допустимом диапазоне
func ValidateIntRange(name string, value int, minInclusive, maxInclusive int) error {
	if value < minInclusive || value > maxInclusive {
		return fmt.Errorf("%s: значение должно быть в диапазоне [%d; %d]", name, minInclusive, maxInclusive)
	}
	return nil
}

// CheckPrincipal проверяет сумму кредита
func CheckPrincipal(cfg *config.Config, principal float64) error {
	return ValidatePositiveNumber("principal", principal, cfg.MinPrincipal, cfg.MaxPrincipal)
}

// CheckRate проверяет процентную ставку
func CheckRate(cfg *config.Config, rate float64) error {
	return ValidatePositiveNumber("annual_rate_percent", rate, cfg.MinRate, cfg.MaxRate)
}

// CheckYears проверяет срок в годах
func CheckYears(cfg *config.Config, years int) error {
	return ValidateIntRange("term_years", years, 1, cfg.MaxYears)
}

// CheckBonus проверяет бонусную часть и частоту бонусных платежей
func CheckBonus(principal, bonusPrincipal float64, frequency int) error {
	if err := ValidatePositiveNumber("bonus_principal", bonusPrincipal, 0.0, principal); err != nil {
		return err
	}
	if bonusPrincipal > 0 {
		return ValidateIntRange("bonus_frequency", frequency, calculations.BonusAnnual, calculations.BonusSemiAnnual)
	}
	return nil
}

// CheckMonthlyFee проверяет ежемесячные расходы на содержание
func CheckMonthlyFee(cfg *config.Config, name string, fee float64) error {
	return ValidatePositiveNumber(name, fee, 0.0, cfg.MaxMonthlyFee)
}

// CheckTerms проверяет все условия кредита по диапазонам из конфигурации
func CheckTerms(cfg *config.Config, terms calculations.LoanTerms, costs calculations.HousingCosts) error {
	if err := CheckPrincipal(cfg, terms.Principal); err != nil {
		return err
	}
	if err := CheckRate(cfg, terms.AnnualRatePercent); err != nil {
		return err
	}
	if err := CheckYears(cfg, terms.TermYears); err != nil {
		return err
	}
	if err := CheckBonus(terms.Principal, terms.BonusPrincipal, terms.BonusFrequency); err != nil {
		return err
	}
	if err := CheckMonthlyFee(cfg, "management_fee", costs.ManagementFee); err != nil {
		return err
	}
	return CheckMonthlyFee(cfg, "repair_reserve", costs.RepairReserve)
}
