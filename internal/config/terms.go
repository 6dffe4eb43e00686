package config

import (
	"fmt"
	"os"

	"github.com/cloud-ru/mcp-mortgage-go/internal/calculations"
	"gopkg.in/yaml.v3"
)

// TermsFile описывает YAML-файл с условиями кредита
type TermsFile struct {
	Loan  calculations.LoanTerms    `yaml:"loan"`
	Costs calculations.HousingCosts `yaml:"costs"`
}

// LoadTermsFile читает условия кредита из YAML-файла
func LoadTermsFile(filename string) (*TermsFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	return ParseTerms(data)
}

// ParseTerms разбирает YAML с условиями кредита.
// Если частота бонусов не указана, используется два платежа в год.
func ParseTerms(data []byte) (*TermsFile, error) {
	var tf TermsFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if tf.Loan.BonusPrincipal > 0 && tf.Loan.BonusFrequency == 0 {
		tf.Loan.BonusFrequency = calculations.BonusSemiAnnual
	}

	if err := tf.Loan.Validate(); err != nil {
		return nil, fmt.Errorf("terms validation failed: %w", err)
	}

	return &tf, nil
}
