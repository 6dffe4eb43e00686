package export

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Amount округляет сумму до целых единиц валюты
func Amount(value float64) decimal.Decimal {
	return decimal.NewFromFloat(value).Round(0)
}

// FormatCurrency форматирует сумму с разделителями разрядов, например "¥1,234,567"
func FormatCurrency(value float64) string {
	s := Amount(value).StringFixed(0)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}
	if sign == "-" && s == "0" {
		sign = ""
	}

	var b strings.Builder
	for i, digit := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	return sign + "¥" + b.String()
}
