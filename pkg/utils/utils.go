package utils

import "math"

// RoundTo округляет число до заданного количества знаков после запятой
func RoundTo(value float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(value*scale) / scale
}

// Round2 округляет число до 2 знаков после запятой
func Round2(value float64) float64 {
	return RoundTo(value, 2)
}

// IsFinite проверяет, является ли число конечным
func IsFinite(value float64) bool {
	return !math.IsInf(value, 0) && !math.IsNaN(value)
}

// RelativeDiff возвращает относительное отклонение got от want.
// При want == 0 возвращается абсолютное отклонение.
func RelativeDiff(got, want float64) float64 {
	if want == 0 {
		return math.Abs(got)
	}
	return math.Abs(got-want) / math.Abs(want)
}
