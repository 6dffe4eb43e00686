package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config содержит конфигурацию калькулятора
type Config struct {
	MinPrincipal    float64
	MaxPrincipal    float64
	MinRate         float64
	MaxRate         float64
	MaxYears        int
	MaxMonthlyFee   float64
	OTELEndpoint    string
	OTELServiceName string
	LogLevel        string
	LogFormat       string
}

// LoadConfig загружает конфигурацию из переменных окружения
func LoadConfig() (*Config, error) {
	// Загружаем .env файл, если он существует (игнорируем ошибку)
	_ = godotenv.Load()

	cfg := &Config{
		MinPrincipal:    getEnvFloat("MIN_PRINCIPAL", 1e6),
		MaxPrincipal:    getEnvFloat("MAX_PRINCIPAL", 1e8),
		MinRate:         getEnvFloat("MIN_RATE", 0.1),
		MaxRate:         getEnvFloat("MAX_RATE", 10),
		MaxYears:        getEnvInt("MAX_YEARS", 50),
		MaxMonthlyFee:   getEnvFloat("MAX_MONTHLY_FEE", 50000),
		OTELEndpoint:    getEnvString("OTEL_ENDPOINT", ""),
		OTELServiceName: getEnvString("OTEL_SERVICE_NAME", "mcp-mortgage-server"),
		LogLevel:        getEnvString("LOG_LEVEL", "INFO"),
		LogFormat:       getEnvString("LOG_FORMAT", "console"),
	}

	return cfg, nil
}

func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
