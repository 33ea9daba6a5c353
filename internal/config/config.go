package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds process level settings. DynamoDB connection settings are read by
// the database package.
type Config struct {
	Env                string
	Port               int
	QuotesTable        string
	CORSAllowedOrigins []string
	MercadoPagoToken   string
	PaymentCurrency    string
	PaymentGatewayMock bool

	// Sandbox payer used when a test access token is configured.
	TestPayerEmail  string
	TestPayerUserID string
}

func Load() (Config, error) {
	cfg := Config{
		Env:                getenv("APP_ENV", "development"),
		Port:               getenvInt("PORT", 8080),
		QuotesTable:        getenv("QUOTES_TABLE", "quotes"),
		CORSAllowedOrigins: splitCSV(getenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")),
		MercadoPagoToken:   strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")),
		PaymentCurrency:    strings.ToUpper(getenv("MERCADOPAGO_CURRENCY", "GBP")),
		PaymentGatewayMock: getenvBool("PAYMENT_GATEWAY_MOCK") || getenvBool("MERCADOPAGO_MOCK"),
		TestPayerEmail:     strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")),
		TestPayerUserID:    strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_USER_ID")),
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return cfg, fmt.Errorf("invalid PORT %d", cfg.Port)
	}
	return cfg, nil
}

func (c Config) IsProduction() bool {
	switch strings.ToLower(c.Env) {
	case "prod", "production":
		return true
	}
	return false
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func getenvBool(key string) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
