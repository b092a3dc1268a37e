package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Defaults match the values the production stack is deployed with; override
// via Lambda environment variables.
const (
	defaultSenderAddress = "no-reply@polepeddiaravind.me"
	defaultSubject       = "Verify your email address"
	defaultVerifyBaseURL = "http://prod.polepeddiaravind.me/v1/verifyUserEmail"
)

// Config holds the settings of the verification-email function.
type Config struct {
	// SenderAddress must be a verified SES identity.
	SenderAddress string `validate:"required,email"`
	Subject       string `validate:"required"`
	// VerifyBaseURL is the verifyUserEmail endpoint the emailed link points at.
	VerifyBaseURL string `validate:"required,url"`
	// AuditTableName enables the DynamoDB send-audit trail when set.
	AuditTableName string
}

// Load reads configuration from the environment and validates it.
func Load() (*Config, error) {
	// A .env file is only present during local development.
	_ = godotenv.Load()

	cfg := &Config{
		SenderAddress:  getenv("SENDER_ADDRESS", defaultSenderAddress),
		Subject:        getenv("EMAIL_SUBJECT", defaultSubject),
		VerifyBaseURL:  getenv("VERIFY_BASE_URL", defaultVerifyBaseURL),
		AuditTableName: os.Getenv("AUDIT_TABLE_NAME"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validating configuration: %w", err)
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
