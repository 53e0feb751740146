package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for the API server.
type Config struct {
	Port        string
	Origin      string
	MongoURI    string
	MongoDB     string
	JWTSecret   string
	AppURL      string // frontend base URL, used in reset links
	UploadsRoot string
	Inference   InferenceConfig
	Mail        MailConfig

	SessionTokenHours    int
	ResetTokenExpirySecs int
}

// InferenceConfig points at the external classification model service.
type InferenceConfig struct {
	URL            string
	TimeoutSeconds int
}

// MailConfig holds the SMTP relay settings for password-reset mail.
type MailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	mailPort, err := strconv.Atoi(getEnv("MAIL_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid MAIL_PORT: %w", err)
	}

	sessionHours, err := strconv.Atoi(getEnv("SESSION_TOKEN_HOURS", "24"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TOKEN_HOURS: %w", err)
	}

	resetExpiry, err := strconv.Atoi(getEnv("RESET_TOKEN_EXPIRY_SECONDS", "1800"))
	if err != nil {
		return nil, fmt.Errorf("invalid RESET_TOKEN_EXPIRY_SECONDS: %w", err)
	}

	inferenceTimeout, err := strconv.Atoi(getEnv("INFERENCE_TIMEOUT_SECONDS", "60"))
	if err != nil {
		return nil, fmt.Errorf("invalid INFERENCE_TIMEOUT_SECONDS: %w", err)
	}

	return &Config{
		Port:        getEnv("API_PORT", "8000"),
		Origin:      getEnv("CORS_ORIGIN", "http://localhost:5173"),
		MongoURI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:     getEnv("MONGO_DATABASE", "hair_follicle_db"),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		AppURL:      getEnv("APP_URL", "http://localhost:5173"),
		UploadsRoot: getEnv("UPLOADS_ROOT", "static"),
		Inference: InferenceConfig{
			URL:            getEnv("INFERENCE_URL", "http://localhost:8501"),
			TimeoutSeconds: inferenceTimeout,
		},
		Mail: MailConfig{
			Host:     getEnv("MAIL_SERVER", "smtp.gmail.com"),
			Port:     mailPort,
			Username: getEnv("MAIL_USERNAME", ""),
			Password: getEnv("MAIL_PASSWORD", ""),
			From:     getEnv("MAIL_FROM", ""),
		},
		SessionTokenHours:    sessionHours,
		ResetTokenExpirySecs: resetExpiry,
	}, nil
}

// getEnv returns the environment variable value or a default.
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
