package config

import (
	"os"
	"strconv"
)

// parseEnv overlays Config fields from environment variables. The variable
// names mirror what the deployment already exports: GOOGLE_API_KEY,
// SENDER_EMAIL and SENDER_PASS feed the external integrations, PORT sets the
// listen port when ADDRESS is not given explicitly.
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.EndpointAddrHTTP = v
	} else if v, ok := os.LookupEnv("PORT"); ok {
		config.EndpointAddrHTTP = ":" + v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("SECRET_KEY"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("SMTP_HOST"); ok {
		config.SMTPHost = v
	}
	if v, ok := os.LookupEnv("SMTP_PORT"); ok {
		if port, err := strconv.Atoi(v); err == nil {
			config.SMTPPort = port
		}
	}
	if v, ok := os.LookupEnv("SENDER_EMAIL"); ok {
		config.SenderEmail = v
	}
	if v, ok := os.LookupEnv("SENDER_PASS"); ok {
		config.SenderPassword = v
	}
	if v, ok := os.LookupEnv("GOOGLE_API_KEY"); ok {
		config.LLMAPIKey = v
	}
	if v, ok := os.LookupEnv("LLM_MODEL"); ok {
		config.LLMModel = v
	}
	if v, ok := os.LookupEnv("LLM_BASE_URL"); ok {
		config.LLMBaseURL = v
	}
}
