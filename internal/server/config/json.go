package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/waterguard/backend/internal/flagx"
	"github.com/waterguard/backend/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. It uses timex.Duration for interval fields, which allows
// parsing both string values such as "24h" and integer nanoseconds.
//
// This struct is an intermediate DTO used only for reading JSON configuration
// files. After unmarshalling, its fields are copied into the runtime Config
// struct which uses time.Duration.
type JsonConfig struct {
	EndpointAddrHTTP        string         `json:"endpoint_addr_http"`
	DatabaseDSN             string         `json:"database_dsn"`
	SecretKey               string         `json:"secret_key"`
	SessionValidityDuration timex.Duration `json:"session_validity_duration"`
	SMTPHost                string         `json:"smtp_host"`
	SMTPPort                int            `json:"smtp_port"`
	SenderEmail             string         `json:"sender_email"`
	SenderPassword          string         `json:"sender_password"`
	LLMAPIKey               string         `json:"llm_api_key"`
	LLMModel                string         `json:"llm_model"`
	LLMBaseURL              string         `json:"llm_base_url"`
	LLMTimeout              timex.Duration `json:"llm_timeout"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c or -config command-line
// flags; if neither is set, no JSON file is loaded. Only fields present in
// the file override the current values. If the file cannot be read or
// contains invalid JSON, the function panics.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddrHTTP != "" {
		config.EndpointAddrHTTP = c.EndpointAddrHTTP
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.SessionValidityDuration.Duration != 0 {
		config.SessionValidityDuration = time.Duration(c.SessionValidityDuration.Duration)
	}
	if c.SMTPHost != "" {
		config.SMTPHost = c.SMTPHost
	}
	if c.SMTPPort != 0 {
		config.SMTPPort = c.SMTPPort
	}
	if c.SenderEmail != "" {
		config.SenderEmail = c.SenderEmail
	}
	if c.SenderPassword != "" {
		config.SenderPassword = c.SenderPassword
	}
	if c.LLMAPIKey != "" {
		config.LLMAPIKey = c.LLMAPIKey
	}
	if c.LLMModel != "" {
		config.LLMModel = c.LLMModel
	}
	if c.LLMBaseURL != "" {
		config.LLMBaseURL = c.LLMBaseURL
	}
	if c.LLMTimeout.Duration != 0 {
		config.LLMTimeout = time.Duration(c.LLMTimeout.Duration)
	}
}
