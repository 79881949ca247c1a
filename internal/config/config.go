package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// LLMConfig contains all LLM integration related settings.
type LLMConfig struct {
	// GeminiAPIKey is the server-side default credential. It is optional:
	// callers may supply their own key per request, and one of the two must
	// be present at call time.
	GeminiAPIKey string `mapstructure:"gemini_api_key"`

	// ModelName selects the Gemini model used for generation.
	ModelName string `mapstructure:"model_name" validate:"required"`

	// TimeoutSeconds bounds the single generation call. Zero disables the
	// per-call deadline and defers to the caller's context.
	TimeoutSeconds int `mapstructure:"timeout_seconds" validate:"gte=0"`
}
