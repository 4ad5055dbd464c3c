package config

// OpenAIModels defines which models to use for different tasks.
type OpenAIModels struct {
	// Scoring is for per-answer evaluation (low variance matters)
	Scoring string `json:"scoring"`

	// Chat is for free-chat replies (quality matters)
	Chat string `json:"chat"`

	// Embedding is for context retrieval queries
	Embedding string `json:"embedding"`
}

// AIConfig holds all LLM-related configuration.
type AIConfig struct {
	APIKey  string       `json:"-"` // Never serialize
	BaseURL string       `json:"baseUrl"`
	Models  OpenAIModels `json:"models"`

	// ScoringTemperature keeps evaluation sampling deterministic-leaning
	ScoringTemperature float64 `json:"scoringTemperature"`
	ChatTemperature    float64 `json:"chatTemperature"`
	ChatMaxTokens      int     `json:"chatMaxTokens"`

	TimeoutMS int `json:"timeoutMs"`
}

// DefaultAIConfig returns the default LLM configuration.
func DefaultAIConfig() *AIConfig {
	return &AIConfig{
		APIKey:  getEnvOrDefault("OPENAI_API_KEY", ""),
		BaseURL: getEnvOrDefault("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		Models: OpenAIModels{
			Scoring:   getEnvOrDefault("OPENAI_MODEL_SCORING", "gpt-4o-mini"),
			Chat:      getEnvOrDefault("OPENAI_MODEL_CHAT", "gpt-4o"),
			Embedding: getEnvOrDefault("OPENAI_MODEL_EMBEDDING", "text-embedding-3-small"),
		},
		ScoringTemperature: 0.3,
		ChatTemperature:    0.7,
		ChatMaxTokens:      500,
		TimeoutMS:          30000,
	}
}

// IsEnabled returns true if the LLM API is configured.
func (c *AIConfig) IsEnabled() bool {
	return c.APIKey != ""
}
