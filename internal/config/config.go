package config

import "os"

// Config holds process-level settings, all env-driven.
type Config struct {
	MongoURI      string
	MongoDatabase string
	RedisAddr     string
	Port          string
}

// Load reads configuration from the environment with local defaults.
func Load() *Config {
	return &Config{
		MongoURI:      getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnvOrDefault("MONGO_DATABASE", "cyclica"),
		RedisAddr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
		Port:          getEnvOrDefault("PORT", "3000"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
