package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port            string
	Environment     string
	LogLevel        string
	LogPath         string
	SupabaseURL     string
	SupabaseAnonKey string
	MongoDBURI      string
	MongoDBPassword string
	MongoDBDatabase string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	ToastTTL        time.Duration
	SessionIdleTTL  time.Duration
	RabbitMQURL     string
	RabbitExchange  string
	AllowedOrigins  []string
}

// LoadConfig reads settings from the environment. godotenv has already
// merged any .env.local file into it by the time this runs.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("MONGODB_DATABASE", "playspot")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("TOAST_TTL", "5m")
	v.SetDefault("SESSION_IDLE_TTL", "30m")
	v.SetDefault("RABBITMQ_EXCHANGE", "playspot.events")
	v.SetDefault("CORS_ORIGINS", "http://localhost:8081")

	cfg := &Config{
		Port:            v.GetString("PORT"),
		Environment:     v.GetString("ENVIRONMENT"),
		LogLevel:        v.GetString("LOG_LEVEL"),
		LogPath:         v.GetString("LOG_PATH"),
		SupabaseURL:     v.GetString("SUPABASE_URL"),
		SupabaseAnonKey: v.GetString("SUPABASE_URL_ANON_KEY"),
		MongoDBURI:      v.GetString("MONGODB_URI"),
		MongoDBPassword: v.GetString("MONGODB_PASSWORD"),
		MongoDBDatabase: v.GetString("MONGODB_DATABASE"),
		RedisAddr:       v.GetString("REDIS_ADDR"),
		RedisPassword:   v.GetString("REDIS_PASSWORD"),
		RedisDB:         v.GetInt("REDIS_DB"),
		ToastTTL:        v.GetDuration("TOAST_TTL"),
		SessionIdleTTL:  v.GetDuration("SESSION_IDLE_TTL"),
		RabbitMQURL:     v.GetString("RABBITMQ_URL"),
		RabbitExchange:  v.GetString("RABBITMQ_EXCHANGE"),
		AllowedOrigins:  splitList(v.GetString("CORS_ORIGINS")),
	}

	// Validate required fields
	if cfg.SupabaseURL == "" {
		return nil, fmt.Errorf("SUPABASE_URL is required")
	}
	if cfg.SupabaseAnonKey == "" {
		return nil, fmt.Errorf("SUPABASE_URL_ANON_KEY is required")
	}
	if cfg.MongoDBURI == "" {
		return nil, fmt.Errorf("MONGODB_URI is required")
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
