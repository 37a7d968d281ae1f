package config

import (
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	LLM       LLMConfig
	RateLimit RateLimitConfig
	Inventory InventoryConfig
}

type ServerConfig struct {
	Port           string
	Mode           string
	LogLevel       string
	ReadTimeout    int
	WriteTimeout   int
	AllowedOrigins []string
}

// LLMConfig configures the Gemini client used by the intent and roster agents.
// An empty APIKey disables the client and every LLM call falls back.
type LLMConfig struct {
	APIKey            string
	Model             string
	IntentTemperature float32
	TimeoutSeconds    int
}

type RateLimitConfig struct {
	Enabled           bool
	RedisURL          string
	RedisHost         string
	RedisPort         string
	RedisPassword     string
	RedisDB           int
	RequestsPerWindow int
	WindowSeconds     int
}

type InventoryConfig struct {
	BulkWorkers int
}

var (
	once     sync.Once
	instance *Config
)

func Load() *Config {
	once.Do(func() {
		// Load .env file if it exists
		_ = godotenv.Load()

		viper.SetDefault("SERVER_PORT", "8000")
		viper.SetDefault("SERVER_MODE", "debug")
		viper.SetDefault("LOG_LEVEL", "")
		viper.SetDefault("SERVER_READ_TIMEOUT", 15)
		viper.SetDefault("SERVER_WRITE_TIMEOUT", 30)
		viper.SetDefault("SERVER_ALLOWED_ORIGINS", []string{"*"})
		viper.SetDefault("GENAI_API_KEY", "")
		viper.SetDefault("GENAI_MODEL", "gemini-2.0-flash")
		viper.SetDefault("GENAI_INTENT_TEMPERATURE", 0.2)
		viper.SetDefault("GENAI_TIMEOUT_SECONDS", 15)
		viper.SetDefault("RATE_LIMIT_ENABLED", false)
		viper.SetDefault("REDIS_URL", "")
		viper.SetDefault("REDIS_HOST", "127.0.0.1")
		viper.SetDefault("REDIS_PORT", "6379")
		viper.SetDefault("REDIS_PASSWORD", "")
		viper.SetDefault("REDIS_DB", 0)
		viper.SetDefault("RATE_LIMIT_REQUESTS", 30)
		viper.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 60)
		viper.SetDefault("INVENTORY_BULK_WORKERS", 8)

		// Read from environment variables
		viper.AutomaticEnv()

		instance = &Config{
			Server: ServerConfig{
				Port:           viper.GetString("SERVER_PORT"),
				Mode:           viper.GetString("SERVER_MODE"),
				LogLevel:       viper.GetString("LOG_LEVEL"),
				ReadTimeout:    viper.GetInt("SERVER_READ_TIMEOUT"),
				WriteTimeout:   viper.GetInt("SERVER_WRITE_TIMEOUT"),
				AllowedOrigins: viper.GetStringSlice("SERVER_ALLOWED_ORIGINS"),
			},
			LLM: LLMConfig{
				APIKey:            viper.GetString("GENAI_API_KEY"),
				Model:             viper.GetString("GENAI_MODEL"),
				IntentTemperature: float32(viper.GetFloat64("GENAI_INTENT_TEMPERATURE")),
				TimeoutSeconds:    viper.GetInt("GENAI_TIMEOUT_SECONDS"),
			},
			RateLimit: RateLimitConfig{
				Enabled:           viper.GetBool("RATE_LIMIT_ENABLED"),
				RedisURL:          viper.GetString("REDIS_URL"),
				RedisHost:         viper.GetString("REDIS_HOST"),
				RedisPort:         viper.GetString("REDIS_PORT"),
				RedisPassword:     viper.GetString("REDIS_PASSWORD"),
				RedisDB:           viper.GetInt("REDIS_DB"),
				RequestsPerWindow: viper.GetInt("RATE_LIMIT_REQUESTS"),
				WindowSeconds:     viper.GetInt("RATE_LIMIT_WINDOW_SECONDS"),
			},
			Inventory: InventoryConfig{
				BulkWorkers: viper.GetInt("INVENTORY_BULK_WORKERS"),
			},
		}
	})

	return instance
}

// Timeout returns the per-call LLM deadline.
func (c LLMConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Window returns the rate limit window length.
func (c RateLimitConfig) Window() time.Duration {
	if c.WindowSeconds <= 0 {
		return time.Minute
	}
	return time.Duration(c.WindowSeconds) * time.Second
}
