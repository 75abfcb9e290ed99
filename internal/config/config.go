package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	// File is the absolute path of the config file that was read, if any.
	File      string
	Server    ServerConfig
	Logger    LoggerConfig
	Evaluator EvaluatorConfig
	Judge     JudgeConfig
	Redis     RedisConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type LoggerConfig struct {
	Level string
	Env   string
}

// EvaluatorConfig holds the decision-lane thresholds. They are heuristics and
// are expected to be retuned against real learner answers.
type EvaluatorConfig struct {
	AcceptThreshold float64
	DeferThreshold  float64
	MinDeferTokens  int
}

// JudgeConfig selects and configures the semantic judge.
type JudgeConfig struct {
	// Provider is one of "ollama", "openai", "http" or "none".
	Provider  string
	ServerURL string
	Model     string
	APIKey    string
	// Endpoint is the function URL used by the "http" provider.
	Endpoint    string
	Timeout     time.Duration
	MaxAttempts int
	RetryWait   time.Duration
	CacheTTL    time.Duration
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

const (
	JudgeProviderOllama = "ollama"
	JudgeProviderOpenAI = "openai"
	JudgeProviderHTTP   = "http"
	JudgeProviderNone   = "none"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", 20)
	v.SetDefault("server.write_timeout", 20)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "development")

	v.SetDefault("evaluator.accept_threshold", 0.90)
	v.SetDefault("evaluator.defer_threshold", 0.70)
	v.SetDefault("evaluator.min_defer_tokens", 3)

	v.SetDefault("judge.provider", JudgeProviderOllama)
	v.SetDefault("judge.server_url", "http://localhost:11434")
	v.SetDefault("judge.model", "qwen3:0.6b")
	v.SetDefault("judge.timeout", 20)
	v.SetDefault("judge.max_attempts", 2)
	v.SetDefault("judge.retry_wait_ms", 300)
	v.SetDefault("judge.cache_ttl", 24*60*60)

	v.SetDefault("redis.db", 0)
}

// LoadConfig reads config.yaml from the usual locations. A missing file is
// not an error; defaults and environment variables are used instead.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setDefaults(v)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := fromViper(v)
	if configFile := v.ConfigFileUsed(); configFile != "" {
		cfg.File, _ = filepath.Abs(configFile)
	}
	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  time.Duration(v.GetInt("server.read_timeout")) * time.Second,
			WriteTimeout: time.Duration(v.GetInt("server.write_timeout")) * time.Second,
		},
		Logger: LoggerConfig{
			Level: v.GetString("logger.level"),
			Env:   v.GetString("logger.env"),
		},
		Evaluator: EvaluatorConfig{
			AcceptThreshold: v.GetFloat64("evaluator.accept_threshold"),
			DeferThreshold:  v.GetFloat64("evaluator.defer_threshold"),
			MinDeferTokens:  v.GetInt("evaluator.min_defer_tokens"),
		},
		Judge: JudgeConfig{
			Provider:    v.GetString("judge.provider"),
			ServerURL:   v.GetString("judge.server_url"),
			Model:       v.GetString("judge.model"),
			APIKey:      v.GetString("judge.api_key"),
			Endpoint:    v.GetString("judge.endpoint"),
			Timeout:     time.Duration(v.GetInt("judge.timeout")) * time.Second,
			MaxAttempts: v.GetInt("judge.max_attempts"),
			RetryWait:   time.Duration(v.GetInt("judge.retry_wait_ms")) * time.Millisecond,
			CacheTTL:    time.Duration(v.GetInt("judge.cache_ttl")) * time.Second,
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
	}
}

// applyEnvOverrides lets the usual deployment variables win over the file.
func applyEnvOverrides(cfg *Config) {
	if env := os.Getenv("ENV"); env != "" {
		cfg.Logger.Env = env
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Logger.Level = level
	}
	if provider := os.Getenv("JUDGE_PROVIDER"); provider != "" {
		cfg.Judge.Provider = provider
	}
	if llmServer := os.Getenv("LLM_SERVER"); llmServer != "" {
		cfg.Judge.ServerURL = llmServer
	}
	if endpoint := os.Getenv("JUDGE_ENDPOINT"); endpoint != "" {
		cfg.Judge.Endpoint = endpoint
	}
	if openAIKey := os.Getenv("OPENAI_API_KEY"); openAIKey != "" {
		cfg.Judge.APIKey = openAIKey
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		cfg.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		cfg.Redis.Password = redisPassword
	}
}

// Validate checks the values that would make the service misbehave.
func (c *Config) Validate() error {
	e := c.Evaluator
	if e.DeferThreshold < 0 || e.AcceptThreshold > 1 || e.DeferThreshold > e.AcceptThreshold {
		return fmt.Errorf("invalid evaluator thresholds: defer=%.2f accept=%.2f", e.DeferThreshold, e.AcceptThreshold)
	}
	if e.MinDeferTokens < 1 {
		return fmt.Errorf("evaluator.min_defer_tokens must be positive, got %d", e.MinDeferTokens)
	}
	switch c.Judge.Provider {
	case JudgeProviderOllama, JudgeProviderOpenAI, JudgeProviderNone:
	case JudgeProviderHTTP:
		if c.Judge.Endpoint == "" {
			return fmt.Errorf("judge.endpoint is required for the http judge provider")
		}
	default:
		return fmt.Errorf("unsupported judge provider: %q", c.Judge.Provider)
	}
	return nil
}
