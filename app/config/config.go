package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/samber/oops"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Log    Log    `yaml:"log"`
	Server Server `yaml:"server"`
	LLM    LLM    `yaml:"llm"`
	Fetch  Fetch  `yaml:"fetch"`
}

type Server struct {
	// Address to bind the HTTP server to
	Addr string `yaml:"addr" example:"127.0.0.1:8000"`
}

type LLM struct {
	// LLM backend, either "ollama" or "openai"
	Provider string `yaml:"provider" example:"ollama" validate:"required,oneof=ollama openai"`
	// Base url of the backend (Ollama server url or an OpenAI-compatible endpoint)
	BaseURL string `yaml:"base_url" example:"http://localhost:11434"`
	// API token, required for the openai provider
	Token string `yaml:"token" example:"sk-proj-abc123456789DEF789ghi012JKL345mno678PQR901stu234VWX"`
	// Model name
	Model string `yaml:"model" example:"phi4-mini:latest" validate:"required"`
	// Sampling temperature
	Temperature float64 `yaml:"temperature" example:"0.1"`
}

type Fetch struct {
	// User-Agent header sent when fetching pages
	UserAgent string `yaml:"user_agent" example:"websum/1.0"`
	// Page fetch timeout in seconds
	TimeoutSeconds int `yaml:"timeout_seconds" example:"30"`
}

type Log struct {
	// Telegram logging config
	Telegram TelegramLog `yaml:"telegram"`
}

type TelegramLog struct {
	// Chat bot token, obtain it via BotFather
	Token string `yaml:"token" example:"1234567890:ABCdefGHIjklMNopQRstUVwxyZ-123456789"`
	// Chat ID to send messages to
	ChatID string `yaml:"chat_id" example:"1001234567890"`
}

func Load() (*Config, error) {
	var result Config

	data, err := os.ReadFile("config.yaml")
	if err != nil {
		return nil, oops.Errorf("failed to read config file: %w", err)
	}

	if err = yaml.Unmarshal(data, &result); err != nil {
		return nil, oops.Errorf("failed to parse YAML config: %w", err)
	}

	if result.Server.Addr == "" {
		result.Server.Addr = "127.0.0.1:8000"
	}
	if result.LLM.Provider == "" {
		result.LLM.Provider = "ollama"
	}
	if result.LLM.Model == "" {
		result.LLM.Model = "phi4-mini:latest"
	}
	if result.LLM.Temperature == 0 {
		result.LLM.Temperature = 0.1
	}
	if result.Fetch.UserAgent == "" {
		result.Fetch.UserAgent = os.Getenv("USER_AGENT")
	}
	if result.Fetch.TimeoutSeconds == 0 {
		result.Fetch.TimeoutSeconds = 30
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(result); err != nil {
		return nil, oops.Errorf("failed to validate config: %w", err)
	}

	return &result, nil
}
