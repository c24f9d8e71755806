package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const defaultModel = "gemini-2.5-flash-image"

type Config struct {
	Document struct {
		Title string `yaml:"title"`
	} `yaml:"document"`
	AI struct {
		Model  string `yaml:"model"`
		APIKey string `yaml:"api_key"`
	} `yaml:"ai"`
	Output struct {
		Dir string `yaml:"dir"`
	} `yaml:"output"`
}

func LoadConfig(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	var cfg Config

	// 2. Load YAML config when present; a missing file falls back to
	// defaults plus environment
	if file, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(file, &cfg); err != nil {
			return nil, err
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	// 3. Override with environment variables if present
	if apiKey := os.Getenv("DOCVIEW_API_KEY"); apiKey != "" {
		cfg.AI.APIKey = apiKey
	}
	if model := os.Getenv("DOCVIEW_MODEL"); model != "" {
		cfg.AI.Model = model
	}

	if cfg.AI.Model == "" {
		cfg.AI.Model = defaultModel
	}
	if cfg.Output.Dir == "" {
		cfg.Output.Dir = "./output"
	}

	return &cfg, nil
}
