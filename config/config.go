package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig      `yaml:"server"`
	Minio    MinioConfig       `yaml:"minio"`
	Extract  ExtractConfig     `yaml:"extract"`
	LLM      LLMConfig         `yaml:"llm"`
	Log      LogConfig         `yaml:"log"`
	Store    StoreConfig       `yaml:"store"`
	Defaults map[string]string `yaml:"defaults"` // base contract variable defaults
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type MinioConfig struct {
	Endpoint   string `yaml:"endpoint"`
	AccessKey  string `yaml:"access_key"`
	SecretKey  string `yaml:"secret_key"`
	Bucket     string `yaml:"bucket"`
	UseSSL     bool   `yaml:"use_ssl"`
	ExpireDays int    `yaml:"expire_days"`
}

type ExtractConfig struct {
	APIURL   string `yaml:"api_url"`
	APIToken string `yaml:"api_token"`
}

type LLMConfig struct {
	APIURL   string `yaml:"api_url"`
	APIKey   string `yaml:"api_key"`
	Model    string `yaml:"model"`
	Disabled bool   `yaml:"disabled"` // skip drafting calls, assemble from clause references directly
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type StoreConfig struct {
	MaxContracts int `yaml:"max_contracts"`
}

var GlobalConfig *Config

func Load(path string) (*Config, error) {
	// .env is optional, used for local development keys
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// Set defaults
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Minio.ExpireDays == 0 {
		cfg.Minio.ExpireDays = 7
	}
	if cfg.LLM.Model == "" {
		cfg.LLM.Model = "llama-3.1-8b-instant"
	}
	if cfg.LLM.APIURL == "" {
		cfg.LLM.APIURL = "https://api.groq.com/openai/v1"
	}
	if cfg.LLM.APIKey == "" {
		cfg.LLM.APIKey = os.Getenv("LLM_API_KEY")
	}
	if cfg.Extract.APIToken == "" {
		cfg.Extract.APIToken = os.Getenv("EXTRACT_API_TOKEN")
	}

	GlobalConfig = &cfg
	return &cfg, nil
}
