// Package config loads settings from an optional YAML file, a .env
// file if present, and environment variables, in that order of
// increasing precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is everything the CLI and server need at startup.
type Config struct {
	APIKey       string   `yaml:"api_key"`
	Model        string   `yaml:"model"`
	BaseURL      string   `yaml:"base_url"`
	RawTransport bool     `yaml:"raw_transport"`
	HTTPAddr     string   `yaml:"http_addr"`
	AccessCode   string   `yaml:"access_code"`
	JWTSecret    string   `yaml:"jwt_secret"`
	CORSOrigins  []string `yaml:"cors_origins"`
}

// Load reads configuration. An explicit path must exist; otherwise the
// default location is consulted and silently skipped when absent.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Model:       "llama-3.3-70b-versatile",
		HTTPAddr:    ":8080",
		CORSOrigins: []string{"http://localhost:3000"},
	}

	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		case explicit || !os.IsNotExist(err):
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg.APIKey = envOr("GROQ_API_KEY", cfg.APIKey)
	cfg.Model = envOr("MCQGEN_MODEL", cfg.Model)
	cfg.BaseURL = envOr("MCQGEN_BASE_URL", cfg.BaseURL)
	cfg.HTTPAddr = envOr("MCQGEN_HTTP_ADDR", cfg.HTTPAddr)
	cfg.AccessCode = envOr("MCQGEN_ACCESS_CODE", cfg.AccessCode)
	cfg.JWTSecret = envOr("MCQGEN_JWT_SECRET", cfg.JWTSecret)
	if v := os.Getenv("MCQGEN_CORS_ORIGINS"); v != "" {
		cfg.CORSOrigins = splitCSV(v)
	}
	return cfg, nil
}

// defaultConfigPath returns ~/.config/mcqgen/config.yaml when it
// exists, otherwise "".
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	p := filepath.Join(home, ".config", "mcqgen", "config.yaml")
	if _, err := os.Stat(p); err != nil {
		return ""
	}
	return p
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
