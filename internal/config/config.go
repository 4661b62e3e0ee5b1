package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

type rawConfig struct {
	Server *struct {
		Address string `json:"address"`
	} `json:"server"`
	// How long a generated round stays revealable. Zero means default.
	RoundTTLMinutes int `json:"round_ttl_minutes"`
	// Frontend origin allowed by CORS on /api/*.
	AllowedOrigin string `json:"allowed_origin"`
	// Optional prompt template for anchor generation. Use the token
	// {{theme}} where the player's theme will be substituted.
	AnchorsPrompt string `json:"anchors_prompt"`
	// Optional prompt template for clue generation. Tokens: {{theme}},
	// {{left}}, {{right}}, {{target}}.
	CluePrompt string `json:"clue_prompt"`
}

// LoadedConfig contains the server address, round TTL and optional prompt
// templates.
type LoadedConfig struct {
	ServerAddress         string
	RoundTTL              time.Duration
	AllowedOrigin         string
	AnchorsPromptTemplate string
	CluePromptTemplate    string
}

// Default returns the configuration used when no config file is present:
// bind :8080, 10 minute round TTL, local Vite dev server as the allowed
// origin.
func Default() *LoadedConfig {
	return &LoadedConfig{
		ServerAddress: ":8080",
		RoundTTL:      10 * time.Minute,
		AllowedOrigin: "http://localhost:5173",
	}
}

// LoadConfig reads the configuration file at path. Every key is optional;
// missing keys fall back to the defaults from Default.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg := Default()
	if rc.Server != nil && rc.Server.Address != "" {
		cfg.ServerAddress = rc.Server.Address
	}
	if rc.RoundTTLMinutes < 0 {
		return nil, fmt.Errorf("config file %s: round_ttl_minutes must not be negative", path)
	}
	if rc.RoundTTLMinutes > 0 {
		cfg.RoundTTL = time.Duration(rc.RoundTTLMinutes) * time.Minute
	}
	if rc.AllowedOrigin != "" {
		cfg.AllowedOrigin = rc.AllowedOrigin
	}
	cfg.AnchorsPromptTemplate = strings.TrimSpace(rc.AnchorsPrompt)
	cfg.CluePromptTemplate = strings.TrimSpace(rc.CluePrompt)
	return cfg, nil
}
