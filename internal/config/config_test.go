package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "spectrum_config.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{
		"server": {"address": ":9090"},
		"round_ttl_minutes": 5,
		"allowed_origin": "https://game.example.com",
		"clue_prompt": "Theme: {{theme}} target {{target}}"
	}`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ServerAddress != ":9090" || cfg.RoundTTL != 5*time.Minute {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.AllowedOrigin != "https://game.example.com" || cfg.CluePromptTemplate == "" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `{}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	def := Default()
	if cfg.ServerAddress != def.ServerAddress || cfg.RoundTTL != def.RoundTTL || cfg.AllowedOrigin != def.AllowedOrigin {
		t.Fatalf("empty config should equal defaults: %+v", cfg)
	}
}

func TestLoadConfig_NegativeTTL(t *testing.T) {
	if _, err := LoadConfig(writeConfig(t, `{"round_ttl_minutes": -1}`)); err == nil {
		t.Fatalf("expected error for negative ttl")
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
