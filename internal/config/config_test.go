package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := loadDefaults()
	if err != nil {
		t.Fatalf("loadDefaults: %v", err)
	}
	if cfg.RefreshInterval == "" {
		t.Error("expected refresh_interval to be set")
	}
	if cfg.Theme != "auto" {
		t.Errorf("expected default theme auto, got %q", cfg.Theme)
	}
	if cfg.GetBatchSize() != 12 {
		t.Errorf("expected default batch size 12, got %d", cfg.GetBatchSize())
	}
}

func TestRefreshDuration(t *testing.T) {
	cfg := &Config{RefreshInterval: "30m"}
	if d := cfg.RefreshDuration(); d.Minutes() != 30 {
		t.Errorf("expected 30m, got %v", d)
	}

	cfg.RefreshInterval = "invalid"
	if d := cfg.RefreshDuration(); d != time.Hour {
		t.Errorf("expected 1h default for invalid interval, got %v", d)
	}

	cfg.RefreshInterval = "-5m"
	if d := cfg.RefreshDuration(); d != time.Hour {
		t.Errorf("expected 1h default for negative interval, got %v", d)
	}
}

func TestProviderDefault(t *testing.T) {
	cfg := &Config{}
	if cfg.Provider() != "gemini" {
		t.Errorf("expected default provider gemini, got %q", cfg.Provider())
	}

	cfg.AI = &AIConfig{Provider: "claude"}
	if cfg.Provider() != "claude" {
		t.Errorf("expected claude, got %q", cfg.Provider())
	}
}

func TestAIKeyFromEnv(t *testing.T) {
	t.Setenv("TECHPULSE_AI_KEY", "env-key")

	cfg := &Config{}
	if cfg.AIKey() != "env-key" {
		t.Errorf("expected env key, got %q", cfg.AIKey())
	}

	cfg.AI = &AIConfig{APIKey: "file-key"}
	if cfg.AIKey() != "file-key" {
		t.Errorf("config key should win over env, got %q", cfg.AIKey())
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")

	content := `refresh_interval: 2h
theme: dark
batch_size: 6
ai:
  provider: openai
`
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.RefreshInterval != "2h" {
		t.Errorf("expected 2h, got %s", cfg.RefreshInterval)
	}
	if cfg.Theme != "dark" {
		t.Errorf("expected dark, got %s", cfg.Theme)
	}
	if cfg.GetBatchSize() != 6 {
		t.Errorf("expected 6, got %d", cfg.GetBatchSize())
	}
	if cfg.Provider() != "openai" {
		t.Errorf("expected openai, got %s", cfg.Provider())
	}
}

func TestLoadFillsMissingFieldsFromDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(cfgPath, []byte("batch_size: 4\n"), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.RefreshDuration() != time.Hour {
		t.Errorf("expected default interval, got %v", cfg.RefreshDuration())
	}
	if cfg.Theme != "auto" {
		t.Errorf("expected default theme, got %q", cfg.Theme)
	}
}

func TestLoadNonexistentFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "sub", "config.yaml")

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme == "" {
		t.Error("expected defaults when config doesn't exist")
	}
}

func TestValidateBadTheme(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	os.WriteFile(cfgPath, []byte("theme: neon\n"), 0o644)

	if _, err := Load(cfgPath); err == nil {
		t.Error("expected error for unknown theme")
	}
}

func TestValidateBadProvider(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	os.WriteFile(cfgPath, []byte("ai:\n  provider: bard\n"), 0o644)

	if _, err := Load(cfgPath); err == nil {
		t.Error("expected error for unknown provider")
	}
}
