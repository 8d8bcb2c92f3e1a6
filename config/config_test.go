package config

import (
	"os"
	"testing"
	"time"

	"github.com/spf13/viper"
)

// chdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	chdir(t, t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTPServer.Port != 5000 {
		t.Errorf("expected port 5000, got %d", cfg.HTTPServer.Port)
	}
	if cfg.Assistant.Name != "JARVIS" || cfg.Assistant.Version != "1.0.0" {
		t.Errorf("unexpected identity %+v", cfg.Assistant)
	}
	if cfg.Telemetry.CPUSampleInterval != time.Second {
		t.Errorf("expected 1s sample interval, got %s", cfg.Telemetry.CPUSampleInterval)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "*" {
		t.Errorf("unexpected origins %v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	viper.Reset()
	chdir(t, t.TempDir())
	t.Setenv("ASSISTANT_NAME", "FRIDAY")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("TELEGRAM_BOT_TOKEN", "tok")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Assistant.Name != "FRIDAY" {
		t.Errorf("expected FRIDAY, got %s", cfg.Assistant.Name)
	}
	if len(cfg.CORS.AllowedOrigins) != 2 || cfg.CORS.AllowedOrigins[1] != "http://b.test" {
		t.Errorf("unexpected origins %v", cfg.CORS.AllowedOrigins)
	}
	if cfg.Telegram.BotToken != "tok" {
		t.Errorf("expected telegram token from env, got %q", cfg.Telegram.BotToken)
	}
}

func TestValidate(t *testing.T) {
	base := Config{
		HTTPServer: HTTPServerConfig{Port: 5000},
		Assistant:  AssistantConfig{Name: "JARVIS", Version: "1.0.0"},
	}
	if err := validate(&base); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	noName := base
	noName.Assistant.Name = ""
	if validate(&noName) == nil {
		t.Error("expected error for empty name")
	}

	badPort := base
	badPort.HTTPServer.Port = 70000
	if validate(&badPort) == nil {
		t.Error("expected error for bad port")
	}

	negRate := base
	negRate.RateLimit.PerMin = -1
	if validate(&negRate) == nil {
		t.Error("expected error for negative rate limit")
	}
}
