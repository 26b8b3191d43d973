package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
	"todo-manager/internal/logging"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "LOG_LEVEL", "CORS_ORIGINS", "GEMINI_API_KEY", "GEMINI_MODEL"} {
		t.Setenv(k, "")
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "todo.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config err=%v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() err=%v, want nil", err)
	}
	if cfg.HTTPAddr != ":5000" {
		t.Fatalf("HTTPAddr=%q, want %q", cfg.HTTPAddr, ":5000")
	}
	if cfg.Gemini.Model != "gemini-1.5-flash" {
		t.Fatalf("Gemini.Model=%q, want gemini-1.5-flash", cfg.Gemini.Model)
	}
	if cfg.Gemini.APIKey != "" {
		t.Fatalf("Gemini.APIKey=%q, want empty", cfg.Gemini.APIKey)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Fatalf("CORSOrigins=%v, want [*]", cfg.CORSOrigins)
	}
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)

	path := writeFile(t, `
http_addr = ":9090"
shutdown_timeout = "3s"
log_level = "debug"
cors_origins = ["http://localhost:5173"]

[gemini]
api_key = "file-key"
model = "gemini-pro"
max_tokens = 256
timeout = "5s"

[assistant]
workers = 2
queue_size = 8
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() err=%v, want nil", err)
	}

	if cfg.HTTPAddr != ":9090" {
		t.Fatalf("HTTPAddr=%q, want :9090", cfg.HTTPAddr)
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Fatalf("ShutdownTimeout=%v, want 3s", cfg.ShutdownTimeout)
	}
	if cfg.LogLevel != logging.LevelDebug {
		t.Fatalf("LogLevel=%q, want DEBUG", cfg.LogLevel)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "http://localhost:5173" {
		t.Fatalf("CORSOrigins=%v", cfg.CORSOrigins)
	}
	if cfg.Gemini.APIKey != "file-key" || cfg.Gemini.Model != "gemini-pro" || cfg.Gemini.MaxTokens != 256 {
		t.Fatalf("Gemini=%+v", cfg.Gemini)
	}
	if cfg.Gemini.Timeout != 5*time.Second {
		t.Fatalf("Gemini.Timeout=%v, want 5s", cfg.Gemini.Timeout)
	}
	if cfg.Assistant.Workers != 2 || cfg.Assistant.QueueSize != 8 {
		t.Fatalf("Assistant=%+v", cfg.Assistant)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "7000")
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test")

	path := writeFile(t, `
http_addr = ":9090"

[gemini]
api_key = "file-key"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() err=%v, want nil", err)
	}
	if cfg.HTTPAddr != ":7000" {
		t.Fatalf("HTTPAddr=%q, want :7000", cfg.HTTPAddr)
	}
	if cfg.Gemini.APIKey != "env-key" {
		t.Fatalf("Gemini.APIKey=%q, want env-key", cfg.Gemini.APIKey)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "http://b.test" {
		t.Fatalf("CORSOrigins=%v", cfg.CORSOrigins)
	}
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	clearEnv(t)
	t.Setenv("LOG_LEVEL", "loud")

	if _, err := Load(""); err == nil {
		t.Fatalf("Load() err=nil, want error")
	}
}

func TestLoad_EmptyCORSOrigins(t *testing.T) {
	clearEnv(t)
	t.Setenv("CORS_ORIGINS", " , ")

	_, err := Load("")
	if err == nil || !strings.Contains(err.Error(), "cors_origins") {
		t.Fatalf("Load() err=%v, want cors_origins error", err)
	}

	cfg := New()
	cfg.CORSOrigins = nil
	if err := cfg.Validate(); err == nil {
		t.Fatalf("Validate() err=nil, want cors_origins error")
	}
}

func TestLoad_BadDuration(t *testing.T) {
	clearEnv(t)

	path := writeFile(t, `shutdown_timeout = "soon"`)
	if _, err := Load(path); err == nil {
		t.Fatalf("Load() err=nil, want error")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)

	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatalf("Load() err=nil, want error")
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := New()
	cfg.HTTPAddr = ""
	cfg.Assistant.Workers = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatalf("Validate() err=nil, want error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "http_addr") || !strings.Contains(msg, "assistant.workers") {
		t.Fatalf("Validate() err=%q, want both problems reported", msg)
	}
}
