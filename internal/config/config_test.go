package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFromEnvironment_Defaults(t *testing.T) {
	cfg, err := FromEnvironment(map[string]string{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Model != "mistral" {
		t.Errorf("Model = %q, want mistral", cfg.Model)
	}
	if cfg.MaxTokens != 0 {
		t.Errorf("MaxTokens = %d, want 0", cfg.MaxTokens)
	}
	if cfg.Temperature != "0.2" {
		t.Errorf("Temperature = %q, want 0.2", cfg.Temperature)
	}
	if cfg.NumCtx != 4096 {
		t.Errorf("NumCtx = %d, want 4096", cfg.NumCtx)
	}
	if cfg.OutputDir != "outputs" {
		t.Errorf("OutputDir = %q, want outputs", cfg.OutputDir)
	}
	if cfg.StateDir != "state" {
		t.Errorf("StateDir = %q, want state", cfg.StateDir)
	}
	if cfg.Cursor != CursorFile {
		t.Errorf("Cursor = %q, want file", cfg.Cursor)
	}
	if cfg.DBEnabled() {
		t.Error("DBEnabled() = true, want false by default")
	}
	args, err := cfg.CommandArgs()
	if err != nil {
		t.Fatalf("CommandArgs: %v", err)
	}
	if strings.Join(args, "|") != "ollama|run" {
		t.Errorf("CommandArgs = %v, want [ollama run]", args)
	}
}

func TestFromEnvironment_Overrides(t *testing.T) {
	cfg, err := FromEnvironment(map[string]string{
		"OLLAMA_MODEL":       "llama3",
		"OLLAMA_MAX_TOKENS":  "512",
		"OLLAMA_TEMPERATURE": "0.7",
		"OUTPUT_DIR":         "/tmp/out",
		"STATE_DIR":          "/tmp/state",
		"TOPICRUN_COMMAND":   `/opt/llm/bin/ollama run --nowordwrap "--format=json"`,
		"TOPICRUN_DB_DRIVER": "SQLite",
		"TOPICRUN_CURSOR":    "db",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Model != "llama3" || cfg.MaxTokens != 512 || cfg.Temperature != "0.7" {
		t.Errorf("model settings = %q %d %q", cfg.Model, cfg.MaxTokens, cfg.Temperature)
	}
	if cfg.DBDriver != "sqlite" {
		t.Errorf("DBDriver = %q, want sqlite (normalized)", cfg.DBDriver)
	}
	if cfg.DBDSN != filepath.Join("/tmp/state", "topicrun.db") {
		t.Errorf("DBDSN = %q, want default under state dir", cfg.DBDSN)
	}
	args, err := cfg.CommandArgs()
	if err != nil {
		t.Fatalf("CommandArgs: %v", err)
	}
	want := []string{"/opt/llm/bin/ollama", "run", "--nowordwrap", "--format=json"}
	if strings.Join(args, "|") != strings.Join(want, "|") {
		t.Errorf("CommandArgs = %v, want %v", args, want)
	}
}

func TestFromEnvironment_MalformedNumber(t *testing.T) {
	_, err := FromEnvironment(map[string]string{"OLLAMA_MAX_TOKENS": "lots"})
	if err == nil {
		t.Fatal("expected error for non-integer OLLAMA_MAX_TOKENS")
	}
	if !strings.Contains(err.Error(), "config: parse") {
		t.Errorf("error = %q", err)
	}
}

func TestFromEnvironment_MalformedTemperature(t *testing.T) {
	_, err := FromEnvironment(map[string]string{"OLLAMA_TEMPERATURE": "warm"})
	if err == nil {
		t.Fatal("expected error for non-float OLLAMA_TEMPERATURE")
	}
	if !strings.Contains(err.Error(), "OLLAMA_TEMPERATURE") {
		t.Errorf("error = %q", err)
	}
}

func TestFromEnvironment_ModelSettingsKeptVerbatim(t *testing.T) {
	cfg, err := FromEnvironment(map[string]string{
		"OLLAMA_TEMPERATURE": "0.20",
		"OLLAMA_MAX_TOKENS":  "-1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Temperature != "0.20" {
		t.Errorf("Temperature = %q, want 0.20 unchanged", cfg.Temperature)
	}
	if cfg.MaxTokens != -1 {
		t.Errorf("MaxTokens = %d, want -1", cfg.MaxTokens)
	}
}

func TestFromEnvironment_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
		want string
	}{
		{"unknown driver", map[string]string{"TOPICRUN_DB_DRIVER": "postgres"}, "TOPICRUN_DB_DRIVER"},
		{"mysql without dsn", map[string]string{"TOPICRUN_DB_DRIVER": "mysql"}, "TOPICRUN_DB_DSN"},
		{"db cursor without driver", map[string]string{"TOPICRUN_CURSOR": "db"}, "TOPICRUN_CURSOR=db"},
		{"unknown cursor", map[string]string{"TOPICRUN_CURSOR": "redis"}, "TOPICRUN_CURSOR"},
		{"bad log level", map[string]string{"TOPICRUN_LOG_LEVEL": "loud"}, "TOPICRUN_LOG_LEVEL"},
		{"unterminated quote", map[string]string{"TOPICRUN_COMMAND": `ollama "run`}, "TOPICRUN_COMMAND"},
		{"empty command", map[string]string{"TOPICRUN_COMMAND": "   "}, "TOPICRUN_COMMAND"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromEnvironment(tt.vars)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestLoad_ReadsDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("TOPICRUN_TEST_ONLY_MODEL=phi3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TOPICRUN_TEST_ONLY_MODEL", "")
	os.Unsetenv("TOPICRUN_TEST_ONLY_MODEL")

	if _, err := Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := os.Getenv("TOPICRUN_TEST_ONLY_MODEL"); got != "phi3" {
		t.Errorf("TOPICRUN_TEST_ONLY_MODEL = %q, want phi3 from .env", got)
	}
}

func TestLoad_MissingDotEnvIsFine(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Fatalf("Load: %v", err)
	}
}
