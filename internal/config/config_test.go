package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENVIRONMENT", "CORS_ORIGINS", "SEED_FILE", "LOG_DIR", "LOG_MAX_FILES", "DEBUG"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8080" {
		t.Errorf("Port = %s, want 8080", cfg.Port)
	}
	if cfg.Environment != "dev" {
		t.Errorf("Environment = %s, want dev", cfg.Environment)
	}
	if cfg.LogMaxFiles != 10 {
		t.Errorf("LogMaxFiles = %d, want 10", cfg.LogMaxFiles)
	}
	if !cfg.Debug {
		t.Error("Debug = false, want true in dev")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ENVIRONMENT", "prod")
	t.Setenv("DEBUG", "")
	t.Setenv("LOG_MAX_FILES", "not-a-number")
	t.Setenv("SEED_FILE", "fixture.yaml")

	cfg := Load()
	if cfg.Port != "9000" {
		t.Errorf("Port = %s, want 9000", cfg.Port)
	}
	if cfg.Debug {
		t.Error("Debug = true, want false in prod")
	}
	if cfg.LogMaxFiles != 10 {
		t.Errorf("LogMaxFiles = %d, want fallback 10", cfg.LogMaxFiles)
	}
	if cfg.SeedFile != "fixture.yaml" {
		t.Errorf("SeedFile = %s, want fixture.yaml", cfg.SeedFile)
	}
}

func TestCleanupOldLogs(t *testing.T) {
	dir := t.TempDir()
	names := []string{
		"server-2026-01-01T00-00-00.000.log",
		"server-2026-01-02T00-00-00.000.log",
		"server-2026-01-03T00-00-00.000.log",
		"unrelated.txt",
	}
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0644); err != nil {
			t.Fatal(err)
		}
	}

	if err := cleanupOldLogs(dir, 2); err != nil {
		t.Fatalf("cleanupOldLogs: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, names[0])); !os.IsNotExist(err) {
		t.Error("oldest log was not removed")
	}
	for _, name := range names[1:] {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s removed unexpectedly", name)
		}
	}
}

func TestNewLogger_WithLogDir(t *testing.T) {
	cfg := &Config{Environment: "test", LogDir: t.TempDir(), LogMaxFiles: 3}

	logger, closer, err := NewLogger(cfg)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	logger.Info("hello")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	files, _ := filepath.Glob(filepath.Join(cfg.LogDir, "server-*.log"))
	if len(files) != 1 {
		t.Fatalf("got %d log files, want 1", len(files))
	}
	data, _ := os.ReadFile(files[0])
	if len(data) == 0 {
		t.Error("log file is empty")
	}
}
