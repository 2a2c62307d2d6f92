package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"

	"agenda/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	workDir := t.TempDir()
	t.Chdir(workDir)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	wantResolved := filepath.Join(tempHome, ".config", "agenda", "config.toml")
	if resolved != wantResolved {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, wantResolved)
	}

	wantDB := filepath.Join(workDir, "db", "database.json")
	if cfg.Paths.Database != wantDB {
		t.Fatalf("unexpected database path: got %q want %q", cfg.Paths.Database, wantDB)
	}
	if cfg.Paths.Output != filepath.Join(workDir, "README.md") {
		t.Fatalf("unexpected output path: %q", cfg.Paths.Output)
	}
	if cfg.Paths.TemplateDir != "" {
		t.Fatalf("expected embedded template by default, got %q", cfg.Paths.TemplateDir)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if cfg.LockTimeout() != 10*time.Second {
		t.Fatalf("unexpected lock timeout: %s", cfg.LockTimeout())
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	if info, err := os.Stat(filepath.Dir(wantDB)); err != nil || !info.IsDir() {
		t.Fatalf("expected database directory to exist: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "agenda.toml")

	type payload struct {
		Paths struct {
			Database string `toml:"database"`
			Output   string `toml:"output"`
		} `toml:"paths"`
		Database struct {
			Backup             bool `toml:"backup"`
			LockTimeoutSeconds int  `toml:"lock_timeout_seconds"`
		} `toml:"database"`
		Logging struct {
			Format string `toml:"format"`
			Level  string `toml:"level"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Paths.Database = filepath.Join(tempDir, "data", "events.json")
	custom.Paths.Output = filepath.Join(tempDir, "out", "EVENTS.md")
	custom.Database.Backup = true
	custom.Database.LockTimeoutSeconds = 3
	custom.Logging.Format = "JSON"
	custom.Logging.Level = "Warning"
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Paths.Database != custom.Paths.Database {
		t.Fatalf("unexpected database path: got %q want %q", cfg.Paths.Database, custom.Paths.Database)
	}
	if !cfg.Database.Backup {
		t.Fatal("expected backup enabled from file")
	}
	if cfg.LockTimeout() != 3*time.Second {
		t.Fatalf("unexpected lock timeout: %s", cfg.LockTimeout())
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("expected json format, got %q", cfg.Logging.Format)
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("expected warning to normalize to warn, got %q", cfg.Logging.Level)
	}
}

func TestEnvOverridesConfigFilePaths(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "agenda.toml")
	content := "[paths]\ndatabase = \"file.json\"\n"
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	envDB := filepath.Join(tempDir, "env.json")
	t.Setenv("AGENDA_DB_PATH", envDB)
	t.Setenv("AGENDA_LOG_LEVEL", "debug")

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Paths.Database != envDB {
		t.Errorf("expected database from env, got %q", cfg.Paths.Database)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level from env, got %q", cfg.Logging.Level)
	}
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "agenda.toml")
	if err := os.WriteFile(configPath, []byte("[paths\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(configPath); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(contents), "AGENDA_DB_PATH") {
		t.Fatalf("sample config missing env documentation: %s", contents)
	}

	var cfg config.Config
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	if cfg.Paths.Database != "db/database.json" {
		t.Fatalf("unexpected sample database path %q", cfg.Paths.Database)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "logging.format") {
		t.Fatalf("expected logging.format error, got %v", err)
	}

	cfg = config.Default()
	cfg.Paths.Database = ""
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "paths.database") {
		t.Fatalf("expected paths.database error, got %v", err)
	}

	cfg = config.Default()
	cfg.Database.LockTimeoutSeconds = 3600
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "database.lock_timeout_seconds") {
		t.Fatalf("expected lock timeout error, got %v", err)
	}

	cfg = config.Default()
	cfg.Paths.Output = cfg.Paths.Database
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when output overwrites database")
	}

	cfg = config.Default()
	cfg.Paths.TemplateDir = filepath.Join(t.TempDir(), "missing")
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing template directory")
	}
}
