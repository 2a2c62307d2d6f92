package main

import (
	"bytes"
	"testing"

	"agenda/internal/config"
	"agenda/internal/events"
	"agenda/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
}

func setupCLITestEnv(t *testing.T, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	for _, key := range []string{
		events.EnvYear, events.EnvMonth, events.EnvName, events.EnvDays,
		events.EnvURL, events.EnvCity, events.EnvState, events.EnvType,
		"AGENDA_DB_PATH", "AGENDA_OUTPUT_PATH", "AGENDA_HTML_OUTPUT_PATH",
		"AGENDA_TEMPLATE_DIR", "AGENDA_LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}

	cfg := testsupport.NewConfig(t, opts...)
	cfg.Logging.Level = "error"
	return &cliTestEnv{
		cfg:        cfg,
		configPath: testsupport.WriteConfigFile(t, cfg),
	}
}

func (e *cliTestEnv) seed(t *testing.T) string {
	t.Helper()
	testsupport.WriteDocument(t, e.cfg.Paths.Database, testsupport.SampleDocument())
	return testsupport.ReadFile(t, e.cfg.Paths.Database)
}

func runCLI(t *testing.T, configPath string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
