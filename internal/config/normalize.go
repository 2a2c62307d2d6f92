package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.applyEnv()
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeDatabase()
	c.normalizeLogging()
	return nil
}

// applyEnv lets automation override file values without editing the config.
func (c *Config) applyEnv() {
	overrides := []struct {
		key    string
		target *string
	}{
		{"AGENDA_DB_PATH", &c.Paths.Database},
		{"AGENDA_OUTPUT_PATH", &c.Paths.Output},
		{"AGENDA_HTML_OUTPUT_PATH", &c.Paths.HTMLOutput},
		{"AGENDA_TEMPLATE_DIR", &c.Paths.TemplateDir},
		{"AGENDA_LOG_LEVEL", &c.Logging.Level},
	}
	for _, o := range overrides {
		if value, ok := os.LookupEnv(o.key); ok && strings.TrimSpace(value) != "" {
			*o.target = strings.TrimSpace(value)
		}
	}
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.Database) == "" {
		c.Paths.Database = defaultDatabasePath
	}
	if c.Paths.Database, err = expandPath(strings.TrimSpace(c.Paths.Database)); err != nil {
		return fmt.Errorf("paths.database: %w", err)
	}
	if strings.TrimSpace(c.Paths.Output) == "" {
		c.Paths.Output = defaultOutputPath
	}
	if c.Paths.Output, err = expandPath(strings.TrimSpace(c.Paths.Output)); err != nil {
		return fmt.Errorf("paths.output: %w", err)
	}
	if c.Paths.HTMLOutput, err = expandPath(strings.TrimSpace(c.Paths.HTMLOutput)); err != nil {
		return fmt.Errorf("paths.html_output: %w", err)
	}
	if c.Paths.TemplateDir, err = expandPath(strings.TrimSpace(c.Paths.TemplateDir)); err != nil {
		return fmt.Errorf("paths.template_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeDatabase() {
	if c.Database.LockTimeoutSeconds < 0 {
		c.Database.LockTimeoutSeconds = 0
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	switch c.Logging.Level {
	case "":
		c.Logging.Level = defaultLogLevel
	case "warning":
		c.Logging.Level = "warn"
	}
}
