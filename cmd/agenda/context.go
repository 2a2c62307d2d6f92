package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"agenda/internal/calendar"
	"agenda/internal/config"
	"agenda/internal/database"
	"agenda/internal/logging"
)

type globalFlags struct {
	config   string
	database string
	envFile  string
	json     bool
}

type commandContext struct {
	flags     *globalFlags
	sessionID string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configSeen bool
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger

	envOnce sync.Once
	envVals map[string]string
	envErr  error
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{
		flags:     flags,
		sessionID: uuid.NewString(),
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, exists, err := config.Load(strings.TrimSpace(c.flags.config))
		if err != nil {
			c.configErr = fmt.Errorf("load config: %w", err)
			return
		}
		if db := strings.TrimSpace(c.flags.database); db != "" {
			expanded, err := config.ExpandPath(db)
			if err != nil {
				c.configErr = fmt.Errorf("resolve --db: %w", err)
				return
			}
			cfg.Paths.Database = expanded
			if err := cfg.Validate(); err != nil {
				c.configErr = err
				return
			}
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = path
		c.configSeen = exists
	})
	return c.config, c.configErr
}

func (c *commandContext) jsonOutput() bool {
	return c.flags.json
}

// loggerValue builds the session logger once; a logger that cannot be built
// falls back to a no-op so commands still run.
func (c *commandContext) loggerValue() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, _ := c.ensureConfig()
		logger, err := logging.NewFromConfig(cfg, c.sessionID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "logging disabled: %v\n", err)
			logger = logging.NewNop()
		}
		c.logger = logger
	})
	return c.logger
}

func (c *commandContext) store() (*database.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return database.NewStore(cfg.Paths.Database, database.Options{
		Backup:      cfg.Database.Backup,
		LockTimeout: cfg.LockTimeout(),
	}, c.loggerValue()), nil
}

func (c *commandContext) calendarService() (*calendar.Service, error) {
	store, err := c.store()
	if err != nil {
		return nil, err
	}
	return calendar.New(store, c.loggerValue()), nil
}

// envLookup resolves event fields from the --env-file first, then from the
// process environment. The file is never exported into the environment.
func (c *commandContext) envLookup() (func(string) (string, bool), error) {
	c.envOnce.Do(func() {
		path := strings.TrimSpace(c.flags.envFile)
		if path == "" {
			return
		}
		expanded, err := config.ExpandPath(path)
		if err != nil {
			c.envErr = err
			return
		}
		c.envVals, c.envErr = godotenv.Read(expanded)
	})
	if c.envErr != nil {
		return nil, fmt.Errorf("read env file: %w", c.envErr)
	}
	values := c.envVals
	return func(key string) (string, bool) {
		if value, ok := values[key]; ok {
			return value, true
		}
		return os.LookupEnv(key)
	}, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
