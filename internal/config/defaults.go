package config

const (
	defaultConfigPath         = "~/.config/agenda/config.toml"
	projectConfigName         = "agenda.toml"
	defaultDatabasePath       = "db/database.json"
	defaultOutputPath         = "README.md"
	defaultLockTimeoutSeconds = 10
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			Database: defaultDatabasePath,
			Output:   defaultOutputPath,
		},
		Database: Database{
			Backup:             false,
			LockTimeoutSeconds: defaultLockTimeoutSeconds,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
