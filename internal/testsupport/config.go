package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"agenda/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp paths per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.Database = filepath.Join(base, "db", "database.json")
	cfgVal.Paths.Output = filepath.Join(base, "README.md")
	cfgVal.Database.LockTimeoutSeconds = 1

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithBackup enables database backups on the test config.
func WithBackup() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Database.Backup = true
	}
}

// WithHTMLOutput sets an HTML output path inside the test directory.
func WithHTMLOutput() ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Paths.HTMLOutput = filepath.Join(b.baseDir, "index.html")
	}
}

// WithTemplate writes content as events.md.tmpl in a fresh template
// directory and points the config at it.
func WithTemplate(content string) ConfigOption {
	return func(b *configBuilder) {
		dir := filepath.Join(b.baseDir, "templates")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			b.t.Fatalf("mkdir template dir: %v", err)
		}
		if err := os.WriteFile(filepath.Join(dir, "events.md.tmpl"), []byte(content), 0o644); err != nil {
			b.t.Fatalf("write template: %v", err)
		}
		b.cfg.Paths.TemplateDir = dir
	}
}

// BaseDir returns the root temp directory backing the generated config.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(filepath.Dir(cfg.Paths.Database))
}

// WriteConfigFile serializes cfg as TOML next to its database and returns
// the file path, for commands that take --config.
func WriteConfigFile(t testing.TB, cfg *config.Config) string {
	t.Helper()

	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	path := filepath.Join(BaseDir(cfg), "agenda.toml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
