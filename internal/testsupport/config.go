package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"github.com/srb321/drivewise-reports/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.ReportDir = filepath.Join(base, "reports")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Pipeline.ParseWorkers = 1

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithParseWorkers overrides the pipeline worker count.
func WithParseWorkers(workers int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Pipeline.ParseWorkers = workers
	}
}

// WithWorkbookName overrides the exported workbook file name.
func WithWorkbookName(name string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Export.WorkbookName = name
	}
}

// WriteConfig marshals the config to a TOML file in its own temp directory
// and returns the file path, for tests that exercise the --config flag.
func WriteConfig(t testing.TB, cfg *config.Config) string {
	t.Helper()

	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	path := filepath.Join(t.TempDir(), "drivewise.toml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
