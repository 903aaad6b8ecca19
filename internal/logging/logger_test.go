package logging_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/srb321/drivewise-reports/internal/logging"
)

func TestConsoleFormatLiftsComponent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")
	logger, err := logging.New(logging.Options{
		Format:           "console",
		OutputPaths:      []string{path},
		ErrorOutputPaths: []string{path},
	})
	if err != nil {
		t.Fatalf("logging.New: %v", err)
	}

	scoped := logging.NewComponentLogger(logger, "hos")
	scoped.Info("analysis complete", logging.Int("violations", 3), logging.String("driver", "John Smith"))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	line := strings.TrimSpace(string(data))
	if !strings.Contains(line, " INFO hos: analysis complete") {
		t.Fatalf("unexpected console line: %q", line)
	}
	if !strings.Contains(line, "violations=3") {
		t.Fatalf("missing violations attr: %q", line)
	}
	if !strings.Contains(line, `driver="John Smith"`) {
		t.Fatalf("expected quoted driver value: %q", line)
	}
	if strings.Contains(line, "component=") {
		t.Fatalf("component should be lifted out of the attr tail: %q", line)
	}
}

func TestConsoleFormatFlattensGroups(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")
	logger, err := logging.New(logging.Options{
		Format:      "console",
		OutputPaths: []string{path},
	})
	if err != nil {
		t.Fatalf("logging.New: %v", err)
	}

	logger.Info("exported", logging.Group("workbook", logging.String("name", "report.xlsx"), logging.Int("sheets", 9)))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	line := string(data)
	if !strings.Contains(line, "workbook.name=report.xlsx") || !strings.Contains(line, "workbook.sheets=9") {
		t.Fatalf("expected dotted group keys, got %q", line)
	}
}

func TestJSONFormatUsesShortKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")
	logger, err := logging.New(logging.Options{
		Format:      "json",
		OutputPaths: []string{path},
	})
	if err != nil {
		t.Fatalf("logging.New: %v", err)
	}

	logger.Warn("document skipped", logging.String(logging.FieldDocument, "log.txt"))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	var record map[string]any
	if err := json.Unmarshal(data, &record); err != nil {
		t.Fatalf("unmarshal log record: %v (%q)", err, data)
	}
	if record["msg"] != "document skipped" {
		t.Fatalf("msg = %v", record["msg"])
	}
	if record["level"] != "warn" {
		t.Fatalf("level = %v", record["level"])
	}
	if _, ok := record["ts"]; !ok {
		t.Fatal("expected ts key")
	}
	if record[logging.FieldDocument] != "log.txt" {
		t.Fatalf("document = %v", record[logging.FieldDocument])
	}
}

func TestLevelFiltering(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.log")
	logger, err := logging.New(logging.Options{
		Level:       "warn",
		Format:      "console",
		OutputPaths: []string{path},
	})
	if err != nil {
		t.Fatalf("logging.New: %v", err)
	}

	logger.Info("hidden")
	logger.Warn("visible")

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if strings.Contains(string(data), "hidden") {
		t.Fatalf("info record should be filtered: %q", data)
	}
	if !strings.Contains(string(data), "visible") {
		t.Fatalf("warn record missing: %q", data)
	}
}

func TestUnsupportedFormatRejected(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewComponentLoggerNilBase(t *testing.T) {
	logger := logging.NewComponentLogger(nil, "pipeline")
	// Must not panic and must be safe to use.
	logger.Info("noop")
}
