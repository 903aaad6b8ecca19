package pipeline_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/srb321/drivewise-reports/internal/extraction"
	"github.com/srb321/drivewise-reports/internal/hos"
	"github.com/srb321/drivewise-reports/internal/pipeline"
)

func writeDocument(t *testing.T, dir, name, text string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func newTestPipeline(workers int) *pipeline.Pipeline {
	engine := hos.New(hos.DefaultRuleset(), hos.NewSequenceSource("v"), nil)
	return pipeline.New(nil, nil, engine, workers, nil)
}

func TestRunKeepsInputOrder(t *testing.T) {
	dir := t.TempDir()
	// Dateless logs sort stably, so report order mirrors input order.
	paths := []string{
		writeDocument(t, dir, "third.txt", "Driver: Carol Chavez\n08:00 driving local run\n"),
		writeDocument(t, dir, "first.txt", "Driver: Alice Anders\n08:00 driving local run\n"),
		writeDocument(t, dir, "second.txt", "Driver: Bob Brown\n08:00 driving local run\n"),
	}

	result, err := newTestPipeline(2).Run(context.Background(), paths)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(result.Failures) != 0 {
		t.Fatalf("unexpected failures: %v", result.Failures)
	}

	wantDrivers := []string{"Carol Chavez", "Alice Anders", "Bob Brown"}
	if len(result.Report.ParsedLogs) != len(wantDrivers) {
		t.Fatalf("expected %d logs, got %d", len(wantDrivers), len(result.Report.ParsedLogs))
	}
	for i, want := range wantDrivers {
		if got := result.Report.ParsedLogs[i].DriverName; got != want {
			t.Fatalf("log %d driver = %q, want %q", i, got, want)
		}
	}
	if result.Report.ParsedLogs[0].SourceName != "third.txt" {
		t.Fatalf("source name = %q, want third.txt", result.Report.ParsedLogs[0].SourceName)
	}
}

func TestRunExcludesFailingDocuments(t *testing.T) {
	dir := t.TempDir()
	good := writeDocument(t, dir, "good.txt", "Driver: Alice Anders\n08:00 driving local run\n")
	unsupported := writeDocument(t, dir, "scan.pdf", "binary-ish")
	missing := filepath.Join(dir, "missing.txt")

	result, err := newTestPipeline(4).Run(context.Background(), []string{good, unsupported, missing})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if len(result.Report.ParsedLogs) != 1 {
		t.Fatalf("expected one parsed log, got %d", len(result.Report.ParsedLogs))
	}
	if len(result.Failures) != 2 {
		t.Fatalf("expected two failures, got %v", result.Failures)
	}
	if result.Failures[0].Source != "scan.pdf" || !errors.Is(result.Failures[0].Err, extraction.ErrUnsupportedFormat) {
		t.Fatalf("unexpected first failure: %+v", result.Failures[0])
	}
	if result.Failures[1].Source != "missing.txt" {
		t.Fatalf("unexpected second failure: %+v", result.Failures[1])
	}
}

func TestRunEmptyBatch(t *testing.T) {
	result, err := newTestPipeline(0).Run(context.Background(), nil)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if result.Report.TotalViolations != 0 || len(result.Report.ParsedLogs) != 0 {
		t.Fatalf("expected empty report, got %+v", result.Report)
	}
	if len(result.Failures) != 0 {
		t.Fatalf("expected no failures, got %v", result.Failures)
	}
}

func TestRunCanceledContext(t *testing.T) {
	dir := t.TempDir()
	path := writeDocument(t, dir, "log.txt", "08:00 driving\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestPipeline(1).Run(ctx, []string{path})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRunIndependentOfWorkerCount(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	docs := []struct {
		name, text string
	}{
		{"a.txt", "Driver: Alice Anders\nDate: 3/5/2024\n07:00 Off Duty 15 min odometer 45100\n08:00 Off Duty odometer 45230\n"},
		{"b.txt", "Driver: Bob Brown\nDate: 3/6/2024\n06:00 Driving 11:30 across Texas\n"},
		{"c.txt", "Driver: Carol Chavez\nDate: 3/4/2024\n09:00 On Duty | Notes: trailer swap\n"},
	}
	for _, doc := range docs {
		paths = append(paths, writeDocument(t, dir, doc.name, doc.text))
	}

	serial, err := newTestPipeline(1).Run(context.Background(), paths)
	if err != nil {
		t.Fatalf("serial run: %v", err)
	}
	parallel, err := newTestPipeline(4).Run(context.Background(), paths)
	if err != nil {
		t.Fatalf("parallel run: %v", err)
	}

	if !reflect.DeepEqual(serial.Report.Violations, parallel.Report.Violations) {
		t.Fatalf("violations differ between worker counts:\nserial:   %+v\nparallel: %+v",
			serial.Report.Violations, parallel.Report.Violations)
	}
	if !reflect.DeepEqual(serial.Report.ParsedLogs, parallel.Report.ParsedLogs) {
		t.Fatal("parsed logs differ between worker counts")
	}
	if serial.Report.Summary != parallel.Report.Summary {
		t.Fatalf("summaries differ: %+v vs %+v", serial.Report.Summary, parallel.Report.Summary)
	}
}
