package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/srb321/drivewise-reports/internal/dutylog"
	"github.com/srb321/drivewise-reports/internal/extraction"
	"github.com/srb321/drivewise-reports/internal/hos"
	"github.com/srb321/drivewise-reports/internal/logging"
	"github.com/srb321/drivewise-reports/internal/logparse"
)

// DocumentError records one document that could not be turned into a parsed
// log. The batch continues without it.
type DocumentError struct {
	Source string
	Err    error
}

func (e DocumentError) Error() string {
	return fmt.Sprintf("%s: %v", e.Source, e.Err)
}

func (e DocumentError) Unwrap() error {
	return e.Err
}

// Result pairs the analysis report with the documents that failed
// extraction. Failures keep input order.
type Result struct {
	Report   hos.AnalysisReport
	Failures []DocumentError
}

// Pipeline runs the extract-parse-analyze flow over a batch of documents.
type Pipeline struct {
	extractor extraction.Extractor
	parser    *logparse.Parser
	engine    *hos.Engine
	logger    *slog.Logger
	workers   int
}

// New assembles a pipeline. A nil extractor falls back to the default
// registry, nil parser and engine to their defaults, and a nil logger
// disables diagnostics. workers <= 0 means one worker per CPU.
func New(extractor extraction.Extractor, parser *logparse.Parser, engine *hos.Engine, workers int, logger *slog.Logger) *Pipeline {
	if extractor == nil {
		extractor = extraction.NewRegistry()
	}
	if parser == nil {
		parser = logparse.New(logger)
	}
	if engine == nil {
		engine = hos.New(hos.DefaultRuleset(), nil, logger)
	}
	return &Pipeline{
		extractor: extractor,
		parser:    parser,
		engine:    engine,
		logger:    logging.NewComponentLogger(logger, "pipeline"),
		workers:   workers,
	}
}

// Run extracts and parses every path, then analyzes the parsed logs as one
// batch. Documents that fail extraction are reported in Result.Failures and
// excluded; the only error Run itself returns is context cancellation.
func (p *Pipeline) Run(ctx context.Context, paths []string) (Result, error) {
	type slot struct {
		log    dutylog.ParsedLog
		err    error
		parsed bool
	}
	slots := make([]slot, len(paths))

	started := time.Now()
	workers := p.workerCount(len(paths))
	p.logger.Debug("starting batch",
		logging.Int("documents", len(paths)),
		logging.Int("workers", workers))

	jobs := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				doc, err := p.extractor.Extract(ctx, paths[i])
				if err != nil {
					slots[i] = slot{err: err}
					continue
				}
				slots[i] = slot{log: p.parser.Parse(doc.Name, doc.Text), parsed: true}
			}
		}()
	}

feed:
	for i := range paths {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	logs := make([]dutylog.ParsedLog, 0, len(paths))
	var failures []DocumentError
	for i, s := range slots {
		switch {
		case s.parsed:
			logs = append(logs, s.log)
		case s.err != nil:
			source := filepath.Base(paths[i])
			failures = append(failures, DocumentError{Source: source, Err: s.err})
			p.logger.Warn("document skipped",
				logging.String(logging.FieldDocument, source),
				logging.Error(s.err))
		}
	}

	report := p.engine.Analyze(logs)
	p.logger.Info("batch analyzed",
		logging.Int("documents", len(paths)),
		logging.Int("parsed", len(logs)),
		logging.Int("skipped", len(failures)),
		logging.Int("violations", report.TotalViolations),
		logging.Duration("elapsed", time.Since(started)))
	return Result{Report: report, Failures: failures}, nil
}

func (p *Pipeline) workerCount(jobs int) int {
	workers := p.workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > jobs {
		workers = jobs
	}
	return workers
}
