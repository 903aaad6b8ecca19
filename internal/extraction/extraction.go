package extraction

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

var (
	// ErrUnsupportedFormat marks documents whose extension no registered
	// extractor claims.
	ErrUnsupportedFormat = errors.New("unsupported document format")
	// ErrNotText marks files that exist but do not hold valid UTF-8 text.
	ErrNotText = errors.New("document is not utf-8 text")
)

// Document is the extracted text of one source file. Name is the bare file
// name used for report traceability; Text preserves the file's line order.
type Document struct {
	Name string
	Path string
	Text string
}

// Extractor recovers the text of a single document. Implementations must be
// safe for concurrent use; the pipeline calls Extract from multiple workers.
type Extractor interface {
	Extract(ctx context.Context, path string) (Document, error)
}

// PlainText extracts UTF-8 text files byte-for-byte.
type PlainText struct{}

func (PlainText) Extract(ctx context.Context, path string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read document: %w", err)
	}
	if !utf8.Valid(data) {
		return Document{}, fmt.Errorf("%w: %s", ErrNotText, filepath.Base(path))
	}
	return Document{Name: filepath.Base(path), Path: path, Text: string(data)}, nil
}

// Registry dispatches extraction by lowercased file extension.
type Registry struct {
	byExt map[string]Extractor
}

// NewRegistry returns a registry preloaded with the plain-text extractor for
// .txt, .log, and .text files.
func NewRegistry() *Registry {
	registry := &Registry{byExt: make(map[string]Extractor)}
	plain := PlainText{}
	for _, ext := range []string{".txt", ".log", ".text"} {
		registry.Register(ext, plain)
	}
	return registry
}

// Register claims an extension for the given extractor, replacing any
// previous claim. The extension match is case-insensitive and the leading
// dot is optional.
func (r *Registry) Register(ext string, extractor Extractor) {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	r.byExt[ext] = extractor
}

// Supports reports whether some registered extractor claims the path.
func (r *Registry) Supports(path string) bool {
	_, ok := r.byExt[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Extract routes the path to the extractor registered for its extension.
func (r *Registry) Extract(ctx context.Context, path string) (Document, error) {
	extractor, ok := r.byExt[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return Document{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(path))
	}
	return extractor.Extract(ctx, path)
}
