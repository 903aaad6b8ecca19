package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteDocument writes a source document with the given text under dir and
// returns its path, creating parent directories as needed.
func WriteDocument(t testing.TB, dir, name, text string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
