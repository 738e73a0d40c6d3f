// Package testutil provides helpers for writing loadenv test fixtures
// in isolation.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteINI writes contents to a file named name inside a fresh temp
// directory and returns its path. The directory is cleaned up
// automatically by the testing framework, so tests never leave fixture
// files behind or interfere with real configuration.
func WriteINI(t *testing.T, name, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("failed to write fixture %s: %v", name, err)
	}
	return path
}
