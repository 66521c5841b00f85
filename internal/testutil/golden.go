package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// Golden compares command output against testdata/<name>.golden. Run the
// tests with GOLDEN_UPDATE set to rewrite the files after an intentional
// format change.
func Golden(t *testing.T, name string, got []byte) {
	t.Helper()

	path := filepath.Join("testdata", name+".golden")

	if os.Getenv("GOLDEN_UPDATE") != "" {
		if err := os.MkdirAll("testdata", 0755); err != nil {
			t.Fatalf("creating testdata dir: %v", err)
		}
		if err := os.WriteFile(path, got, 0644); err != nil {
			t.Fatalf("updating %s: %v", path, err)
		}
		return
	}

	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v (set GOLDEN_UPDATE to create it)\ngot:\n%s", path, err, got)
	}

	if !bytes.Equal(got, want) {
		t.Errorf("output does not match %s\nwant:\n%s\ngot:\n%s", path, want, got)
	}
}
