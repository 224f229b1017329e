package lexical

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Oreo-PopTart/CPSC-323-Project-1/internal/lexical/scanner"
	"github.com/Oreo-PopTart/CPSC-323-Project-1/internal/lexical/testutil"
)

func TestScanSource(t *testing.T) {
	result := ScanSource([]byte("int x; /* gone */"))

	if len(result.Tokens) != 3 {
		t.Fatalf("Expected 3 tokens, got %d", len(result.Tokens))
	}

	if result.Tokens[0].ID != scanner.Keyword {
		t.Errorf("Expected first token KEYWORD, got %v", result.Tokens[0].ID)
	}

	if string(result.Cleaned) != "int x; " {
		t.Errorf("Expected cleaned text %q, got %q", "int x; ", result.Cleaned)
	}
}

func TestScanFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.cpp")

	source := "#include <iostream>\nint main() { return 0; }\n"
	testutil.RequireNoError(t, os.WriteFile(path, []byte(source), 0o644))

	result, err := ScanFile(path)
	testutil.RequireNoError(t, err)

	if len(result.Tokens) == 0 {
		t.Fatal("Expected a non-empty token sequence")
	}

	if string(result.Tokens[0].Value) != "#include" {
		t.Errorf("Expected first token '#include', got %q", result.Tokens[0].Value)
	}
}

func TestScanFile_Missing(t *testing.T) {
	_, err := ScanFile(filepath.Join(t.TempDir(), "no-such-file.cpp"))

	if err == nil {
		t.Fatal("Expected an error for a missing file, got nil")
	}

	if !testutil.ContainsSubstring(err.Error(), "could not be opened") {
		t.Errorf("Expected 'could not be opened' error, got: %v", err)
	}
}

func TestScanProject(t *testing.T) {
	dir := t.TempDir()

	files := map[string]string{
		"a.cpp":        "int a;",
		"b.h":          "float b;",
		"notes.txt":    "not source",
		"sub/c.cpp":    "while (1) {}",
		"sub/deep.txt": "ignored",
	}

	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		testutil.RequireNoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		testutil.RequireNoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	results, err := ScanProject(dir, []string{"cpp", "h"})
	testutil.RequireNoError(t, err)

	if len(results) != 3 {
		t.Fatalf("Expected 3 scanned files, got %d: %v", len(results), results)
	}

	for path, result := range results {
		if len(result.Tokens) == 0 {
			t.Errorf("Expected tokens for %s, got none", path)
		}
	}
}

func TestScanProject_MissingRoot(t *testing.T) {
	_, err := ScanProject(filepath.Join(t.TempDir(), "absent"), []string{"cpp"})

	if err == nil {
		t.Fatal("Expected an error for a missing root directory, got nil")
	}
}

func TestHasFileExtension(t *testing.T) {
	tests := []struct {
		fileName string
		expected bool
	}{
		{"main.cpp", true},
		{"header.h", true},
		{"script.py", false},
		{"cpp", false},
	}

	for _, tt := range tests {
		t.Run(tt.fileName, func(t *testing.T) {
			got := HasFileExtension(tt.fileName, []string{"cpp", "h"})
			if got != tt.expected {
				t.Errorf("Expected %t for %s, got %t", tt.expected, tt.fileName, got)
			}
		})
	}
}
