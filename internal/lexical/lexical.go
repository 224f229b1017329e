// Package lexical ties the scanner to the filesystem: loading source
// files, running one scanner per file, and collecting the results for the
// reporting layer.
package lexical

import (
	"fmt"
	"io"
	"log"
	"maps"
	"os"
	"path/filepath"
	"strings"

	"github.com/Oreo-PopTart/CPSC-323-Project-1/internal/lexical/scanner"
)

// MaxProjectFileDepth bounds the directory recursion when opening project
// files.
const MaxProjectFileDepth = 5

// Result pairs the two scan outputs for one input buffer.
type Result struct {
	Tokens  []scanner.Token
	Cleaned []byte
}

// ScanSource runs a fresh one-shot scanner over an in-memory buffer. The
// scan itself has no failure outcome.
func ScanSource(source []byte) Result {
	tokens, cleaned := scanner.Scan(source)

	return Result{
		Tokens:  tokens,
		Cleaned: cleaned,
	}
}

// ScanFile loads one source file and scans it. A missing or unreadable
// file aborts here, before any scanner is constructed.
func ScanFile(path string) (Result, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("file could not be opened: %w", err)
	}

	return ScanSource(content), nil
}

// ScanProject scans every file under rootDir whose name carries one of the
// given extensions. Each file gets an independently owned scanner, so the
// results never share state. Results are keyed by file path.
func ScanProject(rootDir string, withFileExtensions []string) (map[string]Result, error) {
	files, err := openProjectFiles(rootDir, withFileExtensions, 0, MaxProjectFileDepth)
	if err != nil {
		return nil, err
	}

	results := make(map[string]Result, len(files))
	for name, content := range files {
		results[name] = ScanSource(content)
	}

	return results, nil
}

// openProjectFiles recursively collects file contents from 'rootDir'.
// There is a depth limit for the recursion (current MaxProjectFileDepth).
func openProjectFiles(
	rootDir string,
	withFileExtensions []string,
	currentDepth, maxDepth int,
) (map[string][]byte, error) {
	if currentDepth > maxDepth {
		return nil, nil
	}

	list, err := os.ReadDir(rootDir)
	if err != nil {
		return nil, fmt.Errorf("directory could not be read: %w", err)
	}

	fileNamesToContent := make(map[string][]byte)

	for _, entry := range list {
		fileName := filepath.Join(rootDir, entry.Name())

		if entry.IsDir() {
			subFiles, err := openProjectFiles(
				fileName,
				withFileExtensions,
				currentDepth+1,
				maxDepth,
			)
			if err != nil {
				log.Println("unable to read directory, ", err.Error())
				continue
			}

			maps.Copy(fileNamesToContent, subFiles)
			continue
		}

		if !HasFileExtension(fileName, withFileExtensions) {
			continue
		}

		//nolint:gosec // fileName comes from trusted caller
		file, err := os.Open(fileName)
		if err != nil {
			log.Println("unable to open file, ", err.Error())
			continue
		}

		fileContent, _ := io.ReadAll(file)
		_ = file.Close()
		fileNamesToContent[fileName] = fileContent
	}

	return fileNamesToContent, nil
}

// HasFileExtension reports whether fileName's extension is found within
// extensions.
func HasFileExtension(fileName string, extensions []string) bool {
	for _, ext := range extensions {
		if strings.HasSuffix(fileName, "."+ext) {
			return true
		}
	}

	return false
}
