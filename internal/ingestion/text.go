// Package ingestion reads resume and job-description inputs from
// files, keeping the raw text structure the pipeline depends on
// (line-based header checks, sentence boundaries).
package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ReadTextFile reads a UTF-8 text file and normalizes line endings.
func ReadTextFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return NormalizeNewlines(string(data)), nil
}

// NormalizeNewlines converts CRLF and bare CR line endings to LF and
// trims trailing whitespace per line, preserving blank lines.
func NormalizeNewlines(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// ReadResume reads resume text from path, extracting page text when
// the file is a PDF.
func ReadResume(path string) (string, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return ExtractPDFText(path)
	}
	return ReadTextFile(path)
}
