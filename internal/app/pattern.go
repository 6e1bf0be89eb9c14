package app

import (
	"fmt"
	"os"

	"gol-editor/pkg/pattern"
)

// ReadPattern loads a pattern file. Empty files are rejected.
func ReadPattern(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read pattern: %w", err)
	}
	text := string(data)
	if w, h := pattern.Dims(text); w == 0 || h == 0 {
		return "", fmt.Errorf("read pattern %s: empty pattern", path)
	}
	return text, nil
}
