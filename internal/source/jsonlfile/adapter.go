// Package jsonlfile reads the document-store export variant: one JSON object
// per line, keyed by the legacy column names, with the two-boolean status.
package jsonlfile

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mkraj/jobtrack/internal/domain"
)

// Adapter reads legacy records from a JSON-lines export.
type Adapter struct {
	path string
}

// NewAdapter creates a JSONL source for the given file path.
func NewAdapter(path string) *Adapter {
	return &Adapter{path: path}
}

// ID returns the source identifier.
func (a *Adapter) ID() string {
	return "jsonlfile"
}

// Records reads and decodes every line of the export.
// Parameters:
//   - ctx: context for cancellation.
// Returns:
//   - []domain.LegacyRecord: decoded records; blank lines are skipped.
//   - error: non-nil if the file cannot be opened or a line is malformed.
func (a *Adapter) Records(ctx context.Context) ([]domain.LegacyRecord, error) {
	f, err := os.Open(a.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open legacy export: %w", err)
	}
	defer f.Close()

	var records []domain.LegacyRecord
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for scanner.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		var rec domain.LegacyRecord
		if err := json.Unmarshal([]byte(text), &rec); err != nil {
			return nil, fmt.Errorf("failed to decode line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read legacy export: %w", err)
	}
	return records, nil
}
