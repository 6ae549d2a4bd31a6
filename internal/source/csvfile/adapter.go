// Package csvfile reads the oldest tracker variant: a flat CSV file with one
// header row and the two-boolean status columns.
package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mkraj/jobtrack/internal/domain"
)

// Adapter reads legacy records from a CSV flat file.
type Adapter struct {
	path string
}

// NewAdapter creates a CSV source for the given file path.
func NewAdapter(path string) *Adapter {
	return &Adapter{path: path}
}

// ID returns the source identifier.
func (a *Adapter) ID() string {
	return "csvfile"
}

// Records reads and decodes every row of the CSV file.
// Parameters:
//   - ctx: context for cancellation.
// Returns:
//   - []domain.LegacyRecord: decoded rows, excluding the header.
//   - error: non-nil if the file cannot be opened or is malformed.
func (a *Adapter) Records(ctx context.Context) ([]domain.LegacyRecord, error) {
	f, err := os.Open(a.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open legacy csv: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // older exports vary in trailing columns

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	if _, ok := idx["Company Name"]; !ok {
		return nil, fmt.Errorf("legacy csv missing %q column", "Company Name")
	}

	var records []domain.LegacyRecord
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row: %w", err)
		}

		field := func(name string) string {
			i, ok := idx[name]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		records = append(records, domain.LegacyRecord{
			Company:            field("Company Name"),
			OfferType:          field("Offer Type"),
			Stipend:            field("Stipend"),
			CTC:                field("CTC"),
			Eligibility:        field("Eligibility"),
			Branches:           field("Branches"),
			Role:               field("Role"),
			RecruitmentProcess: field("Recruitment Process"),
			Deadline:           field("Application Deadline"),
			FormLink:           field("Form Link"),
			POCName:            field("POC Name"),
			POCPhone:           field("POC Phone"),
			DateAdded:          field("Date Added"),
			Applied:            parseBool(field("Applied")),
			Completed:          parseBool(field("Completed")),
		})
	}
	return records, nil
}

// parseBool accepts the spellings the old exports used for checkbox state.
func parseBool(v string) bool {
	switch strings.ToLower(v) {
	case "true", "1", "yes", "y", "x":
		return true
	}
	return false
}
