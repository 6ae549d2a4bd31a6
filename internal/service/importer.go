package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mkraj/jobtrack/internal/dates"
	"github.com/mkraj/jobtrack/internal/logger"
	"github.com/mkraj/jobtrack/internal/source"
)

// ImportResult summarizes one legacy import run.
type ImportResult struct {
	Total    int `json:"total"`
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"` // duplicate companies and rows without one
	Failed   int `json:"failed"`
}

// ImportService migrates legacy flat-file data into the canonical store.
type ImportService struct {
	store RecordStore
}

// NewImportService creates a new import service.
// Parameters:
//   - store: record persistence.
// Returns:
//   - *ImportService: initialized service.
func NewImportService(store RecordStore) *ImportService {
	return &ImportService{store: store}
}

// Run reads every record from the legacy source, migrates the two-boolean
// status shape to the tri-state enum, re-normalizes dates, and inserts rows
// that do not collide with an existing company. Row-level failures are logged
// and counted; the run continues.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - src: legacy source to read.
// Returns:
//   - *ImportResult: per-row outcome counts.
//   - error: non-nil only when the source itself cannot be read.
func (s *ImportService) Run(ctx context.Context, src source.LegacySource) (*ImportResult, error) {
	ctx = logger.SetImportSource(ctx, src.ID())

	legacy, err := src.Records(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read legacy source: %w", err)
	}

	result := &ImportResult{Total: len(legacy)}
	today := time.Now().Format(dates.CanonicalLayout)

	for _, l := range legacy {
		record := l.Migrate()
		record.ID = uuid.NewString()
		record.Company = strings.TrimSpace(record.Company)
		if record.Company == "" {
			result.Skipped++
			continue
		}

		// Deadline degrades to empty when the old value never parsed; the
		// record still imports and renders gray.
		record.Deadline = dates.Normalize(record.Deadline)
		if normalized := dates.Normalize(record.DateAdded); normalized != "" {
			record.DateAdded = normalized
		} else {
			record.DateAdded = today
		}

		exists, err := s.store.ExistsByCompany(ctx, record.Company)
		if err != nil {
			return result, fmt.Errorf("failed to check for duplicate: %w", err)
		}
		if exists {
			logger.CtxDebug(ctx, "Skipping duplicate company %s", record.Company)
			result.Skipped++
			continue
		}

		if err := s.store.Create(ctx, &record); err != nil {
			logger.CtxWarn(ctx, "Failed to import %s: %v", record.Company, err)
			result.Failed++
			continue
		}
		result.Imported++
	}

	logger.With(logger.Fields{
		logger.FieldCount: result.Imported,
	}).Info(ctx, "Import finished: %d imported, %d skipped, %d failed of %d",
		result.Imported, result.Skipped, result.Failed, result.Total)

	return result, nil
}
