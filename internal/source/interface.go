package source

import (
	"context"

	"github.com/mkraj/jobtrack/internal/domain"
)

// LegacySource reads records in one of the retired storage shapes so the
// importer can migrate them into the canonical store.
type LegacySource interface {
	// ID returns the stable identifier for this source, used in logs and
	// import summaries.
	ID() string

	// Records reads every legacy record the source holds. Row-level problems
	// are the caller's concern; an error here means the source itself could
	// not be read.
	Records(ctx context.Context) ([]domain.LegacyRecord, error)
}
