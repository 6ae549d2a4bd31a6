package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mkraj/jobtrack/internal/dates"
	"github.com/mkraj/jobtrack/internal/domain"
	"github.com/mkraj/jobtrack/internal/logger"
	"github.com/mkraj/jobtrack/internal/storage"
	"gorm.io/gorm"
)

// RecordStore is the persistence contract the tracker consumes.
type RecordStore interface {
	Create(ctx context.Context, record *domain.JobRecord) error
	GetByID(ctx context.Context, id string) (*domain.JobRecord, error)
	List(ctx context.Context) ([]domain.JobRecord, error)
	ListByStatus(ctx context.Context, status domain.Status) ([]domain.JobRecord, error)
	ExistsByCompany(ctx context.Context, company string) (bool, error)
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context) (map[domain.Status]int64, error)
}

// Extractor is the extraction contract the tracker consumes.
type Extractor interface {
	Extract(ctx context.Context, text string) (*Extraction, error)
}

// Tracker errors surfaced to the API layer.
var (
	ErrEmptyText        = errors.New("posting text is empty")
	ErrDuplicateCompany = errors.New("company already exists in tracker")
	ErrInvalidStatus    = errors.New("invalid status")
	ErrNotFound         = errors.New("record not found")
)

// mapStoreErr translates store-level not-found into the service error the API
// layer matches on.
func mapStoreErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// StatusFilterAll selects every record regardless of status.
const StatusFilterAll = "All"

// TrackerService implements the add/list/update/delete loop over job records.
type TrackerService struct {
	store     RecordStore
	extractor Extractor
	archive   storage.ObjectStorage // nil when the raw-posting archive is disabled
}

// NewTrackerService creates a new tracker service.
// Parameters:
//   - store: record persistence.
//   - extractor: posting-text extraction.
//   - archive: raw-posting archive, may be nil.
// Returns:
//   - *TrackerService: initialized service.
func NewTrackerService(store RecordStore, extractor Extractor, archive storage.ObjectStorage) *TrackerService {
	return &TrackerService{
		store:     store,
		extractor: extractor,
		archive:   archive,
	}
}

// AddFromText runs the extraction pipeline on pasted posting text and persists
// the resulting record: extract, normalize the deadline, reject duplicate
// companies, insert, then archive the raw text best-effort.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - text: raw job-posting text.
// Returns:
//   - *domain.JobRecord: created record.
//   - error: extraction failure, ErrDuplicateCompany, or store failure.
func (s *TrackerService) AddFromText(ctx context.Context, text string) (*domain.JobRecord, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}

	start := time.Now()
	ext, err := s.extractor.Extract(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse job details: %w", err)
	}

	company := strings.TrimSpace(ext.CompanyName)
	ctx = logger.WithField(ctx, logger.FieldCompany, company)

	// Check-then-insert is racy under concurrent submissions; the unique index
	// on company turns the losing insert into a clean error.
	exists, err := s.store.ExistsByCompany(ctx, company)
	if err != nil {
		return nil, fmt.Errorf("failed to check for duplicate: %w", err)
	}
	if exists {
		return nil, ErrDuplicateCompany
	}

	record := &domain.JobRecord{
		ID:                 uuid.NewString(),
		Company:            company,
		OfferType:          ext.OfferType,
		Stipend:            ext.Stipend,
		CTC:                ext.CTC,
		Eligibility:        ext.Eligibility,
		Branches:           ext.Branches,
		Role:               ext.Role,
		RecruitmentProcess: ext.RecruitmentProcess,
		Deadline:           dates.Normalize(ext.ApplicationDeadline),
		FormLink:           ext.FormLink,
		POCName:            ext.POCName,
		POCPhone:           ext.POCPhone,
		Status:             domain.StatusOpen,
		Rounds:             domain.RoundList{},
		CompletionNotes:    "",
		DateAdded:          time.Now().Format(dates.CanonicalLayout),
	}

	if err := s.store.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to save record: %w", err)
	}

	s.archiveRawText(ctx, record.ID, text)

	logger.With(logger.Fields{
		logger.FieldRecordID:   record.ID,
		logger.FieldDurationMs: time.Since(start).Milliseconds(),
	}).Info(ctx, "Record created for %s", company)

	return record, nil
}

// List returns records decorated with display deadline and urgency, optionally
// filtered by status. filter is StatusFilterAll or empty for every record.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - filter: StatusFilterAll, empty, or a status value.
// Returns:
//   - []domain.DecoratedRecord: decorated records, most recently added first.
//   - error: ErrInvalidStatus for an unknown filter, or store failure.
func (s *TrackerService) List(ctx context.Context, filter string) ([]domain.DecoratedRecord, error) {
	var (
		records []domain.JobRecord
		err     error
	)
	switch {
	case filter == "" || filter == StatusFilterAll:
		records, err = s.store.List(ctx)
	case domain.Status(filter).Valid():
		records, err = s.store.ListByStatus(ctx, domain.Status(filter))
	default:
		return nil, ErrInvalidStatus
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}

	decorated := make([]domain.DecoratedRecord, 0, len(records))
	now := time.Now()
	for _, r := range records {
		decorated = append(decorated, decorate(r, now))
	}
	return decorated, nil
}

// Get returns a single decorated record.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - id: record ID.
// Returns:
//   - *domain.DecoratedRecord: decorated record if found.
//   - error: non-nil if lookup fails.
func (s *TrackerService) Get(ctx context.Context, id string) (*domain.DecoratedRecord, error) {
	record, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	d := decorate(*record, time.Now())
	return &d, nil
}

// UpdateStatus moves a record to a new tracking status.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - id: record ID.
//   - status: new status value.
// Returns:
//   - error: ErrInvalidStatus or store failure.
func (s *TrackerService) UpdateStatus(ctx context.Context, id string, status domain.Status) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	if err := s.store.UpdateFields(ctx, id, map[string]interface{}{"status": status}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update status: %w", err)
	}
	logger.CtxInfo(logger.SetRecordID(ctx, id), "Status updated to %s", status)
	return nil
}

// UpdateRounds replaces the recruitment-round entries on a record.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - id: record ID.
//   - rounds: ordered round entries; nil stores an empty list.
// Returns:
//   - error: non-nil if the update fails.
func (s *TrackerService) UpdateRounds(ctx context.Context, id string, rounds domain.RoundList) error {
	if rounds == nil {
		rounds = domain.RoundList{}
	}
	if err := s.store.UpdateFields(ctx, id, map[string]interface{}{"rounds": rounds}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update rounds: %w", err)
	}
	return nil
}

// UpdateNotes replaces the completion notes on a record.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - id: record ID.
//   - notes: free-text notes.
// Returns:
//   - error: non-nil if the update fails.
func (s *TrackerService) UpdateNotes(ctx context.Context, id string, notes string) error {
	if err := s.store.UpdateFields(ctx, id, map[string]interface{}{"completion_notes": notes}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update notes: %w", err)
	}
	return nil
}

// Delete removes a record and its archived raw posting.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - id: record ID to delete.
// Returns:
//   - error: non-nil if the store delete fails; archive cleanup is best-effort.
func (s *TrackerService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete record: %w", err)
	}
	if s.archive != nil {
		if err := s.archive.Delete(ctx, rawTextKey(id)); err != nil {
			logger.CtxWarn(ctx, "Failed to delete archived posting for %s: %v", id, err)
		}
	}
	logger.CtxInfo(logger.SetRecordID(ctx, id), "Record deleted")
	return nil
}

// Stats returns the per-status record counts.
// Parameters:
//   - ctx: context for cancellation and deadlines.
// Returns:
//   - map[domain.Status]int64: count per status.
//   - error: non-nil if the query fails.
func (s *TrackerService) Stats(ctx context.Context) (map[domain.Status]int64, error) {
	return s.store.CountByStatus(ctx)
}

// archiveRawText stores the original pasted text so a posting can be re-read
// later. Failures log and never fail record creation.
func (s *TrackerService) archiveRawText(ctx context.Context, id, text string) {
	if s.archive == nil {
		return
	}
	key := rawTextKey(id)
	err := s.archive.Upload(ctx, key, strings.NewReader(text), int64(len(text)), "text/plain; charset=utf-8")
	if err != nil {
		logger.CtxWarn(ctx, "Failed to archive raw posting %s: %v", key, err)
	}
}

func rawTextKey(id string) string {
	return "postings/" + id + ".txt"
}

// decorate pairs a record with its render-time deadline display and urgency.
func decorate(r domain.JobRecord, now time.Time) domain.DecoratedRecord {
	display := dates.Display(r.Deadline)
	return domain.DecoratedRecord{
		JobRecord:       r,
		DeadlineDisplay: display,
		Urgency:         string(dates.ClassifyAt(display, now)),
	}
}
