package repository

import (
	"context"
	"fmt"

	"github.com/mkraj/jobtrack/internal/domain"
	"gorm.io/gorm"
)

// RecordRepository handles job record data operations.
type RecordRepository struct {
	db *gorm.DB
}

// NewRecordRepository creates a new RecordRepository.
// Parameters:
//   - db: GORM database handle used for queries.
// Returns:
//   - *RecordRepository: repository instance bound to db.
func NewRecordRepository(db *gorm.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

// Create inserts a new job record.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - record: record to persist.
// Returns:
//   - error: non-nil if the insert fails (including the company unique index).
func (r *RecordRepository) Create(ctx context.Context, record *domain.JobRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// GetByID retrieves a record by its ID.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - id: record ID.
// Returns:
//   - *domain.JobRecord: record if found.
//   - error: non-nil if lookup fails.
func (r *RecordRepository) GetByID(ctx context.Context, id string) (*domain.JobRecord, error) {
	var record domain.JobRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// List retrieves all records, most recently added first.
// Parameters:
//   - ctx: context for cancellation and deadlines.
// Returns:
//   - []domain.JobRecord: all records.
//   - error: non-nil if the query fails.
func (r *RecordRepository) List(ctx context.Context) ([]domain.JobRecord, error) {
	var records []domain.JobRecord
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// ListByStatus retrieves records with the given status, most recent first.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - status: status to filter by.
// Returns:
//   - []domain.JobRecord: matching records.
//   - error: non-nil if the query fails.
func (r *RecordRepository) ListByStatus(ctx context.Context, status domain.Status) ([]domain.JobRecord, error) {
	var records []domain.JobRecord
	if err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// ExistsByCompany checks whether a live record for the company exists.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - company: company name (the natural dedup key).
// Returns:
//   - bool: true if a record exists.
//   - error: non-nil if the lookup fails.
func (r *RecordRepository) ExistsByCompany(ctx context.Context, company string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.JobRecord{}).
		Where("company = ?", company).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateFields applies a targeted partial update to a record.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - id: record ID.
//   - fields: column -> value map of changes.
// Returns:
//   - error: non-nil if the update fails or the record does not exist.
func (r *RecordRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	res := r.db.WithContext(ctx).Model(&domain.JobRecord{}).
		Where("id = ?", id).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a record by ID.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - id: record ID to delete.
// Returns:
//   - error: non-nil if the delete fails; deleting a missing record is an error.
func (r *RecordRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&domain.JobRecord{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountByStatus counts records per status.
// Parameters:
//   - ctx: context for cancellation and deadlines.
// Returns:
//   - map[domain.Status]int64: count for each known status.
//   - error: non-nil if the query fails.
func (r *RecordRepository) CountByStatus(ctx context.Context) (map[domain.Status]int64, error) {
	type row struct {
		Status domain.Status
		Count  int64
	}
	var rows []row
	if err := r.db.WithContext(ctx).Model(&domain.JobRecord{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count records by status: %w", err)
	}

	counts := map[domain.Status]int64{
		domain.StatusOpen:      0,
		domain.StatusInProcess: 0,
		domain.StatusCompleted: 0,
	}
	for _, rw := range rows {
		counts[rw.Status] = rw.Count
	}
	return counts, nil
}
