package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Status represents the tracking state of a job record.
// Values include StatusOpen, StatusInProcess, and StatusCompleted.
type Status string

const (
	StatusOpen      Status = "Open for Application"
	StatusInProcess Status = "In Process"
	StatusCompleted Status = "Completed"
)

// Valid reports whether s is one of the known statuses.
// Parameters: none.
// Returns:
//   - bool: true when s is a recognized status value.
func (s Status) Valid() bool {
	switch s {
	case StatusOpen, StatusInProcess, StatusCompleted:
		return true
	}
	return false
}

// NotSpecified is the placeholder stored for fields the extraction could not fill.
const NotSpecified = "Not Specified"

// Round is a single recruitment-round entry on a record.
type Round struct {
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

// RoundList is a custom type for storing ordered round entries as JSON in the database.
type RoundList []Round

// Value implements the driver.Valuer interface for database serialization.
// Parameters: none.
// Returns:
//   - driver.Value: JSON-encoded string representation of the rounds.
//   - error: non-nil if marshaling fails.
func (r RoundList) Value() (driver.Value, error) {
	if r == nil {
		return "[]", nil
	}
	b, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface for database deserialization.
// Parameters:
//   - value: raw database value to decode.
// Returns:
//   - error: non-nil if decoding fails or the type is unexpected.
func (r *RoundList) Scan(value interface{}) error {
	if value == nil {
		*r = RoundList{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		str, ok := value.(string)
		if !ok {
			return errors.New("failed to scan RoundList")
		}
		bytes = []byte(str)
	}
	return json.Unmarshal(bytes, r)
}

// JobRecord represents one tracked job posting and its mutable status.
// Deadline and DateAdded hold the canonical DD-MM-YYYY text form.
type JobRecord struct {
	ID                 string    `gorm:"type:text;primaryKey" json:"id"`
	Company            string    `gorm:"type:text;not null;uniqueIndex:idx_records_company" json:"company_name"`
	OfferType          string    `gorm:"type:text" json:"offer_type"`
	Stipend            string    `gorm:"type:text" json:"stipend"`
	CTC                string    `gorm:"type:text" json:"ctc"`
	Eligibility        string    `gorm:"type:text" json:"eligibility"`
	Branches           string    `gorm:"type:text" json:"branches"`
	Role               string    `gorm:"type:text" json:"role"`
	RecruitmentProcess string    `gorm:"type:text" json:"recruitment_process"`
	Deadline           string    `gorm:"type:text" json:"application_deadline"`
	FormLink           string    `gorm:"type:text" json:"form_link"`
	POCName            string    `gorm:"type:text" json:"poc_name"`
	POCPhone           string    `gorm:"type:text" json:"poc_phone"`
	Status             Status    `gorm:"type:text;index:idx_records_status;default:Open for Application" json:"status"`
	Rounds             RoundList `gorm:"type:text" json:"rounds"`
	CompletionNotes    string    `gorm:"type:text" json:"completion_notes"`
	DateAdded          string    `gorm:"type:text" json:"date_added"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// TableName returns the database table name for JobRecord.
// Parameters: none.
// Returns:
//   - string: table name for GORM mapping.
func (JobRecord) TableName() string {
	return "job_records"
}

// DecoratedRecord is a JobRecord paired with its render-time deadline decoration.
type DecoratedRecord struct {
	JobRecord
	DeadlineDisplay string `json:"deadline_display"`
	Urgency         string `json:"urgency"`
}
