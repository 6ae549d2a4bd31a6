package domain

// LegacyRecord is the retired flat-file/document schema: two independent status
// booleans instead of the tri-state Status, and no rounds or completion notes.
// It exists only as import input; nothing persists this shape.
type LegacyRecord struct {
	Company            string `json:"Company Name"`
	OfferType          string `json:"Offer Type"`
	Stipend            string `json:"Stipend"`
	CTC                string `json:"CTC"`
	Eligibility        string `json:"Eligibility"`
	Branches           string `json:"Branches"`
	Role               string `json:"Role"`
	RecruitmentProcess string `json:"Recruitment Process"`
	Deadline           string `json:"Application Deadline"`
	FormLink           string `json:"Form Link"`
	POCName            string `json:"POC Name"`
	POCPhone           string `json:"POC Phone"`
	DateAdded          string `json:"Date Added"`
	Applied            bool   `json:"Applied"`
	Completed          bool   `json:"Completed"`
}

// MigrateStatus collapses the legacy Applied/Completed booleans into the
// tri-state Status. Completed wins over Applied when both are set.
// Parameters:
//   - applied: legacy "Applied" flag.
//   - completed: legacy "Completed" flag.
// Returns:
//   - Status: equivalent tri-state status.
func MigrateStatus(applied, completed bool) Status {
	switch {
	case completed:
		return StatusCompleted
	case applied:
		return StatusInProcess
	default:
		return StatusOpen
	}
}

// Migrate converts a legacy record into the canonical schema. The deadline is
// carried over as-is; callers re-normalize it before persisting.
// Parameters: none.
// Returns:
//   - JobRecord: canonical record without an ID or timestamps.
func (l LegacyRecord) Migrate() JobRecord {
	return JobRecord{
		Company:            l.Company,
		OfferType:          l.OfferType,
		Stipend:            orNotSpecified(l.Stipend),
		CTC:                orNotSpecified(l.CTC),
		Eligibility:        l.Eligibility,
		Branches:           l.Branches,
		Role:               l.Role,
		RecruitmentProcess: l.RecruitmentProcess,
		Deadline:           l.Deadline,
		FormLink:           l.FormLink,
		POCName:            orNotSpecified(l.POCName),
		POCPhone:           orNotSpecified(l.POCPhone),
		Status:             MigrateStatus(l.Applied, l.Completed),
		Rounds:             RoundList{},
		CompletionNotes:    "",
		DateAdded:          l.DateAdded,
	}
}

func orNotSpecified(v string) string {
	if v == "" {
		return NotSpecified
	}
	return v
}
