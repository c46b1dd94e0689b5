package entities

import "time"

// Interview is a single tracked job application with its scheduled
// stages. ServerID is nil until the record is first pushed to (or pulled
// from) the server; a nil ServerID marks the record as a push candidate.
//
// CompanyName is kept denormalized for display even though CompanyID
// links to the companies table.
type Interview struct {
	ID              int64    `gorm:"primaryKey"`
	ServerID        *int     `gorm:"index"`
	CompanyID       *int64   `gorm:"index"`
	Company         *Company `gorm:"constraint:OnDelete:SET NULL"`
	JobTitle        string
	CompanyName     string
	ClientCompany   *string
	Stage           Stage
	Method          *Method
	Outcome         Outcome
	ApplicationDate time.Time
	InterviewDate   *time.Time
	Deadline        *time.Time
	Interviewer     *string
	Link            *string
	JobListing      *string
	Notes           *string
	MetadataJSON    *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Synced reports whether the interview exists on the server.
func (i Interview) Synced() bool {
	return i.ServerID != nil
}
