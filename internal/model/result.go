// internal/model/result.go
package model

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Result is one quiz attempt. Rows are never updated.
type Result struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	CompanyID  uuid.UUID `gorm:"type:uuid;not null;index" json:"company_id"`
	QuizID     uuid.UUID `gorm:"type:uuid;not null;index" json:"quiz_id"`
	RightCount int       `gorm:"not null" json:"right_count"`
	TotalCount int       `gorm:"not null" json:"total_count"`
	CreatedAt  time.Time `gorm:"index" json:"created_at"`
}

// ResultSummary is one analytics row keyed by a quiz or user id.
type ResultSummary struct {
	SubjectID   uuid.UUID `json:"subject_id"`
	LastAttempt time.Time `json:"last_attempt"`
	Average     float64   `json:"average"`
}

// ResultRecord is the staged form of a submission kept for exports.
type ResultRecord struct {
	QuizID       uuid.UUID `json:"quiz_id"`
	CompanyID    uuid.UUID `json:"company_id"`
	UserID       uuid.UUID `json:"user_id"`
	CorrectCount int       `json:"correct_count"`
	TotalCount   int       `json:"total_count"`
}

// CSVHeader lists the export columns.
func (ResultRecord) CSVHeader() []string {
	return []string{"quiz_id", "company_id", "user_id", "correct_count", "total_count"}
}

// CSVRecord renders the record in CSVHeader order.
func (r ResultRecord) CSVRecord() []string {
	return []string{
		r.QuizID.String(),
		r.CompanyID.String(),
		r.UserID.String(),
		strconv.Itoa(r.CorrectCount),
		strconv.Itoa(r.TotalCount),
	}
}

// AveragePoint is the average rating of the attempts made on one day.
type AveragePoint struct {
	Day     string  `json:"day"`
	Average float64 `json:"average"`
}

// Timeline is the day-by-day average of one quiz or user.
type Timeline struct {
	SubjectID uuid.UUID      `json:"subject_id"`
	Points    []AveragePoint `json:"points"`
}
