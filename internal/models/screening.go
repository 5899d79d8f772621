package models

import (
	"time"

	"github.com/google/uuid"
)

type ScreeningStatus string

const (
	StatusQueued     ScreeningStatus = "queued"
	StatusProcessing ScreeningStatus = "processing"
	StatusCompleted  ScreeningStatus = "completed"
	StatusFailed     ScreeningStatus = "failed"
)

// Screening is one batch run of many resumes against a single job profile.
// Mode records whether the learned model backed the whole batch or the run
// degraded to fallback scoring, so consumers never see mixed scores
// unmarked.
type Screening struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	JobProfileID  uuid.UUID       `gorm:"type:uuid;not null" json:"job_profile_id"`
	Status        ScreeningStatus `gorm:"not null;default:'queued'" json:"status"`
	Mode          string          `gorm:"type:text" json:"mode,omitempty"`
	Cutoff        float64         `gorm:"type:decimal(5,2)" json:"cutoff"`
	MinExperience float64         `gorm:"type:decimal(4,1)" json:"min_experience"`
	ErrorMessage  *string         `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt     time.Time       `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relations
	JobProfile JobProfile `gorm:"foreignKey:JobProfileID" json:"-"`
}

func (Screening) TableName() string {
	return "screenings"
}

// ScreeningDocument links a screening to the resumes it covers.
type ScreeningDocument struct {
	ScreeningID uuid.UUID `gorm:"type:uuid;primary_key" json:"screening_id"`
	DocumentID  uuid.UUID `gorm:"type:uuid;primary_key" json:"document_id"`
	Position    int       `gorm:"not null" json:"position"`
}

func (ScreeningDocument) TableName() string {
	return "screening_documents"
}

// ScoreRecord is one scored resume within a screening. Written once when the
// batch completes; a re-screen derives new rows instead of mutating these.
// SkipReason is set (and the score fields zeroed) when text extraction
// failed for the document.
type ScoreRecord struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	ScreeningID     uuid.UUID `gorm:"type:uuid;not null;index" json:"screening_id"`
	DocumentID      uuid.UUID `gorm:"type:uuid;not null" json:"document_id"`
	Rank            int       `gorm:"not null" json:"rank"`
	FileName        string    `gorm:"type:text" json:"file_name"`
	CandidateName   string    `gorm:"type:text" json:"candidate_name"`
	Email           string    `gorm:"type:text" json:"email"`
	Score           float64   `gorm:"type:decimal(5,2)" json:"score"`
	YearsExperience float64   `gorm:"type:decimal(4,1)" json:"years_experience"`
	Similarity      float64   `gorm:"type:decimal(4,2)" json:"similarity"`
	MatchedSkills   string    `gorm:"type:text" json:"matched_skills"`
	MissingSkills   string    `gorm:"type:text" json:"missing_skills"`
	Tag             string    `gorm:"type:text" json:"tag"`
	ScorePath       string    `gorm:"type:text" json:"score_path"`
	SkipReason      *string   `gorm:"type:text" json:"skip_reason,omitempty"`
	CreatedAt       time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (ScoreRecord) TableName() string {
	return "score_records"
}
