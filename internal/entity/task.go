package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/RichieRish05/ProRankAI/constants"
)

// ScoreTask represents one document's unit of work within a Job for data
// transfer between layers.
type ScoreTask struct {
	ID         uuid.UUID            `json:"id"`
	JobID      uuid.UUID            `json:"job_id"`
	DocRef     string               `json:"doc_ref"`
	DocName    string               `json:"doc_name"`
	ViewURL    *string              `json:"view_url,omitempty"`
	PreviewURL *string              `json:"preview_url,omitempty"`
	Status     constants.TaskStatus `json:"status"`

	// Text is the extracted document text, present once the download
	// stage has durably completed.
	Text *string `json:"text,omitempty"`

	// Extracted attributes, present once scored.
	GPA            *float64 `json:"gpa,omitempty"`
	SchoolYear     *string  `json:"school_year,omitempty"`
	NumInternships *int     `json:"num_internships,omitempty"`

	// Score is present iff Status == scored and then equals
	// clamp(sum(breakdown) + penalty, 0, 100).
	Score     *int       `json:"score,omitempty"`
	Breakdown *Breakdown `json:"score_breakdown,omitempty"`

	ErrorMessage *string   `json:"error_message,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Breakdown holds the pre-penalty per-category contributions. Its sum may
// exceed the stored score when the low-GPA penalty applies.
type Breakdown struct {
	GPAContribution           int `json:"gpa_contribution"`
	ExperienceContribution    int `json:"experience_contribution"`
	ImpactQualityContribution int `json:"impact_quality_contribution"`
}

// Sum returns the pre-penalty total.
func (b Breakdown) Sum() int {
	return b.GPAContribution + b.ExperienceContribution + b.ImpactQualityContribution
}

// ScoreResult is the full output of the score stage, persisted in one
// write so a resumed task never observes a half-scored row.
type ScoreResult struct {
	GPA            *float64
	SchoolYear     *constants.SchoolYear
	NumInternships int
	Score          int
	Breakdown      Breakdown
}

// TaskDispatch is the typed message handed to the dispatch queue for one
// task. It carries everything a worker needs to run the lifecycle without
// consulting the parent job.
type TaskDispatch struct {
	TaskID uuid.UUID
	JobID  uuid.UUID
	DocRef string
}
