package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/RichieRish05/ProRankAI/constants"
)

// Job represents one user-submitted batch screening request for data
// transfer between layers.
type Job struct {
	ID        uuid.UUID           `json:"id"`
	UserID    uuid.UUID           `json:"user_id"`
	SourceRef string              `json:"source_ref"`
	Name      string              `json:"name"`
	Status    constants.JobStatus `json:"status"`
	CreatedAt time.Time           `json:"created_at"`
}

// DocumentRef identifies one enumerated document in the external store.
type DocumentRef struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	ViewURL    string `json:"view_url,omitempty"`
	PreviewURL string `json:"preview_url,omitempty"`
}
