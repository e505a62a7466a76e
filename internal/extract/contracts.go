package extract

import (
	"context"

	"github.com/RichieRish05/ProRankAI/internal/entity"
)

// Extractor is the attribute-extraction collaborator: raw resume text in,
// structured attributes out. The raw JSON arguments are returned alongside
// for logging and failure capture.
type Extractor interface {
	Extract(ctx context.Context, text string) (entity.Attributes, []byte /*rawJSON*/, error)
}
