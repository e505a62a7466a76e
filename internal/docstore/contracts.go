// Package docstore defines the narrow contracts the orchestration core
// uses to reach the external document store, plus the exec runner shared
// by its adapters.
package docstore

import (
	"context"

	"github.com/RichieRish05/ProRankAI/internal/entity"
)

// Lister enumerates the eligible documents under an opaque folder
// reference. Implementations filter to eligible document types and hide
// their own pagination; the returned set is finite.
type Lister interface {
	List(ctx context.Context, sourceRef string) ([]entity.DocumentRef, error)
}

// Fetcher downloads one referenced document and converts it to UTF-8
// text.
type Fetcher interface {
	FetchText(ctx context.Context, docRef string) (string, error)
}
