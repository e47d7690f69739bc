package search

import (
	"context"

	"github.com/ytgate/ytgate/internal/models"
)

// Provider is the capability boundary around the keyword-search backend.
type Provider interface {
	// Search runs one keyword query and returns at most limit results in
	// the backend's relevance order.
	Search(ctx context.Context, query string, limit int64) ([]models.SearchResultItem, error)
}
