// Package translation queries the shared translations FT index.
package translation

import (
	"context"
	"fmt"

	"github.com/kollektivet/sitesearch/internal/db"
	"github.com/kollektivet/sitesearch/internal/domain"
)

// Searchable translation fields, in priority order (title outranks description).
const (
	FieldTitle       = "title"
	FieldDescription = "description"
)

// Fields lists the searchable fields in priority order.
func Fields() []string {
	return []string{FieldTitle, FieldDescription}
}

// store is the consumer interface for translation queries (ISP).
type store interface {
	SearchText(ctx context.Context, q *db.TextQuery) (*db.SearchResult, error)
}

// Repo implements usecase/search.TranslationIndex.
type Repo struct {
	store store
}

// New creates a translation repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// SearchField free-text-matches query against one translation field, filtered
// to a parent type and, when locale is non-empty, to that exact locale. Hits
// preserve the upstream ranking order.
func (r *Repo) SearchField(
	ctx context.Context, field, query, parentType, locale string, limit int,
) ([]Hit, error) {
	tags := map[string]string{"parent_type": parentType}
	if locale != "" {
		tags["locale"] = locale
	}

	q := &db.TextQuery{
		IndexName: domain.TranslationsIndexName,
		Field:     field,
		Query:     query,
		Tags:      tags,
		Limit:     limit,
	}

	sr, err := r.store.SearchText(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("search translations %s/%s: %w", parentType, field, err)
	}

	return hitsFromResult(sr), nil
}
