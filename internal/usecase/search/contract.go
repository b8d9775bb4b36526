package search

import (
	"context"

	"github.com/kollektivet/sitesearch/internal/domain/content"
	"github.com/kollektivet/sitesearch/internal/repository/translation"
)

// TranslationIndex searches one translation field at a time.
type TranslationIndex interface {
	SearchField(
		ctx context.Context, field, query, parentType, locale string, limit int,
	) ([]translation.Hit, error)
}

// ContentReader resolves parent entities by id.
type ContentReader interface {
	Job(ctx context.Context, id string) (content.Job, error)
	Event(ctx context.Context, id string) (content.Event, error)
	News(ctx context.Context, id string) (content.News, error)
}

// UnitIndex searches units and resolves campus display names.
type UnitIndex interface {
	SearchByName(ctx context.Context, query string, limit int) ([]content.Unit, error)
	CampusName(ctx context.Context, id string) (string, error)
}
