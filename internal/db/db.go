// Package db defines the document-store contracts the search core consumes.
package db

import (
	"context"
	"time"
)

// TextQuery is the input for a field-scoped full-text search. Tags are
// equality filters applied alongside the text match.
type TextQuery struct {
	IndexName string
	Field     string
	Query     string
	Tags      map[string]string
	Limit     int
}

// SearchResult is the output of a search operation. Entries preserve the
// upstream ranking order.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}

// SearchEntry is a single document hit from a search.
type SearchEntry struct {
	Key    string
	Score  float64
	Fields map[string]string
}

// Store is the database facade combining all sub-interfaces. Consumers use
// the narrow sub-interfaces; the facade exists for wiring.
type Store interface {
	Pinger
	HashReader
	Searcher
	IndexManager
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HashReader reads hash records. Search is read-only: there are no write
// operations in this service.
type HashReader interface {
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
}

// Searcher provides full-text search over FT indexes.
type Searcher interface {
	SearchText(ctx context.Context, q *TextQuery) (*SearchResult, error)
}

// IndexManager provides FT index bootstrap operations.
type IndexManager interface {
	CreateIndex(ctx context.Context, def *IndexDefinition) error
	IndexExists(ctx context.Context, name string) (bool, error)
}
