// Package unit queries the units FT index and resolves campus names.
package unit

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/kollektivet/sitesearch/internal/db"
	"github.com/kollektivet/sitesearch/internal/domain"
	domcontent "github.com/kollektivet/sitesearch/internal/domain/content"
)

// FieldName is the single searchable field on units.
const FieldName = "name"

// store is the consumer interface for unit queries (ISP).
type store interface {
	SearchText(ctx context.Context, q *db.TextQuery) (*db.SearchResult, error)
	HGetAll(ctx context.Context, key string) (map[string]string, error)
}

// Repo implements usecase/search.UnitIndex.
type Repo struct {
	store store
}

// New creates a unit repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// SearchByName free-text-matches query against unit names, preserving the
// upstream ranking order.
func (r *Repo) SearchByName(ctx context.Context, query string, limit int) ([]domcontent.Unit, error) {
	q := &db.TextQuery{
		IndexName: domain.UnitsIndexName,
		Field:     FieldName,
		Query:     query,
		Limit:     limit,
	}

	sr, err := r.store.SearchText(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("search units: %w", err)
	}
	if sr == nil || len(sr.Entries) == 0 {
		return nil, nil
	}

	units := make([]domcontent.Unit, 0, len(sr.Entries))
	for _, entry := range sr.Entries {
		units = append(units, unitFromEntry(entry))
	}
	return units, nil
}

// CampusName resolves a campus display name. domain.ErrNotFound when absent.
func (r *Repo) CampusName(ctx context.Context, id string) (string, error) {
	fields, err := r.store.HGetAll(ctx, domain.CampusKey(id))
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return "", fmt.Errorf("campus %s: %w", id, domain.ErrNotFound)
		}
		return "", fmt.Errorf("get campus %s: %w", id, err)
	}
	return fields["name"], nil
}

func unitFromEntry(entry db.SearchEntry) domcontent.Unit {
	f := entry.Fields
	return domcontent.Unit{
		ID:          strings.TrimPrefix(entry.Key, domain.UnitKeyPrefix),
		Name:        f["name"],
		Description: f["description"],
		CampusID:    f["campus_id"],
		CreatedAt:   parseMillis(f["created_at"]),
		UpdatedAt:   parseMillis(f["updated_at"]),
	}
}

func parseMillis(s string) int64 {
	if s == "" {
		return 0
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
