package translation

import (
	"context"
	"errors"
	"testing"

	"github.com/kollektivet/sitesearch/internal/db"
)

func TestSearchField_HappyPath(t *testing.T) {
	repo, ms := newTestRepo(t)
	ctx := context.Background()

	ms.searchTextFn = func(_ context.Context, q *db.TextQuery) (*db.SearchResult, error) {
		if q.IndexName != "portal:translations:idx" {
			t.Errorf("unexpected index: %s", q.IndexName)
		}
		if q.Field != FieldTitle {
			t.Errorf("unexpected field: %s", q.Field)
		}
		if q.Tags["parent_type"] != "job" {
			t.Errorf("unexpected parent_type tag: %q", q.Tags["parent_type"])
		}
		if q.Tags["locale"] != "en" {
			t.Errorf("unexpected locale tag: %q", q.Tags["locale"])
		}
		if q.Limit != 15 {
			t.Errorf("unexpected limit: %d", q.Limit)
		}
		return &db.SearchResult{
			Total: 2,
			Entries: []db.SearchEntry{
				{
					Key:   "portal:translations:t-1",
					Score: 2.5,
					Fields: map[string]string{
						"parent_id":  "job-1",
						"locale":     "en",
						"title":      "Designer",
						"created_at": "1700000000000",
						"updated_at": "1700000001000",
					},
				},
				{
					Key:   "portal:translations:t-2",
					Score: 1.1,
					Fields: map[string]string{
						"parent_id": "job-2",
						"locale":    "en",
						"title":     "Design lead",
					},
				},
			},
		}, nil
	}

	hits, err := repo.SearchField(ctx, FieldTitle, "design", "job", "en", 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hits) != 2 {
		t.Fatalf("expected 2 hits, got %d", len(hits))
	}
	if hits[0].ID != "t-1" {
		t.Errorf("expected ID t-1, got %s", hits[0].ID)
	}
	if hits[0].ParentID != "job-1" {
		t.Errorf("expected parent job-1, got %s", hits[0].ParentID)
	}
	if hits[0].UpdatedAt != 1700000001000 {
		t.Errorf("expected updated_at 1700000001000, got %d", hits[0].UpdatedAt)
	}
}

func TestSearchField_NoLocaleOmitsTag(t *testing.T) {
	repo, ms := newTestRepo(t)

	ms.searchTextFn = func(_ context.Context, q *db.TextQuery) (*db.SearchResult, error) {
		if _, ok := q.Tags["locale"]; ok {
			t.Error("expected no locale tag for empty locale")
		}
		return &db.SearchResult{}, nil
	}

	if _, err := repo.SearchField(context.Background(), FieldTitle, "design", "news", "", 15); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSearchField_DropsOrphanHits(t *testing.T) {
	repo, ms := newTestRepo(t)

	ms.searchTextFn = func(_ context.Context, _ *db.TextQuery) (*db.SearchResult, error) {
		return &db.SearchResult{
			Total: 2,
			Entries: []db.SearchEntry{
				{Key: "portal:translations:t-1", Fields: map[string]string{"title": "Orphan"}},
				{Key: "portal:translations:t-2", Fields: map[string]string{"parent_id": "e-1", "title": "Kept"}},
			},
		}, nil
	}

	hits, err := repo.SearchField(context.Background(), FieldTitle, "design", "event", "", 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hits) != 1 {
		t.Fatalf("expected 1 hit after dropping orphans, got %d", len(hits))
	}
	if hits[0].ParentID != "e-1" {
		t.Errorf("expected surviving hit e-1, got %s", hits[0].ParentID)
	}
}

func TestSearchField_GarbageTimestamps(t *testing.T) {
	repo, ms := newTestRepo(t)

	ms.searchTextFn = func(_ context.Context, _ *db.TextQuery) (*db.SearchResult, error) {
		return &db.SearchResult{
			Total: 1,
			Entries: []db.SearchEntry{
				{
					Key: "portal:translations:t-1",
					Fields: map[string]string{
						"parent_id":  "n-1",
						"created_at": "yesterday",
						"updated_at": "",
					},
				},
			},
		}, nil
	}

	hits, err := repo.SearchField(context.Background(), FieldTitle, "design", "news", "", 15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hits[0].CreatedAt != 0 || hits[0].UpdatedAt != 0 {
		t.Errorf("expected zeroed timestamps, got %d/%d", hits[0].CreatedAt, hits[0].UpdatedAt)
	}
}

func TestSearchField_StoreError(t *testing.T) {
	repo, ms := newTestRepo(t)

	wantErr := errors.New("connection reset")
	ms.searchTextFn = func(_ context.Context, _ *db.TextQuery) (*db.SearchResult, error) {
		return nil, wantErr
	}

	_, err := repo.SearchField(context.Background(), FieldTitle, "design", "job", "en", 15)
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}
