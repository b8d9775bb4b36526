package translation

import (
	"strconv"
	"strings"

	"github.com/kollektivet/sitesearch/internal/db"
	"github.com/kollektivet/sitesearch/internal/domain"
)

// Hit is one translation record matched by a field query.
type Hit struct {
	ID          string
	ParentID    string
	Locale      string
	Title       string
	Description string
	CreatedAt   int64
	UpdatedAt   int64
}

func hitsFromResult(sr *db.SearchResult) []Hit {
	if sr == nil || len(sr.Entries) == 0 {
		return nil
	}

	hits := make([]Hit, 0, len(sr.Entries))
	for _, entry := range sr.Entries {
		h := hitFromEntry(entry)
		if h.ParentID == "" {
			// No resolvable parent relation; drop the hit.
			continue
		}
		hits = append(hits, h)
	}
	return hits
}

func hitFromEntry(entry db.SearchEntry) Hit {
	f := entry.Fields
	return Hit{
		ID:          strings.TrimPrefix(entry.Key, domain.TranslationKeyPrefix),
		ParentID:    f["parent_id"],
		Locale:      f["locale"],
		Title:       f["title"],
		Description: f["description"],
		CreatedAt:   parseMillis(f["created_at"]),
		UpdatedAt:   parseMillis(f["updated_at"]),
	}
}

// parseMillis parses an epoch-millisecond field, 0 on absence or garbage.
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
