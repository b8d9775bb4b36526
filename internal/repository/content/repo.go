// Package content resolves parent entity records by id.
package content

import (
	"context"
	"errors"
	"fmt"

	"github.com/kollektivet/sitesearch/internal/db"
	"github.com/kollektivet/sitesearch/internal/domain"
	domcontent "github.com/kollektivet/sitesearch/internal/domain/content"
)

// store is the consumer interface for parent resolution (ISP).
type store interface {
	HGetAll(ctx context.Context, key string) (map[string]string, error)
}

// Repo implements usecase/search.ContentReader.
type Repo struct {
	store store
}

// New creates a content repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Job resolves a job parent record. domain.ErrNotFound when absent.
func (r *Repo) Job(ctx context.Context, id string) (domcontent.Job, error) {
	fields, err := r.get(ctx, domain.JobKey(id), "job", id)
	if err != nil {
		return domcontent.Job{}, err
	}
	return jobFromFields(id, fields), nil
}

// Event resolves an event parent record. domain.ErrNotFound when absent.
func (r *Repo) Event(ctx context.Context, id string) (domcontent.Event, error) {
	fields, err := r.get(ctx, domain.EventKey(id), "event", id)
	if err != nil {
		return domcontent.Event{}, err
	}
	return eventFromFields(id, fields), nil
}

// News resolves a news parent record. domain.ErrNotFound when absent.
func (r *Repo) News(ctx context.Context, id string) (domcontent.News, error) {
	fields, err := r.get(ctx, domain.NewsKey(id), "news", id)
	if err != nil {
		return domcontent.News{}, err
	}
	return newsFromFields(id, fields), nil
}

func (r *Repo) get(ctx context.Context, key, kind, id string) (map[string]string, error) {
	fields, err := r.store.HGetAll(ctx, key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return nil, fmt.Errorf("%s %s: %w", kind, id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get %s %s: %w", kind, id, err)
	}
	return fields, nil
}
