package search

import (
	"context"
	"testing"

	"github.com/kollektivet/sitesearch/internal/domain"
	"github.com/kollektivet/sitesearch/internal/domain/content"
	"github.com/kollektivet/sitesearch/internal/repository/translation"
)

// mockTranslations implements TranslationIndex for tests.
type mockTranslations struct {
	searchFieldFn func(ctx context.Context, field, query, parentType, locale string, limit int) ([]translation.Hit, error)
}

func (m *mockTranslations) SearchField(
	ctx context.Context, field, query, parentType, locale string, limit int,
) ([]translation.Hit, error) {
	if m.searchFieldFn != nil {
		return m.searchFieldFn(ctx, field, query, parentType, locale, limit)
	}
	return nil, nil
}

// mockContent implements ContentReader for tests. Unset resolvers report
// not-found.
type mockContent struct {
	jobFn   func(ctx context.Context, id string) (content.Job, error)
	eventFn func(ctx context.Context, id string) (content.Event, error)
	newsFn  func(ctx context.Context, id string) (content.News, error)
}

func (m *mockContent) Job(ctx context.Context, id string) (content.Job, error) {
	if m.jobFn != nil {
		return m.jobFn(ctx, id)
	}
	return content.Job{}, domain.ErrNotFound
}

func (m *mockContent) Event(ctx context.Context, id string) (content.Event, error) {
	if m.eventFn != nil {
		return m.eventFn(ctx, id)
	}
	return content.Event{}, domain.ErrNotFound
}

func (m *mockContent) News(ctx context.Context, id string) (content.News, error) {
	if m.newsFn != nil {
		return m.newsFn(ctx, id)
	}
	return content.News{}, domain.ErrNotFound
}

// mockUnits implements UnitIndex for tests.
type mockUnits struct {
	searchByNameFn func(ctx context.Context, query string, limit int) ([]content.Unit, error)
	campusNameFn   func(ctx context.Context, id string) (string, error)
}

func (m *mockUnits) SearchByName(ctx context.Context, query string, limit int) ([]content.Unit, error) {
	if m.searchByNameFn != nil {
		return m.searchByNameFn(ctx, query, limit)
	}
	return nil, nil
}

func (m *mockUnits) CampusName(ctx context.Context, id string) (string, error) {
	if m.campusNameFn != nil {
		return m.campusNameFn(ctx, id)
	}
	return "", domain.ErrNotFound
}

func newTestService(t *testing.T) (*Service, *mockTranslations, *mockContent, *mockUnits) {
	t.Helper()
	mt := &mockTranslations{}
	mc := &mockContent{}
	mu := &mockUnits{}
	return New(mt, mc, mu), mt, mc, mu
}
