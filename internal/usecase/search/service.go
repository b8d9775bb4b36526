// Package search implements the federated multi-index search aggregator.
package search

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/kollektivet/sitesearch/internal/domain/search/index"
	"github.com/kollektivet/sitesearch/internal/domain/search/rank"
	"github.com/kollektivet/sitesearch/internal/domain/search/request"
	"github.com/kollektivet/sitesearch/internal/domain/search/result"
	"github.com/kollektivet/sitesearch/internal/logger"
	"github.com/kollektivet/sitesearch/internal/metrics"
)

// Service fans a query out across the requested content indices and merges
// the per-index results into one ranked list.
type Service struct {
	translations TranslationIndex
	content      ContentReader
	units        UnitIndex
}

// New creates a search service.
func New(translations TranslationIndex, content ContentReader, units UnitIndex) *Service {
	return &Service{translations: translations, content: content, units: units}
}

// Search executes the federated search. It never returns an error: upstream
// failures degrade to empty contributions from the failing branch, so the
// caller always receives a well-formed (possibly empty) result list.
//
// Queries below the minimum searchable length short-circuit before any store
// access.
func (s *Service) Search(ctx context.Context, req *request.Request) []result.Result {
	if req.TooShort() {
		return nil
	}

	indices := req.Indices()
	perIndex := make([][]result.Result, len(indices))

	// Fan out across indices; each branch settles on its own (success or
	// swallowed failure) before the merge.
	var wg sync.WaitGroup
	for i, name := range indices {
		wg.Add(1)
		go func(i int, name index.Name) {
			defer wg.Done()
			metrics.SearchQueriesTotal.WithLabelValues(string(name)).Inc()
			perIndex[i] = s.searchIndex(ctx, req, name)
		}(i, name)
	}
	wg.Wait()

	var flat []result.Result
	for _, rs := range perIndex {
		flat = append(flat, rs...)
	}

	merged := rank.Merge(flat, req.Limit())
	metrics.SearchResultsReturned.Observe(float64(len(merged)))
	return merged
}

// searchIndex dispatches to the handler for one index. The index set is
// closed; there is no registry to extend.
func (s *Service) searchIndex(ctx context.Context, req *request.Request, name index.Name) []result.Result {
	switch name {
	case index.Jobs:
		return s.searchTranslated(ctx, req, index.Jobs, parentTypeJob, s.resolveJob)
	case index.Events:
		return s.searchTranslated(ctx, req, index.Events, parentTypeEvent, s.resolveEvent)
	case index.News:
		return s.searchTranslated(ctx, req, index.News, parentTypeNews, s.resolveNews)
	case index.Units:
		return s.searchUnits(ctx, req)
	}
	logger.FromContext(ctx).Warn("unknown search index", zap.String("index", string(name)))
	return nil
}
