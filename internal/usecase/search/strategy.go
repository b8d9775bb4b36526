package search

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/kollektivet/sitesearch/internal/domain"
	"github.com/kollektivet/sitesearch/internal/domain/content"
	"github.com/kollektivet/sitesearch/internal/domain/search/index"
	"github.com/kollektivet/sitesearch/internal/domain/search/rank"
	"github.com/kollektivet/sitesearch/internal/domain/search/request"
	"github.com/kollektivet/sitesearch/internal/domain/search/result"
	"github.com/kollektivet/sitesearch/internal/logger"
	"github.com/kollektivet/sitesearch/internal/metrics"
	"github.com/kollektivet/sitesearch/internal/repository/translation"
)

// parent_type tag values in the translations collection.
const (
	parentTypeJob   = "job"
	parentTypeEvent = "event"
	parentTypeNews  = "news"
)

// resolved is the outcome of resolving one translation hit to its parent.
type resolved struct {
	visible   bool
	updatedAt int64 // parent recency; 0 when the parent carries no timestamps
	shape     func(hit translation.Hit) result.Result
}

// resolverFunc resolves a parent entity by id.
type resolverFunc func(ctx context.Context, id string) (resolved, error)

// searchTranslated implements the shared translation search strategy for
// jobs, events, and news: per-field queries run concurrently, every hit is
// resolved to its parent and gated on visibility, scored, and deduplicated so
// at most one candidate survives per parent entity.
//
// Each field is queried independently because the upstream full-text engine
// ranks per single field; merging with explicit priority weights keeps
// cross-field ranking deterministic.
func (s *Service) searchTranslated(
	ctx context.Context, req *request.Request,
	name index.Name, parentType string, resolve resolverFunc,
) []result.Result {
	fields := translation.Fields()
	hitsByField := make([][]translation.Hit, len(fields))

	var wg sync.WaitGroup
	for i, field := range fields {
		wg.Add(1)
		go func(i int, field string) {
			defer wg.Done()
			hits, err := s.translations.SearchField(
				ctx, field, req.Query(), parentType, req.Locale(), req.FetchLimit(),
			)
			if err != nil {
				// A failed field query contributes no candidates; the rest
				// of the request proceeds.
				metrics.SearchUpstreamErrorsTotal.WithLabelValues(string(name), field).Inc()
				logger.FromContext(ctx).Warn("field query failed",
					zap.String("index", string(name)),
					zap.String("field", field),
					zap.Error(err),
				)
				return
			}
			hitsByField[i] = hits
		}(i, field)
	}
	wg.Wait()

	var cands []rank.Candidate
	for priority, hits := range hitsByField {
		for position, hit := range hits {
			res, err := resolve(ctx, hit.ParentID)
			if err != nil {
				// A hit with no resolvable parent is discarded; store errors
				// are logged but never abort the index.
				if errors.Is(err, domain.ErrNotFound) {
					continue
				}
				logger.FromContext(ctx).Warn("parent resolution failed",
					zap.String("index", string(name)),
					zap.String("parent_id", hit.ParentID),
					zap.Error(err),
				)
				continue
			}
			if !res.visible {
				continue
			}

			value := hit.Title
			if fields[priority] == translation.FieldDescription {
				value = hit.Description
			}

			localeMatch := req.Locale() != "" && hit.Locale == req.Locale()
			score := rank.Score(value, req.Query(), priority, position, localeMatch)
			if score == 0 {
				continue
			}

			updated := firstNonZero(res.updatedAt, hit.UpdatedAt, hit.CreatedAt)
			shaped := res.shape(hit)
			shaped.Score = score
			shaped.UpdatedAt = updated

			cands = append(cands, rank.Candidate{
				Key:       hit.ParentID,
				Score:     score,
				UpdatedAt: updated,
				Result:    shaped,
			})
		}
	}

	return resultsOf(rank.Best(cands))
}

// searchUnits handles the non-translated units index: a direct name search
// with no visibility gate and best-effort campus enrichment.
func (s *Service) searchUnits(ctx context.Context, req *request.Request) []result.Result {
	units, err := s.units.SearchByName(ctx, req.Query(), req.FetchLimit())
	if err != nil {
		metrics.SearchUpstreamErrorsTotal.WithLabelValues(string(index.Units), "name").Inc()
		logger.FromContext(ctx).Warn("unit query failed", zap.Error(err))
		return nil
	}

	var cands []rank.Candidate
	for position, u := range units {
		score := rank.Score(u.Name, req.Query(), 0, position, false)
		if score == 0 {
			continue
		}

		campusName := ""
		if u.CampusID != "" {
			// Enrichment only: a failed campus lookup still returns the unit,
			// just without a location label.
			if name, err := s.units.CampusName(ctx, u.CampusID); err == nil {
				campusName = name
			}
		}

		shaped := buildUnitResult(u, campusName)
		shaped.Score = score
		shaped.UpdatedAt = firstNonZero(u.UpdatedAt, u.CreatedAt)

		cands = append(cands, rank.Candidate{
			Key:       u.ID,
			Score:     score,
			UpdatedAt: shaped.UpdatedAt,
			Result:    shaped,
		})
	}

	return resultsOf(rank.Best(cands))
}

// --- Parent resolvers ---

func (s *Service) resolveJob(ctx context.Context, id string) (resolved, error) {
	job, err := s.content.Job(ctx, id)
	if err != nil {
		return resolved{}, err
	}
	return resolved{
		visible:   job.Status == content.StatusPublished,
		updatedAt: firstNonZero(job.UpdatedAt, job.CreatedAt),
		shape: func(hit translation.Hit) result.Result {
			return buildJobResult(job, hit)
		},
	}, nil
}

func (s *Service) resolveEvent(ctx context.Context, id string) (resolved, error) {
	event, err := s.content.Event(ctx, id)
	if err != nil {
		return resolved{}, err
	}
	return resolved{
		visible:   event.Status == content.StatusPublished,
		updatedAt: firstNonZero(event.UpdatedAt, event.CreatedAt),
		shape: func(hit translation.Hit) result.Result {
			return buildEventResult(event, hit)
		},
	}, nil
}

func (s *Service) resolveNews(ctx context.Context, id string) (resolved, error) {
	news, err := s.content.News(ctx, id)
	if err != nil {
		return resolved{}, err
	}
	return resolved{
		visible:   news.Status == content.StatusPublished,
		updatedAt: firstNonZero(news.UpdatedAt, news.CreatedAt),
		shape: func(hit translation.Hit) result.Result {
			return buildNewsResult(news, hit)
		},
	}, nil
}

func resultsOf(cands []rank.Candidate) []result.Result {
	if len(cands) == 0 {
		return nil
	}
	out := make([]result.Result, len(cands))
	for i, c := range cands {
		out[i] = c.Result
	}
	return out
}

func firstNonZero(vals ...int64) int64 {
	for _, v := range vals {
		if v != 0 {
			return v
		}
	}
	return 0
}
