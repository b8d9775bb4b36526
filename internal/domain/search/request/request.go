// Package request normalizes the raw search payload into a validated request.
package request

import (
	"math"
	"strings"

	"github.com/kollektivet/sitesearch/internal/domain/search/index"
)

// Search parameter limits.
const (
	// MinQueryLength is the shortest query that triggers a search; anything
	// shorter short-circuits to an empty result list.
	MinQueryLength = 2
	// DefaultLimit applies when the caller omits limit or sends garbage.
	DefaultLimit = 10
	// MaxLimit caps the result count regardless of what the caller asks for.
	MaxLimit = 25
)

// Payload is the raw, untyped request body. Field types are deliberately
// loose: malformed values normalize to defaults instead of failing the
// request.
type Payload struct {
	Query   any `json:"query"`
	Indices any `json:"indices"`
	Limit   any `json:"limit"`
	Locale  any `json:"locale"`
}

// Request is a normalized search request.
type Request struct {
	query   string
	indices []index.Name
	limit   int
	locale  string
}

// FromPayload normalizes a raw payload. It never fails: every malformed field
// falls back to its default.
func FromPayload(p Payload) Request {
	r := Request{
		limit:   DefaultLimit,
		indices: index.All(),
	}

	if q, ok := p.Query.(string); ok {
		r.query = strings.TrimSpace(q)
	}

	if l, ok := coerceNumber(p.Limit); ok {
		r.limit = clampLimit(l)
	}

	if loc, ok := p.Locale.(string); ok && len(loc) == 2 {
		r.locale = loc
	}

	if raw, ok := coerceStrings(p.Indices); ok {
		r.indices = index.Resolve(raw)
	}

	return r
}

// New builds a request from typed parameters, applying the same normalization
// as FromPayload. Used by in-process callers (SDK, tests).
func New(query string, indices []string, limit int, locale string) Request {
	r := Request{
		query:   strings.TrimSpace(query),
		indices: index.Resolve(indices),
		limit:   DefaultLimit,
	}
	if limit != 0 {
		r.limit = clampLimit(float64(limit))
	}
	if len(locale) == 2 {
		r.locale = locale
	}
	return r
}

// Query returns the trimmed query string.
func (r *Request) Query() string { return r.query }

// Indices returns the resolved index set.
func (r *Request) Indices() []index.Name { return r.indices }

// Limit returns the normalized result limit in [1, MaxLimit].
func (r *Request) Limit() int { return r.limit }

// Locale returns the two-letter locale code, or "" when absent.
func (r *Request) Locale() string { return r.locale }

// TooShort reports whether the query is below the searchable length. Such
// requests return an empty result list without touching the store.
func (r *Request) TooShort() bool {
	return len([]rune(r.query)) < MinQueryLength
}

// FetchLimit is the per-field over-fetch cap: dedup and visibility filtering
// discard hits downstream, so each upstream query asks for more than limit.
func (r *Request) FetchLimit() int {
	if n := r.limit * 3; n > 15 {
		return n
	}
	return 15
}

func clampLimit(l float64) int {
	if l < 1 {
		return 1
	}
	if l > MaxLimit {
		return MaxLimit
	}
	return int(l)
}

func coerceNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return n, true
	case int:
		return float64(n), true
	}
	return 0, false
}

func coerceStrings(v any) ([]string, bool) {
	switch vs := v.(type) {
	case []string:
		return vs, true
	case []any:
		out := make([]string, 0, len(vs))
		for _, e := range vs {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out, true
	}
	return nil, false
}
