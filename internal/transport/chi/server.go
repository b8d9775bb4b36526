// Package chi wires the search service into a chi HTTP router.
package chi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kollektivet/sitesearch/internal/domain/search/index"
	"github.com/kollektivet/sitesearch/internal/domain/search/request"
	"github.com/kollektivet/sitesearch/internal/domain/search/result"
	healthuc "github.com/kollektivet/sitesearch/internal/usecase/health"
)

// Error codes surfaced to callers. The response body is always a well-formed
// results envelope; empty results and failure share the same shape.
const (
	errCodeInternal     = "INTERNAL_ERROR"
	errCodeTimeout      = "TIMEOUT"
	errCodeUnauthorized = "UNAUTHORIZED"
)

// searcher is the consumer interface over the search usecase.
type searcher interface {
	Search(ctx context.Context, req *request.Request) []result.Result
}

// healthChecker is the consumer interface over the health usecase.
type healthChecker interface {
	Check(ctx context.Context) healthuc.Report
}

// Server implements the HTTP API.
type Server struct {
	search  searcher
	health  healthChecker
	logger  *zap.Logger
	timeout time.Duration
}

// NewServer creates an HTTP API server. timeout bounds one search request;
// zero disables the bound.
func NewServer(search searcher, health healthChecker, logger *zap.Logger, timeout time.Duration) *Server {
	return &Server{search: search, health: health, logger: logger, timeout: timeout}
}

// Routes mounts all handlers on the router.
func (s *Server) Routes(r chi.Router) {
	r.Post("/api/search", s.handleSearch)
	r.Get("/health", s.handleHealth)
	r.Get("/metrics", s.handleMetrics)
}

// searchResponse is the caller-facing envelope. Error is set only for
// timeout/internal failures; Results is never null.
type searchResponse struct {
	Results []searchResultItem `json:"results"`
	Error   string             `json:"error,omitempty"`
}

// searchResultItem mirrors result.Result without the ranking internals.
type searchResultItem struct {
	ID          string     `json:"id"`
	Index       index.Name `json:"index"`
	Title       string     `json:"title"`
	Name        string     `json:"name"`
	Href        string     `json:"href"`
	Description string     `json:"description,omitempty"`
	Date        string     `json:"date,omitempty"`
	Location    string     `json:"location,omitempty"`
	Type        string     `json:"type,omitempty"`
	Company     string     `json:"company,omitempty"`
	Department  string     `json:"department,omitempty"`
}

// handleSearch handles POST /api/search.
//
// Field-level garbage in the payload normalizes to defaults; only a body that
// fails to decode at all is treated as a fatal request error.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.logger.Error("read request body", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, searchResponse{
			Results: []searchResultItem{},
			Error:   errCodeInternal,
		})
		return
	}

	var payload request.Payload
	if len(bytes.TrimSpace(body)) > 0 {
		if err := json.Unmarshal(body, &payload); err != nil {
			s.logger.Error("unparsable search payload", zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, searchResponse{
				Results: []searchResultItem{},
				Error:   errCodeInternal,
			})
			return
		}
	}

	req := request.FromPayload(payload)

	ctx := r.Context()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	results := s.search.Search(ctx, &req)

	if ctx.Err() != nil {
		writeJSON(w, http.StatusOK, searchResponse{
			Results: []searchResultItem{},
			Error:   errCodeTimeout,
		})
		return
	}

	items := make([]searchResultItem, len(results))
	for i := range results {
		items[i] = itemFromResult(&results[i])
	}

	writeJSON(w, http.StatusOK, searchResponse{Results: items})
}

// handleHealth handles GET /health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
	})
}

// handleMetrics handles GET /metrics.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// itemFromResult maps a domain result to the wire shape, dropping the
// ranking internals: callers never observe score or recency.
func itemFromResult(r *result.Result) searchResultItem {
	return searchResultItem{
		ID:          r.ID,
		Index:       r.Index,
		Title:       r.Title,
		Name:        r.Name,
		Href:        r.Href,
		Description: r.Description,
		Date:        r.Date,
		Location:    r.Location,
		Type:        r.Type,
		Company:     r.Company,
		Department:  r.Department,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
