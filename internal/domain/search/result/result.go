// Package result defines the caller-facing search hit.
package result

import "github.com/kollektivet/sitesearch/internal/domain/search/index"

// Result is a single shaped search hit. The field set is the superset union
// of what the per-index shapers produce; optional fields are empty when an
// index does not populate them.
//
// Score and UpdatedAt drive ranking only. The transport layer strips them
// before the response leaves the service; callers never observe them.
type Result struct {
	Index index.Name
	ID    string
	Title string
	Name  string // mirror of Title, kept for template compatibility
	Href  string

	Description string
	Date        string
	Location    string
	Type        string
	Company     string
	Department  string

	Score     float64
	UpdatedAt int64
}
