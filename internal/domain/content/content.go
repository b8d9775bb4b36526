// Package content defines the parent entity records the search core reads.
// Records are stored as Redis hashes; timestamps are epoch milliseconds.
package content

import "encoding/json"

// StatusPublished is the only parent status visible to public search.
const StatusPublished = "published"

// Job is a job posting parent record.
type Job struct {
	ID        string
	Slug      string
	Status    string
	Metadata  string // free-form JSON blob, may be empty or malformed
	CreatedAt int64
	UpdatedAt int64
}

// Event is an event parent record.
type Event struct {
	ID        string
	Status    string
	StartDate string
	Metadata  string
	CreatedAt int64
	UpdatedAt int64
}

// News is a news article parent record.
type News struct {
	ID        string
	Status    string
	CreatedAt int64
	UpdatedAt int64
}

// Unit is a department/unit record. Units are not translated and carry no
// publication status.
type Unit struct {
	ID          string
	Name        string
	Description string
	CampusID    string
	CreatedAt   int64
	UpdatedAt   int64
}

// Metadata is the partially-known structure of the metadata JSON blob on
// jobs and events. Unknown keys are ignored.
type Metadata struct {
	Type      string `json:"type"`
	Company   string `json:"company"`
	Location  string `json:"location"`
	Date      string `json:"date"`
	StartDate string `json:"start_date"`
}

// ParseMetadata decodes the metadata blob. The blob is untrusted: an empty or
// malformed value yields nil, never an error.
func ParseMetadata(raw string) *Metadata {
	if raw == "" {
		return nil
	}
	var m Metadata
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return nil
	}
	return &m
}
