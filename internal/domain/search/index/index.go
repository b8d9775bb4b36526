// Package index defines the closed set of searchable content types.
package index

// Name identifies one searchable content type. The set is closed: every Name
// maps to exactly one handler and there is no registration mechanism.
type Name string

const (
	// Jobs is the job postings index.
	Jobs Name = "jobs"
	// Events is the events index.
	Events Name = "events"
	// News is the news articles index.
	News Name = "news"
	// Units is the departments/units index.
	Units Name = "units"
)

// All returns the full default index set in canonical order.
func All() []Name {
	return []Name{Jobs, Events, News, Units}
}

// Valid reports whether n is a member of the closed index set.
func Valid(n Name) bool {
	switch n {
	case Jobs, Events, News, Units:
		return true
	}
	return false
}

// Resolve filters raw entries against the closed set, deduplicates while
// preserving canonical order, and substitutes the full default set when
// nothing valid remains. A mix of valid and invalid entries keeps the valid
// ones; only a fully invalid (or empty) input falls back to the defaults.
func Resolve(raw []string) []Name {
	requested := make(map[Name]bool, len(raw))
	for _, r := range raw {
		n := Name(r)
		if Valid(n) {
			requested[n] = true
		}
	}
	if len(requested) == 0 {
		return All()
	}
	out := make([]Name, 0, len(requested))
	for _, n := range All() {
		if requested[n] {
			out = append(out, n)
		}
	}
	return out
}
