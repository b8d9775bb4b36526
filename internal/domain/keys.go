// Package domain holds shared constants and sentinel errors for the search core.
package domain

// KeyPrefix namespaces every hash key and FT index owned by this service.
const KeyPrefix = "portal:"

// FT index names.
const (
	TranslationsIndexName = KeyPrefix + "translations:idx"
	UnitsIndexName        = KeyPrefix + "units:idx"
)

// TranslationKey returns the hash key for a translation record.
func TranslationKey(id string) string { return KeyPrefix + "translations:" + id }

// JobKey returns the hash key for a job record.
func JobKey(id string) string { return KeyPrefix + "jobs:" + id }

// EventKey returns the hash key for an event record.
func EventKey(id string) string { return KeyPrefix + "events:" + id }

// NewsKey returns the hash key for a news record.
func NewsKey(id string) string { return KeyPrefix + "news:" + id }

// UnitKey returns the hash key for a unit record.
func UnitKey(id string) string { return KeyPrefix + "units:" + id }

// CampusKey returns the hash key for a campus record.
func CampusKey(id string) string { return KeyPrefix + "campuses:" + id }

// Key prefixes used by FT index definitions.
const (
	TranslationKeyPrefix = KeyPrefix + "translations:"
	UnitKeyPrefix        = KeyPrefix + "units:"
)
