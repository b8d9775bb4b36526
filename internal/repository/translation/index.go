package translation

import (
	"github.com/kollektivet/sitesearch/internal/db"
	"github.com/kollektivet/sitesearch/internal/domain"
)

// IndexDefinition describes the translations FT index for startup bootstrap.
func IndexDefinition() *db.IndexDefinition {
	return &db.IndexDefinition{
		Name:     domain.TranslationsIndexName,
		Prefixes: []string{domain.TranslationKeyPrefix},
		Fields: []db.IndexField{
			{Name: FieldTitle, Type: db.IndexFieldText},
			{Name: FieldDescription, Type: db.IndexFieldText},
			{Name: "locale", Type: db.IndexFieldTag},
			{Name: "parent_type", Type: db.IndexFieldTag},
		},
	}
}
