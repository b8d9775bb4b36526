package unit

import (
	"github.com/kollektivet/sitesearch/internal/db"
	"github.com/kollektivet/sitesearch/internal/domain"
)

// IndexDefinition describes the units FT index for startup bootstrap.
func IndexDefinition() *db.IndexDefinition {
	return &db.IndexDefinition{
		Name:     domain.UnitsIndexName,
		Prefixes: []string{domain.UnitKeyPrefix},
		Fields: []db.IndexField{
			{Name: FieldName, Type: db.IndexFieldText},
		},
	}
}
