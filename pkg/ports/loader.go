package ports

import (
	"context"

	"github.com/aretw0/rotary/pkg/domain"
)

// CatalogLoader defines how the engine retrieves its rotor catalog.
// This allows the catalog source (YAML file, memory, generated) to be
// decoupled from the machine core.
type CatalogLoader interface {
	// LoadCatalog returns the full catalog: alphabet, geometry, and every
	// available rotor definition, constructed and ready for assignment.
	LoadCatalog(ctx context.Context) (*domain.Catalog, error)
}
