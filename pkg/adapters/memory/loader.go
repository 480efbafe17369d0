package memory

import (
	"context"
	"fmt"

	"github.com/aretw0/rotary/pkg/domain"
)

// Loader implements ports.CatalogLoader from in-memory rotor specs.
type Loader struct {
	alphabet string
	slots    int
	pawls    int
	specs    []domain.RotorSpec
}

// NewLoader creates a loader from raw definitions. Validation happens at
// LoadCatalog time, matching file-backed loaders.
func NewLoader(alphabet string, slots, pawls int, specs []domain.RotorSpec) *Loader {
	return &Loader{alphabet: alphabet, slots: slots, pawls: pawls, specs: specs}
}

// NewFromSpecs creates a loader from domain objects with the standard
// 26-letter alphabet. This improves DX for tests.
func NewFromSpecs(slots, pawls int, specs ...domain.RotorSpec) (*Loader, error) {
	for _, s := range specs {
		if s.Name == "" {
			return nil, fmt.Errorf("rotor spec missing name")
		}
	}
	return NewLoader(StandardAlphabet, slots, pawls, specs), nil
}

// LoadCatalog builds the catalog from the held specs. Each call constructs
// fresh rotor instances, so independent machines never alias state.
func (l *Loader) LoadCatalog(ctx context.Context) (*domain.Catalog, error) {
	alpha, err := domain.NewAlphabet(l.alphabet)
	if err != nil {
		return nil, err
	}
	return domain.NewCatalog(alpha, l.slots, l.pawls, l.specs)
}
