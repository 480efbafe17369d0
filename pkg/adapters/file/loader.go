package file

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/rotary/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.CatalogLoader backed by a YAML catalog file.
//
// Catalog format:
//
//	alphabet: ABCDEFGHIJKLMNOPQRSTUVWXYZ
//	slots: 5
//	pawls: 3
//	rotors:
//	  - name: I
//	    role: moving
//	    wiring: "(AELTPHQXRU) (BKNW) (CMOY) (DFG) (IV) (JZ) (S)"
//	    notches: Q
//	  - name: B
//	    role: reflector
//	    wiring: "(AE) (BN) ..."
type Loader struct {
	Path string
}

// New creates a loader reading the catalog from the given path.
func New(path string) *Loader {
	return &Loader{Path: path}
}

// catalogDoc is the on-disk shape. Rotor entries decode via mapstructure so
// that unknown keys surface as errors instead of being silently dropped.
type catalogDoc struct {
	Alphabet string           `yaml:"alphabet"`
	Slots    int              `yaml:"slots"`
	Pawls    int              `yaml:"pawls"`
	Rotors   []map[string]any `yaml:"rotors"`
}

// rotorEntry mirrors domain.RotorSpec with loose YAML keys.
type rotorEntry struct {
	Name    string `mapstructure:"name"`
	Role    string `mapstructure:"role"`
	Wiring  string `mapstructure:"wiring"`
	Notches string `mapstructure:"notches"`
}

// LoadCatalog reads, decodes, and constructs the catalog.
func (l *Loader) LoadCatalog(ctx context.Context) (*domain.Catalog, error) {
	raw, err := os.ReadFile(l.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var doc catalogDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", l.Path, err)
	}
	if doc.Alphabet == "" {
		return nil, fmt.Errorf("catalog %s: missing alphabet", l.Path)
	}

	specs := make([]domain.RotorSpec, 0, len(doc.Rotors))
	for i, entry := range doc.Rotors {
		var re rotorEntry
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:      &re,
			ErrorUnused: true,
		})
		if err != nil {
			return nil, err
		}
		if err := dec.Decode(entry); err != nil {
			return nil, fmt.Errorf("catalog %s: rotor entry %d: %w", l.Path, i, err)
		}
		if re.Name == "" {
			return nil, fmt.Errorf("catalog %s: rotor entry %d missing name", l.Path, i)
		}
		specs = append(specs, domain.RotorSpec{
			Name:    re.Name,
			Role:    domain.Role(re.Role),
			Wiring:  re.Wiring,
			Notches: re.Notches,
		})
	}

	alpha, err := domain.NewAlphabet(doc.Alphabet)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", l.Path, err)
	}
	cat, err := domain.NewCatalog(alpha, doc.Slots, doc.Pawls, specs)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", l.Path, err)
	}
	return cat, nil
}
