package domain

import "fmt"

// Role classifies a rotor definition.
type Role string

const (
	// RoleReflector marks a non-rotating rotor that reflects the signal.
	RoleReflector Role = "reflector"
	// RoleFixed marks a non-rotating pass-through rotor.
	RoleFixed Role = "fixed"
	// RoleMoving marks a pawl-driven rotor with notches.
	RoleMoving Role = "moving"
)

// RotorSpec describes one rotor definition as it appears in a catalog
// source: a name, a role, a cycle-notation wiring string, and, for moving
// rotors, the notch symbols.
type RotorSpec struct {
	Name    string `json:"name" yaml:"name"`
	Role    Role   `json:"role" yaml:"role"`
	Wiring  string `json:"wiring" yaml:"wiring"`
	Notches string `json:"notches,omitempty" yaml:"notches,omitempty"`
}

// Build constructs the rotor this spec describes over the given alphabet.
func (s RotorSpec) Build(alphabet *Alphabet) (Rotor, error) {
	perm, err := NewPermutation(s.Wiring, alphabet)
	if err != nil {
		return nil, fmt.Errorf("rotor %q: %w", s.Name, err)
	}
	switch s.Role {
	case RoleReflector:
		return NewReflector(s.Name, perm), nil
	case RoleFixed:
		return NewFixedRotor(s.Name, perm), nil
	case RoleMoving:
		r, err := NewMovingRotor(s.Name, perm, s.Notches)
		if err != nil {
			return nil, fmt.Errorf("rotor %q: %w", s.Name, err)
		}
		return r, nil
	default:
		return nil, fmt.Errorf("rotor %q: unknown role %q", s.Name, s.Role)
	}
}

// Catalog is the set of rotor definitions available to a machine, together
// with the machine geometry they were published for. Rotor instances are
// shared: a machine built from a catalog references these very rotors, and
// Machine.ResetRings mutates them catalog-wide.
type Catalog struct {
	Alphabet *Alphabet
	Slots    int
	Pawls    int
	Rotors   []Rotor
}

// Lookup returns the rotor definition with the given name.
func (c *Catalog) Lookup(name string) (Rotor, error) {
	for _, r := range c.Rotors {
		if r.Name() == name {
			return r, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownRotor, name)
}

// Names returns the catalog's rotor names in definition order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.Rotors))
	for i, r := range c.Rotors {
		names[i] = r.Name()
	}
	return names
}

// NewCatalog builds every spec over the alphabet and validates the geometry:
// more than one slot, 0 <= pawls < slots, and at least as many definitions
// as slots.
func NewCatalog(alphabet *Alphabet, slots, pawls int, specs []RotorSpec) (*Catalog, error) {
	if slots <= 1 {
		return nil, fmt.Errorf("%w: need more than one rotor slot", ErrBadGeometry)
	}
	if pawls < 0 || pawls >= slots {
		return nil, fmt.Errorf("%w: pawls must be in 0..slots-1", ErrBadGeometry)
	}
	if len(specs) < slots {
		return nil, fmt.Errorf("%w: more rotor slots than available rotors", ErrBadGeometry)
	}
	rotors := make([]Rotor, 0, len(specs))
	for _, s := range specs {
		r, err := s.Build(alphabet)
		if err != nil {
			return nil, err
		}
		rotors = append(rotors, r)
	}
	return &Catalog{Alphabet: alphabet, Slots: slots, Pawls: pawls, Rotors: rotors}, nil
}
