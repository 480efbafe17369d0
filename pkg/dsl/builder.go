package dsl

import (
	"fmt"

	"github.com/aretw0/rotary/pkg/adapters/memory"
	"github.com/aretw0/rotary/pkg/domain"
)

// Builder manages catalog construction.
type Builder struct {
	alphabet string
	slots    int
	pawls    int
	specs    []domain.RotorSpec
	names    map[string]bool
	err      error
}

// New creates a new catalog builder over the given alphabet.
func New(alphabet string) *Builder {
	return &Builder{
		alphabet: alphabet,
		names:    make(map[string]bool),
	}
}

// Slots sets the number of rotor slots.
func (b *Builder) Slots(n int) *Builder {
	b.slots = n
	return b
}

// Pawls sets the number of pawls (moving rotors).
func (b *Builder) Pawls(n int) *Builder {
	b.pawls = n
	return b
}

// Reflector adds a reflecting rotor definition.
func (b *Builder) Reflector(name, wiring string) *Builder {
	return b.add(domain.RotorSpec{Name: name, Role: domain.RoleReflector, Wiring: wiring})
}

// Fixed adds a non-rotating rotor definition.
func (b *Builder) Fixed(name, wiring string) *Builder {
	return b.add(domain.RotorSpec{Name: name, Role: domain.RoleFixed, Wiring: wiring})
}

// Moving adds a pawl-driven rotor definition with the given notch symbols.
func (b *Builder) Moving(name, wiring, notches string) *Builder {
	return b.add(domain.RotorSpec{Name: name, Role: domain.RoleMoving, Wiring: wiring, Notches: notches})
}

func (b *Builder) add(spec domain.RotorSpec) *Builder {
	if b.err != nil {
		return b
	}
	if spec.Name == "" {
		b.err = fmt.Errorf("rotor definition missing name")
		return b
	}
	if b.names[spec.Name] {
		b.err = fmt.Errorf("rotor %q defined twice", spec.Name)
		return b
	}
	b.names[spec.Name] = true
	b.specs = append(b.specs, spec)
	return b
}

// Build compiles the catalog into a memory Loader. Construction errors
// recorded during building are surfaced here, wiring errors at load time.
func (b *Builder) Build() (*memory.Loader, error) {
	if b.err != nil {
		return nil, fmt.Errorf("failed to build catalog: %w", b.err)
	}
	return memory.NewLoader(b.alphabet, b.slots, b.pawls, b.specs), nil
}
