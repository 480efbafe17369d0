package domain

import (
	"fmt"
	"strings"
)

// Machine is a complete rotor cipher machine: N rotor slots (slot 1 holds
// the reflector, slot N is the fastest wheel), P pawls, a shared catalog of
// rotor definitions, and an optional plugboard.
//
// Machines are not safe for concurrent use, and two machines sharing one
// catalog alias the same rotor instances; callers must serialize access.
type Machine struct {
	alphabet  *Alphabet
	numRotors int
	numPawls  int
	catalog   []Rotor
	slots     []Rotor // slots[i] occupies slot i+1; nil until InsertRotors
	plugboard *Permutation
	textbook  bool
}

// MachineOption configures machine construction.
type MachineOption func(*Machine)

// WithTextbookStepping switches the stepping rule to the textbook
// double-stepping behavior, where each of the two rotors affected by a
// notch advances exactly once per keypress. The default reproduces the
// reference rule, which applies one extra advance to the right neighbor of
// a stepping rotor (see Machine.step).
func WithTextbookStepping() MachineOption {
	return func(m *Machine) {
		m.textbook = true
	}
}

// NewMachine creates a machine with numRotors slots and pawls moving
// rotors, drawing definitions from the given catalog rotors.
func NewMachine(alphabet *Alphabet, numRotors, pawls int, catalog []Rotor, opts ...MachineOption) (*Machine, error) {
	if numRotors <= 1 {
		return nil, fmt.Errorf("%w: need more than one rotor slot", ErrBadGeometry)
	}
	if pawls < 0 || pawls >= numRotors {
		return nil, fmt.Errorf("%w: pawls must be in 0..slots-1", ErrBadGeometry)
	}
	if len(catalog) < numRotors {
		return nil, fmt.Errorf("%w: more rotor slots than available rotors", ErrBadGeometry)
	}
	m := &Machine{
		alphabet:  alphabet,
		numRotors: numRotors,
		numPawls:  pawls,
		catalog:   catalog,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// NewMachineFromCatalog creates a machine with the catalog's published geometry.
func NewMachineFromCatalog(c *Catalog, opts ...MachineOption) (*Machine, error) {
	return NewMachine(c.Alphabet, c.Slots, c.Pawls, c.Rotors, opts...)
}

// Alphabet returns the machine's alphabet.
func (m *Machine) Alphabet() *Alphabet { return m.alphabet }

// NumRotors returns the number of rotor slots.
func (m *Machine) NumRotors() int { return m.numRotors }

// NumPawls returns the number of pawls, which equals the number of moving
// rotors a valid assignment must contain.
func (m *Machine) NumPawls() int { return m.numPawls }

// Slot returns the rotor currently occupying the given slot (1-based), or
// nil if no assignment has been made.
func (m *Machine) Slot(i int) Rotor {
	if m.slots == nil || i < 1 || i > m.numRotors {
		return nil
	}
	return m.slots[i-1]
}

// InsertRotors assigns the named rotors to slots 1..N, name[0] being the
// reflector. The assignment is atomic: on any validation failure the
// previous assignment is left untouched. Every assigned rotor is reset to
// setting 0 and ring 0.
func (m *Machine) InsertRotors(names []string) error {
	if len(names) != m.numRotors {
		return fmt.Errorf("%w: got %d rotor names, want %d", ErrInvalidSetting, len(names), m.numRotors)
	}

	slots := make([]Rotor, m.numRotors)
	moving := 0
	for i, name := range names {
		var found Rotor
		for _, r := range m.catalog {
			if r.Name() == name {
				found = r
				break
			}
		}
		if found == nil {
			return fmt.Errorf("%w: %q", ErrUnknownRotor, name)
		}
		if i == 0 && !found.Reflects() {
			return fmt.Errorf("%w: %q does not reflect", ErrReflectorRequired, name)
		}
		for _, assigned := range slots[:i] {
			if assigned == found {
				return fmt.Errorf("%w: %q", ErrDuplicateRotor, name)
			}
		}
		if found.Rotates() {
			moving++
		}
		slots[i] = found
	}
	if moving != m.numPawls {
		return fmt.Errorf("%w: %d moving rotors for %d pawls", ErrPawlCountMismatch, moving, m.numPawls)
	}

	for _, r := range slots {
		r.Set(0)
		r.SetRing(0)
	}
	m.slots = slots
	return nil
}

// SetRotors positions the rotors in slots 2..N according to the settings
// string, left to right. The reflector in slot 1 is never user-set.
func (m *Machine) SetRotors(setting string) error {
	return m.applySettings(setting, func(r Rotor, i int) {
		r.Set(i)
	})
}

// SetRings applies ring offsets to slots 2..N, left to right.
func (m *Machine) SetRings(rings string) error {
	return m.applySettings(rings, func(r Rotor, i int) {
		r.SetRing(i)
	})
}

func (m *Machine) applySettings(s string, apply func(Rotor, int)) error {
	if m.slots == nil {
		return fmt.Errorf("%w: no rotors inserted", ErrInvalidSetting)
	}
	runes := []rune(s)
	if len(runes) != m.numRotors-1 {
		return fmt.Errorf("%w: got %d positions, want %d", ErrInvalidSetting, len(runes), m.numRotors-1)
	}
	indices := make([]int, len(runes))
	for i, r := range runes {
		idx, err := m.alphabet.ToIndex(r)
		if err != nil {
			return fmt.Errorf("%w: %q not in alphabet", ErrInvalidSetting, r)
		}
		indices[i] = idx
	}
	for i, idx := range indices {
		apply(m.slots[i+1], idx)
	}
	return nil
}

// ResetRings sets the ring of every rotor in the catalog back to zero, not
// just the rotors currently assigned to slots. The catalog-wide scope is a
// preserved property of the reference machine.
func (m *Machine) ResetRings() {
	for _, r := range m.catalog {
		r.SetRing(0)
	}
}

// SetPlugboard installs the plugboard permutation, which must be defined
// over the machine's exact alphabet.
func (m *Machine) SetPlugboard(p *Permutation) error {
	if !m.alphabet.Equal(p.Alphabet()) {
		return ErrAlphabetMismatch
	}
	m.plugboard = p
	return nil
}

// step advances the rotor bank one keypress. The rightmost rotor always
// advances; a rotor whose right neighbor sat at a notch advances too, and
// under the default rule that right neighbor receives one additional
// advance on top of its own. The textbook option advances each affected
// rotor exactly once instead.
func (m *Machine) step() {
	if m.textbook {
		m.stepTextbook()
		return
	}

	right := m.slots[m.numRotors-1]
	rightAtNotch := right.AtNotch()
	right.Advance()
	for i := m.numRotors - 2; i >= 1; i-- {
		curr := m.slots[i]
		currAtNotch := curr.AtNotch()
		if curr.Rotates() && rightAtNotch {
			curr.Advance()
			if i+1 < m.numRotors-1 {
				m.slots[i+1].Advance()
			}
		}
		rightAtNotch = currAtNotch
	}
}

// stepTextbook advances rotors per the historical description: the
// rightmost always; any moving rotor whose right neighbor is at a notch;
// and any moving rotor at its own notch whose left neighbor is also driven
// by a pawl (the double-step). Notch states are read before any advance.
func (m *Machine) stepTextbook() {
	advance := make([]bool, m.numRotors)
	advance[m.numRotors-1] = true
	for i := 1; i < m.numRotors-1; i++ {
		curr := m.slots[i]
		if !curr.Rotates() {
			continue
		}
		if m.slots[i+1].AtNotch() || (curr.AtNotch() && m.slots[i-1].Rotates()) {
			advance[i] = true
		}
	}
	for i, a := range advance {
		if a {
			m.slots[i].Advance()
		}
	}
}

// ConvertIndex advances the machine one step and routes the index through
// plugboard, rotors, reflector and back.
func (m *Machine) ConvertIndex(c int) int {
	m.step()

	if m.plugboard != nil {
		c = m.plugboard.Permute(c)
	}
	for i := m.numRotors - 1; i >= 0; i-- {
		c = m.slots[i].ConvertForward(c)
	}
	for i := 0; i < m.numRotors; i++ {
		if m.slots[i].Reflects() {
			continue
		}
		c = m.slots[i].ConvertBackward(c)
	}
	if m.plugboard != nil {
		c = m.plugboard.Permute(c)
	}
	return c
}

// ConvertRune converts a single symbol, advancing the machine.
func (m *Machine) ConvertRune(r rune) (rune, error) {
	i, err := m.alphabet.ToIndex(r)
	if err != nil {
		return 0, err
	}
	return m.alphabet.ToSymbol(m.ConvertIndex(i))
}

// Convert converts a message symbol by symbol, advancing the machine once
// per symbol. The call fails before converting a symbol that is outside
// the alphabet, leaving no further state change for that symbol.
func (m *Machine) Convert(msg string) (string, error) {
	var b strings.Builder
	for _, r := range msg {
		out, err := m.ConvertRune(r)
		if err != nil {
			return "", err
		}
		b.WriteRune(out)
	}
	return b.String(), nil
}
