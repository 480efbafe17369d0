package domain

// Rotor is one wheel of the machine: a wired permutation plus a mutable
// angular setting and ring offset. The three variants (reflector, fixed,
// moving) differ only in Rotates, Reflects, AtNotch and Advance.
type Rotor interface {
	// Name identifies the rotor within a catalog.
	Name() string

	// Permutation returns the rotor's wiring.
	Permutation() *Permutation

	// Setting returns the current angular position, 0..size-1.
	Setting() int

	// Ring returns the current ring offset, 0..size-1.
	Ring() int

	// Set moves the rotor to the given position (wrapped into range).
	Set(posn int)

	// SetSymbol moves the rotor to the position of the given alphabet symbol.
	SetSymbol(r rune) error

	// SetRing changes the ring offset (wrapped into range). Notch positions
	// computed at construction are deliberately not recomputed.
	SetRing(ring int)

	// Rotates reports whether the rotor can advance.
	Rotates() bool

	// Reflects reports whether the rotor is a reflector.
	Reflects() bool

	// AtNotch reports whether the rotor currently sits at a notch position.
	AtNotch() bool

	// Advance rotates the rotor one step. A no-op for non-moving rotors.
	Advance()

	// ConvertForward transforms a right-side contact index to the left side.
	ConvertForward(contact int) int

	// ConvertBackward transforms a left-side contact index to the right side.
	ConvertBackward(contact int) int
}

// rotor is the shared base for all variants.
type rotor struct {
	name    string
	perm    *Permutation
	setting int
	ring    int
}

func (r *rotor) Name() string              { return r.name }
func (r *rotor) Permutation() *Permutation { return r.perm }
func (r *rotor) Setting() int              { return r.setting }
func (r *rotor) Ring() int                 { return r.ring }

func (r *rotor) Set(posn int) {
	r.setting = r.perm.Wrap(posn)
}

func (r *rotor) SetSymbol(sym rune) error {
	i, err := r.perm.Alphabet().ToIndex(sym)
	if err != nil {
		return err
	}
	r.setting = i
	return nil
}

func (r *rotor) SetRing(ring int) {
	r.ring = r.perm.Wrap(ring)
}

func (r *rotor) Rotates() bool  { return false }
func (r *rotor) Reflects() bool { return false }
func (r *rotor) AtNotch() bool  { return false }
func (r *rotor) Advance()       {}

// ConvertForward routes a signal entering at the right-side contact through
// the wiring. The effective internal offset is setting - ring.
func (r *rotor) ConvertForward(contact int) int {
	offset := r.setting - r.ring
	return r.perm.Wrap(r.perm.Permute(r.perm.Wrap(contact+offset)) - offset)
}

// ConvertBackward routes a signal entering at the left-side contact through
// the inverse wiring.
func (r *rotor) ConvertBackward(contact int) int {
	offset := r.setting - r.ring
	return r.perm.Wrap(r.perm.Invert(r.perm.Wrap(contact+offset)) - offset)
}

// FixedRotor is a non-rotating, non-reflecting rotor.
type FixedRotor struct {
	rotor
}

// NewFixedRotor creates a fixed rotor with the given wiring.
func NewFixedRotor(name string, perm *Permutation) *FixedRotor {
	return &FixedRotor{rotor{name: name, perm: perm}}
}

// Reflector is a non-rotating rotor that bounces the signal back through the
// rotor stack. Its wiring is conventionally a derangement; catalog
// validation, not the rotor, enforces that.
type Reflector struct {
	rotor
}

// NewReflector creates a reflector with the given wiring.
func NewReflector(name string, perm *Permutation) *Reflector {
	return &Reflector{rotor{name: name, perm: perm}}
}

// Reflects always reports true for a reflector.
func (r *Reflector) Reflects() bool { return true }

// MovingRotor is a rotor driven by a pawl, with a set of notch positions at
// which it causes its left neighbor to advance.
type MovingRotor struct {
	rotor
	notches []int
}

// NewMovingRotor creates a moving rotor whose notches are at the positions
// of the given symbols. Notch indices are computed once, relative to the
// ring value at construction time (zero), and are never recomputed by
// SetRing; ring changes shift the reading offset but not the trigger
// positions. This mirrors the reference behavior exactly.
func NewMovingRotor(name string, perm *Permutation, notches string) (*MovingRotor, error) {
	m := &MovingRotor{rotor: rotor{name: name, perm: perm}}
	for _, sym := range notches {
		i, err := perm.Alphabet().ToIndex(sym)
		if err != nil {
			return nil, err
		}
		m.notches = append(m.notches, perm.Wrap(i-m.ring))
	}
	return m, nil
}

// Rotates always reports true for a moving rotor.
func (m *MovingRotor) Rotates() bool { return true }

// AtNotch reports whether the current setting is a notch position.
func (m *MovingRotor) AtNotch() bool {
	for _, n := range m.notches {
		if n == m.setting {
			return true
		}
	}
	return false
}

// Advance steps the rotor by 1 + ring. The ring offset feeding into the
// step size is an unusual but deliberate property of the reference
// machine's stepping rule, preserved as-is.
func (m *MovingRotor) Advance() {
	m.Set(m.setting + 1 + m.ring)
}
