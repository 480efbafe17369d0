package domain_test

import (
	"testing"

	"github.com/aretw0/rotary/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestCatalog builds a catalog of historical rotors large enough for a
// five-slot, three-pawl machine.
func newTestCatalog(t *testing.T, alpha *domain.Alphabet) []domain.Rotor {
	t.Helper()

	moving := func(name, wiring, notches string) domain.Rotor {
		r, err := domain.NewMovingRotor(name, mustPermutation(t, wiring, alpha), notches)
		require.NoError(t, err)
		return r
	}

	return []domain.Rotor{
		moving("I", "(AELTPHQXRU) (BKNW) (CMOY) (DFG) (IV) (JZ) (S)", "Q"),
		moving("II", "(FIXVYOMW) (CDKLHUP) (ESZ) (BJ) (GR) (NT) (A) (Q)", "E"),
		moving("III", "(ABDHPEJT) (CFLVMZOYQIRWUKXSG) (N)", "V"),
		moving("IV", "(AEPLIYWCOXMRFZBSTGJQNH) (DV) (KU)", "J"),
		domain.NewFixedRotor("Beta", mustPermutation(t, "(ALBEVFCYODJWUGNMQTZSKPR) (HIX)", alpha)),
		domain.NewFixedRotor("Gamma", mustPermutation(t, "(AFNIRLBSQWVXGUZDKMTPCOYJHE)", alpha)),
		domain.NewReflector("B", mustPermutation(t,
			"(AE) (BN) (CK) (DQ) (FU) (GY) (HW) (IJ) (LO) (MP) (RX) (SZ) (TV)", alpha)),
	}
}

func newTestMachine(t *testing.T, opts ...domain.MachineOption) *domain.Machine {
	t.Helper()
	alpha := mustAlphabet(t, "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	m, err := domain.NewMachine(alpha, 5, 3, newTestCatalog(t, alpha), opts...)
	require.NoError(t, err)
	return m
}

func configure(t *testing.T, m *domain.Machine, rotors []string, wheels, plug string) {
	t.Helper()
	require.NoError(t, m.InsertRotors(rotors))
	require.NoError(t, m.SetRotors(wheels))
	p, err := domain.NewPermutation(plug, m.Alphabet())
	require.NoError(t, err)
	require.NoError(t, m.SetPlugboard(p))
}

func TestMachine_Convert(t *testing.T) {
	m := newTestMachine(t)
	configure(t, m, []string{"B", "Beta", "III", "IV", "I"}, "AXLE", "(HQ) (EX) (IP) (TR) (BY)")

	out, err := m.Convert("FROMHISSHOULDERHIAWATHA")
	require.NoError(t, err)
	assert.Equal(t, "QVPQSOKOILPUBKJZPISFXDW", out)
}

func TestMachine_ConvertRoundTrip(t *testing.T) {
	m := newTestMachine(t)
	configure(t, m, []string{"B", "Beta", "III", "IV", "I"}, "AXLE", "(HQ) (EX) (IP) (TR) (BY)")

	cipher, err := m.Convert("FROMHISSHOULDERHIAWATHA")
	require.NoError(t, err)

	// The machine is its own inverse under identical settings.
	require.NoError(t, m.InsertRotors([]string{"B", "Beta", "III", "IV", "I"}))
	require.NoError(t, m.SetRotors("AXLE"))
	plain, err := m.Convert(cipher)
	require.NoError(t, err)
	assert.Equal(t, "FROMHISSHOULDERHIAWATHA", plain)
}

func TestMachine_Deterministic(t *testing.T) {
	a := newTestMachine(t)
	b := newTestMachine(t)
	configure(t, a, []string{"B", "Beta", "III", "IV", "I"}, "AXLE", "(HQ) (EX)")
	configure(t, b, []string{"B", "Beta", "III", "IV", "I"}, "AXLE", "(HQ) (EX)")

	outA, err := a.Convert("HELLOWORLD")
	require.NoError(t, err)
	outB, err := b.Convert("HELLOWORLD")
	require.NoError(t, err)
	assert.Equal(t, outA, outB)
}

func TestMachine_EmptyMessage(t *testing.T) {
	m := newTestMachine(t)
	configure(t, m, []string{"B", "Beta", "III", "IV", "I"}, "AXLE", "")

	out, err := m.Convert("")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, 4, m.Slot(5).Setting(), "empty input must not step the machine")
}

// With wheels AAEV both the middle wheel (II, notch E) and the fast wheel
// (III, notch V) sit at their notches. The default rule then advances the
// middle wheel twice in one keypress; the textbook rule advances it once.
func TestMachine_SteppingAnomaly(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		m := newTestMachine(t)
		configure(t, m, []string{"B", "Beta", "I", "II", "III"}, "AAEV", "")

		_, err := m.ConvertRune('A')
		require.NoError(t, err)
		assert.Equal(t, 1, m.Slot(3).Setting())
		assert.Equal(t, 6, m.Slot(4).Setting())
		assert.Equal(t, 22, m.Slot(5).Setting())
	})

	t.Run("textbook", func(t *testing.T) {
		m := newTestMachine(t, domain.WithTextbookStepping())
		configure(t, m, []string{"B", "Beta", "I", "II", "III"}, "AAEV", "")

		_, err := m.ConvertRune('A')
		require.NoError(t, err)
		assert.Equal(t, 1, m.Slot(3).Setting())
		assert.Equal(t, 5, m.Slot(4).Setting())
		assert.Equal(t, 22, m.Slot(5).Setting())
	})
}

func TestMachine_NormalCarry(t *testing.T) {
	// Only the fast wheel at its notch: it advances and carries its left
	// neighbor exactly one step. Both rules agree here.
	m := newTestMachine(t)
	configure(t, m, []string{"B", "Beta", "I", "II", "III"}, "AAAV", "")

	_, err := m.ConvertRune('A')
	require.NoError(t, err)
	assert.Equal(t, 0, m.Slot(3).Setting())
	assert.Equal(t, 1, m.Slot(4).Setting())
	assert.Equal(t, 22, m.Slot(5).Setting())
}

func TestMachine_InsertRotorsErrors(t *testing.T) {
	m := newTestMachine(t)

	err := m.InsertRotors([]string{"B", "Beta", "III"})
	assert.ErrorIs(t, err, domain.ErrInvalidSetting)

	err = m.InsertRotors([]string{"B", "Beta", "III", "IV", "Bogus"})
	assert.ErrorIs(t, err, domain.ErrUnknownRotor)

	err = m.InsertRotors([]string{"Beta", "B", "III", "IV", "I"})
	assert.ErrorIs(t, err, domain.ErrReflectorRequired)

	err = m.InsertRotors([]string{"B", "Beta", "III", "III", "I"})
	assert.ErrorIs(t, err, domain.ErrDuplicateRotor)

	err = m.InsertRotors([]string{"B", "Beta", "Gamma", "IV", "I"})
	assert.ErrorIs(t, err, domain.ErrPawlCountMismatch)
}

func TestMachine_InsertRotorsAtomic(t *testing.T) {
	m := newTestMachine(t)
	configure(t, m, []string{"B", "Beta", "III", "IV", "I"}, "AXLE", "")

	err := m.InsertRotors([]string{"B", "Beta", "III", "IV", "Bogus"})
	require.ErrorIs(t, err, domain.ErrUnknownRotor)

	// The failed assignment left the previous one untouched.
	assert.Equal(t, "I", m.Slot(5).Name())
	assert.Equal(t, 4, m.Slot(5).Setting(), "E")
	assert.Equal(t, 23, m.Slot(3).Setting(), "X")
}

func TestMachine_SetRotorsErrors(t *testing.T) {
	m := newTestMachine(t)

	// No assignment yet.
	err := m.SetRotors("AXLE")
	assert.ErrorIs(t, err, domain.ErrInvalidSetting)

	require.NoError(t, m.InsertRotors([]string{"B", "Beta", "III", "IV", "I"}))
	require.NoError(t, m.SetRotors("AXLE"))

	err = m.SetRotors("AXL")
	assert.ErrorIs(t, err, domain.ErrInvalidSetting)

	err = m.SetRotors("AX!E")
	assert.ErrorIs(t, err, domain.ErrInvalidSetting)
	assert.Equal(t, 23, m.Slot(3).Setting(), "failed SetRotors must not move any rotor")
}

func TestMachine_SetRingsShiftOutput(t *testing.T) {
	m := newTestMachine(t)
	configure(t, m, []string{"B", "Beta", "III", "IV", "I"}, "AXLE", "")

	base, err := m.Convert("AAAAA")
	require.NoError(t, err)

	require.NoError(t, m.InsertRotors([]string{"B", "Beta", "III", "IV", "I"}))
	require.NoError(t, m.SetRotors("AXLE"))
	require.NoError(t, m.SetRings("BBBB"))
	shifted, err := m.Convert("AAAAA")
	require.NoError(t, err)

	assert.NotEqual(t, base, shifted)
}

func TestMachine_ResetRingsCoversWholeCatalog(t *testing.T) {
	alpha := mustAlphabet(t, "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	catalog := newTestCatalog(t, alpha)
	m, err := domain.NewMachine(alpha, 5, 3, catalog)
	require.NoError(t, err)
	configure(t, m, []string{"B", "Beta", "III", "IV", "I"}, "AXLE", "")

	// Ring state lives on the rotor, so even a rotor left out of the
	// assignment carries one.
	var unassigned domain.Rotor
	for _, r := range catalog {
		if r.Name() == "II" {
			unassigned = r
		}
	}
	require.NotNil(t, unassigned)
	unassigned.SetRing(5)

	require.NoError(t, m.SetRings("BBBB"))
	m.ResetRings()

	assert.Equal(t, 0, unassigned.Ring())
	for i := 2; i <= 5; i++ {
		assert.Equal(t, 0, m.Slot(i).Ring())
	}
}

func TestMachine_SetPlugboardAlphabetMismatch(t *testing.T) {
	m := newTestMachine(t)

	other := mustAlphabet(t, "ABCD")
	p := mustPermutation(t, "(AB)", other)
	err := m.SetPlugboard(p)
	assert.ErrorIs(t, err, domain.ErrAlphabetMismatch)
}

func TestMachine_ConvertStopsAtInvalidSymbol(t *testing.T) {
	m := newTestMachine(t)
	configure(t, m, []string{"B", "Beta", "III", "IV", "I"}, "AXLE", "")

	fresh := newTestMachine(t)
	configure(t, fresh, []string{"B", "Beta", "III", "IV", "I"}, "AXLE", "")
	want, err := fresh.Convert("ABC")
	require.NoError(t, err)

	_, err = m.Convert("AB!")
	require.ErrorIs(t, err, domain.ErrInvalidSymbol)

	// The two valid symbols before the failure stepped the machine, the
	// invalid one did not.
	got, err := m.Convert("C")
	require.NoError(t, err)
	assert.Equal(t, string(want[2]), got)
}

func TestNewMachine_GeometryErrors(t *testing.T) {
	alpha := mustAlphabet(t, "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	catalog := newTestCatalog(t, alpha)

	_, err := domain.NewMachine(alpha, 1, 0, catalog)
	assert.ErrorIs(t, err, domain.ErrBadGeometry)

	_, err = domain.NewMachine(alpha, 5, 5, catalog)
	assert.ErrorIs(t, err, domain.ErrBadGeometry)

	_, err = domain.NewMachine(alpha, 20, 3, catalog)
	assert.ErrorIs(t, err, domain.ErrBadGeometry)
}
