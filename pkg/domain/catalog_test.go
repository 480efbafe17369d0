package domain_test

import (
	"testing"

	"github.com/aretw0/rotary/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotorSpec_Build(t *testing.T) {
	alpha := mustAlphabet(t, "ABCD")

	cases := []struct {
		name     string
		spec     domain.RotorSpec
		rotates  bool
		reflects bool
	}{
		{"reflector", domain.RotorSpec{Name: "R", Role: domain.RoleReflector, Wiring: "(AB) (CD)"}, false, true},
		{"fixed", domain.RotorSpec{Name: "F", Role: domain.RoleFixed, Wiring: "(ABC)"}, false, false},
		{"moving", domain.RotorSpec{Name: "M", Role: domain.RoleMoving, Wiring: "(ABC)", Notches: "C"}, true, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := tc.spec.Build(alpha)
			require.NoError(t, err)
			assert.Equal(t, tc.spec.Name, r.Name())
			assert.Equal(t, tc.rotates, r.Rotates())
			assert.Equal(t, tc.reflects, r.Reflects())
		})
	}
}

func TestRotorSpec_BuildErrors(t *testing.T) {
	alpha := mustAlphabet(t, "ABCD")

	_, err := domain.RotorSpec{Name: "X", Role: domain.RoleFixed, Wiring: "(AB"}.Build(alpha)
	assert.ErrorIs(t, err, domain.ErrMalformedPermutation)

	_, err = domain.RotorSpec{Name: "X", Role: domain.RoleMoving, Wiring: "(AB)", Notches: "Z"}.Build(alpha)
	assert.ErrorIs(t, err, domain.ErrInvalidSymbol)

	_, err = domain.RotorSpec{Name: "X", Role: "spinning", Wiring: "(AB)"}.Build(alpha)
	assert.Error(t, err)
}

func TestNewCatalog(t *testing.T) {
	alpha := mustAlphabet(t, "ABCD")
	specs := []domain.RotorSpec{
		{Name: "R", Role: domain.RoleReflector, Wiring: "(AB) (CD)"},
		{Name: "M", Role: domain.RoleMoving, Wiring: "(ABC)", Notches: "C"},
	}

	cat, err := domain.NewCatalog(alpha, 2, 1, specs)
	require.NoError(t, err)
	assert.Equal(t, []string{"R", "M"}, cat.Names())

	r, err := cat.Lookup("M")
	require.NoError(t, err)
	assert.True(t, r.Rotates())

	_, err = cat.Lookup("Q")
	assert.ErrorIs(t, err, domain.ErrUnknownRotor)
}

func TestNewCatalog_GeometryErrors(t *testing.T) {
	alpha := mustAlphabet(t, "ABCD")
	specs := []domain.RotorSpec{
		{Name: "R", Role: domain.RoleReflector, Wiring: "(AB) (CD)"},
		{Name: "M", Role: domain.RoleMoving, Wiring: "(ABC)", Notches: "C"},
	}

	_, err := domain.NewCatalog(alpha, 1, 0, specs)
	assert.ErrorIs(t, err, domain.ErrBadGeometry)

	_, err = domain.NewCatalog(alpha, 2, 2, specs)
	assert.ErrorIs(t, err, domain.ErrBadGeometry)

	_, err = domain.NewCatalog(alpha, 3, 1, specs)
	assert.ErrorIs(t, err, domain.ErrBadGeometry)
}
