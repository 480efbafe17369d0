package validator_test

import (
	"context"
	"testing"

	"github.com/aretw0/rotary/internal/validator"
	"github.com/aretw0/rotary/pkg/adapters/memory"
	"github.com/aretw0/rotary/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCatalog_Standard(t *testing.T) {
	cat, err := memory.NewStandard().LoadCatalog(context.Background())
	require.NoError(t, err)

	assert.NoError(t, validator.ValidateCatalog(cat))
}

func TestValidateCatalog_Findings(t *testing.T) {
	alpha, err := domain.NewAlphabet("ABCD")
	require.NoError(t, err)

	// "(AB)" leaves C and D mapped to themselves, so the reflector is not
	// a derangement; the duplicate name and missing moving rotor pile on.
	cat, err := domain.NewCatalog(alpha, 2, 1, []domain.RotorSpec{
		{Name: "R", Role: domain.RoleReflector, Wiring: "(AB)"},
		{Name: "R", Role: domain.RoleFixed, Wiring: "(ABC)"},
	})
	require.NoError(t, err)

	err = validator.ValidateCatalog(cat)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "defined more than once")
	assert.Contains(t, err.Error(), "not a derangement")
	assert.Contains(t, err.Error(), "0 moving rotors")
	assert.Contains(t, err.Error(), "found 3 problems")
}

func TestValidateCatalog_NoReflector(t *testing.T) {
	alpha, err := domain.NewAlphabet("ABCD")
	require.NoError(t, err)

	cat, err := domain.NewCatalog(alpha, 2, 1, []domain.RotorSpec{
		{Name: "F", Role: domain.RoleFixed, Wiring: "(ABC)"},
		{Name: "M", Role: domain.RoleMoving, Wiring: "(ABC)", Notches: "C"},
	})
	require.NoError(t, err)

	err = validator.ValidateCatalog(cat)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no reflector")
}
