package ports

import (
	"context"
	"testing"

	"github.com/aretw0/rotary/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunCatalogLoaderContract runs a suite of tests to verify that a
// CatalogLoader implementation adheres to the defined interface contract.
func RunCatalogLoaderContract(t *testing.T, loader CatalogLoader) {
	ctx := context.Background()

	cat, err := loader.LoadCatalog(ctx)
	require.NoError(t, err, "LoadCatalog should not return error")
	require.NotNil(t, cat)

	t.Run("Geometry", func(t *testing.T) {
		require.NotNil(t, cat.Alphabet)
		assert.Greater(t, cat.Alphabet.Size(), 0)
		assert.Greater(t, cat.Slots, 1, "a machine needs a reflector plus at least one rotor")
		assert.GreaterOrEqual(t, cat.Pawls, 0)
		assert.Less(t, cat.Pawls, cat.Slots)
		assert.GreaterOrEqual(t, len(cat.Rotors), cat.Slots, "catalog must be able to fill every slot")
	})

	t.Run("Unique Names", func(t *testing.T) {
		seen := make(map[string]bool)
		for _, r := range cat.Rotors {
			assert.NotEmpty(t, r.Name())
			assert.False(t, seen[r.Name()], "duplicate rotor name %q", r.Name())
			seen[r.Name()] = true
		}
	})

	t.Run("Lookup", func(t *testing.T) {
		for _, name := range cat.Names() {
			r, err := cat.Lookup(name)
			require.NoError(t, err)
			assert.Equal(t, name, r.Name())
		}
		_, err := cat.Lookup("definitely-not-a-rotor")
		assert.ErrorIs(t, err, domain.ErrUnknownRotor)
	})

	t.Run("Reflector Available", func(t *testing.T) {
		found := false
		for _, r := range cat.Rotors {
			if r.Reflects() {
				found = true
				assert.True(t, r.Permutation().Derangement(),
					"reflector %q wiring must be a derangement", r.Name())
			}
		}
		assert.True(t, found, "catalog must contain at least one reflector")
	})

	t.Run("Stable Across Loads", func(t *testing.T) {
		again, err := loader.LoadCatalog(ctx)
		require.NoError(t, err)
		assert.Equal(t, cat.Names(), again.Names())
		assert.Equal(t, cat.Slots, again.Slots)
		assert.Equal(t, cat.Pawls, again.Pawls)
	})
}
