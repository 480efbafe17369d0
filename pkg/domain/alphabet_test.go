package domain_test

import (
	"testing"

	"github.com/aretw0/rotary/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlphabet_Bijection(t *testing.T) {
	alpha, err := domain.NewAlphabet("ABCD")
	require.NoError(t, err)

	assert.Equal(t, 4, alpha.Size())
	assert.Equal(t, "ABCD", alpha.String())

	for i, r := range "ABCD" {
		idx, err := alpha.ToIndex(r)
		require.NoError(t, err)
		assert.Equal(t, i, idx)

		sym, err := alpha.ToSymbol(i)
		require.NoError(t, err)
		assert.Equal(t, r, sym)
	}
}

func TestAlphabet_RejectsDuplicates(t *testing.T) {
	_, err := domain.NewAlphabet("ABCA")
	assert.ErrorIs(t, err, domain.ErrMalformedAlphabet)
}

func TestAlphabet_InvalidSymbol(t *testing.T) {
	alpha, err := domain.NewAlphabet("ABCD")
	require.NoError(t, err)

	assert.False(t, alpha.Contains('Z'))
	assert.True(t, alpha.Contains('C'))

	_, err = alpha.ToIndex('Z')
	assert.ErrorIs(t, err, domain.ErrInvalidSymbol)

	_, err = alpha.ToSymbol(-1)
	assert.ErrorIs(t, err, domain.ErrInvalidSymbol)

	_, err = alpha.ToSymbol(4)
	assert.ErrorIs(t, err, domain.ErrInvalidSymbol)
}

func TestAlphabet_Equal(t *testing.T) {
	a, err := domain.NewAlphabet("ABC")
	require.NoError(t, err)
	b, err := domain.NewAlphabet("ABC")
	require.NoError(t, err)
	c, err := domain.NewAlphabet("ACB")
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}
