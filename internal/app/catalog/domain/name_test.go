package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProductName_TrimsWhitespace(t *testing.T) {
	n, err := NewProductName("  Lavender Oil  ")
	require.NoError(t, err)
	assert.Equal(t, "Lavender Oil", n.String())
}

func TestNewProductName_Empty(t *testing.T) {
	_, err := NewProductName("   ")
	assert.ErrorIs(t, err, ErrEmptyProductName)
}

func TestNewProductName_Length(t *testing.T) {
	_, err := NewProductName("x")
	assert.ErrorIs(t, err, ErrProductNameLength)

	_, err = NewProductName(strings.Repeat("a", 201))
	assert.ErrorIs(t, err, ErrProductNameLength)

	n, err := NewProductName(strings.Repeat("a", 200))
	require.NoError(t, err)
	assert.Len(t, n.String(), 200)
}

func TestProductName_Equals(t *testing.T) {
	a, err := NewProductName("Lavender")
	require.NoError(t, err)
	b, err := NewProductName("  Lavender ")
	require.NoError(t, err)
	c, err := NewProductName("lavender")
	require.NoError(t, err)

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}

func TestProductName_IsZero(t *testing.T) {
	var zero ProductName
	assert.True(t, zero.IsZero())

	n, err := NewProductName("ok")
	require.NoError(t, err)
	assert.False(t, n.IsZero())
}
