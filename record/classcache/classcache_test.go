package classcache

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInternReturnsCanonicalString(t *testing.T) {
	c := New()

	first, err := c.Intern("Employee")
	require.NoError(t, err)
	require.Equal(t, "Employee", first)
	require.Equal(t, 1, c.Len())

	second, err := c.Intern("Employee")
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, 1, c.Len())
}

func TestInternDistinctNames(t *testing.T) {
	c := New()

	_, err := c.Intern("Employee")
	require.NoError(t, err)
	_, err = c.Intern("Department")
	require.NoError(t, err)

	require.Equal(t, 2, c.Len())
}

func TestInternRejectsInvalidUTF8(t *testing.T) {
	c := New()

	_, err := c.Intern(string([]byte{0xff, 0xfe}))
	require.Error(t, err)
	require.Equal(t, 0, c.Len())
}
