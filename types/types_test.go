package types

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRIDEquality(t *testing.T) {
	a := RID{ClusterID: 1, Position: 22}
	b := RID{ClusterID: 1, Position: 22}
	c := RID{ClusterID: 9, Position: 14}

	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
	require.Equal(t, "#1:22", a.String())
}

func TestLinkSetDedup(t *testing.T) {
	s := NewLinkSet()
	require.True(t, s.Add(RID{1, 1}))
	require.True(t, s.Add(RID{2, 2}))
	require.False(t, s.Add(RID{1, 1}))
	require.Equal(t, 2, s.Len())
}

func TestLinkSetEqualIgnoresOrder(t *testing.T) {
	a := LinkSetOf([]RID{{1, 1}, {2, 2}, {3, 3}})
	b := LinkSetOf([]RID{{3, 3}, {1, 1}, {2, 2}})
	require.True(t, a.Equal(b))

	c := LinkSetOf([]RID{{3, 3}, {1, 1}})
	require.False(t, a.Equal(c))
}

func TestDecimalFromStringRoundTrip(t *testing.T) {
	d, err := DecimalFromString("-123.456")
	require.NoError(t, err)
	require.Equal(t, int32(3), d.Scale)
	require.Equal(t, big.NewInt(-123456), d.Unscaled)
	require.Equal(t, "-123.456", d.String())
}

func TestDecimalFromStringNoFraction(t *testing.T) {
	d, err := DecimalFromString("42")
	require.NoError(t, err)
	require.Equal(t, int32(0), d.Scale)
	require.Equal(t, "42", d.String())
}

func TestDecimalFromFloat64(t *testing.T) {
	d, err := DecimalFromFloat64(3.14)
	require.NoError(t, err)
	require.Equal(t, "3.14", d.String())
}

func TestDecimalEqual(t *testing.T) {
	a, _ := DecimalFromString("1.50")
	b, _ := DecimalFromString("1.50")
	c, _ := DecimalFromString("1.5")
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c), "different scale means distinct encoded value")
}

func TestNewDecimalRejectsNegativeScale(t *testing.T) {
	_, err := NewDecimal(big.NewInt(1), -1)
	require.Error(t, err)
}

func TestDateTimeUnixMilliRoundTrip(t *testing.T) {
	ms := int64(1_700_000_000_123)
	dt := DateTimeFromUnixMilli(ms)
	require.Equal(t, ms, dt.UnixMilli())
}

func TestDateTimeTruncatesToMillisecond(t *testing.T) {
	t1 := time.Date(2024, 1, 2, 3, 4, 5, 123_456_789, time.UTC)
	dt := NewDateTime(t1)
	require.Equal(t, int64(123), dt.Time().Nanosecond()/1_000_000)
}

func TestDateEpochDaysRoundTrip(t *testing.T) {
	d := DateFromEpochDays(19723)
	require.Equal(t, int64(19723), d.EpochDays())
}

func TestDateFromTime(t *testing.T) {
	tm := time.Date(2024, 1, 2, 15, 30, 0, 0, time.UTC)
	d := NewDateFromTime(tm)
	back := d.Time()
	require.Equal(t, 2024, back.Year())
	require.Equal(t, time.January, back.Month())
	require.Equal(t, 2, back.Day())
}
