package types

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Decimal is an arbitrary-precision signed decimal: an explicit
// non-negative scale and an arbitrary-length signed integer value, such
// that the represented number is Unscaled x 10^(-Scale) (spec §3 "Decimal",
// §4.3.5).
type Decimal struct {
	Scale    int32
	Unscaled *big.Int
}

// NewDecimal builds a Decimal from an unscaled integer and a scale. Scale
// must be non-negative (Invariant: decimal scale is non-negative per spec §4.3.5).
func NewDecimal(unscaled *big.Int, scale int32) (Decimal, error) {
	if scale < 0 {
		return Decimal{}, fmt.Errorf("decimal: scale must be non-negative, got %d", scale)
	}

	return Decimal{Scale: scale, Unscaled: new(big.Int).Set(unscaled)}, nil
}

// DecimalFromString parses a plain fixed-point decimal literal such as
// "-123.456" or "0" into a Decimal, preserving exact precision.
func DecimalFromString(s string) (Decimal, error) {
	neg := false
	switch {
	case strings.HasPrefix(s, "-"):
		neg = true
		s = s[1:]
	case strings.HasPrefix(s, "+"):
		s = s[1:]
	}

	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	if intPart == "" {
		intPart = "0"
	}

	digits := intPart
	if hasFrac {
		digits += fracPart
	}

	unscaled, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return Decimal{}, fmt.Errorf("decimal: invalid literal %q", s)
	}

	if neg {
		unscaled.Neg(unscaled)
	}

	return Decimal{Scale: int32(len(fracPart)), Unscaled: unscaled}, nil //nolint:gosec
}

// DecimalFromFloat64 converts a float64 to a Decimal by routing through its
// shortest round-tripping decimal string representation, rather than its
// binary value directly. Converting a binary float to a decimal via its raw
// binary approximation silently bakes in representation error (spec §9
// design note); going through strconv's shortest decimal form avoids that.
func DecimalFromFloat64(f float64) (Decimal, error) {
	return DecimalFromString(strconv.FormatFloat(f, 'f', -1, 64))
}

// String renders the decimal in plain fixed-point form.
func (d Decimal) String() string {
	if d.Scale == 0 {
		return d.Unscaled.String()
	}

	neg := d.Unscaled.Sign() < 0
	digits := new(big.Int).Abs(d.Unscaled).String()

	for len(digits) <= int(d.Scale) {
		digits = "0" + digits
	}

	split := len(digits) - int(d.Scale)
	out := digits[:split] + "." + digits[split:]
	if neg {
		out = "-" + out
	}

	return out
}

// Equal reports whether two Decimals denote the same (scale, unscaled)
// pair. Decimals with different scales but the same numeric value are
// considered distinct, matching the wire contract: scale is part of the
// encoded value, not normalized away.
func (d Decimal) Equal(other Decimal) bool {
	if d.Scale != other.Scale {
		return false
	}

	return d.Unscaled.Cmp(other.Unscaled) == 0
}
