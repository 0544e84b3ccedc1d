package record

import "math/big"

// bigIntToTwosComplement renders v as a minimal-length big-endian
// two's-complement byte string (spec §4.3.5 decimal magnitude), the same
// convention java.math.BigInteger.toByteArray uses: the shortest byte
// sequence whose sign bit matches v's sign.
func bigIntToTwosComplement(v *big.Int) []byte {
	switch v.Sign() {
	case 0:
		return []byte{0x00}
	case 1:
		b := v.Bytes()
		if b[0]&0x80 != 0 {
			b = append([]byte{0x00}, b...)
		}

		return b
	default:
		m := new(big.Int).Neg(v) // magnitude, positive since v < 0

		// Go's BitLen() measures the magnitude, which overcounts by one
		// bit whenever the magnitude is an exact power of two: v=-128 has
		// magnitude 128 (BitLen 8) but fits its sign bit exactly at 8
		// total bits, needing only 1 byte, not 2. Java's BigInteger
		// accounts for this by measuring the bit length of the minimal
		// two's-complement form (excluding the sign bit) rather than the
		// magnitude directly; mirror that by dropping one bit whenever m
		// is a power of two.
		bitLen := m.BitLen()
		if isPowerOfTwo(m) {
			bitLen--
		}

		nBytes := bitLen/8 + 1
		mod := new(big.Int).Lsh(big.NewInt(1), uint(nBytes*8)) //nolint:gosec
		twos := new(big.Int).Add(mod, v)

		b := twos.Bytes()
		if len(b) < nBytes {
			padded := make([]byte, nBytes)
			copy(padded[nBytes-len(b):], b)
			b = padded
		}

		return b
	}
}

// isPowerOfTwo reports whether m is a positive power of two.
func isPowerOfTwo(m *big.Int) bool {
	if m.Sign() <= 0 {
		return false
	}

	one := big.NewInt(1)
	return new(big.Int).And(m, new(big.Int).Sub(m, one)).Sign() == 0
}

// bigIntFromTwosComplement inverts bigIntToTwosComplement.
func bigIntFromTwosComplement(b []byte) *big.Int {
	if len(b) == 0 {
		return big.NewInt(0)
	}

	v := new(big.Int).SetBytes(b)
	if b[0]&0x80 == 0 {
		return v
	}

	mod := new(big.Int).Lsh(big.NewInt(1), uint(len(b)*8)) //nolint:gosec
	return v.Sub(v, mod)
}
