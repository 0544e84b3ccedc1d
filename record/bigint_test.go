package record

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBigIntTwosComplementPowerOfTwoBoundary(t *testing.T) {
	tests := []struct {
		name string
		v    int64
		want []byte
	}{
		{"minus-128", -128, []byte{0x80}},
		{"minus-32768", -32768, []byte{0x80, 0x00}},
		{"minus-8388608", -8388608, []byte{0x80, 0x00, 0x00}},
		{"minus-255-not-power-of-two", -255, []byte{0xFF, 0x01}},
		{"minus-1", -1, []byte{0xFF}},
		{"127", 127, []byte{0x7F}},
		{"128-needs-sign-byte", 128, []byte{0x00, 0x80}},
		{"zero", 0, []byte{0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := bigIntToTwosComplement(big.NewInt(tt.v))
			require.Equal(t, tt.want, got)
		})
	}
}

func TestBigIntTwosComplementRoundTrip(t *testing.T) {
	values := []int64{0, 1, -1, 127, -128, 128, -129, 32767, -32768, 32768, -8388608, -255, -200}

	for _, v := range values {
		encoded := bigIntToTwosComplement(big.NewInt(v))
		decoded := bigIntFromTwosComplement(encoded)
		require.Equal(t, v, decoded.Int64(), "value %d", v)
	}
}
