package config

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/polyconst/polyconst/internal/expr"
)

func formatInt(t *testing.T, f IntegerFormat, v int64) string {
	t.Helper()
	return f.Format(big.NewInt(v))
}

func TestIntegerFormat_Hex(t *testing.T) {
	f := IntegerFormat{Radix: RadixHexadecimal}
	assert.Equal(t, "0x1234", formatInt(t, f, 0x1234))
	assert.Equal(t, "0x12345678", formatInt(t, f, 0x1234_5678))
	assert.Equal(t, "0x1234567890abcdef", formatInt(t, f, 0x1234_5678_90ab_cdef))

	f = IntegerFormat{Radix: RadixHexadecimal, Underscores: 4}
	assert.Equal(t, "0x1234", formatInt(t, f, 0x1234))
	assert.Equal(t, "0x1234_5678", formatInt(t, f, 0x1234_5678))
	assert.Equal(t, "0x1234_5678_90ab_cdef", formatInt(t, f, 0x1234_5678_90ab_cdef))
	assert.Equal(t, "0x123_4567", formatInt(t, f, 0x123_4567))

	f = IntegerFormat{Radix: RadixHexadecimal, Underscores: 4, ZeroPad: 8}
	assert.Equal(t, "0x0000_1234", formatInt(t, f, 0x1234))
	assert.Equal(t, "0x1234_5678", formatInt(t, f, 0x1234_5678))
	assert.Equal(t, "0x1234_5678_90ab_cdef", formatInt(t, f, 0x1234_5678_90ab_cdef))
}

func TestIntegerFormat_Bin(t *testing.T) {
	f := IntegerFormat{Radix: RadixBinary}
	assert.Equal(t, "0b1010", formatInt(t, f, 0b1010))

	f = IntegerFormat{Radix: RadixBinary, Underscores: 4}
	assert.Equal(t, "0b1010", formatInt(t, f, 0b1010))
	assert.Equal(t, "0b1010_0101", formatInt(t, f, 0b1010_0101))
	assert.Equal(t, "0b1111_0000_1100_0011", formatInt(t, f, 0b1111_0000_1100_0011))

	f = IntegerFormat{Radix: RadixBinary, Underscores: 4, ZeroPad: 8}
	assert.Equal(t, "0b0000_1010", formatInt(t, f, 0b1010))
	assert.Equal(t, "0b1010_0101", formatInt(t, f, 0b1010_0101))
	assert.Equal(t, "0b1111_0000_1100_0011", formatInt(t, f, 0b1111_0000_1100_0011))
}

func TestIntegerFormat_DecimalAndOctal(t *testing.T) {
	f := IntegerFormat{}
	assert.Equal(t, "1234", formatInt(t, f, 1234))
	assert.Equal(t, "0", formatInt(t, f, 0))

	f = IntegerFormat{Underscores: 3}
	assert.Equal(t, "1_234_567", formatInt(t, f, 1234567))

	f = IntegerFormat{Radix: RadixOctal}
	assert.Equal(t, "0o777", formatInt(t, f, 0o777))

	f = IntegerFormat{Radix: RadixOctal, OmitPrefix: true}
	assert.Equal(t, "777", formatInt(t, f, 0o777))
}

func TestIntegerFormat_Negative(t *testing.T) {
	// Sign goes before the radix prefix.
	f := IntegerFormat{Radix: RadixHexadecimal}
	assert.Equal(t, "-0x1234", formatInt(t, f, -0x1234))

	f = IntegerFormat{Radix: RadixHexadecimal, Underscores: 4, ZeroPad: 8}
	assert.Equal(t, "-0x0000_1234", formatInt(t, f, -0x1234))

	f = IntegerFormat{}
	assert.Equal(t, "-42", formatInt(t, f, -42))
}

func TestIntegerFormat_Wide(t *testing.T) {
	n, ok := new(big.Int).SetString("7fffffffffffffffffffffffffffffff", 16)
	require.True(t, ok)

	f := IntegerFormat{Radix: RadixHexadecimal, Underscores: 4}
	assert.Equal(t, "0x7fff_ffff_ffff_ffff_ffff_ffff_ffff_ffff", f.Format(n))
}

func TestBooleanFormat(t *testing.T) {
	f := BooleanFormat{True: "True", False: "False"}
	assert.Equal(t, "True", f.Format(true))
	assert.Equal(t, "False", f.Format(false))
}

func TestValueFormat_Fallback(t *testing.T) {
	// Kinds without an explicit format use the value's own rendering.
	var f ValueFormat
	assert.Equal(t, "true", f.Format(expr.Bool(true)))
	assert.Equal(t, "42", f.Format(expr.NewInt(42)))
	assert.Equal(t, "1.5", f.Format(expr.Float(1.5)))

	f = ValueFormat{
		Boolean: &BooleanFormat{True: "TRUE", False: "FALSE"},
		Integer: &IntegerFormat{Radix: RadixHexadecimal},
	}
	assert.Equal(t, "TRUE", f.Format(expr.Bool(true)))
	assert.Equal(t, "0x2a", f.Format(expr.NewInt(42)))
	assert.Equal(t, "1.5", f.Format(expr.Float(1.5)))
}

func TestRadix_Unmarshal(t *testing.T) {
	opts, err := Parse([]byte(`
lang:
  rust:
    file_ext: ".rs"
    template: "pub const $name = $value;"
    format:
      integer:
        radix: hex
`))
	require.NoError(t, err)
	assert.Equal(t, RadixHexadecimal, opts.Lang["rust"].Format.Integer.Radix)

	_, err = Parse([]byte(`
lang:
  rust:
    file_ext: ".rs"
    template: "pub const $name = $value;"
    format:
      integer:
        radix: nonary
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown radix "nonary"`)
}
