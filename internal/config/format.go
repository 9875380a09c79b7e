package config

import (
	"fmt"
	"math/big"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/polyconst/polyconst/internal/expr"
)

// ValueFormat controls how literal values are rendered into generated code.
// Kinds without an explicit format fall back to their default rendering.
type ValueFormat struct {
	Boolean *BooleanFormat `yaml:"boolean"`
	Integer *IntegerFormat `yaml:"integer"`
}

// Format renders a value according to the configured formats.
func (f ValueFormat) Format(v expr.Value) string {
	switch v := v.(type) {
	case expr.Bool:
		if f.Boolean != nil {
			return f.Boolean.Format(bool(v))
		}
	case expr.Int:
		if f.Integer != nil {
			return f.Integer.Format(v.BigInt())
		}
	}
	return v.String()
}

// BooleanFormat substitutes language-specific spellings for booleans.
type BooleanFormat struct {
	True  string `yaml:"true"`
	False string `yaml:"false"`
}

// Format renders a boolean.
func (f *BooleanFormat) Format(v bool) string {
	if v {
		return f.True
	}
	return f.False
}

// IntegerFormat renders integers in a chosen radix with optional digit
// grouping and zero padding.
type IntegerFormat struct {
	Radix Radix `yaml:"radix"`

	// Underscores inserts an underscore between every n digits; zero
	// disables grouping.
	Underscores int `yaml:"underscores"`

	// ZeroPad pads to n digits with leading zeros; zero disables padding.
	ZeroPad int `yaml:"zero_pad"`

	// OmitPrefix drops the 0b/0o/0x prefix on non-decimal numbers.
	OmitPrefix bool `yaml:"omit_prefix"`
}

// Format renders an integer. The sign is emitted before the radix prefix.
func (f *IntegerFormat) Format(n *big.Int) string {
	negative := n.Sign() < 0
	digits := new(big.Int).Abs(n).Text(f.Radix.base())

	if pad := f.ZeroPad - len(digits); pad > 0 {
		digits = strings.Repeat("0", pad) + digits
	}

	if f.Underscores > 0 {
		var grouped strings.Builder
		lead := len(digits) % f.Underscores
		if lead == 0 {
			lead = f.Underscores
		}
		grouped.WriteString(digits[:lead])
		for i := lead; i < len(digits); i += f.Underscores {
			grouped.WriteByte('_')
			grouped.WriteString(digits[i : i+f.Underscores])
		}
		digits = grouped.String()
	}

	if !f.OmitPrefix {
		digits = f.Radix.prefix() + digits
	}

	if negative {
		return "-" + digits
	}
	return digits
}

// Radix selects the numeral base for integer formatting.
type Radix string

const (
	RadixBinary      Radix = "binary"
	RadixOctal       Radix = "octal"
	RadixDecimal     Radix = "decimal"
	RadixHexadecimal Radix = "hexadecimal"
)

// UnmarshalYAML accepts both the full radix names and their short aliases.
func (r *Radix) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	switch strings.ToLower(s) {
	case "bin", "binary":
		*r = RadixBinary
	case "oct", "octal":
		*r = RadixOctal
	case "", "dec", "decimal":
		*r = RadixDecimal
	case "hex", "hexadecimal":
		*r = RadixHexadecimal
	default:
		return fmt.Errorf("unknown radix %q", s)
	}
	return nil
}

func (r Radix) base() int {
	switch r {
	case RadixBinary:
		return 2
	case RadixOctal:
		return 8
	case RadixHexadecimal:
		return 16
	default:
		return 10
	}
}

func (r Radix) prefix() string {
	switch r {
	case RadixBinary:
		return "0b"
	case RadixOctal:
		return "0o"
	case RadixHexadecimal:
		return "0x"
	default:
		return ""
	}
}
