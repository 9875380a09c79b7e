package expr

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
)

// Kind identifies the runtime kind of a Value.
type Kind int

const (
	KindBool Kind = iota
	KindInt
	KindFloat
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "boolean"
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	default:
		return "unknown"
	}
}

// Value represents any value in the expression system. Exactly three kinds
// exist: Bool, Int and Float.
type Value interface {
	Kind() Kind

	// Equal compares by value. Int and Float compare equal when the
	// integer exactly represents the float.
	Equal(other Value) bool

	// ApproxEqual is Equal, except two Floats compare within epsilon.
	// Intended for test assertions, not evaluation logic.
	ApproxEqual(other Value, epsilon float64) bool

	String() string
}

// Integer values cover the full signed 128-bit range. Literals and
// arithmetic outside it fail with Overflow rather than wrapping.
var (
	maxInt = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	minInt = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
)

// Bool is a boolean value.
type Bool bool

// Kind implements Value.
func (b Bool) Kind() Kind { return KindBool }

// Equal implements Value.
func (b Bool) Equal(other Value) bool {
	o, ok := other.(Bool)
	return ok && b == o
}

// ApproxEqual implements Value.
func (b Bool) ApproxEqual(other Value, _ float64) bool { return b.Equal(other) }

// String implements Value.
func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

// Int is a wide signed integer value.
type Int struct {
	n *big.Int
}

// NewInt creates an integer value.
func NewInt(v int64) Int { return Int{n: big.NewInt(v)} }

// IntFromBig creates an integer value from a big integer. The argument is
// copied so the value stays immutable.
func IntFromBig(n *big.Int) Int { return Int{n: new(big.Int).Set(n)} }

// BigInt returns a copy of the underlying integer.
func (i Int) BigInt() *big.Int { return new(big.Int).Set(i.n) }

// Kind implements Value.
func (i Int) Kind() Kind { return KindInt }

// Equal implements Value.
func (i Int) Equal(other Value) bool {
	switch o := other.(type) {
	case Int:
		return i.n.Cmp(o.n) == 0
	case Float:
		return intFloatEqual(i.n, float64(o))
	default:
		return false
	}
}

// ApproxEqual implements Value.
func (i Int) ApproxEqual(other Value, _ float64) bool { return i.Equal(other) }

// String implements Value.
func (i Int) String() string { return i.n.String() }

// Float is a double-precision floating point value.
type Float float64

// Kind implements Value.
func (f Float) Kind() Kind { return KindFloat }

// Equal implements Value.
func (f Float) Equal(other Value) bool {
	switch o := other.(type) {
	case Float:
		return f == o
	case Int:
		return intFloatEqual(o.n, float64(f))
	default:
		return false
	}
}

// ApproxEqual implements Value.
func (f Float) ApproxEqual(other Value, epsilon float64) bool {
	if o, ok := other.(Float); ok {
		return math.Abs(float64(f)-float64(o)) < epsilon
	}
	return f.Equal(other)
}

// String implements Value.
func (f Float) String() string { return strconv.FormatFloat(float64(f), 'g', -1, 64) }

// intFloatEqual reports whether the float is integral, within the integer
// range and exactly equal to n. This lets literal defaults typed as integers
// compare equal to computed floats without truncation.
func intFloatEqual(n *big.Int, f float64) bool {
	if math.IsNaN(f) || math.IsInf(f, 0) || math.Trunc(f) != f {
		return false
	}
	fi, _ := new(big.Float).SetFloat64(f).Int(nil)
	if fi.Cmp(minInt) < 0 || fi.Cmp(maxInt) > 0 {
		return false
	}
	return fi.Cmp(n) == 0
}

// debugValue renders a value with its kind tag for diagnostics.
func debugValue(v Value) string {
	switch v := v.(type) {
	case Bool:
		return fmt.Sprintf("Boolean(%s)", v)
	case Int:
		return fmt.Sprintf("Integer(%s)", v)
	case Float:
		return fmt.Sprintf("Float(%s)", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func invalidArgument(op string, operands ...Value) *Error {
	detail := "Cannot (" + op
	for _, v := range operands {
		detail += " " + debugValue(v)
	}
	return &Error{Kind: InvalidArgument, Detail: detail + ")"}
}

func bigToFloat(n *big.Int) float64 {
	f, _ := new(big.Float).SetInt(n).Float64()
	return f
}

// Not negates a boolean.
func Not(v Value) (Value, *Error) {
	b, ok := v.(Bool)
	if !ok {
		return nil, invalidArgument("not", v)
	}
	return !b, nil
}

// And is the boolean conjunction of two values.
func And(a, b Value) (Value, *Error) {
	ab, aok := a.(Bool)
	bb, bok := b.(Bool)
	if !aok || !bok {
		return nil, invalidArgument("and", a, b)
	}
	return ab && bb, nil
}

// Or is the boolean disjunction of two values.
func Or(a, b Value) (Value, *Error) {
	ab, aok := a.(Bool)
	bb, bok := b.(Bool)
	if !aok || !bok {
		return nil, invalidArgument("or", a, b)
	}
	return ab || bb, nil
}

// Add sums two numeric values. Two integers use checked arithmetic; a float
// operand coerces the result to float.
func Add(a, b Value) (Value, *Error) {
	switch a := a.(type) {
	case Int:
		switch b := b.(type) {
		case Int:
			sum := new(big.Int).Add(a.n, b.n)
			if sum.Cmp(minInt) < 0 || sum.Cmp(maxInt) > 0 {
				return nil, &Error{Kind: Overflow}
			}
			return Int{n: sum}, nil
		case Float:
			return Float(bigToFloat(a.n) + float64(b)), nil
		}
	case Float:
		switch b := b.(type) {
		case Int:
			return a + Float(bigToFloat(b.n)), nil
		case Float:
			return a + b, nil
		}
	}
	return nil, invalidArgument("add", a, b)
}

// Mul multiplies two numeric values with the same coercion rules as Add.
func Mul(a, b Value) (Value, *Error) {
	switch a := a.(type) {
	case Int:
		switch b := b.(type) {
		case Int:
			product := new(big.Int).Mul(a.n, b.n)
			if product.Cmp(minInt) < 0 || product.Cmp(maxInt) > 0 {
				return nil, &Error{Kind: Overflow}
			}
			return Int{n: product}, nil
		case Float:
			return Float(bigToFloat(a.n) * float64(b)), nil
		}
	case Float:
		switch b := b.(type) {
		case Int:
			return a * Float(bigToFloat(b.n)), nil
		case Float:
			return a * b, nil
		}
	}
	return nil, invalidArgument("mul", a, b)
}
