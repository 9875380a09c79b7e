package expr

import "math"

// Func is a native operation invoked with the call's span and its fully
// evaluated arguments. By the time a Func runs, every argument is a
// *LiteralExpr.
type Func func(span Span, args []Expr) (Expr, *Error)

// Functions maps function names to native operations. The table is built
// once and read-only during evaluation; the expression language itself
// cannot extend it.
type Functions struct {
	m map[string]Func
}

// NewFunctions creates an empty function table.
func NewFunctions() *Functions {
	return &Functions{m: make(map[string]Func)}
}

// DefaultFunctions returns a table with all built-in operations registered.
func DefaultFunctions() *Functions {
	fns := NewFunctions()
	fns.Register("not", builtinNot)
	fns.Register("and", builtinAnd)
	fns.Register("or", builtinOr)
	fns.Register("add", builtinAdd)
	fns.Register("mul", builtinMul)
	fns.Register("fract", builtinFract)
	return fns
}

// Register adds a named operation to the table.
func (f *Functions) Register(name string, fn Func) {
	f.m[name] = fn
}

// Lookup returns the operation registered under name.
func (f *Functions) Lookup(name string) (Func, bool) {
	fn, ok := f.m[name]
	return fn, ok
}

// literalValue extracts the primitive from a fully resolved argument.
func literalValue(e Expr) Value {
	lit, ok := e.(*LiteralExpr)
	if !ok {
		panic("symbols and calls should already be resolved")
	}
	return lit.Value
}

func builtinNot(span Span, args []Expr) (Expr, *Error) {
	if len(args) != 1 {
		return nil, &Error{Span: span, Kind: ArgumentCount}
	}
	result, err := Not(literalValue(args[0]))
	if err != nil {
		err.Span = args[0].Span()
		return nil, err
	}
	return &LiteralExpr{span: span, Value: result}, nil
}

func builtinAnd(span Span, args []Expr) (Expr, *Error) {
	if len(args) < 1 {
		return nil, &Error{Span: span, Kind: ArgumentCount}
	}
	acc := Value(Bool(true))
	for _, arg := range args {
		next, err := And(acc, literalValue(arg))
		if err != nil {
			err.Span = arg.Span()
			return nil, err
		}
		acc = next
	}
	return &LiteralExpr{span: span, Value: acc}, nil
}

func builtinOr(span Span, args []Expr) (Expr, *Error) {
	if len(args) < 1 {
		return nil, &Error{Span: span, Kind: ArgumentCount}
	}
	acc := Value(Bool(false))
	for _, arg := range args {
		next, err := Or(acc, literalValue(arg))
		if err != nil {
			err.Span = arg.Span()
			return nil, err
		}
		acc = next
	}
	return &LiteralExpr{span: span, Value: acc}, nil
}

func builtinAdd(span Span, args []Expr) (Expr, *Error) {
	if len(args) < 2 {
		return nil, &Error{Span: span, Kind: ArgumentCount}
	}
	acc := literalValue(args[0])
	for _, arg := range args[1:] {
		next, err := Add(acc, literalValue(arg))
		if err != nil {
			err.Span = arg.Span()
			return nil, err
		}
		acc = next
	}
	return &LiteralExpr{span: span, Value: acc}, nil
}

func builtinMul(span Span, args []Expr) (Expr, *Error) {
	if len(args) < 2 {
		return nil, &Error{Span: span, Kind: ArgumentCount}
	}
	acc := literalValue(args[0])
	for _, arg := range args[1:] {
		next, err := Mul(acc, literalValue(arg))
		if err != nil {
			err.Span = arg.Span()
			return nil, err
		}
		acc = next
	}
	return &LiteralExpr{span: span, Value: acc}, nil
}

func builtinFract(span Span, args []Expr) (Expr, *Error) {
	if len(args) != 1 {
		return nil, &Error{Span: span, Kind: ArgumentCount}
	}
	f, ok := literalValue(args[0]).(Float)
	if !ok {
		return nil, &Error{
			Span:   args[0].Span(),
			Kind:   InvalidArgument,
			Detail: "Only floats have fractional parts",
		}
	}
	fract := float64(f) - math.Trunc(float64(f))
	return &LiteralExpr{span: span, Value: Float(fract)}, nil
}
