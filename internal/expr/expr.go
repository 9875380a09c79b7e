// Package expr implements the embedded S-expression language used for
// constant values: a scanner, a bracket-structured parser, two tree
// resolution passes (symbol substitution and function application) and the
// primitive value model with checked arithmetic.
//
// The surface syntax accepts signed decimal integers with optional '_'
// separators, 0b/0o/0x radix integers, decimal floats with a mandatory '.',
// the booleans true and false, bare symbol names, and calls of the form
// (name arg1 arg2 ...), arbitrarily nested.
package expr

import "fmt"

// Context maps constant names to previously resolved values. It is built by
// the caller one constant at a time, in declaration order, so each
// expression may reference only names inserted before it. Evaluation never
// mutates it.
type Context map[string]Value

// Expr is a node of the expression tree: a resolved literal, an unresolved
// symbol reference, or a call.
type Expr interface {
	Span() Span
}

// LiteralExpr is a resolved primitive leaf.
type LiteralExpr struct {
	span  Span
	Value Value
}

// Span implements Expr.
func (e *LiteralExpr) Span() Span { return e.span }

// SymbolExpr is an unresolved reference to a named constant.
type SymbolExpr struct {
	span Span
	Name string
}

// Span implements Expr.
func (e *SymbolExpr) Span() Span { return e.span }

// CallExpr applies a named function to ordered arguments. Its span covers
// the function name.
type CallExpr struct {
	span Span
	Name string
	Args []Expr
}

// Span implements Expr.
func (e *CallExpr) Span() Span { return e.span }

// Evaluate scans, parses and resolves a single expression against the given
// context and function table, producing its primitive value. It is a pure
// function of its inputs and fails fast on the first error; the returned
// error is always a *Error carrying a source span.
func Evaluate(text string, ctx Context, fns *Functions) (Value, error) {
	tokens, err := scan(text)
	if err != nil {
		return nil, err
	}

	parsed, err := parse(text, tokens)
	if err != nil {
		return nil, err
	}

	resolved, err := resolveSymbols(parsed, ctx)
	if err != nil {
		return nil, err
	}

	applied, err := applyFunctions(resolved, fns)
	if err != nil {
		return nil, err
	}

	lit, ok := applied.(*LiteralExpr)
	if !ok {
		// Both passes replace every node they visit; anything else
		// remaining is a defect in the resolver, not a user error.
		panic(fmt.Sprintf("expression not fully resolved: %#v", applied))
	}
	return lit.Value, nil
}
