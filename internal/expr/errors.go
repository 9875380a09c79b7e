package expr

import (
	"fmt"
	"strings"
)

// Span locates a token or expression within the original input text. It is
// used purely for diagnostics; Start and Len are byte positions into Text.
type Span struct {
	Text  string
	Start int
	Len   int
}

func newSpan(text string, start, length int) Span {
	return Span{Text: text, Start: start, Len: length}
}

// String renders the input line with a caret marker underneath the span.
func (s Span) String() string {
	return fmt.Sprintf("  %s\n  %s%s",
		s.Text,
		strings.Repeat(" ", s.Start),
		strings.Repeat("^", s.Len))
}

// ErrorKind discriminates evaluation failures.
type ErrorKind int

const (
	InvalidChar ErrorKind = iota
	EmptyExpression
	UnmatchedOpen
	UnmatchedClose
	UnexpectedToken
	CallNonSymbol
	UnknownSymbol
	UnknownFunction
	ArgumentCount
	InvalidArgument
	Overflow
)

// Error is an evaluation failure at a specific location in the input.
type Error struct {
	Span Span
	Kind ErrorKind

	Char   rune   // offending character, for InvalidChar
	Name   string // symbol or function name, for UnknownSymbol/UnknownFunction
	Detail string // operation description, for InvalidArgument
}

func (e *Error) message() string {
	switch e.Kind {
	case InvalidChar:
		return fmt.Sprintf("Invalid character %q for this position", e.Char)
	case EmptyExpression:
		return "Empty expressions are not allowed"
	case UnmatchedOpen:
		return "Unmatched opening '('"
	case UnmatchedClose:
		return "Unmatched closing ')'"
	case UnexpectedToken:
		return "Unexpected token"
	case CallNonSymbol:
		return "Only functions can be called"
	case UnknownSymbol:
		return fmt.Sprintf("Unknown symbol name %q", e.Name)
	case UnknownFunction:
		return fmt.Sprintf("Unknown function %q", e.Name)
	case ArgumentCount:
		return "Function argument count incorrect"
	case InvalidArgument:
		return "Argument invalid: " + e.Detail
	case Overflow:
		return "Overflow or underflow occurred"
	default:
		return "Evaluation failed"
	}
}

// Error renders the failure message followed by the two-line source
// diagnostic. Downstream error display depends on this exact format.
func (e *Error) Error() string {
	return e.message() + "\n" + e.Span.String()
}
