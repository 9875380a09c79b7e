package expr

import (
	"math/big"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type tokenKind int

const (
	tokenLiteral tokenKind = iota
	tokenSymbol
	tokenOpen
	tokenClose
)

// token is a transient lexical unit. It exists only between scanning and
// parsing.
type token struct {
	span Span
	kind tokenKind
	lit  Value  // parsed primitive, for tokenLiteral
	sym  string // name, for tokenSymbol
}

func (t token) errorHere(kind ErrorKind) *Error {
	return &Error{Span: t.span, Kind: kind}
}

// Literal alternatives, tried in priority order. Float must come before the
// plain integer so "1.5" does not tokenize as "1" followed by an invalid '.'.
var (
	reFloat  = regexp.MustCompile(`^[-+]?[0-9]+\.[0-9]+([eE][-+]?[0-9]+)?`)
	reRadix  = regexp.MustCompile(`^0(b|o|x)([0-9a-f_]*[0-9a-f])`)
	reInt    = regexp.MustCompile(`^[-+]?[0-9_]*[0-9]`)
	reBool   = regexp.MustCompile(`^(true|false)`)
	reSymbol = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*`)
)

func scan(text string) ([]token, *Error) {
	var result []token

	offset := 0
	for offset < len(text) {
		rest := text[offset:]

		if m := reFloat.FindString(rest); m != "" {
			f, err := strconv.ParseFloat(m, 64)
			if err != nil {
				return nil, &Error{Span: newSpan(text, offset, len(m)), Kind: InvalidChar, Char: rune(m[0])}
			}
			result = append(result, token{
				span: newSpan(text, offset, len(m)),
				kind: tokenLiteral,
				lit:  Float(f),
			})
			offset += len(m)
			continue
		}

		if m := reRadix.FindStringSubmatch(rest); m != nil {
			base := radixBase(m[1])
			if bad := invalidDigit(m[2], base); bad >= 0 {
				pos := offset + len("0b") + bad
				return nil, &Error{
					Span: newSpan(text, pos, 1),
					Kind: InvalidChar,
					Char: rune(m[2][bad]),
				}
			}
			n, _ := new(big.Int).SetString(strings.ReplaceAll(m[2], "_", ""), base)
			if n.Cmp(maxInt) > 0 {
				return nil, &Error{Span: newSpan(text, offset, len(m[0])), Kind: Overflow}
			}
			result = append(result, token{
				span: newSpan(text, offset, len(m[0])),
				kind: tokenLiteral,
				lit:  Int{n: n},
			})
			offset += len(m[0])
			continue
		}

		if m := reInt.FindString(rest); m != "" {
			n, _ := new(big.Int).SetString(strings.ReplaceAll(m, "_", ""), 10)
			if n.Cmp(minInt) < 0 || n.Cmp(maxInt) > 0 {
				return nil, &Error{Span: newSpan(text, offset, len(m)), Kind: Overflow}
			}
			result = append(result, token{
				span: newSpan(text, offset, len(m)),
				kind: tokenLiteral,
				lit:  Int{n: n},
			})
			offset += len(m)
			continue
		}

		if m := reBool.FindString(rest); m != "" {
			result = append(result, token{
				span: newSpan(text, offset, len(m)),
				kind: tokenLiteral,
				lit:  Bool(m == "true"),
			})
			offset += len(m)
			continue
		}

		if m := reSymbol.FindString(rest); m != "" {
			result = append(result, token{
				span: newSpan(text, offset, len(m)),
				kind: tokenSymbol,
				sym:  m,
			})
			offset += len(m)
			continue
		}

		r, size := utf8.DecodeRuneInString(rest)
		switch {
		case unicode.IsSpace(r):
			offset += size
		case r == '(':
			result = append(result, token{span: newSpan(text, offset, 1), kind: tokenOpen})
			offset++
		case r == ')':
			result = append(result, token{span: newSpan(text, offset, 1), kind: tokenClose})
			offset++
		default:
			return nil, &Error{Span: newSpan(text, offset, 1), Kind: InvalidChar, Char: r}
		}
	}

	return result, nil
}

func radixBase(prefix string) int {
	switch prefix {
	case "b":
		return 2
	case "o":
		return 8
	default:
		return 16
	}
}

// invalidDigit returns the index of the first digit not valid in the given
// base, or -1 if all digits are valid. Underscore separators are allowed
// anywhere.
func invalidDigit(digits string, base int) int {
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c == '_' {
			continue
		}
		var v int
		switch {
		case c >= '0' && c <= '9':
			v = int(c - '0')
		default:
			v = int(c-'a') + 10
		}
		if v >= base {
			return i
		}
	}
	return -1
}
