// Package constants loads constant declarations and resolves their
// expression values in declaration order.
package constants

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/polyconst/polyconst/internal/expr"
)

// File is the root of a constants file.
type File struct {
	Constants []Constant `yaml:"constants"`
}

// Constant is a single declaration: a name, an optional type used by
// language-specific formatting, and the value expression.
type Constant struct {
	Name string `yaml:"name"`
	Type string `yaml:"type,omitempty"`
	Expr string `yaml:"value"`
}

// Resolved pairs a declaration with its evaluated value.
type Resolved struct {
	Constant
	Value expr.Value
}

// Load reads and strictly decodes a single constants file.
func Load(path string) ([]Constant, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading constants file: %w", err)
	}
	consts, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing constants file %s: %w", path, err)
	}
	return consts, nil
}

// LoadAll concatenates the declarations of several files in argument order.
func LoadAll(paths []string) ([]Constant, error) {
	var result []Constant
	for _, path := range paths {
		consts, err := Load(path)
		if err != nil {
			return nil, err
		}
		result = append(result, consts...)
	}
	return result, nil
}

// Parse strictly decodes constants from YAML.
func Parse(data []byte) ([]Constant, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var file File
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return file.Constants, nil
}

// ResolveError wraps an evaluation failure with the constant being resolved.
type ResolveError struct {
	Name string
	Err  error
}

// Error implements the error interface.
func (e *ResolveError) Error() string {
	return fmt.Sprintf("in constant %q: %s", e.Name, e.Err)
}

// Unwrap exposes the underlying evaluation error.
func (e *ResolveError) Unwrap() error { return e.Err }

// DuplicateError reports a constant declared more than once.
type DuplicateError struct {
	Name string
}

// Error implements the error interface.
func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate constant definition %q", e.Name)
}

// Resolve evaluates each constant in declaration order, inserting its value
// into the context before the next constant is evaluated, so later constants
// may reference earlier names. Resolution stops at the first failure.
func Resolve(consts []Constant, fns *expr.Functions) ([]Resolved, error) {
	ctx := expr.Context{}
	resolved := make([]Resolved, 0, len(consts))

	for _, c := range consts {
		if _, ok := ctx[c.Name]; ok {
			return nil, &DuplicateError{Name: c.Name}
		}
		value, err := expr.Evaluate(c.Expr, ctx, fns)
		if err != nil {
			return nil, &ResolveError{Name: c.Name, Err: err}
		}
		ctx[c.Name] = value
		resolved = append(resolved, Resolved{Constant: c, Value: value})
	}

	return resolved, nil
}
