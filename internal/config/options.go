// Package config defines the generation options file: which languages are
// enabled, how each language renders constants, and how literal values are
// formatted.
package config

import (
	"fmt"
	"os"
	"slices"
	"strings"
)

// Options is the root of the options file.
type Options struct {
	// Codegen holds top-level code generation options.
	Codegen CodegenOptions `yaml:"codegen"`

	// Lang holds per-language settings, keyed by language name.
	Lang map[string]LangOptions `yaml:"lang"`
}

// CodegenOptions are top-level code generation options.
type CodegenOptions struct {
	// Enabled lists the languages to generate files for.
	Enabled []string `yaml:"enabled"`

	// CommentSections emits a comment header before each generated
	// section (imports, body, constants).
	CommentSections bool `yaml:"comment_sections"`
}

// Language pairs a language name with its options.
type Language struct {
	Name    string
	Options *LangOptions
}

// EnabledLanguages returns the enabled languages in name order, so output is
// deterministic across runs.
func (o *Options) EnabledLanguages() []Language {
	var result []Language
	for name := range o.Lang {
		if slices.Contains(o.Codegen.Enabled, name) {
			opts := o.Lang[name]
			result = append(result, Language{Name: name, Options: &opts})
		}
	}
	slices.SortFunc(result, func(a, b Language) int {
		return strings.Compare(a.Name, b.Name)
	})
	return result
}

// LangOptions configures a single programming language or other data format.
// All templates are emitted followed by a line break.
type LangOptions struct {
	// FileExt is the file extension for this language, including the dot.
	FileExt string `yaml:"file_ext"`

	// Template generates a single constant. Parameters: $name, $value and
	// optionally $type; $$ escapes a literal dollar sign.
	Template string `yaml:"template"`

	// Import generates a dependency import. Type imports are not allowed
	// if nil.
	Import *string `yaml:"import"`

	// Comment generates a comment line. Comments are not emitted if nil.
	Comment *string `yaml:"comment"`

	// Intro opens the constants block.
	Intro *string `yaml:"intro"`

	// Outro closes the constants block.
	Outro *string `yaml:"outro"`

	// Format controls literal rendering.
	Format ValueFormat `yaml:"format"`

	// Formatter is an external command that reads source from stdin and
	// writes formatted code to stdout.
	Formatter []string `yaml:"formatter"`

	// Types holds per-type overrides, keyed by the type name used in
	// constants files.
	Types map[string]TypeOptions `yaml:"type"`
}

// TypeOptions adds formatting for a single type in some language.
type TypeOptions struct {
	// Name substitutes a different type name for $type.
	Name *string `yaml:"name"`

	// ValuePrefix is prepended to the rendered value.
	ValuePrefix string `yaml:"value_prefix"`

	// ValueSuffix is appended to the rendered value.
	ValueSuffix string `yaml:"value_suffix"`

	// Format overrides the language's literal rendering.
	Format ValueFormat `yaml:"format"`

	// Import lists dependencies required to use this type.
	Import []string `yaml:"import"`
}

// Load reads and strictly decodes an options file.
func Load(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading options file: %w", err)
	}
	opts, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing options file %s: %w", path, err)
	}
	return opts, nil
}

// Parse strictly decodes options from YAML. Unknown fields are rejected.
func Parse(data []byte) (*Options, error) {
	var opts Options
	if err := decodeStrict(data, &opts); err != nil {
		return nil, err
	}
	return &opts, nil
}
