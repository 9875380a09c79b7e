// Package generator renders resolved constants into per-language source
// files according to the options file, optionally piping each file through
// an external formatter.
package generator

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/polyconst/polyconst/internal/config"
	"github.com/polyconst/polyconst/internal/constants"
)

// Output is one generated file, before it is written to disk.
type Output struct {
	Language string
	FileExt  string
	Content  string
}

// ImportsNotSupportedError reports a type that requires imports in a
// language without an import template.
type ImportsNotSupportedError struct {
	Language string
}

// Error implements the error interface.
func (e *ImportsNotSupportedError) Error() string {
	return fmt.Sprintf("language %q does not specify import syntax, but it is required", e.Language)
}

// TypeRequiredError reports a constant without a type in a language whose
// template references $type.
type TypeRequiredError struct {
	Language string
	Constant string
}

// Error implements the error interface.
func (e *TypeRequiredError) Error() string {
	return fmt.Sprintf("language %q requires types, but constant %q does not provide one", e.Language, e.Constant)
}

// Generator renders constants for every enabled language.
type Generator struct {
	opts *config.Options
}

// New creates a generator for the given options.
func New(opts *config.Options) *Generator {
	return &Generator{opts: opts}
}

// Run generates one output per enabled language, in name order.
func (g *Generator) Run(ctx context.Context, consts []constants.Resolved) ([]Output, error) {
	var outputs []Output
	for _, lang := range g.opts.EnabledLanguages() {
		log.Info().Str("language", lang.Name).Msg("processing target")

		content, err := g.render(lang.Name, lang.Options, consts)
		if err != nil {
			return nil, err
		}

		if len(lang.Options.Formatter) > 0 {
			content, err = runFormatter(ctx, lang.Options.Formatter, content)
			if err != nil {
				return nil, fmt.Errorf("formatting %s output: %w", lang.Name, err)
			}
		}

		outputs = append(outputs, Output{
			Language: lang.Name,
			FileExt:  lang.Options.FileExt,
			Content:  content,
		})
	}
	return outputs, nil
}

func (g *Generator) render(name string, lang *config.LangOptions, consts []constants.Resolved) (string, error) {
	var buf strings.Builder

	// Imports
	if g.opts.Codegen.CommentSections {
		comment, err := formatComment(lang, "Imports")
		if err != nil {
			return "", err
		}
		buf.WriteString(comment)
	}
	var imports []string
	for _, c := range consts {
		imports = append(imports, constantImports(lang, c.Constant)...)
	}
	slices.Sort(imports)
	imports = slices.Compact(imports)
	for _, imp := range imports {
		line, ok, err := formatImport(lang, imp)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", &ImportsNotSupportedError{Language: name}
		}
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	// Intro
	if g.opts.Codegen.CommentSections {
		comment, err := formatComment(lang, "Start body block")
		if err != nil {
			return "", err
		}
		buf.WriteString(comment)
	}
	intro, err := formatBlock(lang.Intro)
	if err != nil {
		return "", err
	}
	buf.WriteString(intro)

	// Constants
	if g.opts.Codegen.CommentSections {
		comment, err := formatComment(lang, "Constants")
		if err != nil {
			return "", err
		}
		buf.WriteString(comment)
	}
	for _, c := range consts {
		line, err := formatConstant(name, lang, c)
		if err != nil {
			return "", err
		}
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	// Outro
	if g.opts.Codegen.CommentSections {
		comment, err := formatComment(lang, "End body block")
		if err != nil {
			return "", err
		}
		buf.WriteString(comment)
	}
	outro, err := formatBlock(lang.Outro)
	if err != nil {
		return "", err
	}
	buf.WriteString(outro)

	return buf.String(), nil
}

// formatConstant renders one constant line from the language template. A
// type-specific format overrides the language format; if the template
// references $type, the constant must declare one.
func formatConstant(language string, lang *config.LangOptions, c constants.Resolved) (string, error) {
	format := lang.Format
	if c.Type != "" {
		if typeOpts, ok := lang.Types[c.Type]; ok {
			format = typeOpts.Format
		}
	}

	params := map[string]string{
		"$name":  c.Name,
		"$value": format.Format(c.Value),
	}

	if containsParameter(lang.Template, "$type") {
		if c.Type == "" {
			return "", &TypeRequiredError{Language: language, Constant: c.Name}
		}
		params["$type"] = c.Type
		if typeOpts, ok := lang.Types[c.Type]; ok {
			if typeOpts.Name != nil {
				params["$type"] = *typeOpts.Name
			}
			params["$value"] = typeOpts.ValuePrefix + params["$value"] + typeOpts.ValueSuffix
		}
	}

	return replaceParameters(lang.Template, params)
}

// formatImport renders one import line; ok is false if the language defines
// no import template.
func formatImport(lang *config.LangOptions, imp string) (string, bool, error) {
	if lang.Import == nil {
		return "", false, nil
	}
	line, err := replaceParameters(*lang.Import, map[string]string{"$import": imp})
	return line, true, err
}

// formatComment renders a section comment, or nothing if the language
// defines no comment template.
func formatComment(lang *config.LangOptions, comment string) (string, error) {
	if lang.Comment == nil {
		return "", nil
	}
	line, err := replaceParameters(*lang.Comment, map[string]string{"$comment": comment})
	if err != nil {
		return "", err
	}
	return line + "\n", nil
}

// formatBlock renders an optional intro/outro template.
func formatBlock(template *string) (string, error) {
	if template == nil {
		return "", nil
	}
	block, err := replaceParameters(*template, map[string]string{})
	if err != nil {
		return "", err
	}
	return block + "\n", nil
}

// constantImports lists the imports a constant's type requires in this
// language.
func constantImports(lang *config.LangOptions, c constants.Constant) []string {
	if c.Type == "" {
		return nil
	}
	typeOpts, ok := lang.Types[c.Type]
	if !ok {
		return nil
	}
	return slices.Clone(typeOpts.Import)
}
