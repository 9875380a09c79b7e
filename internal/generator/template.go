package generator

import (
	"fmt"
	"regexp"
	"strings"
)

// Template parameters are $-prefixed identifiers; $$ escapes a literal
// dollar sign.
var reParameter = regexp.MustCompile(`\$(\$|[a-zA-Z_][a-zA-Z0-9_]*)`)

// containsParameter reports whether the template references the given
// parameter (including its $ prefix).
func containsParameter(text, parameter string) bool {
	for _, name := range reParameter.FindAllString(text, -1) {
		if name != "$$" && name == parameter {
			return true
		}
	}
	return false
}

// replaceParameters substitutes every parameter in the template from the
// given map. Referencing a parameter the map does not define is an error.
func replaceParameters(text string, params map[string]string) (string, error) {
	result := text
	for _, name := range reParameter.FindAllString(text, -1) {
		if name == "$$" {
			continue
		}
		value, ok := params[name]
		if !ok {
			return "", fmt.Errorf("unknown template parameter %q", name)
		}
		result = strings.ReplaceAll(result, name, value)
	}
	return strings.ReplaceAll(result, "$$", "$"), nil
}
