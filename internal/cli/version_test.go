package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionCommand(t *testing.T) {
	_, err := executeCommand(rootCmd, "version")
	assert.NoError(t, err)
}

func TestVersionCommandJSON(t *testing.T) {
	_, err := executeCommand(rootCmd, "version", "--output", "json")
	assert.NoError(t, err)
}

func TestVersionCommandYAML(t *testing.T) {
	_, err := executeCommand(rootCmd, "version", "--output", "yaml")
	assert.NoError(t, err)
}

func TestBuildVariables(t *testing.T) {
	// Build variables have sensible defaults
	assert.NotEmpty(t, Version)
	assert.NotEmpty(t, Commit)
	assert.NotEmpty(t, Date)
	assert.NotEmpty(t, GoVersion)
	assert.Contains(t, GoVersion, "go")
}
