package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOptions = `
codegen:
  enabled: [python, rust]

lang:
  rust:
    file_ext: ".rs"
    template: "pub const $name: $type = $value;"
  python:
    file_ext: ".py"
    template: "$name = $value"
`

const testConstants = `
constants:
  - name: MAX_RETRIES
    type: u32
    value: "5"
  - name: TIMEOUT_MS
    type: u32
    value: "(mul MAX_RETRIES 1000)"
`

func setupGenerate(t *testing.T) string {
	t.Helper()
	t.Setenv("POLYCONST_TEST", "true")
	viper.Set("quiet", true)
	t.Cleanup(func() { viper.Set("quiet", false) })

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "options.yaml"), []byte(testOptions), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "constants.yaml"), []byte(testConstants), 0o644))

	optionsFile = filepath.Join(dir, "options.yaml")
	constantsFiles = []string{filepath.Join(dir, "constants.yaml")}
	targetDir = filepath.Join(dir, "gen")
	stem = "constants"
	checkOnly = false
	t.Cleanup(func() {
		optionsFile = "options.yaml"
		constantsFiles = []string{"constants.yaml"}
		targetDir = "."
		stem = "constants"
		checkOnly = false
	})

	return dir
}

func newTestCommand() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	return cmd
}

func TestGenerateWritesFiles(t *testing.T) {
	setupGenerate(t)

	runGenerate(newTestCommand())

	rust, err := os.ReadFile(filepath.Join(targetDir, "constants.rs"))
	require.NoError(t, err)
	assert.Contains(t, string(rust), "pub const MAX_RETRIES: u32 = 5;")
	assert.Contains(t, string(rust), "pub const TIMEOUT_MS: u32 = 5000;")

	python, err := os.ReadFile(filepath.Join(targetDir, "constants.py"))
	require.NoError(t, err)
	assert.Contains(t, string(python), "MAX_RETRIES = 5")
	assert.Contains(t, string(python), "TIMEOUT_MS = 5000")
}

func TestGenerateCheckUpToDate(t *testing.T) {
	setupGenerate(t)

	// Generate once, then verify check mode sees the files as current.
	runGenerate(newTestCommand())

	checkOnly = true
	runGenerate(newTestCommand())
}

func TestGenerateCustomStem(t *testing.T) {
	setupGenerate(t)
	stem = "limits"

	runGenerate(newTestCommand())

	_, err := os.Stat(filepath.Join(targetDir, "limits.rs"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(targetDir, "limits.py"))
	assert.NoError(t, err)
}
