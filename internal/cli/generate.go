package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/polyconst/polyconst/internal/config"
	"github.com/polyconst/polyconst/internal/constants"
	"github.com/polyconst/polyconst/internal/expr"
	"github.com/polyconst/polyconst/internal/generator"
	"github.com/polyconst/polyconst/internal/style"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate constant files for every enabled language",
	Long: `Generate per-language constant source files from an options file and one or
more constants files.

Constants are evaluated in declaration order, so later constants may reference
earlier ones by name. Each enabled language gets one output file named after
the stem and the language's file extension.

Examples:
  polyconst generate --options-file options.yaml --constants-file constants.yaml
  polyconst generate -o options.yaml -c api.yaml -c limits.yaml --target-dir gen
  polyconst generate -o options.yaml -c constants.yaml --check   # verify without writing`,
	Run: func(cmd *cobra.Command, args []string) {
		runGenerate(cmd)
	},
}

var (
	optionsFile    string
	constantsFiles []string
	targetDir      string
	stem           string
	checkOnly      bool
)

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&optionsFile, "options-file", "o", "options.yaml", "language options file")
	generateCmd.Flags().StringSliceVarP(&constantsFiles, "constants-file", "c", []string{"constants.yaml"}, "constants file (repeatable)")
	generateCmd.Flags().StringVarP(&targetDir, "target-dir", "t", ".", "directory generated files are written to")
	generateCmd.Flags().StringVar(&stem, "stem", "constants", "base name of generated files")
	generateCmd.Flags().BoolVar(&checkOnly, "check", false, "verify generated files match what is on disk, without writing")
}

func runGenerate(cmd *cobra.Command) {
	opts, err := config.Load(optionsFile)
	if err != nil {
		Error(err.Error())
		os.Exit(1)
	}

	consts, err := constants.LoadAll(constantsFiles)
	if err != nil {
		Error(err.Error())
		os.Exit(1)
	}

	resolved, err := constants.Resolve(consts, expr.DefaultFunctions())
	if err != nil {
		Error(err.Error())
		os.Exit(1)
	}

	log.Debug().
		Int("constants", len(resolved)).
		Int("languages", len(opts.EnabledLanguages())).
		Msg("resolved constants")

	sp := style.NewSpinner(os.Stdout)
	sp.SetSuffix(" generating constants...")
	if !viper.GetBool("quiet") && viper.GetString("output") == "text" {
		sp.Start()
	}
	outputs, err := generator.New(opts).Run(cmd.Context(), resolved)
	sp.Stop()
	if err != nil {
		Error(err.Error())
		os.Exit(1)
	}

	if checkOnly {
		checkOutputs(outputs)
		return
	}
	writeOutputs(outputs)
}

// writeOutputs writes each generated file under the target directory.
func writeOutputs(outputs []generator.Output) {
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		Error(fmt.Sprintf("creating target directory: %v", err))
		os.Exit(1)
	}

	for _, out := range outputs {
		path := outputPath(out)
		if err := os.WriteFile(path, []byte(out.Content), 0o644); err != nil {
			Error(fmt.Sprintf("writing %s output: %v", out.Language, err))
			os.Exit(1)
		}
		if !viper.GetBool("quiet") {
			Success(fmt.Sprintf("%s: wrote %s", out.Language, style.FormatFilePath(path)))
		}
	}
}

// checkOutputs diffs each generated file against what is on disk and exits
// nonzero when any file is stale.
func checkOutputs(outputs []generator.Output) {
	stale := 0
	for _, out := range outputs {
		path := outputPath(out)
		existing, err := os.ReadFile(path)
		if err != nil {
			Error(fmt.Sprintf("%s: cannot read %s: %v", out.Language, path, err))
			stale++
			continue
		}

		if diff := generator.Diff(string(existing), out.Content); diff != "" {
			Error(fmt.Sprintf("%s: %s is out of date", out.Language, style.FormatFilePath(path)))
			if !viper.GetBool("quiet") {
				fmt.Print(diff)
			}
			stale++
		} else if !viper.GetBool("quiet") {
			Success(fmt.Sprintf("%s: %s is up to date", out.Language, style.FormatFilePath(path)))
		}
	}

	if stale > 0 {
		os.Exit(1)
	}
}

func outputPath(out generator.Output) string {
	return filepath.Join(targetDir, stem+out.FileExt)
}
