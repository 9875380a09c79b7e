package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/polyconst/polyconst/internal/config"
	"github.com/polyconst/polyconst/internal/constants"
	"github.com/polyconst/polyconst/internal/expr"
	"github.com/polyconst/polyconst/internal/style"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate options and constants files without generating anything",
	Long: `Validate an options file and one or more constants files.

This command checks:
- YAML syntax and unknown fields
- Expression syntax in every constant value
- Name resolution across constants, in declaration order
- Duplicate constant definitions

Examples:
  polyconst validate --options-file options.yaml --constants-file constants.yaml
  polyconst validate -c api.yaml -c limits.yaml --output json   # JSON output for CI/CD`,
	Run: func(cmd *cobra.Command, args []string) {
		validateFiles()
	},
}

var (
	validateOptionsFile    string
	validateConstantsFiles []string
)

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateOptionsFile, "options-file", "o", "options.yaml", "language options file")
	validateCmd.Flags().StringSliceVarP(&validateConstantsFiles, "constants-file", "c", []string{"constants.yaml"}, "constants file (repeatable)")
}

// ValidationResult represents the result of validating one input file
type ValidationResult struct {
	File     string        `json:"file" yaml:"file"`
	Valid    bool          `json:"valid" yaml:"valid"`
	Duration time.Duration `json:"duration_ms" yaml:"duration_ms"`
	Errors   []string      `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// ValidationSummary represents the summary of all validation results
type ValidationSummary struct {
	Total    int                `json:"total" yaml:"total"`
	Valid    int                `json:"valid" yaml:"valid"`
	Invalid  int                `json:"invalid" yaml:"invalid"`
	Duration time.Duration      `json:"total_duration_ms" yaml:"total_duration_ms"`
	Results  []ValidationResult `json:"results" yaml:"results"`
}

func validateFiles() {
	start := time.Now()

	results := []ValidationResult{validateOptions(validateOptionsFile)}
	results = append(results, validateConstants(validateConstantsFiles)...)

	summary := ValidationSummary{
		Total:    len(results),
		Duration: time.Since(start),
		Results:  results,
	}
	for _, result := range results {
		if result.Valid {
			summary.Valid++
		} else {
			summary.Invalid++
		}
	}

	switch viper.GetString("output") {
	case "json":
		style.PrintJSON(os.Stdout, summary)
	case "yaml":
		style.PrintYAML(os.Stdout, summary)
	default:
		printValidationSummary(summary)
	}

	if summary.Invalid > 0 {
		os.Exit(1)
	}
}

func validateOptions(path string) ValidationResult {
	start := time.Now()
	result := ValidationResult{File: path, Valid: true}

	_, err := config.Load(path)
	result.Duration = time.Since(start)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, err.Error())
	}

	log.Debug().
		Str("file", path).
		Bool("valid", result.Valid).
		Dur("duration", result.Duration).
		Msg("validated options file")

	return result
}

// validateConstants parses each file, then resolves the concatenated
// declarations so cross-file references and duplicates are checked the same
// way generate would. Resolution errors are attributed to the file that
// declares the failing constant.
func validateConstants(paths []string) []ValidationResult {
	results := make([]ValidationResult, 0, len(paths))
	declaredIn := make(map[string]int)

	var all []constants.Constant
	parseFailed := false
	for i, path := range paths {
		start := time.Now()
		result := ValidationResult{File: path, Valid: true}

		consts, err := constants.Load(path)
		result.Duration = time.Since(start)
		if err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err.Error())
			parseFailed = true
		}

		for _, c := range consts {
			if _, ok := declaredIn[c.Name]; !ok {
				declaredIn[c.Name] = i
			}
		}
		all = append(all, consts...)
		results = append(results, result)
	}

	// Only attempt resolution when every file parsed.
	if parseFailed {
		return results
	}

	if _, err := constants.Resolve(all, expr.DefaultFunctions()); err != nil {
		i := resolveErrorFile(err, declaredIn, len(results))
		results[i].Valid = false
		results[i].Errors = append(results[i].Errors, err.Error())
	}

	for _, result := range results {
		log.Debug().
			Str("file", result.File).
			Bool("valid", result.Valid).
			Dur("duration", result.Duration).
			Msg("validated constants file")
	}

	return results
}

// resolveErrorFile maps a resolution error back to the index of the file
// declaring the constant it names.
func resolveErrorFile(err error, declaredIn map[string]int, n int) int {
	var name string
	switch e := err.(type) {
	case *constants.ResolveError:
		name = e.Name
	case *constants.DuplicateError:
		name = e.Name
	}
	if i, ok := declaredIn[name]; ok {
		return i
	}
	return n - 1
}

func printValidationSummary(summary ValidationSummary) {
	if viper.GetBool("quiet") {
		return
	}

	for _, result := range summary.Results {
		if result.Valid {
			if viper.GetBool("verbose") {
				Success(fmt.Sprintf("%s (%v)", result.File, result.Duration))
			}
		} else {
			Error(fmt.Sprintf("%s (%v)", result.File, result.Duration))
			for _, errMsg := range result.Errors {
				fmt.Printf("  %s\n", errMsg)
			}
		}
	}

	fmt.Printf("\n")
	if summary.Invalid == 0 {
		Success(fmt.Sprintf("All %d file(s) are valid (%v)", summary.Total, summary.Duration))
	} else {
		Error(fmt.Sprintf("%d of %d file(s) failed validation (%v)", summary.Invalid, summary.Total, summary.Duration))
	}
}
