package cli

import (
	"os"

	"github.com/polyconst/polyconst/internal/style"
)

// Success prints a success message to stdout.
func Success(message string) {
	style.Success(os.Stdout, message)
}

// Error prints an error message to stderr.
func Error(message string) {
	style.Error(os.Stderr, message)
}

// Warning prints a warning message to stderr.
func Warning(message string) {
	style.Warning(os.Stderr, message)
}
