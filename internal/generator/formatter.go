package generator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/rs/zerolog/log"
)

// runFormatter pipes source through an external formatter command. The
// command must read from stdin and write the formatted code to stdout.
func runFormatter(ctx context.Context, argv []string, source string) (string, error) {
	if len(argv) == 0 {
		return "", errors.New("formatter command empty")
	}

	log.Info().Strs("command", argv).Msg("running formatter")

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = strings.NewReader(source)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return "", fmt.Errorf("formatter failed: %w: %s", err, strings.TrimSpace(stderr.String()))
		}
		return "", fmt.Errorf("formatter failed: %w", err)
	}

	return stdout.String(), nil
}
