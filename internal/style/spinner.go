package style

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

// Spinner is a progress indicator shown while slow external steps, such as
// a formatter subprocess, run.
type Spinner interface {
	SetSuffix(suffix string)
	SetFinalMSG(finalMSG string)
	Start()
	Stop()
}

// NewSpinner returns a terminal spinner, or a line-oriented test spinner
// when POLYCONST_TEST is set so test output stays stable.
func NewSpinner(w io.Writer) Spinner {
	if os.Getenv("POLYCONST_TEST") == "true" {
		return &testSpinner{
			writer: w,
			color:  color.New(color.FgWhite).SprintFunc(),
		}
	}

	return &terminalSpinner{
		spinner: spinner.New(spinner.CharSets[9], 100*time.Millisecond, spinner.WithWriter(w)),
	}
}

type terminalSpinner struct {
	spinner *spinner.Spinner
}

func (s *terminalSpinner) SetSuffix(suffix string)     { s.spinner.Suffix = suffix }
func (s *terminalSpinner) SetFinalMSG(finalMSG string) { s.spinner.FinalMSG = finalMSG }
func (s *terminalSpinner) Start()                      { s.spinner.Start() }
func (s *terminalSpinner) Stop()                       { s.spinner.Stop() }

// testSpinner outputs each spinner update on a new line instead of clearing
// and redrawing
type testSpinner struct {
	mu       sync.Mutex
	writer   io.Writer
	color    func(a ...interface{}) string
	suffix   string
	finalMSG string
	active   bool
}

func (s *testSpinner) SetSuffix(suffix string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.writer, "[SET SUFFIX] %s\n", suffix)
	s.suffix = suffix
}

func (s *testSpinner) SetFinalMSG(finalMSG string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.finalMSG = finalMSG
}

func (s *testSpinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active {
		return
	}
	s.active = true
	fmt.Fprintf(s.writer, "[SPINNER START]\n")
}

func (s *testSpinner) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.active {
		return
	}
	s.active = false
	fmt.Fprintf(s.writer, "[SPINNER STOP]\n")
	if s.finalMSG != "" {
		fmt.Fprintf(s.writer, "[FINAL MSG] %s\n", s.color(s.finalMSG))
	}
}
