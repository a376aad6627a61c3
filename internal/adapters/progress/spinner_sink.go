package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"

	"github.com/modreg-org/modreg-cli/internal/domain"
)

// SpinnerSink shows sweep progress on the terminal during long-running
// operations like a cache refresh, printing one line per attempted target.
type SpinnerSink struct {
	spinner *spinner.Spinner
}

// NewSpinnerSink creates a spinner-backed event sink
func NewSpinnerSink() *SpinnerSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.HideCursor = false
	return &SpinnerSink{spinner: s}
}

// Start begins the spinner with a message.
func (s *SpinnerSink) Start(message string) {
	s.spinner.Suffix = " " + message
	s.spinner.Start()
}

// Stop halts the spinner.
func (s *SpinnerSink) Stop() {
	if s.spinner.Active() {
		s.spinner.Stop()
	}
}

// Emit prints one committed registry event, pausing the spinner so output
// lines don't interleave with the animation.
func (s *SpinnerSink) Emit(_ context.Context, event domain.Event) {
	active := s.spinner.Active()
	if active {
		s.spinner.Stop()
	}

	if refresh, ok := event.(domain.RefreshAttemptedEvent); ok {
		if refresh.OK {
			fmt.Printf("  %s %s\n", color.GreenString("✓"), refresh.Target)
		} else {
			fmt.Printf("  %s %s: %s\n", color.RedString("✗"), refresh.Target, refresh.Reason)
		}
	} else {
		fmt.Printf("  %s\n", event.String())
	}

	if active {
		s.spinner.Start()
	}
}
