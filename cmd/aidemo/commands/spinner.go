package commands

import (
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// startSpinner shows an indeterminate spinner on w while the caller waits.
// It draws nothing when w is not a terminal. The returned func stops it.
func startSpinner(w io.Writer, message string) func() {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
	s.Suffix = " " + message
	s.Start()
	return s.Stop
}
