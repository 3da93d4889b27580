// Package alert provides the local desktop-style notification channel.
// In a terminal product the closest analogue is a highlighted banner; the
// sink degrades to a no-op when disabled.
package alert

import (
	"io"
	"os"

	"github.com/fatih/color"
)

// TerminalSink writes a highlighted alert banner to a writer.
type TerminalSink struct {
	out io.Writer
}

// NewTerminalSink returns a sink writing to stderr.
func NewTerminalSink() *TerminalSink {
	return &TerminalSink{out: os.Stderr}
}

// NewTerminalSinkWithOutput returns a sink writing to out, for tests.
func NewTerminalSinkWithOutput(out io.Writer) *TerminalSink {
	return &TerminalSink{out: out}
}

// Alert renders the banner. Best effort: write errors are swallowed, an
// alert must never disturb the flow that raised it.
func (s *TerminalSink) Alert(title, body string) {
	header := color.New(color.FgHiGreen, color.Bold)
	header.Fprintf(s.out, "\n🔔 %s\n", title)
	color.New(color.FgGreen).Fprintf(s.out, "   %s\n", body)
}
