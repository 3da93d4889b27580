package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// showToast prints a one-line status notice, the CLI stand-in for the
// notification banner. Severity is one of info, success, error, warning.
func showToast(out io.Writer, message, severity string) {
	switch severity {
	case "success":
		color.New(color.FgGreen).Fprintf(out, "✓ %s\n", message)
	case "error":
		color.New(color.FgRed).Fprintf(out, "✗ %s\n", message)
	case "warning":
		color.New(color.FgYellow).Fprintf(out, "! %s\n", message)
	default:
		fmt.Fprintf(out, "· %s\n", message)
	}
}

func errorText(msg string) string {
	return color.New(color.FgRed).Sprint(msg)
}
