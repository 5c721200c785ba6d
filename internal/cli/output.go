// internal/cli/output.go
package gpubench

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	successText = color.New(color.FgGreen).SprintFunc()
	warningText = color.New(color.FgYellow).SprintFunc()
	headingText = color.New(color.FgCyan, color.Bold).SprintFunc()
)

func printSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, successText(fmt.Sprintf(format, args...)))
}

func printWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, warningText(fmt.Sprintf(format, args...)))
}

func printHeading(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, headingText(fmt.Sprintf(format, args...)))
}
