// Package output renders the results of versioncmp commands.
package output

import (
	"fmt"
	"io"
)

var formats = []string{"text", "json", "table", "markdown"}

func Formats() []string {
	return formats
}

// PrintResult writes result to stdout in the given format. terminalWidth is
// zero when stdout is not a terminal.
func PrintResult(result *Result, format string, stdout io.Writer, terminalWidth int) error {
	switch format {
	case "text":
		PrintTextResults(result, stdout)
	case "json":
		return PrintJSONResults(result, stdout)
	case "table":
		PrintTableResults(result, stdout, terminalWidth)
	case "markdown":
		PrintMarkdownTableResults(result, stdout)
	default:
		return fmt.Errorf("%v is not a valid format", format)
	}

	return nil
}
