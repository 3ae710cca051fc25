package output

import (
	"fmt"
	"io"
)

// PrintTextResults writes one version or comparison per line, with the parsed
// form of each version indented below it when the result is detailed.
func PrintTextResults(result *Result, outputWriter io.Writer) {
	for _, v := range result.Versions {
		fmt.Fprintln(outputWriter, v.Version)

		if result.Detailed {
			fmt.Fprintf(outputWriter, "  canonical: %s\n", v.Canonical)
			fmt.Fprintf(outputWriter, "  tokens:    %s\n", v.Tokens)
		}
	}

	for _, c := range result.Comparisons {
		fmt.Fprintln(outputWriter, c.String())
	}
}
