package output

import (
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// PrintTableResults prints the result into human friendly tables.
func PrintTableResults(result *Result, outputWriter io.Writer, terminalWidth int) {
	if terminalWidth <= 0 {
		text.DisableColors()
	}

	for _, outputTable := range buildTables(result, outputWriter, terminalWidth) {
		outputTable.Render()
	}
}

// PrintMarkdownTableResults prints the result as markdown tables.
func PrintMarkdownTableResults(result *Result, outputWriter io.Writer) {
	for _, outputTable := range buildTables(result, outputWriter, 0) {
		outputTable.RenderMarkdown()
	}
}

func newTable(outputWriter io.Writer, terminalWidth int) table.Writer {
	outputTable := table.NewWriter()
	outputTable.SetOutputMirror(outputWriter)

	// use fancy characters if we're outputting to a terminal
	if terminalWidth > 0 {
		outputTable.SetStyle(table.StyleRounded)
		outputTable.SetAllowedRowLength(terminalWidth)
	}

	outputTable.Style().Options.DoNotColorBordersAndSeparators = true
	outputTable.Style().Color.Row = text.Colors{text.Reset, text.BgHiBlack}
	outputTable.Style().Color.RowAlternate = text.Colors{text.Reset, text.BgBlack}

	return outputTable
}

func buildTables(result *Result, outputWriter io.Writer, terminalWidth int) []table.Writer {
	tables := make([]table.Writer, 0, 2)

	if len(result.Versions) > 0 {
		tables = append(tables, versionsTable(newTable(outputWriter, terminalWidth), result))
	}

	if len(result.Comparisons) > 0 {
		tables = append(tables, comparisonsTable(newTable(outputWriter, terminalWidth), result.Comparisons))
	}

	return tables
}

func versionsTable(outputTable table.Writer, result *Result) table.Writer {
	if result.Detailed {
		outputTable.AppendHeader(table.Row{"#", "Version", "Canonical", "Tokens"})
	} else {
		outputTable.AppendHeader(table.Row{"#", "Version"})
	}

	for i, v := range result.Versions {
		row := table.Row{strconv.Itoa(i + 1), v.Version}

		if result.Detailed {
			row = append(row, v.Canonical, v.Tokens)
		}

		outputTable.AppendRow(row)
	}

	return outputTable
}

func comparisonsTable(outputTable table.Writer, comparisons []Comparison) table.Writer {
	outputTable.AppendHeader(table.Row{"Left", "Order", "Right"})

	for _, c := range comparisons {
		outputTable.AppendRow(table.Row{c.Left, c.Symbol(), c.Right})
	}

	return outputTable
}
