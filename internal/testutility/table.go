package testutility

import (
	"strings"
	"testing"

	"github.com/inductiveautomation/versioncmp/internal/cachedregexp"
)

// TableCells returns the trimmed cells of every row of the text or markdown
// tables in output, leaving out borders and markdown alignment rows.
func TableCells(t *testing.T, output string) [][]string {
	t.Helper()

	alignment := cachedregexp.MustCompile(`^:?-+:?$`)

	var rows [][]string

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)

		if !strings.HasPrefix(line, "|") || !strings.HasSuffix(line, "|") || len(line) < 2 {
			continue
		}

		cells := strings.Split(line[1:len(line)-1], "|")
		isAlignment := true

		for i, cell := range cells {
			cells[i] = strings.TrimSpace(cell)

			if !alignment.MatchString(cells[i]) {
				isAlignment = false
			}
		}

		if !isAlignment {
			rows = append(rows, cells)
		}
	}

	return rows
}
