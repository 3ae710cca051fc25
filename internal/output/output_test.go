package output_test

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/inductiveautomation/versioncmp/internal/output"
	"github.com/inductiveautomation/versioncmp/internal/testutility"
	"github.com/inductiveautomation/versioncmp/pkg/semantic"
)

func sortedResult(detailed bool) *output.Result {
	result := &output.Result{Detailed: detailed}

	for _, v := range []string{"1.0-alpha-1", "1.0", "1.0a1"} {
		result.Versions = append(result.Versions, output.Describe(semantic.Parse(v), detailed))
	}

	return result
}

func comparisonResult() *output.Result {
	return &output.Result{
		Comparisons: []output.Comparison{
			output.Compare(semantic.Parse("1.0"), semantic.Parse("1.1")),
			output.Compare(semantic.Parse("1.0"), semantic.Parse("1-ga")),
			output.Compare(semantic.Parse("1.0-sp"), semantic.Parse("1.0")),
		},
	}
}

func TestComparison_Symbol(t *testing.T) {
	t.Parallel()

	tests := []struct {
		result int
		want   string
	}{
		{result: -1, want: "<"},
		{result: 0, want: "=="},
		{result: 1, want: ">"},
	}

	for _, tt := range tests {
		if got := (output.Comparison{Result: tt.result}).Symbol(); got != tt.want {
			t.Errorf("Symbol() for %d = %s, want %s", tt.result, got, tt.want)
		}
	}
}

func TestPrintResult_Text(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		result *output.Result
		want   string
	}{
		{
			name:   "comparisons",
			result: comparisonResult(),
			want:   "1.0 < 1.1\n1.0 == 1-ga\n1.0-sp > 1.0\n",
		},
		{
			name:   "versions",
			result: sortedResult(false),
			want:   "1.0-alpha-1\n1.0\n1.0a1\n",
		},
		{
			name:   "detailed versions",
			result: sortedResult(true),
			want: "1.0-alpha-1\n" +
				"  canonical: 1-alpha-1\n" +
				"  tokens:    [1, [alpha, [1]]]\n" +
				"1.0\n" +
				"  canonical: 1\n" +
				"  tokens:    [1]\n" +
				"1.0a1\n" +
				"  canonical: 1-alpha-1\n" +
				"  tokens:    [1, [alpha, [1]]]\n",
		},
		{
			name:   "nothing",
			result: &output.Result{},
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf := &bytes.Buffer{}

			if err := output.PrintResult(tt.result, "text", buf, 0); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if diff := cmp.Diff(tt.want, buf.String()); diff != "" {
				t.Errorf("PrintResult() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPrintResult_JSON(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}

	result := &output.Result{
		Comparisons: []output.Comparison{
			output.Compare(semantic.Parse("1.0"), semantic.Parse("1.1")),
		},
	}

	if err := output.PrintResult(result, "json", buf, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `{
  "comparisons": [
    {
      "left": "1.0",
      "right": "1.1",
      "result": -1,
      "symbol": "<"
    }
  ]
}
`

	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("PrintResult() mismatch (-want +got):\n%s", diff)
	}
}

func TestPrintResult_DetailedJSON(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}

	if err := output.PrintResult(sortedResult(true), "json", buf, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := fmt.Sprintf(`{
  "versions": [
    {
      "version": "1.0-alpha-1",
      "canonical": "1-alpha-1",
      "tokens": "[1, [alpha, [1]]]",
      "hash": %[1]d
    },
    {
      "version": "1.0",
      "canonical": "1",
      "tokens": "[1]",
      "hash": %[2]d
    },
    {
      "version": "1.0a1",
      "canonical": "1-alpha-1",
      "tokens": "[1, [alpha, [1]]]",
      "hash": %[1]d
    }
  ]
}
`, semantic.Parse("1-alpha-1").Hash(), semantic.Parse("1").Hash())

	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("PrintResult() mismatch (-want +got):\n%s", diff)
	}
}

func TestPrintResult_Tables(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		format     string
		result     *output.Result
		wantPrefix string
		want       [][]string
	}{
		{
			name:       "table versions",
			format:     "table",
			result:     sortedResult(false),
			wantPrefix: "+---+",
			want: [][]string{
				{"#", "VERSION"},
				{"1", "1.0-alpha-1"},
				{"2", "1.0"},
				{"3", "1.0a1"},
			},
		},
		{
			name:       "table detailed versions",
			format:     "table",
			result:     sortedResult(true),
			wantPrefix: "+---+",
			want: [][]string{
				{"#", "VERSION", "CANONICAL", "TOKENS"},
				{"1", "1.0-alpha-1", "1-alpha-1", "[1, [alpha, [1]]]"},
				{"2", "1.0", "1", "[1]"},
				{"3", "1.0a1", "1-alpha-1", "[1, [alpha, [1]]]"},
			},
		},
		{
			name:       "table comparisons",
			format:     "table",
			result:     comparisonResult(),
			wantPrefix: "+--------+",
			want: [][]string{
				{"LEFT", "ORDER", "RIGHT"},
				{"1.0", "<", "1.1"},
				{"1.0", "==", "1-ga"},
				{"1.0-sp", ">", "1.0"},
			},
		},
		{
			name:       "markdown versions",
			format:     "markdown",
			result:     sortedResult(false),
			wantPrefix: "| # ",
			want: [][]string{
				{"#", "Version"},
				{"1", "1.0-alpha-1"},
				{"2", "1.0"},
				{"3", "1.0a1"},
			},
		},
		{
			name:       "markdown comparisons",
			format:     "markdown",
			result:     comparisonResult(),
			wantPrefix: "| Left ",
			want: [][]string{
				{"Left", "Order", "Right"},
				{"1.0", "<", "1.1"},
				{"1.0", "==", "1-ga"},
				{"1.0-sp", ">", "1.0"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			buf := &bytes.Buffer{}

			if err := output.PrintResult(tt.result, tt.format, buf, 0); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !strings.HasPrefix(buf.String(), tt.wantPrefix) {
				t.Errorf("expected the output to start with %q, got:\n%s", tt.wantPrefix, buf.String())
			}

			if diff := cmp.Diff(tt.want, testutility.TableCells(t, buf.String())); diff != "" {
				t.Errorf("PrintResult() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPrintResult_InvalidFormat(t *testing.T) {
	t.Parallel()

	if err := output.PrintResult(&output.Result{}, "sarif", &bytes.Buffer{}, 0); err == nil {
		t.Errorf("expected an error for an unknown format")
	}
}

func TestResult_MarshalJSON(t *testing.T) {
	t.Parallel()

	testutility.NewSnapshot().MatchJSON(t, comparisonResult())
}
