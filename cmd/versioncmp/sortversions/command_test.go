package sortversions_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/inductiveautomation/versioncmp/cmd/versioncmp/internal/testcmd"
	"github.com/inductiveautomation/versioncmp/internal/testutility"
)

func TestCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tc         testcmd.Case
		wantStdout string
	}{
		{
			tc: testcmd.Case{
				Name: "arguments",
				Args: []string{"sort", "1.10", "1.9", "1.9.1", "1.0-SNAPSHOT", "1.0"},
				Exit: 0,
			},
			wantStdout: "1.0-SNAPSHOT\n1.0\n1.9\n1.9.1\n1.10\n",
		},
		{
			tc: testcmd.Case{
				Name: "file",
				Args: []string{"sort", "--file", "testdata/versions.txt"},
				Exit: 0,
			},
			wantStdout: "1.0\n1.0.0\n1.1-beta-1\n1.1-rc1\n1.1\n1.9\n1.10\n2.0-SNAPSHOT\n",
		},
		{
			tc: testcmd.Case{
				Name: "unique",
				Args: []string{"sort", "--unique", "--file", "testdata/versions.txt"},
				Exit: 0,
			},
			wantStdout: "1.0\n1.1-beta-1\n1.1-rc1\n1.1\n1.9\n1.10\n2.0-SNAPSHOT\n",
		},
		{
			tc: testcmd.Case{
				Name: "unique keeps the first of equal versions",
				Args: []string{"sort", "--unique", "1-ga", "1.0", "0.9", "1.0.0"},
				Exit: 0,
			},
			wantStdout: "0.9\n1-ga\n",
		},
		{
			tc: testcmd.Case{
				Name: "reverse",
				Args: []string{"sort", "--reverse", "--unique", "--file", "testdata/versions.txt"},
				Exit: 0,
			},
			wantStdout: "2.0-SNAPSHOT\n1.10\n1.9\n1.1\n1.1-rc1\n1.1-beta-1\n1.0\n",
		},
		{
			tc: testcmd.Case{
				Name: "latest",
				Args: []string{"sort", "--latest", "--file", "testdata/versions.txt"},
				Exit: 0,
			},
			wantStdout: "2.0-SNAPSHOT\n",
		},
		{
			tc: testcmd.Case{
				Name: "json path",
				Args: []string{"sort", "--file", "testdata/releases.json", "--json-path", "releases.#.version"},
				Exit: 0,
			},
			wantStdout: "2.9.1\n2.10\n3.0.0-M1\n3.0.0-RC1\n3.0.0\n",
		},
		{
			tc: testcmd.Case{
				Name: "explicit input format",
				Args: []string{"sort", "--input-format", "json", "--file", "testdata/versions.list"},
				Exit: 0,
			},
			wantStdout: "1.0-rc-2\n1.0-rc-10\n1.0.1\n1.10\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.tc.Name, func(t *testing.T) {
			t.Parallel()

			stdout, stderr := testcmd.Run(t, tt.tc)

			if diff := cmp.Diff(tt.wantStdout, stdout); diff != "" {
				t.Errorf("stdout mismatch (-want +got):\n%s", diff)
			}

			if stderr != "" {
				t.Errorf("expected nothing on stderr, got %q", stderr)
			}
		})
	}
}

func TestCommand_Config(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tc         testcmd.Case
		wantStdout string
		wantStderr string
	}{
		{
			tc: testcmd.Case{
				Name: "config next to the file",
				Args: []string{"sort", "--file", "testdata/filtered/versions.txt"},
				Exit: 0,
			},
			wantStdout: "1.1-SNAPSHOT has been filtered out because: snapshots are never released\n" +
				"1.0\n1.1\n1.2-beta-1\n",
			wantStderr: "testdata/filtered/versioncmp.toml has an ignore entry that matched nothing: ^0\\.\n",
		},
		{
			tc: testcmd.Case{
				Name: "arguments use the config in the working directory",
				Args: []string{"sort", "1.1-SNAPSHOT", "0.9"},
				Exit: 0,
			},
			wantStdout: "0.9\n1.1-SNAPSHOT\n",
		},
		{
			tc: testcmd.Case{
				Name: "config override",
				Args: []string{"sort", "--config", "testdata/only-betas.toml", "1.0", "1.1-beta-1", "1.1"},
				Exit: 0,
			},
			wantStdout: "1.1-beta-1 has been filtered out because it matches -beta\n1.0\n1.1\n",
		},
		{
			tc: testcmd.Case{
				Name: "config override replaces the config next to the file",
				Args: []string{"sort", "--config", "testdata/only-betas.toml", "--file", "testdata/filtered/versions.txt"},
				Exit: 0,
			},
			wantStdout: "1.2-beta-1 has been filtered out because it matches -beta\n" +
				"1.0\n1.1-SNAPSHOT\n1.1\n",
		},
		{
			tc: testcmd.Case{
				Name: "config override with a json output",
				Args: []string{"sort", "--format", "json", "--config", "testdata/only-betas.toml", "1.0", "1.1-beta-1", "1.1"},
				Exit: 0,
			},
			wantStdout: `{
  "versions": [
    {
      "version": "1.0"
    },
    {
      "version": "1.1"
    }
  ]
}
`,
			wantStderr: "1.1-beta-1 has been filtered out because it matches -beta\n",
		},
		{
			tc: testcmd.Case{
				Name: "invalid config override",
				Args: []string{"sort", "--config", "testdata/invalid.toml", "1.0", "1.1"},
				Exit: 127,
			},
			wantStderr: "failed to read config file: invalid patterns in config file: \"1.0-(alpha\"\n",
		},
		{
			tc: testcmd.Case{
				Name: "everything is filtered out",
				Args: []string{"sort", "--config", "testdata/only-betas.toml", "1.0-beta-1"},
				Exit: 128,
			},
			wantStdout: "1.0-beta-1 has been filtered out because it matches -beta\n",
			wantStderr: "No versions found, --help for usage information.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.tc.Name, func(t *testing.T) {
			t.Parallel()

			testcmd.RunAndExpect(t, tt.tc, tt.wantStdout, tt.wantStderr)
		})
	}
}

func TestCommand_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tc         testcmd.Case
		wantStderr string
	}{
		{
			tc: testcmd.Case{
				Name: "file and arguments",
				Args: []string{"sort", "--file", "testdata/versions.txt", "1.0"},
				Exit: 127,
			},
			wantStderr: "versions cannot be given as arguments when reading from a file\n",
		},
		{
			tc: testcmd.Case{
				Name: "file does not exist",
				Args: []string{"sort", "--file", "testdata/does-not-exist.txt"},
				Exit: 127,
			},
			wantStderr: "open testdata/does-not-exist.txt: no such file or directory\n",
		},
		{
			tc: testcmd.Case{
				Name: "unsupported input format",
				Args: []string{"sort", "--input-format", "csv", "1.0"},
				Exit: 127,
			},
			wantStderr: "unsupported format \"csv\" - must be one of: text, json, yaml, maven-metadata\n",
		},
		{
			tc: testcmd.Case{
				Name: "json path does not match",
				Args: []string{"sort", "--file", "testdata/releases.json", "--json-path", "tags"},
				Exit: 127,
			},
			wantStderr: "could not read testdata/releases.json: invalid input: nothing found at \"tags\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.tc.Name, func(t *testing.T) {
			t.Parallel()

			testcmd.RunAndExpect(t, tt.tc, "", tt.wantStderr)
		})
	}
}

func TestCommand_Tables(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tc        testcmd.Case
		wantCells [][]string
	}{
		{
			tc: testcmd.Case{
				Name: "table",
				Args: []string{"sort", "--format", "table", "--reverse", "--file", "testdata/versions.txt"},
				Exit: 0,
			},
			wantCells: [][]string{
				{"#", "VERSION"},
				{"1", "2.0-SNAPSHOT"},
				{"2", "1.10"},
				{"3", "1.9"},
				{"4", "1.1"},
				{"5", "1.1-rc1"},
				{"6", "1.1-beta-1"},
				{"7", "1.0.0"},
				{"8", "1.0"},
			},
		},
		{
			tc: testcmd.Case{
				Name: "markdown",
				Args: []string{"sort", "--format", "markdown", "--file", "testdata/releases.json", "--json-path", "releases.#.version"},
				Exit: 0,
			},
			wantCells: [][]string{
				{"#", "Version"},
				{"1", "2.9.1"},
				{"2", "2.10"},
				{"3", "3.0.0-M1"},
				{"4", "3.0.0-RC1"},
				{"5", "3.0.0"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.tc.Name, func(t *testing.T) {
			t.Parallel()

			stdout, stderr := testcmd.Run(t, tt.tc)

			if diff := cmp.Diff(tt.wantCells, testutility.TableCells(t, stdout)); diff != "" {
				t.Errorf("table mismatch (-want +got):\n%s", diff)
			}

			if stderr != "" {
				t.Errorf("expected nothing on stderr, got %q", stderr)
			}
		})
	}
}

func TestCommand_LongVersions(t *testing.T) {
	t.Parallel()

	long := "1." + strings.Repeat("9", 100_000)
	path := filepath.Join(t.TempDir(), "versions.txt")

	if err := os.WriteFile(path, []byte(long+"\n1.10\n"), 0o600); err != nil {
		t.Fatalf("could not write versions: %v", err)
	}

	testcmd.RunAndExpect(t, testcmd.Case{
		Name: "long versions",
		Args: []string{"sort", "--file", path},
		Exit: 0,
	}, "1.10\n"+long+"\n", "")
}
