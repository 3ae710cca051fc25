package testcmd

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/inductiveautomation/versioncmp/cmd/versioncmp/internal/cmd"
	"github.com/inductiveautomation/versioncmp/internal/testutility"
	"github.com/urfave/cli/v3"
)

// CommandsUnderTest should be set in TestMain by every cmd package test
var CommandsUnderTest []cmd.CommandBuilder

// fetchCommandsToTest returns the commands that should be tested, ensuring that
// the default command is included to avoid a panic
func fetchCommandsToTest() []cmd.CommandBuilder {
	for _, builder := range CommandsUnderTest {
		command := builder(nil, nil)

		if command.Name == cmd.DefaultCommand {
			return CommandsUnderTest
		}
	}

	return append(CommandsUnderTest, func(_, _ io.Writer) *cli.Command {
		return &cli.Command{
			Name: cmd.DefaultCommand,
			Action: func(_ context.Context, _ *cli.Command) error {
				return errors.New("<this test is unexpectedly calling the default command>")
			},
		}
	})
}

// Run runs the CLI with the arguments of tc, checks the exit code and returns
// what was written to stdout and stderr, normalized to not depend on the machine
func Run(t *testing.T, tc Case) (string, string) {
	t.Helper()

	stdout := newMuffledWriter()
	stderr := newMuffledWriter()

	ec := cmd.Run(append([]string{"versioncmp"}, tc.Args...), stdout, stderr, fetchCommandsToTest())

	if ec != tc.Exit {
		t.Errorf("cli exited with code %d, not %d", ec, tc.Exit)
	}

	return testutility.NormalizeStdStream(t, stdout.String()), testutility.NormalizeStdStream(t, stderr.String())
}

// RunAndExpect runs tc and reports any difference between what was written to
// stdout and stderr and wantStdout and wantStderr
func RunAndExpect(t *testing.T, tc Case, wantStdout, wantStderr string) {
	t.Helper()

	stdout, stderr := Run(t, tc)

	if diff := cmp.Diff(wantStdout, stdout); diff != "" {
		t.Errorf("stdout mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(wantStderr, stderr); diff != "" {
		t.Errorf("stderr mismatch (-want +got):\n%s", diff)
	}
}
