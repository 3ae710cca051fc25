// Package compare implements the `compare` command for versioncmp.
package compare

import (
	"context"
	"fmt"
	"io"

	"github.com/inductiveautomation/versioncmp/cmd/versioncmp/internal/helper"
	"github.com/inductiveautomation/versioncmp/internal/output"
	"github.com/inductiveautomation/versioncmp/pkg/semantic"
	"github.com/urfave/cli/v3"
)

func Command(stdout, _ io.Writer) *cli.Command {
	return &cli.Command{
		Name:        "compare",
		Usage:       "compares two versions",
		Description: "compares two versions, printing whether the first is less than, equal to, or greater than the second",
		ArgsUsage:   "<version> <version>",
		Flags: append(helper.BuildCommonFlags(),
			&cli.BoolFlag{
				Name:  "exit-code",
				Usage: "exit with code 1 when the versions are not equal",
			},
		),
		Action: func(_ context.Context, cmd *cli.Command) error {
			return action(cmd, stdout)
		},
	}
}

func action(cmd *cli.Command, stdout io.Writer) error {
	if cmd.Args().Len() != 2 {
		return fmt.Errorf("expected exactly two versions to compare, got %d", cmd.Args().Len())
	}

	comparison := output.Compare(
		semantic.Parse(cmd.Args().Get(0)),
		semantic.Parse(cmd.Args().Get(1)),
	)

	err := helper.PrintResult(stdout, cmd.String("format"), &output.Result{
		Comparisons: []output.Comparison{comparison},
	})

	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if cmd.Bool("exit-code") && comparison.Result != 0 {
		return helper.ErrVersionsDiffer
	}

	return nil
}
