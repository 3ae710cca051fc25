// Package parse implements the `parse` command for versioncmp.
package parse

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
		Name:  "parse",
		Usage: "shows how versions are understood",
		Description: "prints the canonical form and parsed items of each version, " +
			"then how each version compares to the one after it",
		ArgsUsage: "<version>...",
		Flags:     helper.BuildCommonFlags(),
		Action: func(_ context.Context, cmd *cli.Command) error {
			return action(cmd, stdout)
		},
	}
}

func action(cmd *cli.Command, stdout io.Writer) error {
	if cmd.Args().Len() == 0 {
		return helper.ErrNoVersions
	}

	result := &output.Result{Detailed: true}

	var prev *semantic.Version

	for _, raw := range cmd.Args().Slice() {
		v := semantic.Parse(raw)
		result.Versions = append(result.Versions, output.Describe(v, true))

		if prev != nil {
			result.Comparisons = append(result.Comparisons, output.Compare(*prev, v))
		}

		prev = &v
	}

	if err := helper.PrintResult(stdout, cmd.String("format"), result); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
