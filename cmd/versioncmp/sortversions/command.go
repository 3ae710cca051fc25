// Package sortversions implements the `sort` command for versioncmp.
package sortversions

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/inductiveautomation/versioncmp/cmd/versioncmp/internal/helper"
	"github.com/inductiveautomation/versioncmp/internal/output"
	"github.com/inductiveautomation/versioncmp/internal/versionlist"
	"github.com/inductiveautomation/versioncmp/pkg/semantic"
	"github.com/urfave/cli/v3"
)

func Command(stdout, _ io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "sort",
		Usage: "orders versions from oldest to newest",
		Description: "orders the versions given as arguments, in a file, or on stdin from oldest to newest; " +
			"versions matching an ignore entry in versioncmp.toml are left out",
		ArgsUsage: "[version...]",
		Flags: append(helper.BuildCommonFlags(),
			helper.ConfigFlag(),
			&cli.StringFlag{
				Name:      "file",
				Aliases:   []string{"F"},
				Usage:     "read the versions from this file instead of the arguments",
				TakesFile: true,
			},
			&cli.StringFlag{
				Name:  "input-format",
				Usage: "the format versions are read in; value can be: " + strings.Join(versionlist.Formats(), ", ") + " (default: based on the file name)",
				Action: func(_ context.Context, _ *cli.Command, s string) error {
					_, err := versionlist.ParseFormat(s)

					return err
				},
			},
			&cli.StringFlag{
				Name:  "json-path",
				Usage: "a gjson path selecting the versions in a JSON document, e.g. releases.#.version",
			},
			&cli.BoolFlag{
				Name:    "reverse",
				Aliases: []string{"r"},
				Usage:   "order from newest to oldest",
			},
			&cli.BoolFlag{
				Name:    "unique",
				Aliases: []string{"u"},
				Usage:   "leave out versions that are equal to an earlier one, e.g. 1.0 after 1.0.0",
			},
			&cli.BoolFlag{
				Name:  "latest",
				Usage: "only output the newest version",
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return action(ctx, cmd, stdout)
		},
	}
}

// readVersions returns the raw versions to sort, along with the path that
// config files should be looked for relative to
func readVersions(cmd *cli.Command) ([]string, string, error) {
	format, err := versionlist.ParseFormat(cmd.String("input-format"))
	if err != nil {
		return nil, "", err
	}

	opts := versionlist.Options{JSONPath: cmd.String("json-path")}

	if file := cmd.String("file"); file != "" {
		if cmd.Args().Present() {
			return nil, "", errors.New("versions cannot be given as arguments when reading from a file")
		}

		versions, err := versionlist.ReadFile(file, format, opts)

		return versions, file, err
	}

	if cmd.Args().Present() {
		return cmd.Args().Slice(), ".", nil
	}

	versions, err := versionlist.Read(cmd.Root().Reader, format, opts)
	if err != nil {
		return nil, "", fmt.Errorf("could not read stdin: %w", err)
	}

	return versions, ".", nil
}

func action(ctx context.Context, cmd *cli.Command, stdout io.Writer) error {
	raws, target, err := readVersions(cmd)
	if err != nil {
		return err
	}

	manager, err := helper.GetConfigManager(cmd)
	if err != nil {
		return err
	}

	raws = manager.Get(target).Filter(raws)
	helper.WarnAboutUnusedIgnores(manager)

	if len(raws) == 0 {
		return helper.ErrNoVersions
	}

	versions, err := versionlist.ParseAll(ctx, raws, versionlist.DefaultParseLimit)
	if err != nil {
		return err
	}

	slices.SortStableFunc(versions, semantic.Version.Compare)

	if cmd.Bool("unique") {
		versions = slices.CompactFunc(versions, semantic.Version.Equal)
	}

	if cmd.Bool("latest") {
		versions = versions[len(versions)-1:]
	}

	if cmd.Bool("reverse") {
		slices.Reverse(versions)
	}

	result := &output.Result{Versions: make([]output.Version, 0, len(versions))}
	for _, v := range versions {
		result.Versions = append(result.Versions, output.Describe(v, false))
	}

	if err := helper.PrintResult(stdout, cmd.String("format"), result); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
