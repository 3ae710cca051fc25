// Package latest implements the `latest` command for versioncmp.
package latest

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/inductiveautomation/versioncmp/cmd/versioncmp/internal/helper"
	"github.com/inductiveautomation/versioncmp/internal/datasource"
	"github.com/inductiveautomation/versioncmp/internal/output"
	"github.com/inductiveautomation/versioncmp/pkg/semantic"
	"github.com/urfave/cli/v3"
)

func Command(stdout, _ io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "latest",
		Usage: "finds the newest version of a Maven artifact",
		Description: "fetches the maven-metadata.xml of an artifact from a Maven registry " +
			"and prints its newest version, ignoring snapshots unless asked not to",
		ArgsUsage: "<group>:<artifact>",
		Flags: append(helper.BuildCommonFlags(),
			helper.ConfigFlag(),
			&cli.StringFlag{
				Name:  "maven-registry",
				Usage: "the base URL of the Maven registry to query",
				Value: datasource.MavenCentral,
			},
			&cli.BoolFlag{
				Name:  "include-snapshots",
				Usage: "consider -SNAPSHOT versions too",
			},
			&cli.BoolFlag{
				Name:  "all",
				Usage: "print every version from oldest to newest, not just the newest",
			},
		),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return action(ctx, cmd, stdout)
		},
	}
}

// IsSnapshot reports whether v is a development build that was never released.
func IsSnapshot(v semantic.Version) bool {
	return strings.HasSuffix(strings.ToUpper(v.String()), "-SNAPSHOT")
}

// Select narrows versions, which must be ordered oldest to newest, down to
// those that should be reported
func Select(versions []semantic.Version, includeSnapshots bool, all bool) []semantic.Version {
	selected := make([]semantic.Version, 0, len(versions))

	for _, v := range versions {
		if includeSnapshots || !IsSnapshot(v) {
			selected = append(selected, v)
		}
	}

	if !all && len(selected) > 0 {
		selected = selected[len(selected)-1:]
	}

	return selected
}

func action(ctx context.Context, cmd *cli.Command, stdout io.Writer) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one artifact, got %d", cmd.Args().Len())
	}

	groupID, artifactID, err := datasource.ParseCoordinates(cmd.Args().First())
	if err != nil {
		return err
	}

	manager, err := helper.GetConfigManager(cmd)
	if err != nil {
		return err
	}

	client, err := datasource.NewMavenRegistryAPIClient(cmd.String("maven-registry"))
	if err != nil {
		return err
	}

	versions, err := client.GetVersions(ctx, groupID, artifactID)
	if err != nil {
		return err
	}

	raws := make([]string, 0, len(versions))
	for _, v := range versions {
		raws = append(raws, v.String())
	}

	kept := make(map[string]bool)
	for _, raw := range manager.Get(".").Filter(raws) {
		kept[raw] = true
	}

	helper.WarnAboutUnusedIgnores(manager)

	filtered := make([]semantic.Version, 0, len(kept))
	for _, v := range versions {
		if kept[v.String()] {
			filtered = append(filtered, v)
		}
	}

	selected := Select(filtered, cmd.Bool("include-snapshots"), cmd.Bool("all"))

	if len(selected) == 0 {
		return helper.ErrNoVersions
	}

	result := &output.Result{Versions: make([]output.Version, 0, len(selected))}
	for _, v := range selected {
		result.Versions = append(result.Versions, output.Describe(v, false))
	}

	if err := helper.PrintResult(stdout, cmd.String("format"), result); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
