package helper

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/inductiveautomation/versioncmp/internal/cmdlogger"
	"github.com/inductiveautomation/versioncmp/internal/output"
	"github.com/urfave/cli/v3"
)

// BuildCommonFlags returns a slice of flags which are common to all commands
func BuildCommonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "sets the output format; value can be: " + strings.Join(output.Formats(), ", "),
			Value:   "text",
			Action: func(_ context.Context, _ *cli.Command, s string) error {
				if slices.Contains(output.Formats(), s) {
					if s == "json" {
						cmdlogger.SendEverythingToStderr()
					}

					return nil
				}

				return fmt.Errorf("unsupported output format \"%s\" - must be one of: %s", s, strings.Join(output.Formats(), ", "))
			},
		},
		&cli.StringFlag{
			Name:  "verbosity",
			Usage: "specify the level of information that should be provided during runtime; value can be: " + strings.Join(cmdlogger.Levels(), ", "),
			Value: "info",
			Action: func(_ context.Context, _ *cli.Command, s string) error {
				lvl, err := cmdlogger.ParseLevel(s)

				if err != nil {
					return err
				}

				cmdlogger.SetLevel(lvl)

				return nil
			},
		},
	}
}

// ConfigFlag lets commands that filter versions take an explicit config file
func ConfigFlag() cli.Flag {
	return &cli.StringFlag{
		Name:      "config",
		Usage:     "set/override config file",
		TakesFile: true,
	}
}
