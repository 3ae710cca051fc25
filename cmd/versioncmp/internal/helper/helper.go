// Package helper provides helper functions for the versioncmp CLI.
package helper

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/inductiveautomation/versioncmp/internal/cmdlogger"
	"github.com/inductiveautomation/versioncmp/internal/config"
	"github.com/inductiveautomation/versioncmp/internal/output"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// ErrVersionsDiffer is returned by compare --exit-code for unequal versions.
var ErrVersionsDiffer = errors.New("versions are not equal")

// ErrNoVersions is returned when a command is left without any versions to
// work with, either because none were given or all were filtered out.
var ErrNoVersions = errors.New("no versions found")

func PrintResult(stdout io.Writer, format string, result *output.Result) error {
	termWidth := 0

	// Output might be a terminal
	if stdoutAsFile, ok := stdout.(*os.File); ok {
		w, _, err := term.GetSize(int(stdoutAsFile.Fd()))
		if err == nil {
			termWidth = w
		}
	}

	return output.PrintResult(result, format, stdout, termWidth)
}

// GetConfigManager returns a config manager honouring the --config flag, if
// the command has one
func GetConfigManager(cmd *cli.Command) (*config.Manager, error) {
	manager := config.NewManager()

	if configPath := cmd.String("config"); configPath != "" {
		if err := manager.UseOverride(configPath); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return manager, nil
}

// WarnAboutUnusedIgnores logs the ignore entries that never matched a version
func WarnAboutUnusedIgnores(manager *config.Manager) {
	unused := manager.GetUnusedIgnoreEntries()

	paths := make([]string, 0, len(unused))
	for path := range unused {
		paths = append(paths, path)
	}

	slices.Sort(paths)

	for _, path := range paths {
		for _, entry := range unused[path] {
			cmdlogger.Warnf("%s has an ignore entry that matched nothing: %s", path, entry.Pattern)
		}
	}
}
