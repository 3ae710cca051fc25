// Package cmd runs the versioncmp CLI.
package cmd

import (
	"slices"

	"github.com/urfave/cli/v3"
)

func getCustomHelpTemplate() string {
	return `
NAME:
	{{.Name}} - {{.Usage}}

USAGE:
	{{.Name}} {{if .VisibleFlags}}[global options]{{end}}{{if .Commands}} command [command options]{{end}}

EXAMPLES:
	# Compare two versions
	$ {{.Name}} 1.0-alpha-1 1.0

	# Show how a version is understood
	$ {{.Name}} parse 1.0a1

	# Order the versions listed in a file, newest first
	$ {{.Name}} sort --reverse --file versions.txt

	# Find the newest release of an artifact on Maven Central
	$ {{.Name}} latest org.apache.commons:commons-lang3

	For full usage details, please refer to the help command of each subcommand (e.g. {{.Name}} sort --help).

VERSION:
	{{.Version}}

COMMANDS:
{{range .Commands}}{{if and (not .HideHelp) (not .Hidden)}}  {{join .Names ", "}}{{ "\t"}}{{.Usage}}{{ "\n" }}{{end}}{{end}}
{{if .VisibleFlags}}
GLOBAL OPTIONS:
	{{range .VisibleFlags}}  {{.}}{{end}}
{{end}}
`
}

// Gets all valid commands and global options for versioncmp.
func getAllCommands(commands []*cli.Command) []string {
	// Adding all subcommands
	allCommands := make([]string, 0)
	for _, command := range commands {
		allCommands = append(allCommands, command.Names()...)
	}

	// Adding help command and help flags
	for _, flag := range cli.HelpFlag.Names() {
		allCommands = append(allCommands, flag)      // help command
		allCommands = append(allCommands, "-"+flag)  // help flag
		allCommands = append(allCommands, "--"+flag) // help flag
	}

	// Adding version flags
	for _, flag := range cli.VersionFlag.Names() {
		allCommands = append(allCommands, "-"+flag)
		allCommands = append(allCommands, "--"+flag)
	}

	return allCommands
}

// Inserts the default command to args if no command is specified.
func insertDefaultCommand(args []string, commands []*cli.Command, defaultCommand string) []string {
	// Do nothing if no command or version is provided.
	if len(args) < 2 {
		return args
	}

	if slices.Contains(getAllCommands(commands), args[1]) {
		return args
	}

	// Avoids modifying args in-place, as some unit tests rely on its original value for multiple calls.
	argsTmp := make([]string, len(args)+1)
	copy(argsTmp[2:], args[1:])
	argsTmp[0] = args[0]
	argsTmp[1] = defaultCommand

	return argsTmp
}
