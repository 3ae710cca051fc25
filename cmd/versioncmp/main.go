package main

import (
	"os"

	"github.com/inductiveautomation/versioncmp/cmd/versioncmp/compare"
	"github.com/inductiveautomation/versioncmp/cmd/versioncmp/internal/cmd"
	"github.com/inductiveautomation/versioncmp/cmd/versioncmp/latest"
	"github.com/inductiveautomation/versioncmp/cmd/versioncmp/mcp"
	"github.com/inductiveautomation/versioncmp/cmd/versioncmp/parse"
	"github.com/inductiveautomation/versioncmp/cmd/versioncmp/sortversions"
)

func main() {
	exitCode := cmd.Run(os.Args, os.Stdout, os.Stderr, []cmd.CommandBuilder{
		compare.Command,
		parse.Command,
		sortversions.Command,
		latest.Command,
		mcp.Command,
	})

	os.Exit(exitCode)
}
