// Package mcp implements the `experimental-mcp` command for versioncmp.
package mcp

import (
	"context"
	_ "embed"
	"fmt"
	"io"
	"net/http"
	"slices"
	"time"

	"github.com/inductiveautomation/versioncmp/cmd/versioncmp/latest"
	"github.com/inductiveautomation/versioncmp/internal/cmdlogger"
	"github.com/inductiveautomation/versioncmp/internal/datasource"
	"github.com/inductiveautomation/versioncmp/internal/output"
	"github.com/inductiveautomation/versioncmp/internal/version"
	"github.com/inductiveautomation/versioncmp/internal/versionlist"
	"github.com/inductiveautomation/versioncmp/pkg/semantic"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/urfave/cli/v3"
)

// Command is the entry point for the `experimental-mcp` subcommand.
func Command(_, _ io.Writer) *cli.Command {
	return &cli.Command{
		Name:        "experimental-mcp",
		Usage:       "Run versioncmp as an MCP service (experimental)",
		Description: "Run versioncmp as an MCP service, speaking the MCP protocol over stdin/stdout.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "sse",
				DefaultText: "localhost:8080",
				Value:       "localhost:8080",
				Usage:       "The listening address for the SSE server, e.g. localhost:8080",
			},
			&cli.StringFlag{
				Name:  "maven-registry",
				Usage: "the base URL of the Maven registry used by latest_version",
				Value: datasource.MavenCentral,
			},
		},
		Action: action,
	}
}

// compareVersionsInput is the input for the compare_versions tool.
type compareVersionsInput struct {
	Left  string `json:"left"  jsonschema:"The version on the left of the comparison."`
	Right string `json:"right" jsonschema:"The version on the right of the comparison."`
}

type compareVersionsOutput struct {
	Left   string `json:"left"`
	Right  string `json:"right"`
	Result int    `json:"result" jsonschema:"-1 if left is older than right, 0 if they are the same version, 1 if left is newer."`
	Symbol string `json:"symbol" jsonschema:"One of <, == or >."`
}

// sortVersionsInput is the input for the sort_versions tool.
type sortVersionsInput struct {
	Versions []string `json:"versions"         jsonschema:"The versions to order."`
	Reverse  bool     `json:"reverse,omitempty" jsonschema:"Order from newest to oldest."`
	Unique   bool     `json:"unique,omitempty"  jsonschema:"Leave out versions that are the same as an earlier one, e.g. 1.0 after 1.0.0."`
}

type sortVersionsOutput struct {
	Versions []string `json:"versions"`
}

// latestVersionInput is the input for the latest_version tool.
type latestVersionInput struct {
	Artifact         string `json:"artifact"                    jsonschema:"The Maven coordinates of the artifact, as group:artifact."`
	IncludeSnapshots bool   `json:"include_snapshots,omitempty" jsonschema:"Consider -SNAPSHOT versions too."`
}

type latestVersionOutput struct {
	Artifact string `json:"artifact"`
	Version  string `json:"version"`
}

// ignoreVersionsInput is a placeholder to enable the tool call,
// as it seems like go-sdk mcp does not support a tool call with no arguments.
type ignoreVersionsInput struct {
	// Extra field is needed as a placeholder to prevent the llm from erroring when calling the tool
	Verbose bool `json:"verbose" jsonschema:"ignore this parameter"`
}

//go:embed configuration-instructions.md
var configInstructions string

// orderVersionsPrompt is sent to the AI model when the order_versions prompt is requested.
//
//go:embed order-versions-prompt.md
var orderVersionsPrompt string

type tools struct {
	registry *datasource.MavenRegistryAPIClient
}

func newServer(registryURL string) (*mcp.Server, error) {
	registry, err := datasource.NewMavenRegistryAPIClient(registryURL)
	if err != nil {
		return nil, err
	}

	t := &tools{registry: registry}

	s := mcp.NewServer(&mcp.Implementation{
		Name: "versioncmp", Version: version.VersioncmpVersion,
	}, nil)

	mcp.AddTool(s, &mcp.Tool{
		Name: "compare_versions",
		Description: "Compares two versions using Maven's ordering rules." +
			" Use this tool to find out which of two versions is newer, or whether they are the same version.",
	}, t.handleCompare)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "sort_versions",
		Description: "Orders a list of versions from oldest to newest using Maven's ordering rules.",
	}, t.handleSort)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "latest_version",
		Description: "Finds the newest version of a Maven artifact by reading its maven-metadata.xml from the registry.",
	}, t.handleLatest)

	mcp.AddTool(s, &mcp.Tool{
		Name:        "ignore_versions",
		Description: "Provides instructions for writing a config file to leave versions out of sort and latest results.",
	}, t.handleIgnoreVersions)

	s.AddPrompt(&mcp.Prompt{
		Name:        "order_versions",
		Description: "Reasons about which versions are newer using versioncmp.",
	}, handleOrderVersionsPrompt)

	return s, nil
}

func action(ctx context.Context, cmd *cli.Command) error {
	s, err := newServer(cmd.String("maven-registry"))
	if err != nil {
		return err
	}

	// Provide two options, sse on a network port, or stdio.
	if cmd.IsSet("sse") {
		sseAddr := cmd.String("sse")
		cmdlogger.Infof("Started MCP server on %s", sseAddr)
		handler := mcp.NewSSEHandler(func(_ *http.Request) *mcp.Server {
			return s
		}, nil)
		srv := &http.Server{
			Addr:         sseAddr,
			Handler:      handler,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  120 * time.Second,
		}
		if err := srv.ListenAndServe(); err != nil {
			cmdlogger.Errorf("mcp error: %s", err)
			return err
		}
	} else {
		cmdlogger.SendEverythingToStderr()
		cmdlogger.Infof("Started MCP server on stdio")
		if err := s.Run(ctx, &mcp.StdioTransport{}); err != nil {
			cmdlogger.Errorf("mcp error: %s", err)
			return err
		}
	}

	return nil
}

func (t *tools) handleCompare(_ context.Context, _ *mcp.CallToolRequest, input *compareVersionsInput) (*mcp.CallToolResult, compareVersionsOutput, error) {
	c := output.Compare(semantic.Parse(input.Left), semantic.Parse(input.Right))

	return nil, compareVersionsOutput{
		Left:   c.Left,
		Right:  c.Right,
		Result: c.Result,
		Symbol: c.Symbol(),
	}, nil
}

func (t *tools) handleSort(ctx context.Context, _ *mcp.CallToolRequest, input *sortVersionsInput) (*mcp.CallToolResult, sortVersionsOutput, error) {
	versions, err := versionlist.ParseAll(ctx, input.Versions, versionlist.DefaultParseLimit)
	if err != nil {
		return nil, sortVersionsOutput{}, err
	}

	slices.SortStableFunc(versions, semantic.Version.Compare)

	if input.Unique {
		versions = slices.CompactFunc(versions, semantic.Version.Equal)
	}

	if input.Reverse {
		slices.Reverse(versions)
	}

	out := sortVersionsOutput{Versions: make([]string, 0, len(versions))}
	for _, v := range versions {
		out.Versions = append(out.Versions, v.String())
	}

	return nil, out, nil
}

func (t *tools) handleLatest(ctx context.Context, _ *mcp.CallToolRequest, input *latestVersionInput) (*mcp.CallToolResult, latestVersionOutput, error) {
	groupID, artifactID, err := datasource.ParseCoordinates(input.Artifact)
	if err != nil {
		return nil, latestVersionOutput{}, err
	}

	versions, err := t.registry.GetVersions(ctx, groupID, artifactID)
	if err != nil {
		return nil, latestVersionOutput{}, fmt.Errorf("failed to fetch versions of %s: %w", input.Artifact, err)
	}

	selected := latest.Select(versions, input.IncludeSnapshots, false)
	if len(selected) == 0 {
		return nil, latestVersionOutput{}, fmt.Errorf("%s has no versions to choose from", input.Artifact)
	}

	return nil, latestVersionOutput{
		Artifact: input.Artifact,
		Version:  selected[0].String(),
	}, nil
}

// handleIgnoreVersions does not perform any actual actions, but instead provides the instructions of how
// to write an ignore file to the LLM using this tool, so that it can correctly write the ignore file.
func (t *tools) handleIgnoreVersions(_ context.Context, _ *mcp.CallToolRequest, _ *ignoreVersionsInput) (*mcp.CallToolResult, any, error) {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: configInstructions},
		},
	}, nil, nil
}

func handleOrderVersionsPrompt(_ context.Context, _ *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return &mcp.GetPromptResult{
		Description: "Maven version ordering",
		Messages: []*mcp.PromptMessage{
			{
				Role: "assistant",
				Content: &mcp.TextContent{
					Text: orderVersionsPrompt,
				},
			},
		},
	}, nil
}
