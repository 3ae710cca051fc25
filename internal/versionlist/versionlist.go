// Package versionlist reads lists of version strings from the formats they
// are usually found in.
package versionlist

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"deps.dev/util/maven"
	"github.com/inductiveautomation/versioncmp/internal/datasource"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatText          Format = "text"
	FormatJSON          Format = "json"
	FormatYAML          Format = "yaml"
	FormatMavenMetadata Format = "maven-metadata"
)

var formats = []Format{FormatText, FormatJSON, FormatYAML, FormatMavenMetadata}

var ErrUnsupportedFormat = errors.New("unsupported format")

// MaxLineLength is the longest line a text list can hold.
const MaxLineLength = 16 * 1024 * 1024

// ErrInvalidInput is returned when the input does not hold a list of versions
// in the expected format.
var ErrInvalidInput = errors.New("invalid input")

// Formats returns the names of the supported formats.
func Formats() []string {
	names := make([]string, 0, len(formats))
	for _, f := range formats {
		names = append(names, string(f))
	}

	return names
}

// ParseFormat returns the Format with the given name. An empty name means the
// format should be picked based on the input.
func ParseFormat(name string) (Format, error) {
	if name == "" {
		return "", nil
	}

	for _, f := range formats {
		if string(f) == name {
			return f, nil
		}
	}

	return "", fmt.Errorf("%w %q - must be one of: %s", ErrUnsupportedFormat, name, strings.Join(Formats(), ", "))
}

// FormatFromPath guesses the format of a file from its name.
func FormatFromPath(path string) Format {
	base := strings.ToLower(filepath.Base(path))

	switch {
	case filepath.Ext(base) == ".xml":
		return FormatMavenMetadata
	case filepath.Ext(base) == ".json":
		return FormatJSON
	case filepath.Ext(base) == ".yaml", filepath.Ext(base) == ".yml":
		return FormatYAML
	default:
		return FormatText
	}
}

type Options struct {
	// JSONPath selects the versions from a JSON document, using gjson syntax,
	// e.g. "releases.#.version". The document itself must be an array of
	// versions otherwise.
	JSONPath string
}

// Read returns the versions held in r, in the order they appear.
func Read(r io.Reader, format Format, opts Options) ([]string, error) {
	switch format {
	case FormatText, "":
		return readText(r)
	case FormatJSON:
		return readJSON(r, opts.JSONPath)
	case FormatYAML:
		return readYAML(r)
	case FormatMavenMetadata:
		return readMavenMetadata(r)
	}

	return nil, fmt.Errorf("%w %q", ErrUnsupportedFormat, format)
}

// ReadFile reads the versions in the file at path, guessing the format from
// the file name when format is empty.
func ReadFile(path string, format Format, opts Options) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if format == "" {
		format = FormatFromPath(path)
	}

	versions, err := Read(f, format, opts)
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}

	return versions, nil
}

func readText(r io.Reader) ([]string, error) {
	var versions []string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineLength)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		versions = append(versions, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return versions, nil
}

func readJSON(r io.Reader, path string) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: not valid JSON", ErrInvalidInput)
	}

	var result gjson.Result
	if path == "" {
		result = gjson.ParseBytes(data)

		if !result.IsArray() {
			return nil, fmt.Errorf("%w: expected a JSON array of versions", ErrInvalidInput)
		}
	} else {
		result = gjson.GetBytes(data, path)

		if !result.Exists() {
			return nil, fmt.Errorf("%w: nothing found at %q", ErrInvalidInput, path)
		}
	}

	elements := []gjson.Result{result}
	if result.IsArray() {
		elements = result.Array()
	}

	versions := make([]string, 0, len(elements))
	for _, elem := range elements {
		switch elem.Type {
		case gjson.String:
			versions = append(versions, elem.Str)
		case gjson.Number:
			// keep the literal, so 1.10 is not read as 1.1
			versions = append(versions, elem.Raw)
		case gjson.Null, gjson.False, gjson.True, gjson.JSON:
			return nil, fmt.Errorf("%w: %s is not a version", ErrInvalidInput, elem.Raw)
		}
	}

	return versions, nil
}

func readYAML(r io.Reader) ([]string, error) {
	var doc yaml.Node

	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}

		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	node := &doc
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}

	if node.Kind == yaml.MappingNode {
		node = versionsKey(node)

		if node == nil {
			return nil, fmt.Errorf("%w: expected a \"versions\" key", ErrInvalidInput)
		}
	}

	if node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%w: expected a YAML sequence of versions", ErrInvalidInput)
	}

	versions := make([]string, 0, len(node.Content))
	for _, elem := range node.Content {
		if elem.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: line %d is not a version", ErrInvalidInput, elem.Line)
		}

		versions = append(versions, elem.Value)
	}

	return versions, nil
}

// versionsKey returns the value of the "versions" key of a mapping, if any.
func versionsKey(mapping *yaml.Node) *yaml.Node {
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == "versions" {
			return mapping.Content[i+1]
		}
	}

	return nil
}

func readMavenMetadata(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var metadata maven.Metadata
	if err := datasource.NewMavenDecoder(bytes.NewReader(data)).Decode(&metadata); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	versions := make([]string, 0, len(metadata.Versioning.Versions))
	for _, v := range metadata.Versioning.Versions {
		versions = append(versions, string(v))
	}

	return versions, nil
}
