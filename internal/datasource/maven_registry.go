// Package datasource fetches version listings from Maven registries.
package datasource

import (
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"deps.dev/util/maven"
	"github.com/inductiveautomation/versioncmp/internal/cmdlogger"
	"github.com/inductiveautomation/versioncmp/pkg/semantic"
	"golang.org/x/net/html/charset"
)

const MavenCentral = "https://repo.maven.apache.org/maven2"

// metadataExpiry bounds how long a long-running process trusts a listing.
const metadataExpiry = 6 * time.Hour

var ErrAPIFailed = errors.New("API query failed")

var ErrInvalidCoordinates = errors.New("invalid artifact coordinates")

type MavenRegistryAPIClient struct {
	registry   *url.URL
	httpClient *http.Client
	responses  *RequestCache[string, response]
}

type response struct {
	StatusCode int
	Body       []byte
}

// NewMavenRegistryAPIClient returns a client for the registry at registryURL,
// or for Maven Central if registryURL is empty.
func NewMavenRegistryAPIClient(registryURL string) (*MavenRegistryAPIClient, error) {
	if registryURL == "" {
		registryURL = MavenCentral
	}

	u, err := url.Parse(registryURL)
	if err != nil {
		return nil, fmt.Errorf("invalid Maven registry %s: %w", registryURL, err)
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid Maven registry %s: scheme must be http or https", registryURL)
	}

	return &MavenRegistryAPIClient{
		registry:   u,
		httpClient: http.DefaultClient,
		responses:  NewRequestCache[string, response](metadataExpiry),
	}, nil
}

// ParseCoordinates splits "group:artifact" into its group and artifact IDs.
func ParseCoordinates(coordinates string) (groupID, artifactID string, err error) {
	groupID, artifactID, ok := strings.Cut(coordinates, ":")

	if !ok || groupID == "" || artifactID == "" || strings.Contains(artifactID, ":") {
		return "", "", fmt.Errorf("%w: %q must be in the form group:artifact", ErrInvalidCoordinates, coordinates)
	}

	return groupID, artifactID, nil
}

// GetMetadata fetches an artifact level maven-metadata.xml and parses it to maven.Metadata.
// More about Maven Metadata: https://maven.apache.org/repositories/metadata.html
func (m *MavenRegistryAPIClient) GetMetadata(ctx context.Context, groupID, artifactID string) (maven.Metadata, error) {
	u := m.registry.JoinPath(strings.ReplaceAll(groupID, ".", "/"), artifactID, "maven-metadata.xml").String()

	var metadata maven.Metadata
	if err := m.get(ctx, u, &metadata); err != nil {
		return maven.Metadata{}, err
	}

	return metadata, nil
}

// GetVersions returns the versions of a Maven package specified by groupID
// and artifactID, from oldest to newest. Versions that are equal to an older
// entry, such as "1.0" after "1.0.0", are dropped.
func (m *MavenRegistryAPIClient) GetVersions(ctx context.Context, groupID, artifactID string) ([]semantic.Version, error) {
	metadata, err := m.GetMetadata(ctx, groupID, artifactID)
	if err != nil {
		return nil, err
	}

	versions := make([]semantic.Version, 0, len(metadata.Versioning.Versions))
	for _, v := range metadata.Versioning.Versions {
		versions = append(versions, semantic.Parse(string(v)))
	}

	slices.SortStableFunc(versions, semantic.Version.Compare)

	return slices.CompactFunc(versions, semantic.Version.Equal), nil
}

func (m *MavenRegistryAPIClient) get(ctx context.Context, apiURL string, dst any) error {
	resp, err := m.responses.Get(apiURL, func() (response, error) {
		cmdlogger.Debugf("Fetching versions from %s", apiURL)

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
		if err != nil {
			return response{}, fmt.Errorf("%w: Maven registry query failed: %w", ErrAPIFailed, err)
		}

		resp, err := m.httpClient.Do(req)
		if err != nil {
			return response{}, fmt.Errorf("%w: Maven registry query failed: %w", ErrAPIFailed, err)
		}
		defer resp.Body.Close()

		if !slices.Contains([]int{http.StatusOK, http.StatusNotFound}, resp.StatusCode) {
			// Only cache responses with Status OK or NotFound
			return response{}, fmt.Errorf("%w: Maven registry query status: %d", ErrAPIFailed, resp.StatusCode)
		}

		b, err := io.ReadAll(resp.Body)
		if err != nil {
			return response{}, fmt.Errorf("failed to read body: %w", err)
		}

		return response{StatusCode: resp.StatusCode, Body: b}, nil
	})
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: Maven registry query status: %d", ErrAPIFailed, resp.StatusCode)
	}

	if err := NewMavenDecoder(bytes.NewReader(resp.Body)).Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid metadata from %s: %w", ErrAPIFailed, apiURL, err)
	}

	return nil
}

// NewMavenDecoder returns an xml decoder with CharsetReader and Entity set.
func NewMavenDecoder(reader io.Reader) *xml.Decoder {
	decoder := xml.NewDecoder(reader)
	// Set charset reader for conversion from non-UTF-8 charset into UTF-8.
	decoder.CharsetReader = charset.NewReaderLabel
	// Set HTML entity map for translation between non-standard entity names
	// and string replacements.
	decoder.Entity = xml.HTMLEntity

	return decoder
}
