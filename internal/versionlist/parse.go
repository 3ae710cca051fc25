package versionlist

import (
	"context"

	"github.com/inductiveautomation/versioncmp/pkg/semantic"
	"golang.org/x/sync/errgroup"
)

// DefaultParseLimit is how many versions ParseAll parses at once by default.
const DefaultParseLimit = 64

// ParseAll parses every raw version, keeping their order. At most limit
// versions are parsed at the same time; a limit below one uses
// DefaultParseLimit.
func ParseAll(ctx context.Context, raws []string, limit int) ([]semantic.Version, error) {
	if limit < 1 {
		limit = DefaultParseLimit
	}

	versions := make([]semantic.Version, len(raws))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, raw := range raws {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			versions[i] = semantic.Parse(raw)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return versions, nil
}
