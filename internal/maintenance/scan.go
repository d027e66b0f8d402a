package maintenance

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"github.com/jsundh/regidi/internal/keyspace"
	"github.com/jsundh/regidi/pkg"
	"github.com/jsundh/regidi/pkg/set"
	"golang.org/x/sync/errgroup"
)

const checkEvery = 4096

// Report summarizes which words occur in the digests of a keyspace.
type Report struct {
	Matched  set.Set[string]
	Excluded uint64
	Total    uint64
}

// Ratio is the share of the space whose digests would be excluded.
func (r *Report) Ratio() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Excluded) / float64(r.Total)
}

// Scan checks every digest of space against words, splitting the space
// between workers. workers <= 0 uses GOMAXPROCS.
func Scan(ctx context.Context, space *keyspace.Space, words []string, workers int) (*Report, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = int(min(uint64(workers), space.Size()))

	ranges, err := pkg.SplitRange(space.Size(), workers)
	if err != nil {
		return nil, err
	}

	slog.Debug("scanning keyspace",
		slog.Uint64("size", space.Size()),
		slog.Int("workers", len(ranges)),
		slog.Int("words", len(words)),
	)

	report := &Report{Matched: set.New[string](), Total: space.Size()}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	for _, r := range ranges {
		g.Go(func() error {
			matched := set.New[string]()
			excluded := uint64(0)
			n := 0

			for _, digest := range space.Range(r.Start, r.End) {
				if n++; n%checkEvery == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}

				if w, ok := Match(digest, words); ok {
					matched.Add(w)
					excluded++
				}
			}

			mu.Lock()
			defer mu.Unlock()
			report.Matched.Merge(matched)
			report.Excluded += excluded

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return report, nil
}
