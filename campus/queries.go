package campus

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/campusnav/errkind"
)

// ListOfAllLocations returns every location, sorted.
func (b *Backend) ListOfAllLocations() []string {
	locations := b.store.Nodes()
	slices.Sort(locations)

	return locations
}

// FindLocationsOnShortestPath returns the locations along the fastest walk
// from start to end, both included. It returns an empty slice when either
// location is unknown or no walk exists.
func (b *Backend) FindLocationsOnShortestPath(start, end string) []string {
	path, err := b.finder.ShortestPathData(start, end)
	if err != nil {
		if !errors.Is(err, errkind.ErrNotFound) {
			b.logger.Warn("shortest path failed", "start", start, "end", end, "error", err)
		}
		return []string{}
	}

	return path
}

// FindTimesOnShortestPath returns the walking time in seconds of every hop
// along the fastest walk from start to end. It returns an empty slice when
// no walk exists and [0] when start == end.
func (b *Backend) FindTimesOnShortestPath(start, end string) []float64 {
	path := b.FindLocationsOnShortestPath(start, end)
	switch len(path) {
	case 0:
		return []float64{}
	case 1:
		return []float64{0}
	}

	times := make([]float64, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		w, err := b.store.Edge(path[i-1], path[i])
		if err != nil {
			// The path came from the same graph, so every hop exists.
			b.logger.Error("path hop missing", "from", path[i-1], "to", path[i], "error", err)
			return []float64{}
		}
		times = append(times, w)
	}

	return times
}

// TotalTimeOnShortestPath returns the summed walking time from start to end.
//
// Errors:
//   - any PathFinder error (kind errkind.ErrNotFound when there is no walk).
func (b *Backend) TotalTimeOnShortestPath(start, end string) (float64, error) {
	return b.finder.ShortestPathCost(start, end)
}

// LongestLocationListFrom returns the longest location list among the
// shortest paths from start to every other reachable location. Ties keep
// the destination that sorts first.
//
// Destinations are queried concurrently, at most WithParallelism at a time.
//
// Errors:
//   - ErrLocationNotFound: start is not loaded.
//   - ErrNoReachableLocation: no other location can be reached.
//   - ctx.Err() when ctx is cancelled before every query finished.
func (b *Backend) LongestLocationListFrom(ctx context.Context, start string) ([]string, error) {
	if !b.store.ContainsNode(start) {
		return nil, fmt.Errorf("%w: %q", ErrLocationNotFound, start)
	}

	destinations := slices.DeleteFunc(b.ListOfAllLocations(), func(l string) bool { return l == start })
	paths := make([][]string, len(destinations))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.parallelism)
	for i, dst := range destinations {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			paths[i] = b.FindLocationsOnShortestPath(start, dst)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var longest []string
	for _, p := range paths {
		if len(p) > len(longest) {
			longest = p
		}
	}
	if len(longest) == 0 {
		return nil, fmt.Errorf("%w from %q", ErrNoReachableLocation, start)
	}
	b.logger.Debug("longest location list", "start", start, "length", len(longest))

	return longest, nil
}
