package sampler

import (
	"context"
	"sync"

	"github.com/lepinkainen/gbrandom/internal/giantbomb"
)

// fakeCatalog is an in-memory Catalog with per-step hooks.
type fakeCatalog struct {
	mu sync.Mutex

	count   func(ctx context.Context) (int64, error)
	resolve func(ctx context.Context, offset int64) (string, error)
	fetch   func(ctx context.Context, uri string) (*giantbomb.Game, error)

	countCalls  int
	offsets     []int64
	fetchedURIs []string
}

func (f *fakeCatalog) CountGames(ctx context.Context) (int64, error) {
	f.mu.Lock()
	f.countCalls++
	f.mu.Unlock()
	return f.count(ctx)
}

func (f *fakeCatalog) GameURIAt(ctx context.Context, offset int64) (string, error) {
	f.mu.Lock()
	f.offsets = append(f.offsets, offset)
	f.mu.Unlock()
	return f.resolve(ctx, offset)
}

func (f *fakeCatalog) GetGame(ctx context.Context, uri string) (*giantbomb.Game, error) {
	f.mu.Lock()
	f.fetchedURIs = append(f.fetchedURIs, uri)
	f.mu.Unlock()
	return f.fetch(ctx, uri)
}

func constCount(n int64) func(context.Context) (int64, error) {
	return func(context.Context) (int64, error) { return n, nil }
}

func constURI(uri string) func(context.Context, int64) (string, error) {
	return func(context.Context, int64) (string, error) { return uri, nil }
}

func constGame(game *giantbomb.Game) func(context.Context, string) (*giantbomb.Game, error) {
	return func(context.Context, string) (*giantbomb.Game, error) { return game, nil }
}
