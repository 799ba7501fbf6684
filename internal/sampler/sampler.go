// Package sampler picks a uniformly random game from the remote catalog
// without ever listing it.
package sampler

import (
	"context"
	"fmt"
	"log/slog"

	gberrors "github.com/lepinkainen/gbrandom/internal/errors"
	"github.com/lepinkainen/gbrandom/internal/giantbomb"
	"github.com/lepinkainen/gbrandom/internal/logging"
)

// Catalog is the remote collection being sampled. *giantbomb.Client implements it.
type Catalog interface {
	CountGames(ctx context.Context) (int64, error)
	GameURIAt(ctx context.Context, offset int64) (string, error)
	GetGame(ctx context.Context, detailURL string) (*giantbomb.Game, error)
}

// Sampler runs probe, pick, resolve and fetch against a Catalog.
// It keeps no state between calls and is safe for concurrent use.
type Sampler struct {
	catalog Catalog
	pick    PickFunc
}

// Option is a functional option for configuring the Sampler.
type Option func(*Sampler)

// WithPickFunc replaces the random source, mainly for tests.
func WithPickFunc(pick PickFunc) Option {
	return func(s *Sampler) {
		if pick != nil {
			s.pick = pick
		}
	}
}

// New creates a Sampler over the given catalog.
func New(catalog Catalog, opts ...Option) *Sampler {
	s := &Sampler{
		catalog: catalog,
		pick:    defaultPick,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// run tracks one invocation through the sampling state machine.
type run struct {
	state  State
	logger *slog.Logger
}

func (r *run) advance(to State) {
	if !r.state.next(to) {
		panic(fmt.Sprintf("sampler: illegal transition %s -> %s", r.state, to))
	}
	r.logger.Debug("Sampler state changed", "from", r.state.String(), "to", to.String())
	r.state = to
}

func (r *run) fail(step string, err error) error {
	r.logger.Debug("Sampler step failed", "step", step, "kind", gberrors.Kind(err), "error", err)
	r.advance(StateFailed)
	return err
}

// RandomGame returns a uniformly random game. Any failure is returned exactly
// as the failing step produced it.
func (s *Sampler) RandomGame(ctx context.Context) (*giantbomb.Game, error) {
	r := &run{state: StateIdle, logger: logging.FromContext(ctx)}
	return s.sample(ctx, r)
}

func (s *Sampler) sample(ctx context.Context, r *run) (*giantbomb.Game, error) {
	total, err := s.catalog.CountGames(ctx)
	if err != nil {
		return nil, r.fail("probe", err)
	}
	r.logger.Info("Got total games", "total", total)

	idx, err := PickIndex(s.pick, total)
	if err != nil {
		return nil, r.fail("pick", err)
	}
	r.advance(StateProbeDone)
	r.logger.Info("Querying for game index", "index", idx)

	uri, err := s.catalog.GameURIAt(ctx, idx)
	if err != nil {
		return nil, r.fail("resolve", err)
	}
	r.advance(StateResolverDone)
	r.logger.Info("Querying for game uri", "uri", uri)

	game, err := s.catalog.GetGame(ctx, uri)
	if err != nil {
		return nil, r.fail("fetch", err)
	}
	r.advance(StateComplete)

	return game, nil
}
