package server

import (
	"context"
	"net/http"

	gberrors "github.com/lepinkainen/gbrandom/internal/errors"
	"github.com/lepinkainen/gbrandom/internal/giantbomb"
	"github.com/lepinkainen/gbrandom/internal/logging"
)

// GameSampler returns a random game. *sampler.Sampler implements it.
type GameSampler interface {
	RandomGame(ctx context.Context) (*giantbomb.Game, error)
}

// GameHandler serves sampled games.
type GameHandler struct {
	sampler GameSampler
}

// NewGameHandler creates a GameHandler.
func NewGameHandler(sampler GameSampler) *GameHandler {
	return &GameHandler{sampler: sampler}
}

// RandomGame handles GET /game/random. Every sampler failure maps to 502.
func (h *GameHandler) RandomGame(w http.ResponseWriter, r *http.Request) {
	game, err := h.sampler.RandomGame(r.Context())
	if err != nil {
		logging.FromContext(r.Context()).Warn("Failed to sample random game",
			"kind", gberrors.Kind(err),
			"error", err,
		)
		WriteJSONError(w, http.StatusBadGateway, err.Error())
		return
	}

	RespondWithJSON(w, http.StatusOK, game)
}

// Ping handles GET /_ping for liveness checks.
func Ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
