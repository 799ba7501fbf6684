package cmd

import (
	"net/http"
	"time"

	"github.com/bufbuild/httplb"
	"github.com/lepinkainen/gbrandom/internal/giantbomb"
	"github.com/lepinkainen/gbrandom/internal/sampler"
)

var (
	newHTTPClient = func(timeout time.Duration) *http.Client {
		return httplb.NewClient(httplb.WithRequestTimeout(timeout))
	}
	closeHTTPClient = httplb.Close
)

// newSampler wires the Giant Bomb client into a sampler. The returned func
// releases the HTTP client.
func newSampler(app *App) (*sampler.Sampler, func()) {
	cfg := app.Config
	httpClient := newHTTPClient(cfg.RequestTimeout)

	client := giantbomb.NewClient(cfg.APIKey,
		giantbomb.WithHTTPClient(httpClient),
		giantbomb.WithBaseURL(cfg.BaseURL),
		giantbomb.WithUserAgent(cfg.UserAgent),
	)

	return sampler.New(client), func() {
		if err := closeHTTPClient(httpClient); err != nil {
			app.Logger.Debug("Failed to close HTTP client", "error", err)
		}
	}
}
