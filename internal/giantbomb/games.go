package giantbomb

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	gberrors "github.com/lepinkainen/gbrandom/internal/errors"
)

// Operation names used in errors and logs.
const (
	OpCountGames = "count games"
	OpResolveURI = "resolve game uri"
	OpGetGame    = "get game details"
)

const fieldAPIDetailURL = "api_detail_url"

// GameDetailFields is the field whitelist requested from the detail endpoint.
// description is left out: it is unbounded HTML.
var GameDetailFields = []string{
	"name",
	"site_detail_url",
	"themes",
	"platforms",
	"original_release_date",
	"image",
	"id",
	"guid",
	"expected_release_year",
	"expected_release_quarter",
	"expected_release_month",
	"expected_release_day",
	"developers",
	"deck",
	"concepts",
	"characters",
}

func (c *Client) baseParams() url.Values {
	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("format", "json")
	return params
}

// CountGames returns the total number of games in the catalog.
// A one item page is requested; number_of_total_results does not depend on it.
func (c *Client) CountGames(ctx context.Context) (int64, error) {
	params := c.baseParams()
	params.Set("limit", "1")
	params.Set("field_list", fieldAPIDetailURL)

	endpoint := fmt.Sprintf("%s/games/?%s", c.baseURL, params.Encode())

	env, err := c.getEnvelope(ctx, OpCountGames, endpoint, "number_of_total_results")
	if err != nil {
		return 0, err
	}

	return env.NumberOfTotalResults, nil
}

// GameURIAt returns the detail URL of the game at the given zero-based offset.
func (c *Client) GameURIAt(ctx context.Context, offset int64) (string, error) {
	if offset < 0 {
		return "", ErrNegativeOffset
	}

	params := c.baseParams()
	params.Set("limit", "1")
	params.Set("offset", strconv.FormatInt(offset, 10))
	params.Set("field_list", fieldAPIDetailURL)

	endpoint := fmt.Sprintf("%s/games/?%s", c.baseURL, params.Encode())

	env, err := c.getEnvelope(ctx, OpResolveURI, endpoint)
	if err != nil {
		return "", err
	}

	refs, err := decodeResults[[]ItemReference](OpResolveURI, env.Results)
	if err != nil {
		return "", err
	}
	if len(refs) == 0 {
		return "", gberrors.NewRemoteError(OpResolveURI, fmt.Sprintf("no result at offset %d", offset))
	}

	return refs[0].APIDetailURL, nil
}

// GetGame fetches the game behind a detail URL returned by GameURIAt.
// The API key is only ever sent to the configured catalog host.
func (c *Client) GetGame(ctx context.Context, detailURL string) (*Game, error) {
	u, err := url.Parse(detailURL)
	if err != nil {
		return nil, gberrors.NewRemoteError(OpGetGame, fmt.Sprintf("invalid detail url: %v", err))
	}
	if !c.sameHost(u) {
		return nil, gberrors.NewRemoteError(OpGetGame, fmt.Sprintf("detail url %q is outside the catalog host", redactURL(detailURL)))
	}

	params := u.Query()
	for key, values := range c.baseParams() {
		params[key] = values
	}
	params.Set("field_list", strings.Join(GameDetailFields, ","))
	u.RawQuery = params.Encode()

	env, err := c.getEnvelope(ctx, OpGetGame, u.String())
	if err != nil {
		return nil, err
	}

	game, err := decodeResults[*Game](OpGetGame, env.Results)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, gberrors.NewDecodeError(OpGetGame, fmt.Errorf("results is null"))
	}

	return game, nil
}

func (c *Client) sameHost(u *url.URL) bool {
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return false
	}
	return u.Scheme == base.Scheme && strings.EqualFold(u.Host, base.Host)
}
