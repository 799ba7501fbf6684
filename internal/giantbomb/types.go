package giantbomb

import (
	"encoding/json"
	"fmt"
)

// Envelope status values reported by Giant Bomb on success.
const (
	statusOK     = "OK"
	statusCodeOK = 1
)

// Envelope wraps every Giant Bomb response.
type Envelope[T any] struct {
	Error                string `json:"error"`
	StatusCode           int    `json:"status_code"`
	Version              string `json:"version"`
	Limit                int    `json:"limit"`
	Offset               int    `json:"offset"`
	NumberOfPageResults  int64  `json:"number_of_page_results"`
	NumberOfTotalResults int64  `json:"number_of_total_results"`
	Results              T      `json:"results"`
}

// OK reports whether the envelope carries the success sentinel.
func (e *Envelope[T]) OK() bool {
	return e.StatusCode == statusCodeOK && e.Error == statusOK
}

// ItemReference points at the detail resource of a single catalog item.
type ItemReference struct {
	APIDetailURL string `json:"api_detail_url"`
}

// UnmarshalJSON rejects references without a detail URL.
func (r *ItemReference) UnmarshalJSON(data []byte) error {
	var raw struct {
		APIDetailURL *string `json:"api_detail_url"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.APIDetailURL == nil {
		return missingField("api_detail_url")
	}
	r.APIDetailURL = *raw.APIDetailURL
	return nil
}

// Image holds the resolution variants of a game's cover image.
type Image struct {
	OriginalURL    *string `json:"original_url" yaml:"original_url"`
	SuperURL       *string `json:"super_url" yaml:"super_url"`
	ScreenURL      *string `json:"screen_url" yaml:"screen_url"`
	ScreenLargeURL *string `json:"screen_large_url" yaml:"screen_large_url"`
	MediumURL      *string `json:"medium_url" yaml:"medium_url"`
	SmallURL       *string `json:"small_url" yaml:"small_url"`
	ThumbURL       *string `json:"thumb_url" yaml:"thumb_url"`
	IconURL        *string `json:"icon_url" yaml:"icon_url"`
	TinyURL        *string `json:"tiny_url" yaml:"tiny_url"`
}

// Best returns the largest available image URL, or "" when none is set.
func (i *Image) Best() string {
	if i == nil {
		return ""
	}
	for _, u := range []*string{i.OriginalURL, i.SuperURL, i.ScreenLargeURL, i.ScreenURL, i.MediumURL, i.SmallURL, i.ThumbURL} {
		if u != nil && *u != "" {
			return *u
		}
	}
	return ""
}

// Tag is a cross-referenced characteristic of a game (platform, developer, theme...).
type Tag struct {
	APIDetailURL  string  `json:"api_detail_url" yaml:"api_detail_url"`
	ID            int     `json:"id" yaml:"id"`
	Name          string  `json:"name" yaml:"name"`
	SiteDetailURL string  `json:"site_detail_url" yaml:"site_detail_url"`
	Abbreviation  *string `json:"abbreviation" yaml:"abbreviation"`
}

// UnmarshalJSON rejects tags missing any of their required fields.
func (t *Tag) UnmarshalJSON(data []byte) error {
	var raw struct {
		APIDetailURL  *string `json:"api_detail_url"`
		ID            *int    `json:"id"`
		Name          *string `json:"name"`
		SiteDetailURL *string `json:"site_detail_url"`
		Abbreviation  *string `json:"abbreviation"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch {
	case raw.APIDetailURL == nil:
		return missingField("api_detail_url")
	case raw.ID == nil:
		return missingField("id")
	case raw.Name == nil:
		return missingField("name")
	case raw.SiteDetailURL == nil:
		return missingField("site_detail_url")
	}

	*t = Tag{
		APIDetailURL:  *raw.APIDetailURL,
		ID:            *raw.ID,
		Name:          *raw.Name,
		SiteDetailURL: *raw.SiteDetailURL,
		Abbreviation:  raw.Abbreviation,
	}
	return nil
}

// Game is a single catalog item as returned by the detail endpoint.
// Optional attributes stay nil when the remote omits them.
type Game struct {
	ID                     int          `json:"id" yaml:"id"`
	GUID                   string       `json:"guid" yaml:"guid"`
	Image                  *Image       `json:"image" yaml:"image"`
	Name                   string       `json:"name" yaml:"name"`
	Deck                   *string      `json:"deck" yaml:"deck"`
	Description            *string      `json:"description" yaml:"description"`
	OriginalReleaseDate    *string      `json:"original_release_date" yaml:"original_release_date"`
	SiteDetailURL          *string      `json:"site_detail_url" yaml:"site_detail_url"`
	ExpectedReleaseDay     *json.Number `json:"expected_release_day" yaml:"expected_release_day"`
	ExpectedReleaseMonth   *json.Number `json:"expected_release_month" yaml:"expected_release_month"`
	ExpectedReleaseYear    *json.Number `json:"expected_release_year" yaml:"expected_release_year"`
	ExpectedReleaseQuarter *json.Number `json:"expected_release_quarter" yaml:"expected_release_quarter"`
	Platforms              []Tag        `json:"platforms" yaml:"platforms"`
	Concepts               []Tag        `json:"concepts" yaml:"concepts"`
	Developers             []Tag        `json:"developers" yaml:"developers"`
	Characters             []Tag        `json:"characters" yaml:"characters"`
	Themes                 []Tag        `json:"themes" yaml:"themes"`
}

// gameFields mirrors Game with the decoding behaviour of encoding/json but no
// custom UnmarshalJSON, so Game.UnmarshalJSON can reuse it.
type gameFields Game

// UnmarshalJSON decodes a game and rejects it when id, guid or name are missing.
func (g *Game) UnmarshalJSON(data []byte) error {
	var required struct {
		ID   *int    `json:"id"`
		GUID *string `json:"guid"`
		Name *string `json:"name"`
	}
	if err := json.Unmarshal(data, &required); err != nil {
		return err
	}

	switch {
	case required.ID == nil:
		return missingField("id")
	case required.GUID == nil:
		return missingField("guid")
	case required.Name == nil:
		return missingField("name")
	}

	var fields gameFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	*g = Game(fields)
	return nil
}

// ReleaseLabel describes when the game came out, or is expected to.
// It prefers the full original release date and falls back to the expected
// release components, returning "" when nothing is known.
func (g *Game) ReleaseLabel() string {
	if g.OriginalReleaseDate != nil && *g.OriginalReleaseDate != "" {
		return *g.OriginalReleaseDate
	}
	if g.ExpectedReleaseYear == nil {
		return ""
	}

	year := g.ExpectedReleaseYear.String()
	switch {
	case g.ExpectedReleaseMonth != nil && g.ExpectedReleaseDay != nil:
		return fmt.Sprintf("%s-%s-%s (expected)", year, twoDigits(*g.ExpectedReleaseMonth), twoDigits(*g.ExpectedReleaseDay))
	case g.ExpectedReleaseMonth != nil:
		return fmt.Sprintf("%s-%s (expected)", year, twoDigits(*g.ExpectedReleaseMonth))
	case g.ExpectedReleaseQuarter != nil:
		return fmt.Sprintf("Q%s %s (expected)", g.ExpectedReleaseQuarter.String(), year)
	default:
		return year + " (expected)"
	}
}

func twoDigits(n json.Number) string {
	if i, err := n.Int64(); err == nil {
		return fmt.Sprintf("%02d", i)
	}
	return n.String()
}

func missingField(name string) error {
	return fmt.Errorf("missing required field %q", name)
}
