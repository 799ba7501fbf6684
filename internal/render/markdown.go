package render

import (
	"bytes"
	"fmt"

	"github.com/lepinkainen/gbrandom/internal/giantbomb"
	"gopkg.in/yaml.v3"
)

// Markdown builds a note with YAML frontmatter describing game.
func Markdown(game *giantbomb.Game) ([]byte, error) {
	fm := NewFrontmatter()
	fm.Set("title", game.Name)
	fm.Set("giantbomb_id", game.ID)
	fm.Set("guid", game.GUID)
	fm.SetIf("release", game.ReleaseLabel())
	fm.SetIf("cover", game.Image.Best())
	if game.SiteDetailURL != nil {
		fm.SetIf("url", *game.SiteDetailURL)
	}
	if names := tagNames(game.Platforms); len(names) > 0 {
		fm.Set("platforms", names)
	}
	if names := tagNames(game.Developers); len(names) > 0 {
		fm.Set("developers", names)
	}

	tags := NewTagSet()
	tags.Add("game")
	for _, p := range game.Platforms {
		name := p.Name
		if p.Abbreviation != nil && *p.Abbreviation != "" {
			name = *p.Abbreviation
		}
		tags.AddPrefixed("platform", name)
	}
	for _, th := range game.Themes {
		tags.AddPrefixed("theme", th.Name)
	}
	fm.Set("tags", tags.Sorted())

	var buf bytes.Buffer
	buf.WriteString("---\n")
	header, err := yaml.Marshal(fm)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal frontmatter: %w", err)
	}
	buf.Write(header)
	buf.WriteString("---\n\n")

	fmt.Fprintf(&buf, "# %s\n", game.Name)
	if game.Deck != nil && *game.Deck != "" {
		fmt.Fprintf(&buf, "\n> %s\n", *game.Deck)
	}
	if cover := game.Image.Best(); cover != "" {
		fmt.Fprintf(&buf, "\n![](%s)\n", cover)
	}

	writeSection(&buf, "Concepts", game.Concepts)
	writeSection(&buf, "Characters", game.Characters)

	if game.SiteDetailURL != nil && *game.SiteDetailURL != "" {
		fmt.Fprintf(&buf, "\n[View on Giant Bomb](%s)\n", *game.SiteDetailURL)
	}

	return buf.Bytes(), nil
}

func tagNames(tags []giantbomb.Tag) []string {
	if len(tags) == 0 {
		return nil
	}
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, t.Name)
	}
	return names
}

func writeSection(buf *bytes.Buffer, title string, tags []giantbomb.Tag) {
	if len(tags) == 0 {
		return
	}
	fmt.Fprintf(buf, "\n## %s\n\n", title)
	for _, t := range tags {
		if t.SiteDetailURL != "" {
			fmt.Fprintf(buf, "- [%s](%s)\n", t.Name, t.SiteDetailURL)
		} else {
			fmt.Fprintf(buf, "- %s\n", t.Name)
		}
	}
}
