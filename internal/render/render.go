// Package render writes sampled games as JSON, YAML or an Obsidian-style
// markdown note.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lepinkainen/gbrandom/internal/giantbomb"
	"gopkg.in/yaml.v3"
)

// Format selects the output encoding.
type Format string

// Supported formats.
const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
)

// ParseFormat accepts json, yaml/yml and markdown/md, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("unsupported output format %q", s)
	}
}

// Write encodes game to w in the given format.
func Write(w io.Writer, game *giantbomb.Game, format Format) error {
	if game == nil {
		return fmt.Errorf("render: nil game")
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(game)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(game); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case FormatMarkdown:
		note, err := Markdown(game)
		if err != nil {
			return err
		}
		_, err = w.Write(note)
		return err
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
