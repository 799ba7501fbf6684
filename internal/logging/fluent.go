package logging

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fluent/fluent-logger-golang/fluent"
)

// Poster is the part of *fluent.Fluent used for forwarding records.
type Poster interface {
	Post(tag string, message interface{}) error
}

// FluentConfig holds the connection settings for Fluent Bit.
type FluentConfig struct {
	Host      string
	Port      int
	TagPrefix string
}

// NewFluentClient creates a Fluent Bit client. The connection is established
// lazily; errors surface on the first Post.
func NewFluentClient(cfg FluentConfig) (*fluent.Fluent, error) {
	if cfg.TagPrefix == "" {
		return nil, fmt.Errorf("fluent tag prefix is required")
	}

	client, err := fluent.New(fluent.Config{
		FluentHost: cfg.Host,
		FluentPort: cfg.Port,
		TagPrefix:  cfg.TagPrefix,
		Async:      true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create fluent client: %w", err)
	}

	return client, nil
}

// FluentHandler implements slog.Handler by posting each record as a map to
// Fluent Bit, tagged with the lowercase level name.
type FluentHandler struct {
	client Poster
	level  slog.Leveler
	attrs  []slog.Attr
	groups []string
}

// NewFluentHandler creates a handler forwarding records at or above level.
func NewFluentHandler(client Poster, level slog.Leveler) *FluentHandler {
	if level == nil {
		level = slog.LevelInfo
	}
	return &FluentHandler{client: client, level: level}
}

// Enabled reports whether the handler handles records at the given level.
func (h *FluentHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle posts the record.
func (h *FluentHandler) Handle(_ context.Context, r slog.Record) error {
	data := make(map[string]any, len(h.attrs)+r.NumAttrs()+3)
	for _, attr := range h.attrs {
		addAttr(data, "", attr)
	}

	prefix := h.groupPrefix()
	r.Attrs(func(attr slog.Attr) bool {
		addAttr(data, prefix, attr)
		return true
	})

	data["level"] = r.Level.String()
	data["message"] = r.Message
	data["timestamp"] = r.Time.UTC().Format(time.RFC3339Nano)

	return h.client.Post(strings.ToLower(r.Level.String()), data)
}

// WithAttrs returns a new handler whose attributes consist of h's attributes followed by attrs.
func (h *FluentHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h2 := *h
	h2.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	h2.attrs = append(h2.attrs, h.attrs...)

	prefix := h.groupPrefix()
	for _, attr := range attrs {
		attr.Key = prefix + attr.Key
		h2.attrs = append(h2.attrs, attr)
	}
	return &h2
}

// WithGroup returns a new handler with the given group name.
func (h *FluentHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.groups = make([]string, 0, len(h.groups)+1)
	h2.groups = append(h2.groups, h.groups...)
	h2.groups = append(h2.groups, name)
	return &h2
}

func (h *FluentHandler) groupPrefix() string {
	if len(h.groups) == 0 {
		return ""
	}
	return strings.Join(h.groups, ".") + "."
}

func addAttr(data map[string]any, prefix string, attr slog.Attr) {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return
	}

	key := prefix + attr.Key
	switch attr.Value.Kind() {
	case slog.KindGroup:
		groupPrefix := prefix
		if attr.Key != "" {
			groupPrefix = key + "."
		}
		for _, child := range attr.Value.Group() {
			addAttr(data, groupPrefix, child)
		}
	case slog.KindTime:
		data[key] = attr.Value.Time().UTC().Format(time.RFC3339Nano)
	case slog.KindDuration:
		data[key] = attr.Value.Duration().String()
	case slog.KindAny:
		if err, ok := attr.Value.Any().(error); ok {
			data[key] = err.Error()
			return
		}
		data[key] = attr.Value.Any()
	default:
		data[key] = attr.Value.Any()
	}
}
