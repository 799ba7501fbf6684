package render

import (
	"sort"

	"gopkg.in/yaml.v3"
)

// Frontmatter is a YAML mapping serialized with sorted keys. The "tags" key
// is always written in flow style.
type Frontmatter struct {
	fields map[string]any
	keys   []string
}

// NewFrontmatter creates an empty Frontmatter.
func NewFrontmatter() *Frontmatter {
	return &Frontmatter{fields: make(map[string]any)}
}

// Set stores value under key.
func (f *Frontmatter) Set(key string, value any) {
	if _, exists := f.fields[key]; !exists {
		f.keys = append(f.keys, key)
		sort.Strings(f.keys)
	}
	f.fields[key] = value
}

// SetIf stores value only when it is not empty.
func (f *Frontmatter) SetIf(key string, value string) {
	if value != "" {
		f.Set(key, value)
	}
}

// Get returns the value stored under key.
func (f *Frontmatter) Get(key string) (any, bool) {
	v, ok := f.fields[key]
	return v, ok
}

// Keys returns the sorted keys.
func (f *Frontmatter) Keys() []string {
	return append([]string(nil), f.keys...)
}

// Len returns the number of keys.
func (f *Frontmatter) Len() int {
	return len(f.keys)
}

// MarshalYAML implements yaml.Marshaler.
func (f *Frontmatter) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}

	for _, key := range f.keys {
		value := &yaml.Node{}
		if tags, ok := f.fields[key].([]string); ok && key == "tags" {
			value.Kind = yaml.SequenceNode
			value.Style = yaml.FlowStyle
			for _, tag := range tags {
				value.Content = append(value.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: tag})
			}
		} else if err := value.Encode(f.fields[key]); err != nil {
			return nil, err
		}

		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: key}, value)
	}

	return node, nil
}
