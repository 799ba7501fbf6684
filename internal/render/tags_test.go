package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestNormalizeTag(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "PC", want: "PC"},
		{in: "#Action", want: "Action"},
		{in: "  Sci-Fi   Shooter ", want: "Sci-Fi-Shooter"},
		{in: "Hack & Slash", want: "Hack-and-Slash"},
		{in: "platform/Nintendo Switch", want: "platform/Nintendo-Switch"},
		{in: "--odd--", want: "odd"},
		{in: "   ", want: ""},
		{in: "#", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTag(tt.in))
		})
	}
}

func TestTagSet(t *testing.T) {
	ts := NewTagSet()
	ts.Add("game")
	ts.Add("#game")
	ts.Add("")
	ts.AddPrefixed("platform", "PlayStation 4")
	ts.AddPrefixed("platform", "")
	ts.AddPrefixed("theme", "Action/Adventure")

	assert.Equal(t, []string{"game", "platform/PlayStation-4", "theme/Action-Adventure"}, ts.Sorted())
}

func TestFrontmatterSortedKeysAndFlowTags(t *testing.T) {
	fm := NewFrontmatter()
	fm.Set("title", "Test")
	fm.Set("tags", []string{"b", "a"})
	fm.Set("giantbomb_id", 5)
	fm.Set("title", "Renamed")
	fm.SetIf("empty", "")

	assert.Equal(t, []string{"giantbomb_id", "tags", "title"}, fm.Keys())
	assert.Equal(t, 3, fm.Len())

	v, ok := fm.Get("title")
	assert.True(t, ok)
	assert.Equal(t, "Renamed", v)

	out, err := yaml.Marshal(fm)
	assert.NoError(t, err)
	assert.Equal(t, "giantbomb_id: 5\ntags: [b, a]\ntitle: Renamed\n", string(out))
}
