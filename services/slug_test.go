package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "hello", "hello"},
		{"spaces and punctuation", "Hello, World!! 2024", "hello-world-2024"},
		{"uppercase", "GoLang Tips", "golang-tips"},
		{"leading and trailing junk", "  --Hello--  ", "hello"},
		{"consecutive separators collapse", "a  ,,  b", "a-b"},
		{"digits survive", "Top 10 APIs", "top-10-apis"},
		{"only junk", "!!!", ""},
		{"empty", "", ""},
		{"unicode stripped", "café au lait", "caf-au-lait"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Slugify(c.input))
		})
	}
}

func TestSlugifyShape(t *testing.T) {
	inputs := []string{
		"Hello, World!! 2024",
		"   weird    spacing   ",
		"MiXeD CaSe-Title_with.everything",
		"----",
		"a",
		"trailing exclamation!",
	}

	for _, input := range inputs {
		slug := Slugify(input)

		for _, r := range slug {
			ok := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-'
			assert.True(t, ok, "slug %q of %q contains %q", slug, input, r)
		}
		assert.False(t, strings.HasPrefix(slug, "-"), "slug %q has leading hyphen", slug)
		assert.False(t, strings.HasSuffix(slug, "-"), "slug %q has trailing hyphen", slug)
		assert.NotContains(t, slug, "--", "slug %q has consecutive hyphens", slug)
	}
}

func TestSlugifyDeterministic(t *testing.T) {
	input := "Same Title Every Time"
	assert.Equal(t, Slugify(input), Slugify(input))
}
