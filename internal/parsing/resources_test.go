package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResources_StrictJSON(t *testing.T) {
	resources, fallback := ParseResources(`[
		{"title": "Designing Data-Intensive Applications", "url": "https://dataintensive.net"},
		{"title": "CAP theorem primer", "url": "https://example.com/cap"}
	]`)

	assert.False(t, fallback)
	require.Len(t, resources, 2)
	assert.Equal(t, "Designing Data-Intensive Applications", resources[0].Title)
	assert.Equal(t, "https://example.com/cap", resources[1].URL)
}

func TestParseResources_MarkdownFencedJSON(t *testing.T) {
	resources, fallback := ParseResources("```json\n[{\"title\": \"x\", \"url\": \"https://x.dev\"}]\n```")

	assert.False(t, fallback)
	require.Len(t, resources, 1)
	assert.Equal(t, "x", resources[0].Title)
}

func TestParseResources_LineFallback(t *testing.T) {
	text := "Here are some resources:\n" +
		"- Effective Go - https://go.dev/doc/effective_go\n" +
		"* System Design Primer - https://github.com/donnemartin/system-design-primer\n" +
		"A book with no link\n"

	resources, fallback := ParseResources(text)

	assert.True(t, fallback)
	require.Len(t, resources, 4)
	assert.Equal(t, "Effective Go", resources[1].Title)
	assert.Equal(t, "https://go.dev/doc/effective_go", resources[1].URL)
	assert.Equal(t, "A book with no link", resources[3].Title)
	assert.Equal(t, "", resources[3].URL)
}

func TestParseResources_NonHTTPURLPassedThrough(t *testing.T) {
	// The parser must not touch the raw string; the presentation layer
	// decides whether a non-http(s) url renders as a link.
	resources, fallback := ParseResources("Local notes - file:///tmp/notes.txt")

	assert.True(t, fallback)
	require.Len(t, resources, 1)
	assert.Equal(t, "file:///tmp/notes.txt", resources[0].URL)
}

func TestParseResources_InvalidSchemaFallsBack(t *testing.T) {
	// JSON, but not matching the schema: falls back to line parsing.
	resources, fallback := ParseResources(`[{"name": "wrong key"}]`)

	assert.True(t, fallback)
	assert.NotEmpty(t, resources)
}

func TestParseResources_EmptyInput(t *testing.T) {
	resources, fallback := ParseResources("")

	assert.True(t, fallback)
	assert.Empty(t, resources)
}
