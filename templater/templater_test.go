package templater

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_SheetURL(t *testing.T) {
	out, err := Render(
		"https://docs.google.com/spreadsheets/d/{{ sheet_id }}/pub?gid={{ gid }}&single=true&output=csv",
		map[string]any{"sheet_id": "abc", "gid": "0"},
	)
	require.NoError(t, err)
	assert.Equal(t, "https://docs.google.com/spreadsheets/d/abc/pub?gid=0&single=true&output=csv", out)
}

func TestRender_ContentsURL(t *testing.T) {
	out, err := Render(
		"https://api.github.com/repos/{{ repo }}/contents/{{ path }}?ref={{ branch }}",
		map[string]any{"repo": "yuribeats/the-boards", "path": "data/pending.json", "branch": "main"},
	)
	require.NoError(t, err)
	assert.Equal(t, "https://api.github.com/repos/yuribeats/the-boards/contents/data/pending.json?ref=main", out)
}

func TestRender_NilData(t *testing.T) {
	_, err := Render("{{ x }}", nil)
	assert.Error(t, err)
}

func TestRender_InvalidTemplate(t *testing.T) {
	_, err := Render("{{ x ", map[string]any{"x": 1})
	assert.Error(t, err)
}

func TestRender_MissingVariableIsEmpty(t *testing.T) {
	out, err := Render("a{{ missing }}b", map[string]any{})
	require.NoError(t, err)
	assert.Equal(t, "ab", out)
}

func TestRender_NoHTMLEscaping(t *testing.T) {
	out, err := Render("{{ a }}/{{ b }}", map[string]any{"a": "q&a's", "b": "<x>"})
	require.NoError(t, err)
	assert.Equal(t, "q&a's/<x>", out)
}
