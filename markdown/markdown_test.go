package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Render(t *testing.T) {
	renderer := New()
	html, err := renderer.Render("Create a key in **Settings**.")
	require.NoError(t, err)
	assert.Contains(t, html, "<strong>Settings</strong>")
}

func TestRenderer_LinkAttributes(t *testing.T) {
	renderer := New()
	html, err := renderer.Render("See the [docs](https://example.com/docs).")
	require.NoError(t, err)
	assert.Contains(t, html, `href="https://example.com/docs"`)
	assert.Contains(t, html, `target="_blank"`)
	assert.Contains(t, html, `rel="noopener"`)
}
