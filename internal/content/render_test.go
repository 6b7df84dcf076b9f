//go:build unit

package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRendererSanitize(t *testing.T) {
	r := NewRenderer()

	got := r.Sanitize(`<p onclick="x()">Hi</p><script>alert(1)</script>`)
	assert.Equal(t, "<p>Hi</p>", got)
}

func TestRendererMarkdown(t *testing.T) {
	r := NewRenderer()

	got, err := r.Markdown("# Başlık\n\n- bir\n- iki\n\n<script>alert(1)</script>")
	require.NoError(t, err)
	assert.Contains(t, got, "<h1")
	assert.Contains(t, got, "<li>bir</li>")
	assert.False(t, strings.Contains(got, "<script>"))
}

func TestRendererHTML(t *testing.T) {
	r := NewRenderer()
	assert.Equal(t, "<b>ok</b>", string(r.HTML(`<b>ok</b><iframe src="x"></iframe>`)))
}
