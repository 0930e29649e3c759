package termview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcosmenezes/portfolio/internal/content"
)

func TestRenderDefaultDocument(t *testing.T) {
	doc, err := content.Default()
	require.NoError(t, err)

	for _, dark := range []bool{true, false} {
		out := Render(doc, dark, 100)
		assert.Contains(t, out, "Hello, I'm Marcos Menezes!")
		assert.Contains(t, out, "Algorithm Visualizer")
		assert.Contains(t, out, "Frontend")
		assert.Contains(t, out, "Tools")
		assert.Contains(t, out, "contact.marcosmenezes@gmail.com")
		assert.Contains(t, out, "https://www.github.com/Droppicode")
	}
}

func TestRenderTruncatesTechnologies(t *testing.T) {
	doc, err := content.Parse([]byte(`
profile: {name: T, email: t@example.com, greeting: hi}
projects:
  - {id: 1, title: Many, technologies: [Go, SQL, HTMX, CSS, Docker]}
`))
	require.NoError(t, err)

	out := Render(doc, true, 100)
	assert.Contains(t, out, "+2")
	assert.NotContains(t, out, "Docker")
}

func TestBar(t *testing.T) {
	assert.Equal(t, strings.Repeat("░", barWidth), Bar(0))
	assert.Equal(t, strings.Repeat("█", barWidth), Bar(100))
	assert.Equal(t, strings.Repeat("█", 10)+strings.Repeat("░", 10), Bar(50))
	assert.Equal(t, Bar(0), Bar(-5))
	assert.Equal(t, Bar(100), Bar(150))
}
