package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogLookup(t *testing.T) {
	c := NewCatalog([]Project{
		{ID: 1, Title: "One"},
		{ID: 2, Title: "Two"},
	})

	got := c.Lookup(2)
	assert.True(t, got.Found)
	assert.Equal(t, "Two", got.Project.Title)

	missing := c.Lookup(42)
	assert.False(t, missing.Found)
	assert.Equal(t, Project{}, missing.Project)
}

func TestCatalogLookupFirstMatch(t *testing.T) {
	// Parse rejects duplicates, but NewCatalog alone does not.
	c := NewCatalog([]Project{
		{ID: 3, Title: "first"},
		{ID: 3, Title: "second"},
	})
	assert.Equal(t, "first", c.Lookup(3).Project.Title)
}

func TestCatalogIsIsolatedFromCallers(t *testing.T) {
	src := []Project{{ID: 1, Title: "One"}}
	c := NewCatalog(src)

	src[0].Title = "changed"
	out := c.Projects()
	out[0].Title = "changed too"

	assert.Equal(t, "One", c.Lookup(1).Project.Title)
	assert.Equal(t, 1, c.Len())
}
