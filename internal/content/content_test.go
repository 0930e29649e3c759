package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDocument(t *testing.T) {
	doc, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "Hello, I'm Marcos Menezes!", doc.Profile.Greeting)
	assert.Equal(t, "contact.marcosmenezes@gmail.com", doc.Profile.Email)
	assert.Len(t, doc.Profile.Socials, 3)
	require.Len(t, doc.Projects, 1)
	assert.Equal(t, "Algorithm Visualizer", doc.Projects[0].Title)
	assert.Equal(t, "https://droppicode.github.io/Algorithm-Visualizer/", doc.Projects[0].LiveURL)
	assert.Equal(t, "https://github.com/Droppicode/Algorithm-Visualizer", doc.Projects[0].SourceURL)
	assert.Len(t, doc.Skills, 7)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	data := []byte(`
profile:
  name: Someone
  email: someone@example.com
projects:
  - {id: 7, title: Seven}
skills:
  - {name: Go, category: Backend, level: 90}
`)
	require.NoError(t, os.WriteFile(path, data, 0600))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Someone", doc.Profile.Name)
	assert.Equal(t, 7, doc.Projects[0].ID)
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	doc, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "Marcos Menezes", doc.Profile.Name)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/content.yaml")
	assert.Error(t, err)
}

func TestParseRejectsInvalidDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{
			name: "duplicate project ids",
			doc: `
profile: {name: A, email: a@example.com}
projects:
  - {id: 1, title: One}
  - {id: 1, title: Uno}
`,
		},
		{
			name: "non positive id",
			doc: `
profile: {name: A, email: a@example.com}
projects:
  - {id: 0, title: Zero}
`,
		},
		{
			name: "level above 100",
			doc: `
profile: {name: A, email: a@example.com}
skills:
  - {name: Go, category: Backend, level: 101}
`,
		},
		{
			name: "negative level",
			doc: `
profile: {name: A, email: a@example.com}
skills:
  - {name: Go, category: Backend, level: -1}
`,
		},
		{
			name: "unknown social platform",
			doc: `
profile:
  name: A
  email: a@example.com
  socials: {myspace: https://myspace.com/a}
`,
		},
		{
			name: "malformed yaml",
			doc:  "profile: [",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}

func TestPreviewTruncation(t *testing.T) {
	tests := []struct {
		name      string
		techs     []string
		wantShown []string
		wantMore  int
	}{
		{name: "none", techs: nil, wantShown: nil, wantMore: 0},
		{name: "exactly three", techs: []string{"a", "b", "c"}, wantShown: []string{"a", "b", "c"}, wantMore: 0},
		{name: "four", techs: []string{"a", "b", "c", "d"}, wantShown: []string{"a", "b", "c"}, wantMore: 1},
		{name: "six keeps insertion order", techs: []string{"f", "e", "d", "c", "b", "a"}, wantShown: []string{"f", "e", "d"}, wantMore: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shown, more := Project{Technologies: tt.techs}.Preview()
			assert.Equal(t, tt.wantShown, shown)
			assert.Equal(t, tt.wantMore, more)
		})
	}
}

func TestGroupSkillsByCategory(t *testing.T) {
	skills := []Skill{
		{Name: "Git", Category: "Tools", Level: 75},
		{Name: "JavaScript", Category: "Frontend", Level: 80},
		{Name: "C++", Category: "Backend", Level: 60},
		{Name: "React", Category: "Frontend", Level: 30},
		{Name: "TailwindCSS", Category: "Tools", Level: 20},
	}

	groups := GroupSkills(skills)
	require.Len(t, groups, 3)

	assert.Equal(t, "Tools", groups[0].Category)
	assert.Equal(t, []string{"Git", "TailwindCSS"}, names(groups[0].Skills))
	assert.Equal(t, "Frontend", groups[1].Category)
	assert.Equal(t, []string{"JavaScript", "React"}, names(groups[1].Skills))
	assert.Equal(t, "Backend", groups[2].Category)
	assert.Equal(t, []string{"C++"}, names(groups[2].Skills))
}

func TestGroupSkillsEmpty(t *testing.T) {
	assert.Empty(t, GroupSkills(nil))
}

func names(skills []Skill) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		out = append(out, s.Name)
	}
	return out
}
