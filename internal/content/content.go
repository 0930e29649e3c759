// Package content holds the static portfolio document: the owner's
// profile, the project catalog and the skill list. The document is
// loaded once at startup and never mutated afterwards.
package content

import (
	_ "embed"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultDocument []byte

// PreviewLimit is how many technologies a project card shows before the
// overflow badge.
const PreviewLimit = 3

// Profile is the site owner's identity and contact details.
type Profile struct {
	Name         string            `yaml:"name" validate:"required"`
	Initials     string            `yaml:"initials"`
	Greeting     string            `yaml:"greeting"`
	Headline     string            `yaml:"headline"`
	Portrait     string            `yaml:"portrait"`
	About        string            `yaml:"about"`
	Email        string            `yaml:"email" validate:"required,email"`
	Location     string            `yaml:"location"`
	MapURL       string            `yaml:"map_url" validate:"omitempty,url"`
	Availability string            `yaml:"availability"`
	Socials      map[string]string `yaml:"socials" validate:"dive,keys,oneof=github linkedin instagram,endkeys,url"`
}

// Project is one entry of the catalog.
type Project struct {
	ID           int      `yaml:"id" validate:"gt=0"`
	Title        string   `yaml:"title" validate:"required"`
	Category     string   `yaml:"category"`
	Image        string   `yaml:"image"`
	Description  string   `yaml:"description"`
	Technologies []string `yaml:"technologies"`
	LiveURL      string   `yaml:"live_url" validate:"omitempty,url"`
	SourceURL    string   `yaml:"source_url" validate:"omitempty,url"`
}

// Preview returns the technologies shown on the project card and how many
// were left out.
func (p Project) Preview() (shown []string, more int) {
	if len(p.Technologies) <= PreviewLimit {
		return p.Technologies, 0
	}
	return p.Technologies[:PreviewLimit], len(p.Technologies) - PreviewLimit
}

// Skill is a named proficiency level in percent.
type Skill struct {
	Name     string `yaml:"name" validate:"required"`
	Category string `yaml:"category" validate:"required"`
	Level    int    `yaml:"level" validate:"gte=0,lte=100"`
}

// SkillGroup is every skill sharing one category, in document order.
type SkillGroup struct {
	Category string
	Skills   []Skill
}

// Document is the whole portfolio content.
type Document struct {
	Profile  Profile   `yaml:"profile"`
	Projects []Project `yaml:"projects" validate:"dive"`
	Skills   []Skill   `yaml:"skills" validate:"dive"`
}

// Default parses the document compiled into the binary.
func Default() (*Document, error) {
	return Parse(defaultDocument)
}

// Load reads a document from path, or the embedded default when path is empty.
func Load(path string) (doc *Document, err error) {
	if path == "" {
		return Default()
	}

	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read content file: %s", path)
		return nil, err
	}

	doc, err = Parse(data)
	if err != nil {
		err = errors.Wrapf(err, "content file %s", path)
		return nil, err
	}
	return doc, nil
}

// Parse decodes and validates a YAML document.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to parse content")
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate checks field constraints and project id uniqueness.
func (d *Document) Validate() error {
	if err := validator.New().Struct(d); err != nil {
		return errors.Wrap(err, "content validation failed")
	}

	seen := make(map[int]struct{}, len(d.Projects))
	for _, p := range d.Projects {
		if _, dup := seen[p.ID]; dup {
			return errors.Errorf("duplicate project id %d", p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}

// Catalog returns the read-only project catalog view of the document.
func (d *Document) Catalog() *Catalog {
	return NewCatalog(d.Projects)
}

// SkillGroups groups skills by their category attribute. Groups appear in
// the order their category is first seen.
func (d *Document) SkillGroups() []SkillGroup {
	return GroupSkills(d.Skills)
}

// GroupSkills is SkillGroups for an arbitrary slice.
func GroupSkills(skills []Skill) []SkillGroup {
	var groups []SkillGroup
	index := make(map[string]int)
	for _, s := range skills {
		i, ok := index[s.Category]
		if !ok {
			i = len(groups)
			index[s.Category] = i
			groups = append(groups, SkillGroup{Category: s.Category})
		}
		groups[i].Skills = append(groups[i].Skills, s)
	}
	return groups
}
