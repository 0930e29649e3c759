// Package termview renders the portfolio for a terminal with lipgloss,
// following the same dark/light flag the web page uses.
package termview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/marcosmenezes/portfolio/internal/content"
)

const barWidth = 20

// palette is the terminal counterpart of ui.ThemeTokens.
type palette struct {
	text      lipgloss.Color
	secondary lipgloss.Color
	accent    lipgloss.Color
	card      lipgloss.Color
	bar       lipgloss.Color
}

func paletteFor(dark bool) palette {
	if dark {
		return palette{
			text:      lipgloss.Color("#ffffff"),
			secondary: lipgloss.Color("#9ca3af"),
			accent:    lipgloss.Color("#1f2937"),
			card:      lipgloss.Color("#1a1a1a"),
			bar:       lipgloss.Color("#6b7280"),
		}
	}
	return palette{
		text:      lipgloss.Color("#111827"),
		secondary: lipgloss.Color("#4b5563"),
		accent:    lipgloss.Color("#d1d5db"),
		card:      lipgloss.Color("#e5e7eb"),
		bar:       lipgloss.Color("#6b7280"),
	}
}

// Render returns the whole portfolio as styled text no wider than width.
func Render(doc *content.Document, dark bool, width int) string {
	p := paletteFor(dark)

	title := lipgloss.NewStyle().Bold(true).Foreground(p.text)
	muted := lipgloss.NewStyle().Foreground(p.secondary)
	badge := lipgloss.NewStyle().Foreground(p.text).Background(p.accent).Padding(0, 1)
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.accent).
		Padding(0, 1).
		Width(width - 2)
	heading := title.MarginTop(1).Underline(true)

	var b strings.Builder
	prof := doc.Profile

	b.WriteString(title.Render(prof.Greeting) + "\n")
	if prof.Headline != "" {
		b.WriteString(muted.Render(prof.Headline) + "\n")
	}
	if prof.About != "" {
		b.WriteString(muted.Width(width).Render(prof.About) + "\n")
	}

	b.WriteString(heading.Render("Projects") + "\n")
	for _, proj := range doc.Catalog().Projects() {
		shown, more := proj.Preview()
		badges := make([]string, 0, len(shown)+1)
		for _, tech := range shown {
			badges = append(badges, badge.Render(tech))
		}
		if more > 0 {
			badges = append(badges, badge.Render(fmt.Sprintf("+%d", more)))
		}

		lines := []string{title.Render(proj.Title), muted.Render(proj.Description)}
		if len(badges) > 0 {
			lines = append(lines, strings.Join(badges, " "))
		}
		if proj.LiveURL != "" {
			lines = append(lines, muted.Render("live:   "+proj.LiveURL))
		}
		if proj.SourceURL != "" {
			lines = append(lines, muted.Render("source: "+proj.SourceURL))
		}
		b.WriteString(card.Render(strings.Join(lines, "\n")) + "\n")
	}

	b.WriteString(heading.Render("Skills") + "\n")
	barStyle := lipgloss.NewStyle().Foreground(p.bar)
	for _, group := range doc.SkillGroups() {
		b.WriteString(title.Render(group.Category) + "\n")
		for _, s := range group.Skills {
			b.WriteString(fmt.Sprintf("  %-14s %s %s\n", s.Name, barStyle.Render(Bar(s.Level)), muted.Render(fmt.Sprintf("%d%%", s.Level))))
		}
	}

	b.WriteString(heading.Render("Contact") + "\n")
	if prof.Email != "" {
		b.WriteString(muted.Render("email     ") + prof.Email + "\n")
	}
	if prof.Location != "" {
		b.WriteString(muted.Render("location  ") + prof.Location + "\n")
	}
	for _, platform := range []string{"github", "linkedin", "instagram"} {
		if url := prof.Socials[platform]; url != "" {
			b.WriteString(muted.Render(fmt.Sprintf("%-10s", platform)) + url + "\n")
		}
	}

	return lipgloss.NewStyle().Foreground(p.text).Render(b.String())
}

// Bar draws a proficiency level in [0,100] as a fixed-width bar.
func Bar(level int) string {
	switch {
	case level < 0:
		level = 0
	case level > 100:
		level = 100
	}
	filled := level * barWidth / 100
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}
