package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokensArePure(t *testing.T) {
	assert.Equal(t, Tokens(true), Tokens(true))
	assert.Equal(t, Tokens(false), Tokens(false))
	assert.NotEqual(t, Tokens(true), Tokens(false))
}

func TestTokensAreTotal(t *testing.T) {
	for _, dark := range []bool{true, false} {
		tok := Tokens(dark)
		for name, v := range map[string]string{
			"background": tok.Background, "text": tok.Text, "secondary": tok.SecondaryText,
			"accent": tok.Accent, "accentHover": tok.AccentHover, "card": tok.Card,
			"cardHover": tok.CardHover, "border": tok.Border, "input": tok.Input, "button": tok.Button,
		} {
			assert.NotEmpty(t, v, "dark=%v %s", dark, name)
		}
	}
	assert.Equal(t, "bg-[#121212]", Tokens(true).Background)
	assert.Equal(t, "bg-[#fbfafa]", Tokens(false).Background)
}

func TestToggleThemeIsInvolution(t *testing.T) {
	page := NewPage("p", NewIntro(greeting))
	assert.True(t, page.DarkMode())

	assert.False(t, page.ToggleTheme())
	assert.Equal(t, Tokens(false), page.Theme())

	assert.True(t, page.ToggleTheme())
	assert.Equal(t, Tokens(true), page.Theme())
}
