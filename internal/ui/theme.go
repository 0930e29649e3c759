package ui

// ThemeTokens are the presentation classes the templates apply for one
// theme. Values are Tailwind utility classes.
type ThemeTokens struct {
	Background    string
	Text          string
	SecondaryText string
	Accent        string
	AccentHover   string
	Card          string
	CardHover     string
	Border        string
	Input         string
	Button        string
	GridLine      string
	SkillsBand    string
	HeroGradient  string
	ToggleIcon    string
}

var (
	darkTokens = ThemeTokens{
		Background:    "bg-[#121212]",
		Text:          "text-white",
		SecondaryText: "text-gray-400",
		Accent:        "bg-gray-800",
		AccentHover:   "hover:bg-gray-700",
		Card:          "bg-[#1a1a1a]",
		CardHover:     "hover:bg-[#222]",
		Border:        "border-white/10",
		Input:         "bg-[#252525]",
		Button:        "bg-gray-800 hover:bg-gray-700",
		GridLine:      "grid-dark",
		SkillsBand:    "bg-gray-700/5",
		HeroGradient:  "from-gray-400/5 to-[#121212]/5",
		ToggleIcon:    "fa-sun",
	}
	lightTokens = ThemeTokens{
		Background:    "bg-[#fbfafa]",
		Text:          "text-gray-900",
		SecondaryText: "text-gray-600",
		Accent:        "bg-gray-300",
		AccentHover:   "hover:bg-gray-400",
		Card:          "bg-gray-200",
		CardHover:     "hover:bg-gray-100",
		Border:        "border-gray-200",
		Input:         "bg-gray-100",
		Button:        "bg-gray-300 hover:bg-gray-400",
		GridLine:      "grid-light",
		SkillsBand:    "bg-gray-300/5",
		HeroGradient:  "from-gray-400/5 to-gray-100/5",
		ToggleIcon:    "fa-moon",
	}
)

// Tokens resolves the theme flag to its tokens. It holds no state.
func Tokens(dark bool) ThemeTokens {
	if dark {
		return darkTokens
	}
	return lightTokens
}
