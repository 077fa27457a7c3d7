package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Theme defines colors and styles for the UI. The terminal palette provides
// surfaces and text; the accent follows the active model's theme color.
type Theme struct {
	Name string

	// Base colors
	Background string // Outermost background
	Surface    string // Header, footer and modals
	SurfaceAlt string // Secondary surfaces

	// Table colors
	SelectionText string // Selected row text

	// Border colors
	Border      string
	BorderMuted string

	// Text colors
	Text       string
	Muted      string
	Faint      string
	Accent     string
	AccentDark string
	Success    string
	Warning    string
	Danger     string
	Info       string
}

// accentDarken is how much darker the secondary accent is than the accent.
const accentDarken = 0.25

// WithAccent returns a copy of the theme using color as the accent. Colors
// that do not parse keep the palette accent.
func (t Theme) WithAccent(color string) Theme {
	color = strings.TrimSpace(color)
	if _, err := colorful.Hex(color); err != nil {
		return t
	}
	t.Accent = color
	t.AccentDark = darken(color, accentDarken)
	return t
}

// darken scales each RGB channel of a hex color by (1 - amount). Unparseable
// colors are returned unchanged.
func darken(hex string, amount float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	k := 1 - amount
	return colorful.Color{R: c.R * k, G: c.G * k, B: c.B * k}.Clamped().Hex()
}

// validColor reports whether s is a #rgb or #rrggbb color.
func validColor(s string) bool {
	_, err := colorful.Hex(strings.TrimSpace(s))
	return err == nil
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		InfoText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Info)),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		ActiveTab: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Accent)).
			Foreground(lipgloss.Color(t.SelectionText)).
			Bold(true).
			Padding(0, 1),

		Tab: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.AccentDark)).
			Foreground(lipgloss.Color(t.SelectionText)),

		Modal: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Accent)).
			Padding(1, 2),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	// Text
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style
	InfoText    lipgloss.Style

	// Components
	Header    lipgloss.Style
	Footer    lipgloss.Style
	ActiveTab lipgloss.Style
	Tab       lipgloss.Style
	Selected  lipgloss.Style
	Modal     lipgloss.Style
}

// Palette definitions

var themes = map[string]Theme{
	"Nightfox": nightfoxTheme(),
	"Kanagawa": kanagawaTheme(),
	"Slate":    slateTheme(),
}

var themeOrder = []string{"Nightfox", "Kanagawa", "Slate"}

// GetTheme returns a palette by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return nightfoxTheme()
}

// ThemeNames returns available palette names.
func ThemeNames() []string {
	return themeOrder
}

func nightfoxTheme() Theme {
	// Nightfox palette: https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name: "Nightfox",

		Background: "#131a24", // bg0
		Surface:    "#192330", // bg1
		SurfaceAlt: "#212e3f", // bg2

		SelectionText: "#cdcecf", // fg1

		Border:      "#39506d", // bg4
		BorderMuted: "#212e3f", // bg2

		Text:       "#cdcecf", // fg1
		Muted:      "#738091", // comment
		Faint:      "#71839b", // fg3
		Accent:     "#719cd6", // blue
		AccentDark: "#5a7cab",
		Success:    "#81b29a", // green
		Warning:    "#dbc074", // yellow
		Danger:     "#c94f6d", // red
		Info:       "#63cdcf", // cyan
	}
}

func kanagawaTheme() Theme {
	// Kanagawa palette: https://github.com/rebelot/kanagawa.nvim
	return Theme{
		Name: "Kanagawa",

		Background: "#16161D", // sumiInk0
		Surface:    "#1F1F28", // sumiInk3
		SurfaceAlt: "#2A2A37", // sumiInk4

		SelectionText: "#DCD7BA", // fujiWhite

		Border:      "#54546D", // sumiInk6
		BorderMuted: "#2A2A37", // sumiInk4

		Text:       "#DCD7BA", // fujiWhite
		Muted:      "#C8C093", // oldWhite
		Faint:      "#727169", // fujiGray
		Accent:     "#7E9CD8", // crystalBlue
		AccentDark: "#2D4F67", // waveBlue1
		Success:    "#98BB6C", // springGreen
		Warning:    "#E6C384", // carpYellow
		Danger:     "#E46876", // waveRed
		Info:       "#7FB4CA", // springBlue
	}
}

func slateTheme() Theme {
	// Tailwind CSS Slate/Sky palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Slate",

		Background: "#020617", // slate-950
		Surface:    "#0f172a", // slate-900
		SurfaceAlt: "#1e293b", // slate-800

		SelectionText: "#f8fafc", // slate-50

		Border:      "#334155", // slate-700
		BorderMuted: "#1e293b", // slate-800

		Text:       "#f1f5f9", // slate-100
		Muted:      "#94a3b8", // slate-400
		Faint:      "#64748b", // slate-500
		Accent:     "#38bdf8", // sky-400
		AccentDark: "#0284c7", // sky-600
		Success:    "#22c55e", // green-500
		Warning:    "#f59e0b", // amber-500
		Danger:     "#ef4444", // red-500
		Info:       "#06b6d4", // cyan-500
	}
}
