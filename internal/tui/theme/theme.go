// Package theme defines color themes for the roicalc terminal widget.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme maps the widget's color roles to concrete colors. Section chart
// colors are fixed and do not vary by theme.
type Theme struct {
	Name          string
	Background    lipgloss.Color // Main app background
	Surface       lipgloss.Color // Card and panel backgrounds
	SurfaceHover  lipgloss.Color // Active tab, focused field
	SurfaceBright lipgloss.Color // Empty bar tracks
	Border        lipgloss.Color // Card borders
	BorderAccent  lipgloss.Color // Border of the focused section card
	TextDim       lipgloss.Color // Hints, placeholders
	TextMuted     lipgloss.Color // Labels, help text
	TextPrimary   lipgloss.Color // Entered values, amounts
	Accent        lipgloss.Color // Action button, section titles
	AccentBright  lipgloss.Color // Active tab, focused card title
	Key           lipgloss.Color // Key names in the help screen
	Complete      lipgloss.Color // Completion markers
	Total         lipgloss.Color // Total impact figure
	Stale         lipgloss.Color // Results that no longer match the inputs
	Wasted        lipgloss.Color // Wasted Annual Salary Spend category
	Opportunity   lipgloss.Color // Opportunity Cost category
}

// Active is the currently selected theme.
var Active = FlexokiDark

// FlexokiDark is the default theme, a warm paper-inspired dark palette.
var FlexokiDark = Theme{
	Name:          "flexoki-dark",
	Background:    lipgloss.Color("#100F0F"),
	Surface:       lipgloss.Color("#1C1B1A"),
	SurfaceHover:  lipgloss.Color("#282726"),
	SurfaceBright: lipgloss.Color("#343331"),
	Border:        lipgloss.Color("#403E3C"),
	BorderAccent:  lipgloss.Color("#3AA99F"),
	TextDim:       lipgloss.Color("#575653"),
	TextMuted:     lipgloss.Color("#878580"),
	TextPrimary:   lipgloss.Color("#FFFCF0"),
	Accent:        lipgloss.Color("#3AA99F"),
	AccentBright:  lipgloss.Color("#5BC8BE"),
	Key:           lipgloss.Color("#24837B"),
	Complete:      lipgloss.Color("#879A39"),
	Total:         lipgloss.Color("#A3B859"),
	Stale:         lipgloss.Color("#DA702C"),
	Wasted:        lipgloss.Color("#4385BE"),
	Opportunity:   lipgloss.Color("#DA702C"),
}

// CatppuccinMocha is a soft pastel palette.
var CatppuccinMocha = Theme{
	Name:          "catppuccin-mocha",
	Background:    lipgloss.Color("#1E1E2E"),
	Surface:       lipgloss.Color("#313244"),
	SurfaceHover:  lipgloss.Color("#45475A"),
	SurfaceBright: lipgloss.Color("#585B70"),
	Border:        lipgloss.Color("#585B70"),
	BorderAccent:  lipgloss.Color("#89B4FA"),
	TextDim:       lipgloss.Color("#6C7086"),
	TextMuted:     lipgloss.Color("#A6ADC8"),
	TextPrimary:   lipgloss.Color("#CDD6F4"),
	Accent:        lipgloss.Color("#89B4FA"),
	AccentBright:  lipgloss.Color("#B4D0FB"),
	Key:           lipgloss.Color("#94E2D5"),
	Complete:      lipgloss.Color("#A6E3A1"),
	Total:         lipgloss.Color("#C6F6C1"),
	Stale:         lipgloss.Color("#FAB387"),
	Wasted:        lipgloss.Color("#89B4FA"),
	Opportunity:   lipgloss.Color("#FAB387"),
}

// TokyoNight is a cool blue and purple palette.
var TokyoNight = Theme{
	Name:          "tokyo-night",
	Background:    lipgloss.Color("#1A1B26"),
	Surface:       lipgloss.Color("#24283B"),
	SurfaceHover:  lipgloss.Color("#343A52"),
	SurfaceBright: lipgloss.Color("#414868"),
	Border:        lipgloss.Color("#565F89"),
	BorderAccent:  lipgloss.Color("#7AA2F7"),
	TextDim:       lipgloss.Color("#565F89"),
	TextMuted:     lipgloss.Color("#A9B1D6"),
	TextPrimary:   lipgloss.Color("#C0CAF5"),
	Accent:        lipgloss.Color("#7AA2F7"),
	AccentBright:  lipgloss.Color("#A9C1FF"),
	Key:           lipgloss.Color("#7DCFFF"),
	Complete:      lipgloss.Color("#9ECE6A"),
	Total:         lipgloss.Color("#B9E87A"),
	Stale:         lipgloss.Color("#FF9E64"),
	Wasted:        lipgloss.Color("#7AA2F7"),
	Opportunity:   lipgloss.Color("#FF9E64"),
}

// Terminal uses ANSI 16 colors only, for terminals without true color.
var Terminal = Theme{
	Name:          "terminal",
	Background:    lipgloss.Color("0"),
	Surface:       lipgloss.Color("0"),
	SurfaceHover:  lipgloss.Color("8"),
	SurfaceBright: lipgloss.Color("8"),
	Border:        lipgloss.Color("8"),
	BorderAccent:  lipgloss.Color("6"),
	TextDim:       lipgloss.Color("8"),
	TextMuted:     lipgloss.Color("7"),
	TextPrimary:   lipgloss.Color("15"),
	Accent:        lipgloss.Color("6"),
	AccentBright:  lipgloss.Color("14"),
	Key:           lipgloss.Color("6"),
	Complete:      lipgloss.Color("2"),
	Total:         lipgloss.Color("10"),
	Stale:         lipgloss.Color("3"),
	Wasted:        lipgloss.Color("4"),
	Opportunity:   lipgloss.Color("3"),
}
// All available themes.
var All = []Theme{FlexokiDark, CatppuccinMocha, TokyoNight, Terminal}

// Names lists the available theme names in display order.
func Names() []string {
	names := make([]string, len(All))
	for i, t := range All {
		names[i] = t.Name
	}
	return names
}

// Lookup returns the named theme and whether it exists.
func Lookup(name string) (Theme, bool) {
	for _, t := range All {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// ByName returns a theme by its name, defaulting to FlexokiDark.
func ByName(name string) Theme {
	if t, ok := Lookup(name); ok {
		return t
	}
	return FlexokiDark
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}
