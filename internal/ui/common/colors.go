package common

import "charm.land/lipgloss/v2"

// Night-radio palette: a deep navy base with a warm accent for whatever is
// tuned in.
var (
	ColorBackground = lipgloss.Color("#0f1020")
	ColorForeground = lipgloss.Color("#e6e6f0")
	ColorMuted      = lipgloss.Color("#6b6f8e")
	ColorBorder     = lipgloss.Color("#2a2d4a")

	ColorPrimary   = lipgloss.Color("#ff7a59")
	ColorSecondary = lipgloss.Color("#8f7cff")
	ColorSuccess   = lipgloss.Color("#7bd88f")
	ColorWarning   = lipgloss.Color("#f2c14e")
	ColorError     = lipgloss.Color("#ff5c7a")
	ColorInfo      = lipgloss.Color("#6cc4ff")

	ColorSurface1 = lipgloss.Color("#17182e")
	ColorSurface2 = lipgloss.Color("#1f2140")

	ColorSelection = lipgloss.Color("#33365e")
)
