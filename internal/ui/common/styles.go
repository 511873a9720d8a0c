package common

import "charm.land/lipgloss/v2"

// Styles contains all the application styles
type Styles struct {
	// Text hierarchy
	Title lipgloss.Style
	Body  lipgloss.Style
	Muted lipgloss.Style
	Bold  lipgloss.Style

	// Tuners
	TunerTrack    lipgloss.Style
	TunerItem     lipgloss.Style
	TunerActive   lipgloss.Style
	TunerDisabled lipgloss.Style
	TunerTick     lipgloss.Style
	TunerPointer  lipgloss.Style

	// Header
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Banner    lipgloss.Style

	// Playback indicators
	PlayButton lipgloss.Style
	Live       lipgloss.Style
	OffAir     lipgloss.Style

	// Write view
	Card         lipgloss.Style
	Dot          lipgloss.Style
	ActiveDot    lipgloss.Style
	Button       lipgloss.Style
	ActiveButton lipgloss.Style
	SlotRow      lipgloss.Style
	EmptySlotRow lipgloss.Style

	// Modal
	ModalBox   lipgloss.Style
	ModalTitle lipgloss.Style
	PlanName   lipgloss.Style
	PlanPrice  lipgloss.Style

	// Help bar
	Help     lipgloss.Style
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style

	// Toast notifications
	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style
	ToastWarning lipgloss.Style
	ToastInfo    lipgloss.Style
}

// DefaultStyles returns the default application styles
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary),

		Body: lipgloss.NewStyle().
			Foreground(ColorForeground),

		Muted: lipgloss.NewStyle().
			Foreground(ColorMuted),

		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorForeground),

		TunerTrack: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder),

		TunerItem: lipgloss.NewStyle().
			Foreground(ColorMuted),

		TunerActive: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary),

		TunerDisabled: lipgloss.NewStyle().
			Faint(true).
			Foreground(ColorMuted),

		TunerTick: lipgloss.NewStyle().
			Foreground(ColorBorder),

		TunerPointer: lipgloss.NewStyle().
			Foreground(ColorPrimary),

		Tab: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(ColorMuted),

		ActiveTab: lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Foreground(ColorForeground).
			Background(ColorSelection),

		Banner: lipgloss.NewStyle().
			Foreground(ColorSecondary),

		PlayButton: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(ColorForeground).
			Background(ColorSurface2),

		Live: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError),

		OffAir: lipgloss.NewStyle().
			Foreground(ColorMuted),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1),

		Dot: lipgloss.NewStyle().
			Foreground(ColorMuted),

		ActiveDot: lipgloss.NewStyle().
			Foreground(ColorPrimary),

		Button: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(ColorMuted).
			Background(ColorSurface1),

		ActiveButton: lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Foreground(ColorBackground).
			Background(ColorPrimary),

		SlotRow: lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(ColorForeground),

		EmptySlotRow: lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(ColorMuted),

		ModalBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 2),

		ModalTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorForeground).
			MarginBottom(1),

		PlanName: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary),

		PlanPrice: lipgloss.NewStyle().
			Foreground(ColorPrimary),

		Help: lipgloss.NewStyle().
			Foreground(ColorMuted),

		HelpKey: lipgloss.NewStyle().
			Foreground(ColorPrimary),

		HelpDesc: lipgloss.NewStyle().
			Foreground(ColorMuted),

		ToastSuccess: lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true),

		ToastError: lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true),

		ToastWarning: lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true),

		ToastInfo: lipgloss.NewStyle().
			Foreground(ColorInfo),
	}
}
