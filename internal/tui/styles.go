package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/saarzint/candle-recall/internal/theme"
)

var (
	colorPrimary               = lipgloss.Color(theme.Primary)
	colorForeground            = lipgloss.Color(theme.Foreground)
	colorBackground            = lipgloss.Color(theme.Background)
	colorMuted                 = lipgloss.Color(theme.MutedForeground)
	colorSecondary             = lipgloss.Color(theme.Secondary)
	colorDestructive           = lipgloss.Color(theme.Destructive)
	colorDestructiveForeground = lipgloss.Color(theme.DestructiveForeground)
)

var (
	appStyle   = lipgloss.NewStyle().Padding(1, 2)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(colorForeground)
	helpStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	mutedStyle = lipgloss.NewStyle().Foreground(colorMuted)

	// Field errors and error banners use the destructive pair of the palette.
	fieldErrorStyle = lipgloss.NewStyle().Foreground(colorDestructive)
	errorStyle      = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorDestructive).
			Background(colorDestructiveForeground).
			Padding(0, 1)
	noticeStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(colorPrimary).
			PaddingLeft(1)

	inputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)
	focusedInputStyle = inputStyle.BorderForeground(colorPrimary)
	invalidInputStyle = inputStyle.BorderForeground(colorDestructive)

	buttonStyle = lipgloss.NewStyle().
			Foreground(colorBackground).
			Background(colorPrimary).
			Padding(0, 2)
	disabledButtonStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Background(colorSecondary).
				Padding(0, 2)
	dangerButtonStyle = lipgloss.NewStyle().
				Foreground(colorDestructiveForeground).
				Background(colorDestructive).
				Padding(0, 2)

	selectedRowStyle = lipgloss.NewStyle().Bold(true).Foreground(colorPrimary)
	tagStyle         = lipgloss.NewStyle().Foreground(colorForeground).Background(colorSecondary).Padding(0, 1)
	selectedTagStyle = lipgloss.NewStyle().Foreground(colorBackground).Background(colorPrimary).Padding(0, 1)

	overlayBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDestructive).
			Padding(1, 2)
)
