// Package theme holds the product colour palette. Values are hex strings
// that can be passed straight to lipgloss.Color.
package theme

const (
	Primary               = "#27A392"
	Foreground            = "#18181B"
	Background            = "#FFFFFF"
	MutedForeground       = "#71717A"
	Secondary             = "#F4F4F5"
	BodyBackground        = "#F4F4F5"
	Destructive           = "#DC2626"
	DestructiveForeground = "#FEF2F2"
)

// Palette lists every colour by name, for help screens and tests.
var Palette = map[string]string{
	"primary":                Primary,
	"foreground":             Foreground,
	"background":             Background,
	"muted-foreground":       MutedForeground,
	"secondary":              Secondary,
	"body-background":        BodyBackground,
	"destructive":            Destructive,
	"destructive-foreground": DestructiveForeground,
}
