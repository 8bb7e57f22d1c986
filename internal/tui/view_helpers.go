package tui

import (
	"fmt"
	"strings"
	"time"
)

const uiDivider = "──────────────────────────────────────────────────────"

// dateLayout is used for every date shown in the client.
const dateLayout = "Jan 2 2006"

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(dateLayout)
}

// formatCountdown renders d as mm:ss, rounding partial seconds up so the
// label never shows 00:00 while time is left.
func formatCountdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int((d + time.Second - 1) / time.Second)
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

// renderPage lays out a screen: title, body, an optional banner and the
// hot key line.
func renderPage(title, body, banner, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(uiDivider))
	b.WriteString("\n\n")

	if strings.TrimSpace(body) != "" {
		b.WriteString(body)
		b.WriteString("\n")
	}

	if banner != "" {
		b.WriteString("\n")
		b.WriteString(banner)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(uiDivider))
	b.WriteString("\n")

	help := "ctrl+c: quit"
	if strings.TrimSpace(hotKeys) != "" {
		help = hotKeys + " │ " + help
	}
	b.WriteString(helpStyle.Render(help))

	return appStyle.Render(b.String())
}

// banner renders the error line if errMsg is set, otherwise the status line.
func banner(errMsg, status string) string {
	switch {
	case errMsg != "":
		return errorStyle.Render(errMsg)
	case status != "":
		return noticeStyle.Render(status)
	}
	return ""
}

func button(label string, enabled bool) string {
	if !enabled {
		return disabledButtonStyle.Render(label)
	}
	return buttonStyle.Render(label)
}

func renderTags(tags []string, selected int) string {
	if len(tags) == 0 {
		return mutedStyle.Render("no tags")
	}
	chips := make([]string, 0, len(tags))
	for i, tag := range tags {
		if i == selected {
			chips = append(chips, selectedTagStyle.Render(tag))
			continue
		}
		chips = append(chips, tagStyle.Render(tag))
	}
	return strings.Join(chips, " ")
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
