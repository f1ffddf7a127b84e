package tui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/perfgate/perfgate/internal/domain"
)

// ── Palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

// Renderer renders verdicts for a particular output stream.
type Renderer struct {
	headerStyle  lipgloss.Style
	sectionStyle lipgloss.Style
	labelStyle   lipgloss.Style
	dimStyle     lipgloss.Style
	passStyle    lipgloss.Style
	failStyle    lipgloss.Style
	warnStyle    lipgloss.Style
}

// New creates a Renderer for out. color is one of domain.ColorAuto,
// domain.ColorAlways or domain.ColorNever; auto follows the terminal.
func New(out io.Writer, color string) *Renderer {
	lg := lipgloss.NewRenderer(out)
	switch color {
	case domain.ColorNever:
		lg.SetColorProfile(termenv.Ascii)
	case domain.ColorAlways:
		lg.SetColorProfile(termenv.TrueColor)
	}

	return &Renderer{
		headerStyle:  lg.NewStyle().Bold(true).Foreground(accent),
		sectionStyle: lg.NewStyle().Bold(true).Foreground(fg),
		labelStyle:   lg.NewStyle().Foreground(fg),
		dimStyle:     lg.NewStyle().Foreground(dim),
		passStyle:    lg.NewStyle().Foreground(success),
		failStyle:    lg.NewStyle().Foreground(danger).Bold(true),
		warnStyle:    lg.NewStyle().Foreground(warning),
	}
}

// Plain returns a Renderer that never emits escape sequences.
func Plain(out io.Writer) *Renderer {
	return New(out, domain.ColorNever)
}
