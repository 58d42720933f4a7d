package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/maksli/vanvleck/internal/term"
)

var (
	staticStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	rotatingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	coeffStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	zeroStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	plusStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

// Styled renders a term for the terminal: coefficient highlighted, static
// terms dimmed, rotating terms bright.
func Styled(t *term.Term) string {
	s := coeffStyle.Render(coeffText(t.Coeff))
	if t.Rotating {
		return s + rotatingStyle.Render(body(t))
	}
	return s + staticStyle.Render(body(t))
}

// CollectionStyled renders a collection for the terminal.
func CollectionStyled(c term.Collection) string {
	if len(c) == 0 {
		return zeroStyle.Render("0")
	}
	out := Styled(c[0])
	for _, t := range c[1:] {
		out += plusStyle.Render(" + ") + Styled(t)
	}
	return out
}
