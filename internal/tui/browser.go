// Package tui is an interactive order browser for an expansion: arrow keys
// move between perturbative orders, tab switches between the effective
// Hamiltonian K(n) and the generator S(n).
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/maksli/vanvleck/internal/render"
	"github.com/maksli/vanvleck/internal/term"
	"github.com/maksli/vanvleck/internal/vanvleck"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(1, 2)
)

// Model drives the browser. Orders are computed on demand; the expansion's
// memo tables make revisits free.
type Model struct {
	exp      *vanvleck.Expansion
	order    int
	maxOrder int
	showGen  bool
	err      error
	width    int
}

// NewModel builds a browser over the given base Hamiltonian, allowing orders
// 1..maxOrder.
func NewModel(h term.Collection, maxOrder int) Model {
	return Model{
		exp:      vanvleck.New(h),
		order:    1,
		maxOrder: maxOrder,
		width:    80,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			if m.order > 1 {
				m.order--
			}
		case "right", "l":
			if m.order < m.maxOrder {
				m.order++
			}
		case "tab", "k", "s":
			m.showGen = !m.showGen
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	title := fmt.Sprintf("van vleck expansion — order %d/%d", m.order, m.maxOrder)
	b.WriteString(headerStyle.Render(title))
	b.WriteString("\n\n")

	var (
		c    term.Collection
		name string
		err  error
	)
	if m.showGen {
		name = fmt.Sprintf("S(%d)", m.order)
		c, err = m.exp.S(m.order)
	} else {
		name = fmt.Sprintf("K(%d)", m.order)
		c, err = m.exp.K(m.order)
	}

	if err != nil {
		b.WriteString(errorStyle.Render(err.Error()))
	} else {
		body := labelStyle.Render(name+" = ") + render.CollectionStyled(c)
		b.WriteString(panelStyle.Width(m.width - 4).Render(body))
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(fmt.Sprintf("%d terms", len(c))))
	}

	b.WriteString(helpStyle.Render("\n←/→ order  tab K/S  q quit"))
	return b.String()
}
