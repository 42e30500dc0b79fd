// Package explore provides an interactive terminal browser for the
// healthy-band grid: move a cursor over the (P', P'') plane and inspect
// Zs, Zt and cs2 at each point.
package explore

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/avetisov/spin2lab/internal/band"
)

// Model is the bubbletea model over a scanned grid. Rows are P2prime
// (top = max), columns are Pprime.
type Model struct {
	scan   band.Scan
	grid   [][]band.Point // [pprime index][p2prime index]
	ni, nj int
	ci, cj int
}

func New(scan band.Scan) Model {
	ni, nj := scan.Counts()
	pts := scan.Run()
	grid := make([][]band.Point, ni)
	for i := 0; i < ni; i++ {
		grid[i] = pts[i*nj : (i+1)*nj]
	}
	return Model{scan: scan, grid: grid, ni: ni, nj: nj, ci: ni / 2, cj: nj / 2}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			if m.ci > 0 {
				m.ci--
			}
		case "right", "l":
			if m.ci < m.ni-1 {
				m.ci++
			}
		case "up", "k":
			if m.cj < m.nj-1 {
				m.cj++
			}
		case "down", "j":
			if m.cj > 0 {
				m.cj--
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("healthy band explorer"))
	sb.WriteString("\n\n")

	for j := m.nj - 1; j >= 0; j-- {
		for i := 0; i < m.ni; i++ {
			p := m.grid[i][j]
			cell, style := ".", unstableStyle
			if p.Stable() {
				cell, style = "#", stableStyle
			}
			if i == m.ci && j == m.cj {
				style = cursorStyle
			}
			sb.WriteString(style.Render(cell))
		}
		sb.WriteString("\n")
	}

	p := m.grid[m.ci][m.cj]
	cs2 := "-"
	if p.Cs2Valid {
		cs2 = fmt.Sprintf("%.3f", p.Cs2)
	}
	status := "unstable"
	if p.Stable() {
		status = "healthy band"
	}
	info := fmt.Sprintf("P'=%.3f  P''=%.3f  Zs=%.3f  Zt=%.3f  cs2=%s  [%s]",
		p.Pprime, p.P2prime, p.Zs, p.Zt, cs2, status)

	sb.WriteString("\n")
	sb.WriteString(panelStyle.Render(info))
	sb.WriteString("\n")
	sb.WriteString(keyHintStyle.Render("arrows/hjkl: move  q: quit"))
	sb.WriteString("\n")
	return sb.String()
}

// Run launches the explorer over the given scan.
func Run(scan band.Scan) error {
	p := tea.NewProgram(New(scan))
	_, err := p.Run()
	return err
}
