package render

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/evoarena/internal/matrix"
)

// Browser is a bubbletea model that pages through per-opening matchup
// heatmaps in the terminal.
type Browser struct {
	openings []string
	matrices []*matrix.Matrix
	cursor   int
}

func NewBrowser(openings []string, matrices []*matrix.Matrix) Browser {
	return Browser{openings: openings, matrices: matrices}
}

func (b Browser) Init() tea.Cmd { return nil }

func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return b, tea.Quit
		case "left", "h", "up", "k":
			if b.cursor > 0 {
				b.cursor--
			}
		case "right", "l", "down", "j":
			if b.cursor < len(b.openings)-1 {
				b.cursor++
			}
		}
	}
	return b, nil
}

func (b Browser) View() string {
	if len(b.openings) == 0 {
		return "no openings\n"
	}

	title := fmt.Sprintf("Win Percentages for %s  (%d/%d)",
		b.openings[b.cursor], b.cursor+1, len(b.openings))
	view := HeatmapTerm(b.matrices[b.cursor], title)
	return view + "\n" + labelStyle.Render("←/→ switch opening · q quit") + "\n"
}

// RunBrowser starts the interactive matchup browser.
func RunBrowser(openings []string, matrices []*matrix.Matrix) error {
	p := tea.NewProgram(NewBrowser(openings, matrices))
	_, err := p.Run()
	return err
}
