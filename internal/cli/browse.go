package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/gridlink/pkg/grid"
	"github.com/matzehuels/gridlink/pkg/render/ascii"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	panelStyle        = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorDim).
				Padding(0, 1)
)

// browseCommand creates the browse command, an interactive component browser.
func (c *CLI) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse [file]",
		Short: "Browse components and their links interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBrowse(cmd.Context(), pathArg(args))
		},
	}
}

func (c *CLI) runBrowse(ctx context.Context, path string) error {
	n, err := loadNetwork(ctx, path)
	if err != nil {
		return err
	}
	if len(n.Components()) == 0 {
		printInfo(c.Err, "Nothing to browse: the plant has no components")
		return nil
	}

	p := tea.NewProgram(newBrowserModel(n), tea.WithContext(ctx), tea.WithOutput(c.Out))
	_, err = p.Run()
	return err
}

// =============================================================================
// browserModel - component list with the selected diagram alongside
// =============================================================================

// browserModel is the bubbletea model for the browse command.
type browserModel struct {
	components []*grid.Component
	stats      grid.Stats
	cursor     int
	height     int
	offset     int
}

func newBrowserModel(n *grid.Network) browserModel {
	return browserModel{
		components: n.Components(),
		stats:      n.Stats(),
		height:     15,
	}
}

// Selected returns the component under the cursor, or nil for an empty list.
func (m browserModel) Selected() *grid.Component {
	if len(m.components) == 0 {
		return nil
	}
	return m.components[m.cursor]
}

func (m browserModel) Init() tea.Cmd {
	return nil
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.components)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case "home", "g":
			m.cursor, m.offset = 0, 0
		}
	case tea.WindowSizeMsg:
		m.height = max(msg.Height-8, 5)
		if m.cursor >= m.offset+m.height {
			m.offset = m.cursor - m.height + 1
		}
	}
	return m, nil
}

func (m browserModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Components"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  q quit"))
	b.WriteString("\n\n")

	if sel := m.Selected(); sel != nil {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.listView(), "  ", m.detailView(sel)))
	}

	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]  %d connections · %d links",
		m.cursor+1, len(m.components), m.stats.Connections, m.stats.Links)))
	b.WriteString("\n")

	return b.String()
}

func (m browserModel) listView() string {
	end := min(m.offset+m.height, len(m.components))

	var lines []string
	for i := m.offset; i < end; i++ {
		comp := m.components[i]
		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		marker := kindStyle(comp.Kind()).Render("●")
		line := fmt.Sprintf("%s%s %s", cursor, marker, comp.Name())
		if i == m.cursor {
			lines = append(lines, listSelectedStyle.Render(line))
		} else {
			lines = append(lines, listNormalStyle.Render(line))
		}
	}
	return strings.Join(lines, "\n")
}

func (m browserModel) detailView(comp *grid.Component) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := [][]string{{"kind", string(comp.Kind())}}
	for _, f := range comp.Attributes().Fields() {
		rows = append(rows, []string{f.Key, f.Value})
	}
	attrs := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return headerStyle
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	lines := ascii.Lines(comp)
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		kindStyle(comp.Kind()).Bold(true).Render(lines[0]),
		strings.Join(lines[1:], "\n"),
		attrs.Render(),
	))
}
