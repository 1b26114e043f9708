package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/ironplane/ironplane/pkg/boardstore"
)

// =============================================================================
// BoardListModel - Interactive board selection
// =============================================================================

// BoardSelection holds the result of an interactive board pick.
type BoardSelection struct {
	Record *boardstore.Record
}

// BoardListModel is the bubbletea model for interactively browsing stored
// board records (see pkg/boardstore) and picking one to export.
type BoardListModel struct {
	Records  []*boardstore.Record
	Cursor   int
	Selected *BoardSelection
	Height   int
	Offset   int
}

// NewBoardListModel creates a new board list model over records.
func NewBoardListModel(records []*boardstore.Record) BoardListModel {
	return BoardListModel{Records: records, Height: 15}
}

func (m BoardListModel) Init() tea.Cmd {
	return nil
}

func (m BoardListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Records)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Records) == 0 {
				return m, nil
			}
			m.Selected = &BoardSelection{Record: m.Records[m.Cursor]}
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 6
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m BoardListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Stored Boards"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	if len(m.Records) == 0 {
		b.WriteString(StyleDim.Render("  no boards stored yet"))
		return b.String()
	}

	end := m.Offset + m.Height
	if end > len(m.Records) {
		end = len(m.Records)
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	rows := make([][]string, 0, end-m.Offset)
	for i := m.Offset; i < end; i++ {
		rec := m.Records[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		built := "no"
		if len(rec.IGES) > 0 {
			built = "yes"
		}
		rows = append(rows, []string{cursor, rec.Name, rec.ID, built, rec.UpdatedAt.Format("Jan 2 15:04")})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Name", "ID", "Built", "Updated").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			actualIdx := m.Offset + row
			if actualIdx == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Records))))
	return b.String()
}
