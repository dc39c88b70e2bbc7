package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/icco/camfour"
	"go.uber.org/zap"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginLeft(2)

	infoStyle = lipgloss.NewStyle().
			MarginLeft(2)

	boardStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			MarginLeft(2)

	cellStyle = lipgloss.NewStyle().
			Width(3).
			Align(lipgloss.Center)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true).
			MarginLeft(2)

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")).
			Bold(true).
			MarginLeft(2)
)

type keyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Place key.Binding
	New   key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Place, k.New, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Place, k.New, k.Help, k.Quit},
	}
}

var keys = keyMap{
	Up:    key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "row up")),
	Down:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "row down")),
	Left:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "column left")),
	Right: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "column right")),
	Place: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "place marker")),
	New:   key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new match")),
	Help:  key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
	Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

// model drives a match one key press at a time. The cursor stands in for
// where the human put their marker; the board still decides if it is legal.
type model struct {
	match *camfour.Match
	help  help.Model

	cursorRow int
	cursorCol int
	last      string
	error     string
}

func newModel(m *camfour.Match) model {
	return model{match: m, help: help.New()}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, keys.Up):
			if m.cursorRow < camfour.Rows-1 {
				m.cursorRow++
			}
		case key.Matches(msg, keys.Down):
			if m.cursorRow > 0 {
				m.cursorRow--
			}
		case key.Matches(msg, keys.Left):
			if m.cursorCol > 0 {
				m.cursorCol--
			}
		case key.Matches(msg, keys.Right):
			if m.cursorCol < camfour.Cols-1 {
				m.cursorCol++
			}
		case key.Matches(msg, keys.New):
			m.match.StartMatch()
			m.cursorRow, m.cursorCol = 0, 0
			m.last, m.error = "", ""
		case key.Matches(msg, keys.Place):
			m = m.place()
		}
	}

	return m, nil
}

// place submits the cursor cell and, if accepted, lets the opponent reply.
func (m model) place() model {
	res, err := m.match.SubmitHumanMove(m.cursorRow, m.cursorCol)
	if res == camfour.Rejected {
		if errors.Is(err, camfour.ErrMatchOver) {
			m.error = "The match is over. Press n for a new one."
		} else {
			m.error = fmt.Sprintf("Invalid option (%v). Please try again.", err)
		}
		return m
	}
	m.error = ""

	if m.match.Outcome() != camfour.Ongoing {
		m.last = ""
		return m
	}

	mv, err := m.match.ComputeOpponentMove()
	if err != nil {
		log.Errorw("opponent failed", "match", m.match.ID, zap.Error(err))
		m.error = err.Error()
		return m
	}
	m.last = fmt.Sprintf("Robot marks row %d col %d", mv.Row, mv.Col)

	return m
}

func (m model) View() string {
	title := titleStyle.Render("Camfour")
	info := infoStyle.Render(fmt.Sprintf("Turn #%d | Cursor: %d,%d | Match: %s", m.match.Turn()+1, m.cursorRow, m.cursorCol, m.match.ID))

	content := []string{title, "", info, "", m.renderBoard()}
	if m.last != "" {
		content = append(content, infoStyle.Render(m.last))
	}

	switch m.match.Outcome() {
	case camfour.HumanWin:
		content = append(content, resultStyle.Render("Congratulations, player! You won!"))
	case camfour.OpponentWin:
		content = append(content, resultStyle.Render("Sorry, CPU player won! Better luck next time!"))
	case camfour.Tie:
		content = append(content, resultStyle.Render("Tie state reached. Ending game."))
	}

	if m.error != "" {
		content = append(content, "", errorStyle.Render(m.error))
	}

	content = append(content, "", infoStyle.Render(m.help.View(keys)))
	return lipgloss.JoinVertical(lipgloss.Left, content...)
}

func (m model) renderBoard() string {
	var rows []string
	for r := camfour.Rows - 1; r >= 0; r-- {
		var b strings.Builder
		fmt.Fprintf(&b, "%d ", r)
		for c := 0; c < camfour.Cols; c++ {
			b.WriteString(m.renderCell(r, c))
		}
		rows = append(rows, b.String())
	}

	footer := "  "
	for c := 0; c < camfour.Cols; c++ {
		footer += cellStyle.Render(fmt.Sprint(c))
	}
	rows = append(rows, footer)

	return boardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m model) renderCell(row, col int) string {
	var bgColor, fgColor string
	occ := m.match.Board.Owner(row, col)
	switch occ {
	case camfour.Human:
		bgColor, fgColor = "235", "220"
	case camfour.Opponent:
		bgColor, fgColor = "235", "39"
	default:
		bgColor, fgColor = "235", "240"
	}

	// Highlight cursor
	if row == m.cursorRow && col == m.cursorCol {
		bgColor, fgColor = "220", "16"
	}

	return cellStyle.
		Background(lipgloss.Color(bgColor)).
		Foreground(lipgloss.Color(fgColor)).
		Render(occ.Symbol())
}
