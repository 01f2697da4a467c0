package main

import (
	"bytes"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true)

	playerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")) // teal

	narrationStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)
)

type tuiModel struct {
	game      *GameState
	textInput textinput.Model
	viewport  viewport.Model
	gameLog   string
	done      bool
}

func newTUIModel(game *GameState) tuiModel {
	ti := textinput.New()
	ti.Placeholder = "What do you do?"
	ti.Focus()
	ti.CharLimit = 156
	ti.Width = 60

	var buf bytes.Buffer
	prevOut := game.Out
	game.Out = &buf
	game.Start()
	game.Out = prevOut

	m := tuiModel{
		game:      game,
		textInput: ti,
		viewport:  viewport.New(DefaultWidth, 20),
	}
	m.gameLog = titleStyle.Render(game.World.Title) + "\n\n" + narrationStyle.Render(strings.TrimRight(buf.String(), "\n"))
	m.viewport.SetContent(m.gameLog)
	return m
}

func (m tuiModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.done {
			return m, tea.Quit
		}
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			line := m.textInput.Value()
			if strings.TrimSpace(line) == "" {
				return m, nil
			}
			m.textInput.Reset()

			output, _ := ExecuteCommand(m.game, line)
			m.gameLog += "\n\n" + playerStyle.Render("> "+line) + "\n" + narrationStyle.Render(strings.TrimRight(output, "\n"))
			if !m.game.IsPlaying() {
				m.done = true
				m.gameLog += "\n\n" + helpStyle.Render(m.game.World.Messages.Line("PressKey"))
			}
			m.viewport.SetContent(m.gameLog)
			m.viewport.GotoBottom()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-4, 1)
		m.game.Width = max(msg.Width-2, 20)
		m.viewport.SetContent(m.gameLog)
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m tuiModel) View() string {
	help := helpStyle.Render("Type ? for help, Esc to leave.")
	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewport.View(),
		m.textInput.View(),
		help,
	)
}

func runTUI(game *GameState) error {
	p := tea.NewProgram(newTUIModel(game), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
