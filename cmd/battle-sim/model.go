package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"

	"github.com/1400073/pokemon-project/battle"
)

var (
	panelStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	titleStyle    = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("170"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	logStyle      = lipgloss.NewStyle().Faint(true)

	selectKey = key.NewBinding(key.WithKeys("enter"))
	upKey     = key.NewBinding(key.WithKeys("up", "k"))
	downKey   = key.NewBinding(key.WithKeys("down", "j"))
	quitKey   = key.NewBinding(key.WithKeys("q", "ctrl+c"))
)

const logLines = 10

type model struct {
	env        *battle.BattleEnvironment
	playerName string

	cursor      int
	messages    []string
	totalReward float64
	done        bool
	winner      int

	playerBar   progress.Model
	opponentBar progress.Model
	width       int
}

func newModel(env *battle.BattleEnvironment, playerName string) model {
	newBar := func() progress.Model {
		return progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	}

	width := termWidth
	if width <= 0 {
		width = 80
	}

	return model{
		env:         env,
		playerName:  playerName,
		winner:      -1,
		playerBar:   newBar(),
		opponentBar: newBar(),
		width:       width,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, quitKey):
			return m, tea.Quit
		case key.Matches(msg, upKey):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, downKey):
			if m.cursor < len(m.playerMoves())-1 {
				m.cursor++
			}
		case key.Matches(msg, selectKey):
			if m.done {
				return m, tea.Quit
			}

			return m.step(), nil
		}
	}

	return m, nil
}

func (m model) step() model {
	result, err := m.env.Step(m.cursor)
	if err != nil {
		log.Err(err).Msg("step failed")
		m.messages = append(m.messages, err.Error())
		return m
	}

	m.messages = append(m.messages, result.Observation.Messages...)
	m.totalReward += result.Reward

	if result.Done {
		m.done = true
		m.winner, _ = m.env.Winner()

		if m.winner == battle.SIDE_PLAYER {
			m.messages = append(m.messages, fmt.Sprintf("%s won the battle!", m.playerName))
		} else {
			m.messages = append(m.messages, fmt.Sprintf("%s lost the battle...", m.playerName))
		}
	}

	if m.cursor >= len(m.playerMoves()) {
		m.cursor = 0
	}

	return m
}

func (m model) View() string {
	obs := m.env.Observe()

	opponentPanel := panelStyle.Render(m.pokemonPanel(obs.Opponent, m.opponentBar))
	playerPanel := panelStyle.Render(m.pokemonPanel(obs.Player, m.playerBar))

	var movesView string
	if m.done {
		movesView = panelStyle.Render("battle over, press enter to quit")
	} else {
		movesView = panelStyle.Render(m.movesPanel())
	}

	logView := panelStyle.Render(m.logPanel())

	view := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(fmt.Sprintf("turn %d", obs.Turn)),
		lipgloss.JoinHorizontal(lipgloss.Top, playerPanel, opponentPanel),
		movesView,
		logView,
	)

	return lipgloss.NewStyle().MaxWidth(m.width).Render(view)
}

func (m model) pokemonPanel(view battle.PokemonView, bar progress.Model) string {
	name := titleStyle.Render(fmt.Sprintf("%s lv.%d", view.Name, view.Level))
	if status := battle.StatusName(view.Status); status != "" {
		name += " " + statusStyle.Render(status)
	}

	hpBar := bar.ViewAs(float64(view.Hp) / float64(view.MaxHp))
	hpText := fmt.Sprintf("%d / %d", view.Hp, view.MaxHp)

	return lipgloss.JoinVertical(lipgloss.Left, name, hpBar, hpText)
}

func (m model) movesPanel() string {
	var lines []string
	for i, move := range m.playerMoves() {
		line := fmt.Sprintf("%s (%s, %d)", move.Name, move.Type, move.Power)
		if i == m.cursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}

		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

func (m model) logPanel() string {
	start := 0
	if len(m.messages) > logLines {
		start = len(m.messages) - logLines
	}

	return logStyle.Render(strings.Join(m.messages[start:], "\n"))
}

func (m model) playerMoves() []battle.MoveData {
	active := m.env.State.Side(battle.SIDE_PLAYER).ActivePokemon()
	if active == nil {
		return nil
	}

	return active.Moves
}
