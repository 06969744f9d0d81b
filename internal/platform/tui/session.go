package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/shrink-arena/internal/core"
	"github.com/vovakirdan/shrink-arena/internal/registry"
	"github.com/vovakirdan/shrink-arena/internal/storage"
)

// sessionPage is the page a SessionModel is showing.
type sessionPage int

const (
	pageMenu sessionPage = iota
	pageGame
	pageScores
)

// SessionModel drives one SSH session through menu, game and scoreboard
// inside a single Bubble Tea program.
type SessionModel struct {
	store    *storage.Store
	config   core.RuntimeConfig
	logger   *log.Logger
	page     sessionPage
	menu     MenuModel
	game     Model
	scores   ScoreboardModel
	quitting bool
}

// NewSessionModel creates a session that starts at the menu.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) SessionModel {
	if logger == nil {
		logger = log.Default()
	}
	m := SessionModel{
		store:  store,
		config: cfg,
		logger: logger,
	}
	m.openMenu()
	return m
}

func (m *SessionModel) openMenu() {
	m.menu = NewMenuModel(m.store, m.config)
	m.menu.embedded = true
	m.page = pageMenu
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the current page and switches pages when
// the page reports it is done.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.page {
	case pageGame:
		return m.updateGame(msg)
	case pageScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if menu, ok := next.(MenuModel); ok {
		m.menu = menu
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.scores = NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.scores.embedded = true
		m.page = pageScores
		return m, nil

	case m.menu.Selected() != nil:
		game, err := registry.Create(m.menu.Selected().ID)
		if err != nil {
			m.logger.Error("cannot create game", "err", err)
			m.openMenu()
			return m, nil
		}
		m.game = NewModel(game, m.store, m.config, m.logger)
		m.game.embedded = true
		m.page = pageGame
		return m, m.game.Init()
	}

	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if game, ok := next.(Model); ok {
		m.game = game
	}

	if m.game.Quitting() {
		// The pending tick is dropped by the menu.
		m.openMenu()
		return m, nil
	}
	return m, cmd
}

func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	if scores, ok := next.(ScoreboardModel); ok {
		m.scores = scores
	}

	switch {
	case m.scores.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scores.IsGoingBack():
		m.openMenu()
		return m, nil
	}
	return m, cmd
}

// View renders the current page.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.page {
	case pageGame:
		return m.game.View()
	case pageScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}
