package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/shrink-arena/internal/core"
	"github.com/vovakirdan/shrink-arena/internal/games/arena"
	"github.com/vovakirdan/shrink-arena/internal/registry"
	"github.com/vovakirdan/shrink-arena/internal/storage"
)

// helpRows is the space reserved under the game for the key help line.
const helpRows = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// resizer is implemented by games that can follow a terminal resize
// without restarting.
type resizer interface {
	Resize(width, height int)
}

// eventSource is implemented by games that expose the typed events of
// their last step.
type eventSource interface {
	Events() []arena.Event
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	store     *storage.Store
	logger    *log.Logger
	config    core.RuntimeConfig
	keys      GameKeyMap
	help      help.Model
	hold      holdTracker
	input     core.InputFrame // One-shot actions plus the sticky pointer
	gameState core.GameState
	quitting  bool
	embedded  bool // Quit returns to the caller instead of ending the program
	runSaved  bool // Whether the current game over has been recorded
	now       func() time.Time
}

// NewModel creates a new Bubble Tea model for the given game.
// store and logger may be nil.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.Default()
	}
	cfg.ScreenH = max(cfg.ScreenH-helpRows, 1)

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		logger: logger.WithPrefix(game.ID()),
		config: cfg,
		keys:   DefaultGameKeyMap(),
		help:   h,
		hold:   newHoldTracker(),
		input:  core.NewInputFrame(),
		now:    time.Now,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "seed", m.config.Seed, "tick_rate", m.config.TickRate)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch a := m.keys.Action(msg); a {
	case core.ActionQuit:
		m.quitting = true
		if m.embedded {
			return m, nil
		}
		return m, tea.Quit
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		m.hold.press(a, m.now())
	case core.ActionNone:
	default:
		m.input.Set(a)
	}

	return m, nil
}

// handleMouse tracks the pointer for aiming; a left click fires.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.input.SetPointer(msg.X, msg.Y)
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.input.Set(core.ActionFire)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(msg.Height-helpRows, 1)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	if r, ok := m.game.(resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// logEvents writes the events of one step at debug level, keyed by kind
// when the game reports typed events.
func (m Model) logEvents(result core.StepResult) {
	src, ok := m.game.(eventSource)
	if !ok {
		for _, e := range result.Events {
			m.logger.Debug("sim event", "event", e)
		}
		return
	}
	for _, e := range src.Events() {
		kind := fmt.Sprintf("%T", e)
		if i := strings.LastIndexByte(kind, '.'); i >= 0 {
			kind = kind[i+1:]
		}
		m.logger.Debug("sim event", "kind", kind, "event", e.String())
	}
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := m.input.Clone()
	m.hold.apply(&frame, m.now())

	result := m.game.Step(frame)
	wasOver := m.gameState.GameOver
	m.gameState = result.State

	m.logEvents(result)

	switch {
	case m.gameState.GameOver && !m.runSaved:
		m.saveRun()
		m.runSaved = true
		m.hold.release()
	case wasOver && !m.gameState.GameOver:
		m.logger.Info("game restarted")
		m.runSaved = false
	}

	// One-shot actions last a single tick
	m.input.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveRun records the finished game. Storage failures are logged and
// otherwise ignored so the game keeps running.
func (m *Model) saveRun() {
	score := m.gameState.Score
	m.logger.Info("game over", "score", score)
	if m.store == nil {
		return
	}

	if score > 0 {
		if _, err := m.store.SaveScore(m.game.ID(), score); err != nil {
			m.logger.Warn("cannot save score", "err", err)
		}
	}

	rep, ok := m.game.(registry.RunReporter)
	if !ok {
		return
	}
	sum := rep.Summary()
	runID, err := m.store.SaveRun(storage.Run{
		GameID: m.game.ID(),
		Score:  sum.Score,
		Kills:  sum.Kills,
		Ticks:  int64(min(sum.Ticks, 1<<62)), //#nosec G115 -- capped above
		ArenaW: sum.ArenaW,
		ArenaH: sum.ArenaH,
	})
	if err != nil {
		m.logger.Warn("cannot save run", "err", err)
		return
	}
	m.logger.Debug("run saved", "run_id", runID)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	dir := filepath.Join(home, ".arcade-arena", "screenshots")
	if err := os.MkdirAll(dir, 0o750); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// Quitting reports whether the player asked to leave the game.
func (m Model) Quitting() bool { return m.quitting }

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // Pointer motion drives the aim
	)

	_, err := p.Run()
	return err
}
