package tui

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/shrink-arena/internal/core"
	"github.com/vovakirdan/shrink-arena/internal/games/arena"
	"github.com/vovakirdan/shrink-arena/internal/storage"
)

// fakeGame records the frames it is stepped with and reports a scripted state.
type fakeGame struct {
	resets  int
	resized [2]int
	frames  []core.InputFrame
	state   core.GameState
	kills   int
}

func (g *fakeGame) ID() string               { return "fake" }
func (g *fakeGame) Title() string            { return "Fake" }
func (g *fakeGame) State() core.GameState    { return g.state }
func (g *fakeGame) Resize(width, height int) { g.resized = [2]int{width, height} }
func (g *fakeGame) last() core.InputFrame    { return g.frames[len(g.frames)-1] }
func (g *fakeGame) finish(score int)         { g.state = core.GameState{Score: score, GameOver: true} }

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "fake")
}

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{}
}

func (g *fakeGame) Summary() core.RunSummary {
	return core.RunSummary{Score: g.state.Score, Kills: g.kills, Ticks: 42, ArenaW: 10, ArenaH: 8}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	if g.state.GameOver && in.Has(core.ActionRestart) {
		g.state = core.GameState{}
	}
	return core.StepResult{State: g.state, Events: []string{"stepped"}}
}

// eventfulGame is a fakeGame that also reports typed events.
type eventfulGame struct {
	fakeGame
	events []arena.Event
}

func (g *eventfulGame) Events() []arena.Event { return g.events }

func newTestModel(t *testing.T, g *fakeGame, store *storage.Store) Model {
	t.Helper()
	cfg := core.RuntimeConfig{ScreenW: 120, ScreenH: 20, TickRate: 60, Seed: 1}
	m := NewModel(g, store, cfg, log.New(io.Discard))
	m.now = func() time.Time { return t0 }
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return nm
}

func TestModelReservesHelpRow(t *testing.T) {
	m := newTestModel(t, &fakeGame{}, nil)
	if m.screen.Height() != 19 || m.config.ScreenH != 19 {
		t.Errorf("game area height = %d, expected 19", m.screen.Height())
	}
}

func TestModelDirectionHeldAcrossTicks(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, nil)
	m.Init()

	m = update(t, m, runeKey('w'))
	m = update(t, m, TickMsg(t0))
	m = update(t, m, TickMsg(t0))

	if len(g.frames) != 2 {
		t.Fatalf("game stepped %d times, expected 2", len(g.frames))
	}
	for i, f := range g.frames {
		if !f.Has(core.ActionUp) {
			t.Errorf("frame %d should hold up", i)
		}
	}

	m.now = func() time.Time { return t0.Add(time.Second) }
	update(t, m, TickMsg(t0))
	if g.last().Has(core.ActionUp) {
		t.Error("up should be released after the latch runs out")
	}
}

func TestModelOneShotActionsLastOneTick(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, nil)

	m = update(t, m, runeKey('f'))
	m = update(t, m, TickMsg(t0))
	update(t, m, TickMsg(t0))

	if !g.frames[0].Has(core.ActionFire) {
		t.Error("first tick should carry fire")
	}
	if g.frames[1].Has(core.ActionFire) {
		t.Error("fire should not repeat on the next tick")
	}
}

func TestModelMouse(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, nil)

	m = update(t, m, tea.MouseMsg{X: 5, Y: 7, Action: tea.MouseActionMotion})
	m = update(t, m, TickMsg(t0))
	f := g.last()
	if !f.Pointer.Valid || f.Pointer.X != 5 || f.Pointer.Y != 7 {
		t.Errorf("pointer = %+v, expected (5, 7)", f.Pointer)
	}
	if f.Has(core.ActionFire) {
		t.Error("motion alone should not fire")
	}

	m = update(t, m, tea.MouseMsg{X: 6, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, TickMsg(t0))
	if !g.last().Has(core.ActionFire) {
		t.Error("left click should fire")
	}

	// The pointer sticks after the click frame is cleared.
	update(t, m, TickMsg(t0))
	if f := g.last(); !f.Pointer.Valid || f.Pointer.X != 6 {
		t.Errorf("pointer should persist, got %+v", f.Pointer)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, &fakeGame{}, nil)

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit should end the program")
	}
	if next.(Model).View() != "" {
		t.Error("quitting model should render nothing")
	}

	m.embedded = true
	next, cmd = m.Update(runeKey('q'))
	if cmd != nil {
		t.Error("embedded quit should not end the program")
	}
	if !next.(Model).Quitting() {
		t.Error("embedded quit should be reported by Quitting()")
	}
}

func TestModelResize(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, nil)
	m = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 30})

	if g.resized != [2]int{60, 29} {
		t.Errorf("Resize called with %v, expected [60 29]", g.resized)
	}
	if g.resets != 0 {
		t.Error("a resizable game should not be reset")
	}
	if m.screen.Width() != 60 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, expected 60x29", m.screen.Width(), m.screen.Height())
	}
}

func TestModelSavesRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &fakeGame{kills: 3}
	m := newTestModel(t, g, store)
	g.finish(7)

	m = update(t, m, TickMsg(t0))
	m = update(t, m, TickMsg(t0))

	scores, err := store.TopScores("fake", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 7 {
		t.Fatalf("scores = %+v, expected a single 7", scores)
	}

	runs, err := store.RecentRuns("fake", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("saved %d runs, expected 1", len(runs))
	}
	if r := runs[0]; r.Kills != 3 || r.Ticks != 42 || r.ArenaW != 10 || r.ArenaH != 8 {
		t.Errorf("run = %+v, expected the game summary", r)
	}

	// Restart, then finish again: a second run is recorded.
	m = update(t, m, runeKey('r'))
	m = update(t, m, TickMsg(t0))
	if m.gameState.GameOver {
		t.Fatal("restart should clear game over")
	}
	g.finish(2)
	update(t, m, TickMsg(t0))

	if runs, _ := store.RecentRuns("fake", 10); len(runs) != 2 {
		t.Errorf("saved %d runs after restart, expected 2", len(runs))
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, &fakeGame{}, nil)
	view := m.View()

	if !strings.HasPrefix(view, "fake") {
		t.Errorf("View() should start with the game render, got %q", view[:min(len(view), 20)])
	}
	if !strings.Contains(view, "up") {
		t.Error("View() should include the key help line")
	}
}

func TestModelLogsEventKinds(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	g := &eventfulGame{events: []arena.Event{arena.ScoreChanged{Score: 3}, arena.AmmoChanged{Ammo: 9}}}
	cfg := core.RuntimeConfig{ScreenW: 120, ScreenH: 20, TickRate: 60, Seed: 1}
	m := NewModel(g, nil, cfg, logger)
	m.now = func() time.Time { return t0 }

	update(t, m, TickMsg(t0))

	out := buf.String()
	for _, want := range []string{"kind=ScoreChanged", "kind=AmmoChanged"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestModelLogsPlainEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	cfg := core.RuntimeConfig{ScreenW: 120, ScreenH: 20, TickRate: 60, Seed: 1}
	m := NewModel(&fakeGame{}, nil, cfg, logger)
	m.now = func() time.Time { return t0 }

	update(t, m, TickMsg(t0))

	out := buf.String()
	if !strings.Contains(out, "event=stepped") {
		t.Errorf("log output missing the step event:\n%s", out)
	}
	if strings.Contains(out, "kind=") {
		t.Errorf("untyped events should not carry a kind:\n%s", out)
	}
}
