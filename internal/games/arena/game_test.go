package arena

import (
	"strings"
	"testing"

	"github.com/vovakirdan/shrink-arena/internal/core"
	"github.com/vovakirdan/shrink-arena/internal/registry"
)

func newTestGame(t *testing.T, id string) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	g := New(id)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 7})
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestVariantsRegistered(t *testing.T) {
	for _, id := range []string{"arena", "inventorium"} {
		info, ok := registry.Info(id)
		if !ok {
			t.Fatalf("%q not registered", id)
		}
		if info.Title == "" || info.Description == "" {
			t.Errorf("%q info = %+v, expected title and description", id, info)
		}
	}
}

func TestGameResetLoadsVariant(t *testing.T) {
	g := newTestGame(t, "inventorium")

	if g.session.Ammo() != 3 {
		t.Errorf("inventorium start ammo = %d, expected 3", g.session.Ammo())
	}
	if g.session.Bounds().W != 860 {
		t.Errorf("inventorium arena width = %v, expected 860", g.session.Bounds().W)
	}
}

func TestGameStepMoves(t *testing.T) {
	g := newTestGame(t, "arena")
	start := g.session.Player().Pos

	g.Step(frame(core.ActionRight))
	if got := g.session.Player().Pos.X; !near(got, start.X+5) {
		t.Errorf("player x = %v, expected %v", got, start.X+5)
	}

	// Released keys stop the player.
	x := g.session.Player().Pos.X
	g.Step(frame())
	if got := g.session.Player().Pos.X; got != x {
		t.Errorf("player kept moving without input: %v -> %v", x, got)
	}
}

func TestGameFireReportsEvents(t *testing.T) {
	g := newTestGame(t, "inventorium")

	res := g.Step(frame(core.ActionFire))
	if len(res.Events) == 0 || !strings.Contains(res.Events[0], "ammo changed to 2") {
		t.Errorf("Step() events = %v, expected ammo change", res.Events)
	}
	if ev := g.Events(); len(ev) == 0 || ev[0] != (AmmoChanged{Ammo: 2}) {
		t.Errorf("Events() = %v", ev)
	}
}

func TestGamePointerAims(t *testing.T) {
	g := newTestGame(t, "arena")

	// A pointer ten rows above the player aims up.
	px, py := g.view().toCell(g.session.Player().Pos)
	in := frame()
	in.SetPointer(px, py-10)
	g.Step(in)

	if aim := g.session.Aim(); aim.Y >= 0 {
		t.Errorf("pointer above the player should aim up, got %v", aim)
	}
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t, "arena")

	if res := g.Step(frame(core.ActionPause)); !res.State.Paused {
		t.Fatal("ActionPause should pause")
	}
	pos := g.session.Player().Pos
	g.Step(frame(core.ActionRight))
	if g.session.Player().Pos != pos {
		t.Error("paused game should not move")
	}
	if res := g.Step(frame(core.ActionPause)); res.State.Paused {
		t.Error("second ActionPause should resume")
	}
}

func TestGameRestartOnlyWhenOver(t *testing.T) {
	g := newTestGame(t, "arena")

	for range 10 {
		g.Step(frame(core.ActionDown))
	}
	tick := g.session.State().Tick
	g.Step(frame(core.ActionRestart))
	if g.session.State().Tick != tick+1 {
		t.Error("ActionRestart during play should be ignored")
	}

	g.session.state.Bounds = Bounds{W: 1, H: 1}
	res := g.Step(frame())
	if !res.State.GameOver {
		t.Fatal("expected game over")
	}

	res = g.Step(frame(core.ActionRestart))
	if res.State.GameOver || g.session.State().Tick != 0 {
		t.Errorf("ActionRestart after game over should start fresh, state %+v", res.State)
	}
}

func TestGameSummary(t *testing.T) {
	g := newTestGame(t, "arena")
	g.Step(frame())

	sum := g.Summary()
	if sum.Ticks != 1 || sum.ArenaW != 1160 || sum.ArenaH != 760 {
		t.Errorf("Summary() = %+v", sum)
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, "arena")
	screen := core.NewScreen(80, 25)
	g.Render(screen)

	if !strings.Contains(screen.Row(0), "score: 0  ammo: 0") {
		t.Errorf("HUD = %q", screen.Row(0))
	}

	px, py := g.view().toCell(g.session.Player().Pos)
	if c := screen.GetCell(px, py); c.Rune != PlayerChar || c.Color != core.ColorBrightGreen {
		t.Errorf("player cell = %+v", c)
	}
	if screen.Get(px+1, py) != TurretChar {
		t.Errorf("turret missing right of the player: %q", screen.Row(py))
	}
	cx, cy := g.view().toCell(g.session.Coin().Pos)
	if screen.Get(cx, cy) != CoinChar {
		t.Errorf("coin missing at (%d, %d)", cx, cy)
	}

	g.session.state.Phase = PhaseGameOver
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game-over box not drawn")
	}
}

func TestViewRoundTrip(t *testing.T) {
	v := view{cells: core.NewRect(0, 1, 80, 24), worldW: 1200, worldH: 800}

	for _, c := range [][2]int{{0, 1}, {40, 12}, {79, 24}} {
		wx, wy := v.toWorld(c[0], c[1])
		x, y := v.toCell(V(wx, wy))
		if x != c[0] || y != c[1] {
			t.Errorf("cell %v -> world (%v, %v) -> cell (%d, %d)", c, wx, wy, x, y)
		}
	}

	// Points outside the world clamp to the edge cells.
	if x, y := v.toCell(V(-50, 5000)); x != 0 || y != 24 {
		t.Errorf("toCell outside = (%d, %d), expected (0, 24)", x, y)
	}
}

func TestGameResizeKeepsSession(t *testing.T) {
	g := newTestGame(t, "arena")
	for range 5 {
		g.Step(frame(core.ActionDown))
	}
	tick := g.session.State().Tick

	g.Resize(120, 40)
	if g.session.State().Tick != tick {
		t.Error("Resize should not restart the session")
	}
	if v := g.view(); v.cells.W != 120 || v.cells.H != 39 {
		t.Errorf("view after resize = %+v, expected 120x39", v.cells)
	}
}
