package arena

import (
	"fmt"
	"math"

	"github.com/vovakirdan/shrink-arena/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar     = '@'
	TurretChar     = '·'
	CoinChar       = '$'
	EnemyChar      = 'o'
	ProjectileChar = '•'
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// view maps world units onto the terminal grid below the HUD.
type view struct {
	cells  core.Rect
	worldW float64
	worldH float64
}

func (g *Game) view() view {
	return view{
		cells:  core.NewRect(0, hudRows, max(g.runtime.ScreenW, 1), max(g.runtime.ScreenH-hudRows, 1)),
		worldW: g.base.WorldW,
		worldH: g.base.WorldH,
	}
}

// toCell returns the cell containing world point p.
func (v view) toCell(p Vec2) (int, int) {
	x := int(math.Floor(p.X / v.worldW * float64(v.cells.W)))
	y := int(math.Floor(p.Y / v.worldH * float64(v.cells.H)))
	return v.cells.X + core.Clamp(x, 0, v.cells.W-1), v.cells.Y + core.Clamp(y, 0, v.cells.H-1)
}

// toWorld returns the world point at the center of cell (cx, cy).
func (v view) toWorld(cx, cy int) (float64, float64) {
	x := (float64(cx-v.cells.X) + 0.5) / float64(v.cells.W) * v.worldW
	y := (float64(cy-v.cells.Y) + 0.5) / float64(v.cells.H) * v.worldH
	return x, y
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	st := g.session.State()
	v := g.view()

	// Arena walls turn red while the budget is still being paid off
	x0, y0 := v.toCell(V(st.Bounds.X, st.Bounds.Y))
	x1, y1 := v.toCell(V(st.Bounds.Right(), st.Bounds.Bottom()))
	wall := core.ColorGray
	if st.ShrinkBudget > 0 {
		wall = core.ColorRed
	}
	dst.DrawBoxColored(core.NewRect(x0, y0, x1-x0+1, y1-y0+1), wall)

	cx, cy := v.toCell(st.Coin.Pos)
	dst.SetColored(cx, cy, CoinChar, core.ColorBrightYellow)

	for _, e := range st.Enemies {
		ex, ey := v.toCell(e.Pos)
		dst.SetColored(ex, ey, EnemyChar, core.ColorBrightRed)
	}
	for _, p := range st.Projectiles {
		px, py := v.toCell(p.Pos)
		dst.SetColored(px, py, ProjectileChar, core.ColorCyan)
	}

	px, py := v.toCell(st.Player.Pos)
	if dx, dy := int(math.Round(st.Aim.X)), int(math.Round(st.Aim.Y)); dx != 0 || dy != 0 {
		dst.SetColored(px+dx, py+dy, TurretChar, core.ColorGreen)
	}
	dst.SetColored(px, py, PlayerChar, core.ColorBrightGreen)

	g.drawHUD(dst, st)

	if st.Over() {
		g.drawGameOver(dst, st)
	} else if g.paused {
		dst.DrawTextCentered(dst.Height()/2, " PAUSED ")
	}
}

func (g *Game) drawHUD(dst *core.Screen, st State) {
	hud := fmt.Sprintf("score: %d  ammo: %d", st.Score, st.Ammo)
	if g.cfg.Gameplay.MaxAmmo > 0 {
		hud = fmt.Sprintf("score: %d  ammo: %d/%d", st.Score, st.Ammo, g.cfg.Gameplay.MaxAmmo)
	}
	dst.DrawTextColored(1, 0, hud, core.ColorWhite)

	title := g.Title()
	dst.DrawTextColored(dst.Width()-len([]rune(title))-1, 0, title, core.ColorOrange)
}

func (g *Game) drawGameOver(dst *core.Screen, st State) {
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("score: %d  kills: %d", st.Score, st.Kills),
		"R: restart  Q: quit",
	}

	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	w += 4
	h := len(lines) + 2

	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)
	dst.DrawRectColored(box, ' ', core.ColorDefault)
	dst.DrawBoxColored(box, core.ColorYellow)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+1+i, l)
	}
}
