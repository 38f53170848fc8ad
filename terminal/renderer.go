package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/MarcinKacperek/space-ships/core"
	"github.com/MarcinKacperek/space-ships/engine"
)

// hudRows is reserved above the arena for the display texts
const hudRows = 1

var (
	stylePlayer        = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	stylePlayerMissile = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleEnemyMissile  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	stylePickup        = tcell.StyleDefault.Foreground(tcell.ColorLime).Bold(true)
	styleSegmentFull   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleSegmentEmpty  = tcell.StyleDefault.Foreground(tcell.ColorMaroon)
	styleHUD           = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleBanner        = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
)

// enemyPalette is indexed by sprite number so archetypes stay visually distinct
var enemyPalette = []tcell.Color{
	tcell.ColorFuchsia,
	tcell.ColorOrange,
	tcell.ColorPurple,
	tcell.ColorTeal,
	tcell.ColorOlive,
	tcell.ColorSilver,
}

// Renderer draws the arena scaled onto the terminal grid
// Arena Y grows upward, screen rows grow downward
type Renderer struct {
	screen tcell.Screen
	world  *engine.World
	banner string
}

// NewRenderer binds a screen to the world it draws
func NewRenderer(screen tcell.Screen, world *engine.World) *Renderer {
	return &Renderer{screen: screen, world: world}
}

// SetBanner shows a centered message over the arena, empty hides it
func (r *Renderer) SetBanner(text string) {
	r.banner = text
}

// Draw renders one frame and flushes it to the terminal
func (r *Renderer) Draw() {
	r.screen.Clear()

	cols, rows := r.screen.Size()
	if cols <= 0 || rows <= hudRows {
		r.screen.Show()
		return
	}

	w := r.world
	c := w.Components

	for _, e := range w.Query().With(c.HealthPickup, c.Transform, c.Rect).Execute() {
		r.fill(e, '+', stylePickup, cols, rows)
	}
	for _, e := range w.Query().With(c.Enemy, c.Transform, c.Rect).Execute() {
		style := tcell.StyleDefault.Foreground(enemyPalette[0])
		if s, ok := c.Sprite.Get(e); ok {
			style = tcell.StyleDefault.Foreground(enemyPalette[abs(s.Index)%len(enemyPalette)])
		}
		r.fill(e, '▼', style, cols, rows)
	}
	for _, e := range w.Query().With(c.Missile, c.Transform, c.Rect).Execute() {
		m, _ := c.Missile.Get(e)
		style := styleEnemyMissile
		if m.PlayerOwned {
			style = stylePlayerMissile
		}
		r.fill(e, '|', style, cols, rows)
	}
	for _, e := range w.Query().With(c.Player, c.Transform, c.Rect).Execute() {
		r.fill(e, '▲', stylePlayer, cols, rows)
	}
	for _, e := range w.Query().With(c.HealthSegment, c.Transform, c.Rect).Execute() {
		seg, _ := c.HealthSegment.Get(e)
		style := styleSegmentEmpty
		if seg.Filled {
			style = styleSegmentFull
		}
		r.fill(e, '▀', style, cols, rows)
	}

	r.drawHUD(cols)

	if r.banner != "" {
		r.drawString((cols-len(r.banner))/2, hudRows+(rows-hudRows)/2, r.banner, styleBanner)
	}

	r.screen.Show()
}

// CellFor maps an arena point to a screen cell
func (r *Renderer) CellFor(x, y float64, cols, rows int) (int, int) {
	cfg := r.world.Resource.Config
	sx := float64(cols) / cfg.ArenaWidth
	sy := float64(rows-hudRows) / cfg.ArenaHeight
	cx := int(math.Floor(x * sx))
	cy := hudRows + int(math.Floor((cfg.ArenaHeight-y)*sy))
	return cx, cy
}

// fill paints the entity's rect, at least one cell, clipped to the arena area
func (r *Renderer) fill(e core.Entity, glyph rune, style tcell.Style, cols, rows int) {
	c := r.world.Components
	tr, _ := c.Transform.Get(e)
	rect, _ := c.Rect.Get(e)

	x0, y0 := r.CellFor(tr.X-rect.Width/2, tr.Y+rect.Height/2, cols, rows)
	x1, y1 := r.CellFor(tr.X+rect.Width/2, tr.Y-rect.Height/2, cols, rows)
	x1 = max(x1-1, x0)
	y1 = max(y1-1, y0)

	for cy := y0; cy <= y1; cy++ {
		if cy < hudRows || cy >= rows {
			continue
		}
		for cx := x0; cx <= x1; cx++ {
			if cx < 0 || cx >= cols {
				continue
			}
			r.screen.SetContent(cx, cy, glyph, nil, style)
		}
	}
}

func (r *Renderer) drawHUD(cols int) {
	w := r.world
	ui := w.Resource.UI
	if ui == nil {
		return
	}
	if t, ok := w.Components.Text.Get(ui.ScoreText); ok {
		r.drawString(0, 0, t.Value, styleHUD)
	}
	if t, ok := w.Components.Text.Get(ui.LifeText); ok {
		r.drawString(cols-len(t.Value), 0, t.Value, styleHUD)
	}
}

func (r *Renderer) drawString(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
