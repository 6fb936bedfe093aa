package starfall

import (
	"fmt"
	"math"

	"github.com/vovakirdan/starfall/internal/arcade"
	"github.com/vovakirdan/starfall/internal/core"
)

// Visual characters for rendering
const (
	PlatformChar = '█'
	StarChar     = '*'
	BombChar     = '●'
	PlayerIdle   = '@'
	PlayerLeft   = '<'
	PlayerRight  = '>'
)

// Minimum terminal size for a readable playfield.
const (
	minScreenW = 40
	minScreenH = 12
)

// SpriteKind identifies what a Sprite draws.
type SpriteKind int

const (
	SpritePlatform SpriteKind = iota
	SpriteStar
	SpriteBomb
	SpritePlayer
)

// Sprite is one visible body in world coordinates, for frontends that draw
// the world themselves.
type Sprite struct {
	Kind       SpriteKind
	X, Y, W, H float64 // top-left and size
	Frame      int     // spritesheet frame, players only
	Tint       core.Color
}

// WorldSize returns the world dimensions in world units.
func (g *Game) WorldSize() (float64, float64) {
	return g.cfg.World.Width, g.cfg.World.Height
}

// Sprites returns every visible body, back to front.
func (g *Game) Sprites() []Sprite {
	s := g.sess
	if s == nil {
		return nil
	}
	out := make([]Sprite, 0, s.platforms.Len()+s.stars.Len()+s.bombs.Len()+1)
	add := func(kind SpriteKind) func(b *arcade.Body) {
		return func(b *arcade.Body) {
			if !b.Visible() {
				return
			}
			out = append(out, Sprite{Kind: kind, X: b.X, Y: b.Y, W: b.W, H: b.H})
		}
	}
	s.platforms.Each(add(SpritePlatform))
	s.stars.Each(add(SpriteStar))
	s.bombs.Each(add(SpriteBomb))

	p := s.player
	out = append(out, Sprite{
		Kind:  SpritePlayer,
		X:     p.X,
		Y:     p.Y,
		W:     p.W,
		H:     p.H,
		Frame: s.playerAni.Frame(),
		Tint:  s.playerTint,
	})
	return out
}

// Texts returns the score line followed by any overlays.
func (g *Game) Texts() []Text {
	s := g.sess
	if s == nil {
		return nil
	}
	out := append([]Text{s.scoreText}, s.overlays...)
	if g.paused {
		out = append(out, Text{
			X:       s.cfg.World.Width/2 - 60,
			Y:       s.cfg.World.Height / 3,
			Content: "Paused",
			Color:   core.ColorBrightYellow,
			Large:   true,
		})
	}
	return out
}

// RestartIn returns how long until the scene restarts, or 0 while playing.
func (g *Game) RestartIn() float64 {
	s := g.sess
	if s == nil || s.restartTask == nil || s.restartTask.Done() {
		return 0
	}
	return (s.restartTask.Due() - s.sched.Now()).Seconds()
}

// Render draws the world scaled onto the terminal grid below a one-line HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.sess == nil {
		return
	}

	g.renderHUD(dst)

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	v := g.viewport(dst)
	for _, sp := range g.Sprites() {
		r := v.rect(sp.X, sp.Y, sp.W, sp.H)
		if !r.Intersects(v.bounds()) {
			continue
		}
		switch sp.Kind {
		case SpritePlatform:
			dst.DrawRectColor(r, PlatformChar, core.ColorGreen)
		case SpriteStar:
			dst.DrawRectColor(r, StarChar, core.ColorBrightYellow)
		case SpriteBomb:
			dst.DrawRectColor(r, BombChar, core.ColorMagenta)
		case SpritePlayer:
			c := core.ColorBrightCyan
			if sp.Tint != core.ColorDefault {
				c = sp.Tint
			}
			dst.DrawRectColor(r, playerGlyph(sp.Frame), c)
		}
	}

	// the score is already in the HUD
	for _, t := range g.Texts()[1:] {
		x, y := v.point(t.X, t.Y)
		if t.Large {
			dst.DrawTextBold(x, y, t.Content, t.Color)
		} else {
			dst.DrawTextColor(x, y, t.Content, t.Color)
		}
	}

	switch {
	case g.sess.gameOver:
		hint := fmt.Sprintf("Restarting in %.0fs - press R to restart now", math.Ceil(g.RestartIn()))
		dst.DrawTextCentered(dst.Height()-1, hint)
	case g.paused:
		dst.DrawTextCentered(dst.Height()-1, "Press P to continue")
	}
}

// renderHUD draws the top status line.
func (g *Game) renderHUD(dst *core.Screen) {
	st := g.State()
	hud := fmt.Sprintf(" Starfall | %s  Wave: %d  Round: %d", g.sess.scoreText.Content, st.Waves, st.Round)
	dst.DrawTextColor(0, 0, hud, core.ColorWhite)
}

// renderOverlay draws a two-line centred message.
func (g *Game) renderOverlay(dst *core.Screen, title, subtitle string) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y-1, title)
	dst.DrawTextCentered(y+1, subtitle)
}

func playerGlyph(frame int) rune {
	switch {
	case frame < 4:
		return PlayerLeft
	case frame > 4:
		return PlayerRight
	default:
		return PlayerIdle
	}
}

// viewport maps world units onto the cells below the HUD row.
type viewport struct {
	sx, sy float64
	top    int
	w, h   int
}

func (g *Game) viewport(dst *core.Screen) viewport {
	ww, wh := g.WorldSize()
	rows := dst.Height() - 1
	return viewport{
		sx:  float64(dst.Width()) / ww,
		sy:  float64(rows) / wh,
		top: 1,
		w:   dst.Width(),
		h:   rows,
	}
}

// rect converts a world rectangle to cells. Anything visible covers at
// least one cell.
func (v viewport) rect(x, y, w, h float64) core.Rect {
	x0 := int(math.Floor(x * v.sx))
	y0 := int(math.Floor(y * v.sy))
	x1 := int(math.Ceil((x + w) * v.sx))
	y1 := int(math.Ceil((y + h) * v.sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	// keep bodies resting on the floor inside the grid
	y0 = core.Clamp(y0, 0, v.h-1)
	y1 = core.Clamp(y1, y0+1, v.h)
	return core.NewRect(x0, y0+v.top, x1-x0, y1-y0)
}

// bounds is the playfield in cells.
func (v viewport) bounds() core.Rect {
	return core.NewRect(0, v.top, v.w, v.h)
}

func (v viewport) point(x, y float64) (int, int) {
	cx := core.Clamp(int(math.Floor(x*v.sx)), 0, v.w-1)
	cy := core.Clamp(int(math.Floor(y*v.sy)), 0, v.h-1)
	return cx, cy + v.top
}
