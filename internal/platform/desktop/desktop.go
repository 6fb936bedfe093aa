//go:build desktop

// Package desktop runs Starfall in a window with Ebitengine. It draws the
// same world the terminal frontend draws, at full resolution.
package desktop

import (
	"errors"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/games/starfall"
	"github.com/vovakirdan/starfall/internal/logging"
	"github.com/vovakirdan/starfall/internal/storage"
)

var (
	skyColor      = color.RGBA{0x1b, 0x26, 0x3b, 0xff}
	platformColor = color.RGBA{0x3c, 0x9d, 0x4c, 0xff}
	starColor     = color.RGBA{0xff, 0xd7, 0x00, 0xff}
	bombColor     = color.RGBA{0xb0, 0x3a, 0xc8, 0xff}
	playerColor   = color.RGBA{0x5e, 0xd6, 0xf0, 0xff}
	faceColor     = color.RGBA{0x10, 0x10, 0x10, 0xff}
)

// tints maps the game's palette onto window colours.
var tints = map[core.Color]color.RGBA{
	core.ColorRed:    {0xff, 0x00, 0x00, 0xff},
	core.ColorYellow: {0xff, 0xd7, 0x00, 0xff},
	core.ColorWhite:  {0xff, 0xff, 0xff, 0xff},
	core.ColorGray:   {0x8a, 0x8a, 0x8a, 0xff},
}

// Options configure the window frontend.
type Options struct {
	Store      *storage.Store
	Difficulty string
	Logger     *log.Logger

	// Scale sizes the window relative to the world. Zero means 1.
	Scale float64
}

// keys reads the keyboard. It is a variable so tests can drive input.
type keys struct {
	pressed     func(ebiten.Key) bool
	justPressed func(ebiten.Key) bool
}

var liveKeys = keys{
	pressed:     ebiten.IsKeyPressed,
	justPressed: inpututil.IsKeyJustPressed,
}

// frame builds one tick of input. Movement keys count while held; the
// rest fire on the tick they go down.
func (k keys) frame() core.InputFrame {
	in := core.NewInputFrame()
	held := []struct {
		action core.Action
		keys   []ebiten.Key
	}{
		{core.ActionLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
		{core.ActionRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
		{core.ActionUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeySpace}},
	}
	for _, h := range held {
		for _, key := range h.keys {
			if k.pressed(key) {
				in.Set(h.action)
				break
			}
		}
	}
	if k.justPressed(ebiten.KeyP) {
		in.Set(core.ActionPause)
	}
	if k.justPressed(ebiten.KeyR) {
		in.Set(core.ActionRestart)
	}
	if k.justPressed(ebiten.KeyQ) || k.justPressed(ebiten.KeyEscape) {
		in.Set(core.ActionQuit)
	}
	return in
}

// App is the ebiten.Game driving a Starfall game.
type App struct {
	game   *starfall.Game
	keys   keys
	opts   Options
	logger *log.Logger
}

// NewApp wraps an already reset game.
func NewApp(game *starfall.Game, opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	return &App{game: game, keys: liveKeys, opts: opts, logger: logger}
}

// Update advances the game by one tick.
func (a *App) Update() error {
	in := a.keys.frame()
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	result := a.game.Step(in)
	if result.RoundOver {
		a.saveRound(result.State)
	}
	return nil
}

func (a *App) saveRound(st core.GameState) {
	a.logger.Info("round over", "round", st.Round, "score", st.Score, "waves", st.Waves)
	if st.Score <= 0 || a.opts.Store == nil {
		return
	}
	if _, err := a.opts.Store.SaveScore(a.game.ID(), a.opts.Difficulty, st.Score, st.Waves); err != nil {
		a.logger.Warn("could not save score", "error", err)
	}
}

// Draw renders the world.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)

	for _, sp := range a.game.Sprites() {
		x, y, w, h := float32(sp.X), float32(sp.Y), float32(sp.W), float32(sp.H)
		switch sp.Kind {
		case starfall.SpritePlatform:
			vector.DrawFilledRect(screen, x, y, w, h, platformColor, false)
		case starfall.SpriteStar:
			vector.DrawFilledRect(screen, x, y, w, h, starColor, false)
		case starfall.SpriteBomb:
			vector.DrawFilledCircle(screen, x+w/2, y+h/2, w/2, bombColor, true)
		case starfall.SpritePlayer:
			c := playerColor
			if t, ok := tints[sp.Tint]; ok {
				c = t
			}
			vector.DrawFilledRect(screen, x, y, w, h, c, false)
			drawFace(screen, x, y, w, sp.Frame)
		}
	}

	for _, t := range a.game.Texts() {
		ebitenutil.DebugPrintAt(screen, t.Content, int(t.X), int(t.Y))
	}
}

// drawFace marks which way the player looks: frames 0-3 run left, 4 faces
// the camera, 5-8 run right.
func drawFace(screen *ebiten.Image, x, y, w float32, frame int) {
	eye := w / 2
	switch {
	case frame < 4:
		eye = w / 4
	case frame > 4:
		eye = 3 * w / 4
	}
	vector.DrawFilledRect(screen, x+eye-3, y+10, 6, 6, faceColor, false)
}

// Layout keeps the logical screen at world size; ebiten scales the window.
func (a *App) Layout(_, _ int) (int, int) {
	w, h := a.game.WorldSize()
	return int(w), int(h)
}

// Run resets the game and opens the window. It returns when the window
// closes or the player quits.
func Run(game *starfall.Game, runtime core.RuntimeConfig, opts Options) error {
	game.Reset(runtime)

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	w, h := game.WorldSize()
	ebiten.SetWindowSize(int(w*scale), int(h*scale))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if runtime.TickRate > 0 {
		ebiten.SetTPS(runtime.TickRate)
	}

	err := ebiten.RunGame(NewApp(game, opts))
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
