package starfall

import (
	"fmt"
	"time"

	"github.com/vovakirdan/starfall/internal/anim"
	"github.com/vovakirdan/starfall/internal/arcade"
	"github.com/vovakirdan/starfall/internal/config"
	"github.com/vovakirdan/starfall/internal/core"
	"github.com/vovakirdan/starfall/internal/scheduler"
)

// Collision tags.
const (
	TagPlatform = "platform"
	TagPlayer   = "player"
	TagStar     = "star"
	TagBomb     = "bomb"
)

// Animation keys.
const (
	AnimLeft  = "left"
	AnimTurn  = "turn"
	AnimRight = "right"
)

// Text is a line of text placed in world coordinates (top-left anchored).
type Text struct {
	X, Y    float64
	Content string
	Color   core.Color
	Large   bool
}

// session is everything that lives for one round. A restart throws the
// whole session away and builds a new one.
type session struct {
	cfg config.StarfallConfig
	rng *core.RNG

	world *arcade.World
	sched *scheduler.Scheduler
	anims *anim.Library

	platforms *arcade.Group
	player    *arcade.Body
	playerAni *anim.Animator
	stars     *arcade.Group
	bombs     *arcade.Group

	// starX holds the x-coordinate each star returns to on a wave clear.
	starX []float64

	score       int
	waves       int
	gameOver    bool
	playerTint  core.Color
	scoreText   Text
	overlays    []Text
	restartTask *scheduler.Task

	// onRestart is called by the restart timer.
	onRestart func()
}

func newSession(cfg config.StarfallConfig, rng *core.RNG, onRestart func()) *session {
	s := &session{
		cfg:        cfg,
		rng:        rng,
		world:      arcade.NewWorld(cfg.World.Width, cfg.World.Height, core.Vec{Y: cfg.World.Gravity}),
		sched:      scheduler.New(),
		anims:      newAnimations(),
		playerTint: core.ColorDefault,
		onRestart:  onRestart,
	}
	s.scoreText = Text{X: 16, Y: 16, Color: core.ColorWhite}
	s.setScoreText()

	s.buildPlatforms()
	s.buildPlayer()
	s.buildStars()
	s.bombs = s.world.Group(TagBomb)

	s.world.Collide(s.player, s.platforms, nil)
	s.world.Collide(s.bombs, s.platforms, nil)
	s.world.Collide(s.stars, s.platforms, nil)
	bindHandlers(s.world, s.player, s.stars, s.bombs, s, s)

	return s
}

func newAnimations() *anim.Library {
	lib := anim.NewLibrary()
	clips := []anim.Clip{
		{Key: AnimLeft, Frames: anim.FrameRange(0, 3), FrameRate: 10, Repeat: anim.RepeatForever},
		{Key: AnimTurn, Frames: []int{4}, FrameRate: 20},
		{Key: AnimRight, Frames: anim.FrameRange(5, 8), FrameRate: 10, Repeat: anim.RepeatForever},
	}
	for _, c := range clips {
		if err := lib.Add(c); err != nil {
			panic(err) // clips above are static
		}
	}
	return lib
}

func (s *session) buildPlatforms() {
	s.platforms = s.world.StaticGroup(TagPlatform)
	w, h := s.cfg.World.Width, s.cfg.World.Height
	for _, p := range s.cfg.Platforms {
		s.platforms.Create(
			w*p.X,
			h*p.Y+p.OffsetY,
			config.PlatformBaseWidth*p.Scale,
			config.PlatformBaseHeight*p.Scale,
		)
	}
}

func (s *session) buildPlayer() {
	pc := s.cfg.Player
	s.player = s.world.Sprite(pc.X, pc.Y, pc.Width, pc.Height, TagPlayer)
	s.player.SetBounce(pc.Bounce)
	s.player.CollideWorldBounds = true
	s.playerAni = anim.NewAnimator(s.anims)
	s.playerAni.Play(AnimTurn, false)
}

func (s *session) buildStars() {
	sc := s.cfg.Stars
	s.stars = s.world.Group(TagStar)
	s.starX = make([]float64, 0, sc.Count)
	for i := 0; i < sc.Count; i++ {
		x := sc.StartX + float64(i)*sc.StepX
		star := s.stars.Create(x, 0, sc.Width, sc.Height)
		star.Bounce.Y = s.rng.FloatBetween(sc.BounceMin, sc.BounceMax)
		s.starX = append(s.starX, x)
	}
}

func (s *session) setScoreText() {
	s.scoreText.Content = fmt.Sprintf("Score: %d", s.score)
}

func (s *session) restartDelay() time.Duration {
	return time.Duration(s.cfg.GameOver.RestartDelayMS) * time.Millisecond
}
