package starfall

import (
	"github.com/vovakirdan/starfall/internal/arcade"
	"github.com/vovakirdan/starfall/internal/core"
)

// OnStarCollected removes a collected star, scores it, and starts the next
// wave once the last star of the row is gone.
func (s *session) OnStarCollected(star *arcade.Body, playerPos core.Vec) {
	star.Disable()

	s.score += s.cfg.Stars.Points
	s.setScoreText()

	if s.stars.CountActive() > 0 {
		return
	}

	for i, st := range s.stars.Bodies() {
		st.Enable(s.starX[i], 0)
	}
	s.spawnBomb(playerPos)
	s.waves++
}

// spawnBomb drops one bomb on the half of the field away from the player.
func (s *session) spawnBomb(playerPos core.Vec) *arcade.Body {
	bc := s.cfg.Bombs

	var x int
	if playerPos.X < float64(bc.SplitX) {
		x = s.rng.IntRange(bc.SplitX, bc.MaxX)
	} else {
		x = s.rng.IntRange(0, bc.SplitX)
	}

	bomb := s.bombs.Create(float64(x), bc.SpawnY, bc.Width, bc.Height)
	bomb.SetBounce(1)
	bomb.CollideWorldBounds = true
	bomb.SetVelocity(float64(s.rng.Between(bc.SpeedMin, bc.SpeedMax)), bc.FallSpeed)
	return bomb
}
