package starfall

import (
	"fmt"

	"github.com/vovakirdan/starfall/internal/core"
)

// triggerGameOver moves the round from playing to game over. It runs at
// most once per round: a second bomb touching in the same step is ignored.
func (s *session) triggerGameOver() {
	if s.gameOver {
		return
	}

	s.world.Pause()
	s.playerTint = core.ColorRed
	s.playerAni.Play(AnimTurn, false)
	s.gameOver = true

	cx, cy := s.cfg.World.Width/2, s.cfg.World.Height/2
	s.overlays = append(s.overlays,
		Text{X: cx - 100, Y: cy, Content: "Game Over!", Color: core.ColorRed, Large: true},
		Text{X: cx - 100, Y: cy + 50, Content: fmt.Sprintf("Score: %d", s.score), Color: core.ColorWhite},
	)

	s.restartTask = s.sched.After(s.restartDelay(), func() {
		if s.onRestart != nil {
			s.onRestart()
		}
	})
}
