package starfall

import "github.com/vovakirdan/starfall/internal/core"

// updatePlayer applies held input to the player. Input is ignored once the
// round is over.
func (s *session) updatePlayer(in core.InputFrame) {
	if s.gameOver {
		return
	}

	p := s.player
	p.Vel.X = 0

	switch {
	case in.Has(core.ActionLeft):
		p.Vel.X = -s.cfg.Player.RunSpeed
		s.playerAni.Play(AnimLeft, true)
	case in.Has(core.ActionRight):
		p.Vel.X = s.cfg.Player.RunSpeed
		s.playerAni.Play(AnimRight, true)
	default:
		s.playerAni.Play(AnimTurn, false)
	}

	// jump only from a surface; no double jump
	if in.Has(core.ActionUp) && p.Touching.Down {
		p.Vel.Y = -s.cfg.Player.JumpSpeed
	}
}
