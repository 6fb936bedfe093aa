package starfall

import "github.com/vovakirdan/starfall/internal/arcade"

// Snapshot contains the observable game state for replay checks and
// frontends. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick     uint64
	Round    int
	Score    int
	Waves    int
	GameOver bool
	Paused   bool

	PlayerX, PlayerY   float64 // centre
	PlayerVX, PlayerVY float64
	PlayerAnim         string
	PlayerFrame        int

	StarsActive int
	// Each body is 4 floats: centre X, centre Y, VX, VY
	StarData []float64
	BombData []float64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.sess
	p := s.player
	c := p.Center()
	return Snapshot{
		Tick:        g.tick,
		Round:       g.round,
		Score:       s.score,
		Waves:       s.waves,
		GameOver:    s.gameOver,
		Paused:      g.paused,
		PlayerX:     c.X,
		PlayerY:     c.Y,
		PlayerVX:    p.Vel.X,
		PlayerVY:    p.Vel.Y,
		PlayerAnim:  s.playerAni.Key(),
		PlayerFrame: s.playerAni.Frame(),
		StarsActive: s.stars.CountActive(),
		StarData:    flatten(s.stars),
		BombData:    flatten(s.bombs),
	}
}

func flatten(g *arcade.Group) []float64 {
	data := make([]float64, 0, g.Len()*4)
	g.Each(func(b *arcade.Body) {
		c := b.Center()
		data = append(data, c.X, c.Y, b.Vel.X, b.Vel.Y)
	})
	return data
}
