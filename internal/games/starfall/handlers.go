package starfall

import "github.com/vovakirdan/starfall/internal/arcade"

// CollectHandler receives player/star overlaps.
type CollectHandler interface {
	Collect(player, star *arcade.Body)
}

// HitHandler receives player/bomb collisions.
type HitHandler interface {
	Hit(player, bomb *arcade.Body)
}

// bindHandlers registers the player/star overlap and the solid player/bomb
// collider. The world calls back synchronously during its step.
func bindHandlers(w *arcade.World, player *arcade.Body, stars, bombs *arcade.Group, c CollectHandler, h HitHandler) {
	w.Overlap(player, stars, func(p, star *arcade.Body) {
		c.Collect(p, star)
	})
	w.Collide(player, bombs, func(p, bomb *arcade.Body) {
		h.Hit(p, bomb)
	})
}

// Collect implements CollectHandler.
func (s *session) Collect(player, star *arcade.Body) {
	s.OnStarCollected(star, player.Center())
}

// Hit implements HitHandler.
func (s *session) Hit(player, bomb *arcade.Body) {
	s.triggerGameOver()
}
