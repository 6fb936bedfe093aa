package arcade

import (
	"math"
	"testing"

	"github.com/vovakirdan/starfall/internal/core"
)

const dt = 1.0 / 60.0

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func floating(b *Body) *Body {
	b.AllowGravity = false
	return b
}

func TestGravityAcceleratesDynamicBodies(t *testing.T) {
	w := NewWorld(400, 300, core.Vec{Y: 300})
	b := w.Sprite(100, 50, 10, 10, "ball")
	platforms := w.StaticGroup("ground")
	p := platforms.Create(200, 280, 400, 20)

	w.Step(dt)

	if !near(b.Vel.Y, 300*dt) {
		t.Errorf("Vel.Y = %v, expected %v", b.Vel.Y, 300*dt)
	}
	if b.Y <= 45 {
		t.Errorf("body should have moved down, Y = %v", b.Y)
	}
	if p.Vel.Y != 0 || p.Y != 270 {
		t.Errorf("static body moved: Y=%v Vel=%v", p.Y, p.Vel)
	}
}

func TestLandingOnPlatform(t *testing.T) {
	w := NewWorld(400, 300, core.Vec{Y: 300})
	platforms := w.StaticGroup("ground")
	platforms.Create(100, 200, 200, 20) // top edge at y=190
	player := w.Sprite(100, 150, 20, 20, "player")

	hits := 0
	w.Collide(player, platforms, func(a, b *Body) {
		if a != player || b.Tag() != "ground" {
			t.Fatalf("callback got %q/%q", a.Tag(), b.Tag())
		}
		hits++
	})

	for i := 0; i < 120; i++ {
		w.Step(dt)
	}

	if !player.Touching.Down {
		t.Error("player resting on a platform should be touching down")
	}
	if !near(player.Bottom(), 190) {
		t.Errorf("player bottom = %v, expected 190", player.Bottom())
	}
	if hits == 0 {
		t.Error("collide callback never fired")
	}
}

func TestFallThroughWithoutCollider(t *testing.T) {
	w := NewWorld(400, 300, core.Vec{Y: 300})
	platforms := w.StaticGroup("ground")
	platforms.Create(100, 200, 200, 20)
	b := w.Sprite(100, 150, 20, 20, "ghost")
	b.CollideWorldBounds = true

	for i := 0; i < 180; i++ {
		w.Step(dt)
	}

	if b.Bottom() < 290 {
		t.Errorf("body without a collider should fall past the platform, bottom = %v", b.Bottom())
	}
	if b.Touching.Down {
		t.Error("no collider means no touching flags")
	}
}

func TestWorldBoundsBounce(t *testing.T) {
	w := NewWorld(400, 300, core.Vec{})
	b := floating(w.Sprite(50, 50, 10, 10, "bomb"))
	b.CollideWorldBounds = true
	b.SetBounce(1)
	b.SetVelocity(-600, 0)

	w.Step(0.1)

	if b.X != 0 {
		t.Errorf("X = %v, expected clamp to 0", b.X)
	}
	if b.Vel.X != 600 {
		t.Errorf("Vel.X = %v, expected full bounce to 600", b.Vel.X)
	}
	if !b.Blocked.Left {
		t.Error("expected Blocked.Left")
	}
}

func TestWorldBoundsWithoutBounceStops(t *testing.T) {
	w := NewWorld(400, 300, core.Vec{Y: 300})
	b := w.Sprite(200, 280, 10, 10, "crate")
	b.CollideWorldBounds = true

	for i := 0; i < 30; i++ {
		w.Step(dt)
	}

	if !near(b.Bottom(), 300) {
		t.Errorf("bottom = %v, expected 300", b.Bottom())
	}
	if !b.Blocked.Down {
		t.Error("expected Blocked.Down at the floor")
	}
}

func TestOverlapFiresOnceForDisabledBody(t *testing.T) {
	w := NewWorld(400, 300, core.Vec{})
	player := floating(w.Sprite(100, 100, 20, 20, "player"))
	stars := w.Group("star")
	s := floating(stars.Create(105, 100, 10, 10))
	floating(stars.Create(300, 100, 10, 10))

	calls := 0
	w.Overlap(player, stars, func(a, b *Body) {
		if a != player || b != s {
			t.Fatalf("unexpected pair %d/%d", a.ID(), b.ID())
		}
		calls++
		b.Disable()
	})

	w.Step(dt)
	w.Step(dt)

	if calls != 1 {
		t.Errorf("calls = %d, expected 1", calls)
	}
	if s.Enabled() || s.Visible() {
		t.Error("star should be disabled and hidden")
	}
	if stars.CountActive() != 1 {
		t.Errorf("CountActive = %d, expected 1", stars.CountActive())
	}
	if player.X != 90 || player.Y != 90 {
		t.Errorf("overlap must not move bodies, player at (%v,%v)", player.X, player.Y)
	}
}

func TestSolidDynamicPairSeparates(t *testing.T) {
	w := NewWorld(400, 300, core.Vec{})
	a := floating(w.Sprite(100, 100, 20, 20, "player"))
	b := floating(w.Sprite(110, 100, 20, 20, "bomb"))

	fired := false
	w.Collide(a, b, func(x, y *Body) { fired = true })
	w.Step(dt)

	if !fired {
		t.Error("collide callback did not fire")
	}
	if a.Overlaps(b) {
		t.Error("bodies still overlap after separation")
	}
	if a.X != 85 || b.X != 105 {
		t.Errorf("expected split along x, got a.X=%v b.X=%v", a.X, b.X)
	}
	if !a.Touching.Right || !b.Touching.Left {
		t.Error("touching flags not set")
	}
}

func TestPauseInCallbackSkipsRemainingColliders(t *testing.T) {
	w := NewWorld(400, 300, core.Vec{})
	player := floating(w.Sprite(100, 100, 20, 20, "player"))
	bombs := w.Group("bomb")
	floating(bombs.Create(100, 100, 10, 10))
	stars := w.Group("star")
	floating(stars.Create(100, 100, 10, 10))

	w.Collide(player, bombs, func(a, b *Body) { w.Pause() })
	collected := false
	w.Overlap(player, stars, func(a, b *Body) { collected = true })

	w.Step(dt)

	if !w.Paused() {
		t.Fatal("world should be paused")
	}
	if collected {
		t.Error("colliders after a pause should not run")
	}
}

func TestPausedWorldIsFrozen(t *testing.T) {
	w := NewWorld(400, 300, core.Vec{Y: 300})
	b := w.Sprite(100, 50, 10, 10, "ball")
	b.SetVelocity(100, 0)

	w.Pause()
	for i := 0; i < 10; i++ {
		w.Step(dt)
	}
	if b.X != 95 || b.Y != 45 || b.Vel.Y != 0 {
		t.Errorf("paused world moved the body: (%v,%v) vel %v", b.X, b.Y, b.Vel)
	}

	w.Resume()
	w.Step(dt)
	if b.X == 95 {
		t.Error("resumed world should move the body")
	}
}

func TestDisableEnable(t *testing.T) {
	w := NewWorld(400, 300, core.Vec{Y: 300})
	stars := w.Group("star")
	s := stars.Create(100, 50, 10, 10)
	s.SetVelocity(50, 50)

	s.Disable()
	w.Step(dt)
	if s.X != 95 || s.Y != 45 {
		t.Errorf("disabled body moved to (%v,%v)", s.X, s.Y)
	}

	s.Enable(200, 20)
	if !s.Enabled() || !s.Visible() {
		t.Fatal("Enable should make the body active and visible")
	}
	if s.Vel != (core.Vec{}) {
		t.Errorf("Enable should zero velocity, got %v", s.Vel)
	}
	c := s.Center()
	if c.X != 200 || c.Y != 20 {
		t.Errorf("center = %v, expected (200,20)", c)
	}

	w.Step(dt)
	if s.Y <= 15 {
		t.Error("re-enabled body should fall again")
	}
}
