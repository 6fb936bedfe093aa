// Package arcade is a small axis-aligned physics world in the style of
// classic "arcade" engines: bodies with velocity, gravity, bounce and world
// bounds, static platforms, and collider/overlap pairs that call back into
// game code when two bodies touch.
//
// Broadphase queries go through a resolv.Space; exact contacts are plain
// AABB math.
package arcade

import (
	"github.com/solarlune/resolv"

	"github.com/vovakirdan/starfall/internal/core"
)

// Sides records contact on each edge of a body during the last step.
type Sides struct {
	Up, Down, Left, Right bool
}

// Any reports whether any side is set.
func (s Sides) Any() bool {
	return s.Up || s.Down || s.Left || s.Right
}

// Body is a rectangular physics body. Position is the top-left corner.
type Body struct {
	id  int
	tag string
	obj *resolv.Object

	X, Y float64
	W, H float64

	Vel    core.Vec
	Bounce core.Vec

	AllowGravity       bool
	CollideWorldBounds bool

	// Touching is set by contacts with other bodies, Blocked by world bounds.
	Touching Sides
	Blocked  Sides

	static  bool
	enabled bool
	visible bool
	world   *World
	contact []*Body // bodies touched while moving this step
}

// ID returns a number unique within the body's world, in creation order.
func (b *Body) ID() int {
	return b.id
}

// Tag returns the collision tag shared by the body's group.
func (b *Body) Tag() string {
	return b.tag
}

// Bodies lets a single body be used wherever a Collidable is expected.
func (b *Body) Bodies() []*Body {
	return []*Body{b}
}

// Static reports whether the body is immovable.
func (b *Body) Static() bool {
	return b.static
}

// Enabled reports whether the body takes part in simulation.
func (b *Body) Enabled() bool {
	return b.enabled
}

// Visible reports whether the body should be drawn.
func (b *Body) Visible() bool {
	return b.visible
}

// Center returns the centre point of the body.
func (b *Body) Center() core.Vec {
	return core.Vec{X: b.X + b.W/2, Y: b.Y + b.H/2}
}

// Right returns the x-coordinate of the right edge.
func (b *Body) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b *Body) Bottom() float64 {
	return b.Y + b.H
}

// SetVelocity sets both velocity components.
func (b *Body) SetVelocity(x, y float64) {
	b.Vel = core.Vec{X: x, Y: y}
}

// SetBounce sets the same restitution on both axes.
func (b *Body) SetBounce(v float64) {
	b.Bounce = core.Vec{X: v, Y: v}
}

// MoveTo centres the body on (cx, cy).
func (b *Body) MoveTo(cx, cy float64) {
	b.X = cx - b.W/2
	b.Y = cy - b.H/2
	b.sync()
}

// Disable removes the body from simulation and hides it.
func (b *Body) Disable() {
	if !b.enabled {
		b.visible = false
		return
	}
	b.enabled = false
	b.visible = false
	b.Vel = core.Vec{}
	b.Touching = Sides{}
	b.Blocked = Sides{}
	if b.world != nil && b.obj.Space != nil {
		b.world.space.Remove(b.obj)
	}
}

// Enable resets the body centred on (cx, cy) with zero velocity and
// returns it to simulation, visible.
func (b *Body) Enable(cx, cy float64) {
	b.Vel = core.Vec{}
	b.Touching = Sides{}
	b.Blocked = Sides{}
	b.visible = true
	if !b.enabled {
		b.enabled = true
		if b.world != nil {
			b.world.space.Add(b.obj)
		}
	}
	b.MoveTo(cx, cy)
}

// Overlaps reports whether two bodies' rectangles intersect.
// Edges that merely touch do not count.
func (b *Body) Overlaps(o *Body) bool {
	return b.X < o.Right() && o.X < b.Right() && b.Y < o.Bottom() && o.Y < b.Bottom()
}

// sync copies the body rectangle into its broadphase object.
func (b *Body) sync() {
	if b.obj == nil {
		return
	}
	b.obj.X, b.obj.Y = b.X, b.Y
	b.obj.W, b.obj.H = b.W, b.H
	if b.obj.Space != nil {
		b.obj.Update()
	}
}
