package arcade

import (
	"math"
	"sort"

	"github.com/solarlune/resolv"

	"github.com/vovakirdan/starfall/internal/core"
)

// cellSize is the broadphase grid cell edge in world units.
const cellSize = 32

// contactEpsilon absorbs float drift when deciding whether a body was
// outside another one before it moved.
const contactEpsilon = 1e-6

// PairFunc is called with the two bodies of a collider pair, in the order
// the collider was registered (first from a, second from b).
type PairFunc func(a, b *Body)

// Collider links two collidables. Solid colliders keep bodies apart;
// overlap colliders only report.
type Collider struct {
	a, b     Collidable
	solid    bool
	callback PairFunc
	active   bool
}

// Destroy stops the collider from being checked.
func (c *Collider) Destroy() {
	c.active = false
}

// World owns every body in a scene and steps them.
type World struct {
	width, height float64
	gravity       core.Vec

	space     *resolv.Space
	bodies    []*Body
	colliders []*Collider
	nextID    int
	paused    bool
}

// NewWorld creates a world of the given size in world units.
func NewWorld(width, height float64, gravity core.Vec) *World {
	cols := int(math.Ceil(width))
	rows := int(math.Ceil(height))
	return &World{
		width:   width,
		height:  height,
		gravity: gravity,
		space:   resolv.NewSpace(core.Max(cols, cellSize), core.Max(rows, cellSize), cellSize, cellSize),
	}
}

// Width returns the world width.
func (w *World) Width() float64 {
	return w.width
}

// Height returns the world height.
func (w *World) Height() float64 {
	return w.height
}

// Gravity returns the world gravity in units per second squared.
func (w *World) Gravity() core.Vec {
	return w.gravity
}

func (w *World) newBody(cx, cy, bw, bh float64, tag string, static bool) *Body {
	w.nextID++
	b := &Body{
		id:           w.nextID,
		tag:          tag,
		W:            bw,
		H:            bh,
		AllowGravity: !static,
		static:       static,
		enabled:      true,
		visible:      true,
		world:        w,
	}
	b.X = cx - bw/2
	b.Y = cy - bh/2
	b.obj = resolv.NewObject(b.X, b.Y, bw, bh, tag)
	b.obj.Data = b
	w.space.Add(b.obj)
	w.bodies = append(w.bodies, b)
	return b
}

// Sprite creates a single dynamic body centred on (cx, cy).
func (w *World) Sprite(cx, cy, bw, bh float64, tag string) *Body {
	return w.newBody(cx, cy, bw, bh, tag, false)
}

// Group creates an empty group of dynamic bodies.
func (w *World) Group(tag string) *Group {
	return &Group{tag: tag, world: w}
}

// StaticGroup creates an empty group of immovable bodies.
func (w *World) StaticGroup(tag string) *Group {
	return &Group{tag: tag, world: w, static: true}
}

// Collide registers a solid pair. The callback may be nil.
func (w *World) Collide(a, b Collidable, cb PairFunc) *Collider {
	c := &Collider{a: a, b: b, solid: true, callback: cb, active: true}
	w.colliders = append(w.colliders, c)
	return c
}

// Overlap registers a non-blocking pair that only reports contact.
func (w *World) Overlap(a, b Collidable, cb PairFunc) *Collider {
	c := &Collider{a: a, b: b, callback: cb, active: true}
	w.colliders = append(w.colliders, c)
	return c
}

// Pause stops all simulation until Resume.
func (w *World) Pause() {
	w.paused = true
}

// Resume restarts simulation after Pause.
func (w *World) Resume() {
	w.paused = false
}

// Paused reports whether the world is paused.
func (w *World) Paused() bool {
	return w.paused
}

// Step advances the simulation by dt seconds: integrate every dynamic
// body against static solids and world bounds, then resolve dynamic pairs
// and fire callbacks. Callbacks run synchronously, in collider
// registration order; if one pauses the world the rest of the step is
// skipped.
func (w *World) Step(dt float64) {
	if w.paused || dt <= 0 {
		return
	}

	for _, b := range w.bodies {
		if !b.enabled || b.static {
			continue
		}
		b.Touching = Sides{}
		b.Blocked = Sides{}
		b.contact = b.contact[:0]

		if b.AllowGravity {
			b.Vel = b.Vel.Add(w.gravity.Scale(dt))
		}

		solids := w.staticSolidsFor(b)
		w.moveX(b, b.Vel.X*dt, solids)
		w.moveY(b, b.Vel.Y*dt, solids)
		if b.CollideWorldBounds {
			w.applyBounds(b)
		}
		b.sync()
	}

	for _, c := range w.colliders {
		if !c.active {
			continue
		}
		w.runCollider(c)
		if w.paused {
			return
		}
	}
}

// staticSolidsFor returns the tags of static collidables that b must not
// pass through.
func (w *World) staticSolidsFor(b *Body) []string {
	var tags []string
	for _, c := range w.colliders {
		if !c.active || !c.solid {
			continue
		}
		switch {
		case contains(c.a, b) && allStatic(c.b):
			tags = append(tags, c.b.Tag())
		case contains(c.b, b) && allStatic(c.a):
			tags = append(tags, c.a.Tag())
		}
	}
	return tags
}

// candidates returns enabled bodies with one of the tags whose broadphase
// cells b would touch after moving by (dx, dy), in creation order.
func (w *World) candidates(b *Body, dx, dy float64, tags []string) []*Body {
	if len(tags) == 0 || b.obj.Space == nil {
		return nil
	}
	seen := make(map[*Body]bool)
	var out []*Body
	for _, tag := range tags {
		col := b.obj.Check(dx, dy, tag)
		if col == nil {
			continue
		}
		for _, o := range col.Objects {
			other, ok := o.Data.(*Body)
			if !ok || other == b || !other.enabled || seen[other] {
				continue
			}
			seen[other] = true
			out = append(out, other)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

func (w *World) moveX(b *Body, dx float64, solids []string) {
	if dx == 0 {
		return
	}
	var hit *Body
	for _, s := range w.candidates(b, dx, 0, solids) {
		if !s.static || b.Y >= s.Bottom() || s.Y >= b.Bottom() {
			continue
		}
		if dx > 0 && b.Right() <= s.X+contactEpsilon && b.Right()+dx > s.X {
			dx = s.X - b.Right()
			hit = s
		} else if dx < 0 && b.X >= s.Right()-contactEpsilon && b.X+dx < s.Right() {
			dx = s.Right() - b.X
			hit = s
		}
	}
	b.X += dx
	if hit == nil {
		return
	}
	if b.Vel.X > 0 {
		b.Touching.Right = true
		hit.Touching.Left = true
	} else {
		b.Touching.Left = true
		hit.Touching.Right = true
	}
	b.Vel.X = -b.Vel.X * b.Bounce.X
	b.contact = append(b.contact, hit)
}

func (w *World) moveY(b *Body, dy float64, solids []string) {
	if dy == 0 {
		return
	}
	var hit *Body
	for _, s := range w.candidates(b, 0, dy, solids) {
		if !s.static || b.X >= s.Right() || s.X >= b.Right() {
			continue
		}
		if dy > 0 && b.Bottom() <= s.Y+contactEpsilon && b.Bottom()+dy > s.Y {
			dy = s.Y - b.Bottom()
			hit = s
		} else if dy < 0 && b.Y >= s.Bottom()-contactEpsilon && b.Y+dy < s.Bottom() {
			dy = s.Bottom() - b.Y
			hit = s
		}
	}
	b.Y += dy
	if hit == nil {
		return
	}
	if b.Vel.Y > 0 {
		b.Touching.Down = true
		hit.Touching.Up = true
	} else {
		b.Touching.Up = true
		hit.Touching.Down = true
	}
	b.Vel.Y = -b.Vel.Y * b.Bounce.Y
	b.contact = append(b.contact, hit)
}

func (w *World) applyBounds(b *Body) {
	if b.X < 0 {
		b.X = 0
		b.Vel.X = math.Abs(b.Vel.X) * b.Bounce.X
		b.Blocked.Left = true
	} else if b.Right() > w.width {
		b.X = w.width - b.W
		b.Vel.X = -math.Abs(b.Vel.X) * b.Bounce.X
		b.Blocked.Right = true
	}
	if b.Y < 0 {
		b.Y = 0
		b.Vel.Y = math.Abs(b.Vel.Y) * b.Bounce.Y
		b.Blocked.Up = true
	} else if b.Bottom() > w.height {
		b.Y = w.height - b.H
		b.Vel.Y = -math.Abs(b.Vel.Y) * b.Bounce.Y
		b.Blocked.Down = true
	}
}

// runCollider fires callbacks for one collider. Static solid contacts were
// found while moving; everything else is a fresh overlap query.
func (w *World) runCollider(c *Collider) {
	for _, a := range c.a.Bodies() {
		if !a.enabled {
			continue
		}
		for _, other := range w.pairsFor(c, a) {
			if !a.enabled || !other.enabled {
				continue
			}
			if c.solid && !a.static && !other.static {
				separate(a, other)
			}
			if c.callback != nil {
				c.callback(a, other)
			}
			if w.paused {
				return
			}
		}
	}
}

func (w *World) pairsFor(c *Collider, a *Body) []*Body {
	if c.solid && allStatic(c.b) {
		var out []*Body
		for _, s := range a.contact {
			if contains(c.b, s) {
				out = append(out, s)
			}
		}
		return out
	}
	if c.solid && a.static {
		// dynamic members of b recorded their contacts against a
		var out []*Body
		for _, o := range c.b.Bodies() {
			for _, s := range o.contact {
				if s == a {
					out = append(out, o)
				}
			}
		}
		return out
	}

	var out []*Body
	for _, o := range w.candidates(a, 0, 0, []string{c.b.Tag()}) {
		if contains(c.b, o) && a.Overlaps(o) {
			out = append(out, o)
		}
	}
	return out
}

// separate pushes two overlapping dynamic bodies apart along the axis of
// least penetration, half each.
func separate(a, b *Body) {
	overX := math.Min(a.Right(), b.Right()) - math.Max(a.X, b.X)
	overY := math.Min(a.Bottom(), b.Bottom()) - math.Max(a.Y, b.Y)
	if overX <= 0 || overY <= 0 {
		return
	}

	if overX < overY {
		half := overX / 2
		if a.Center().X < b.Center().X {
			a.X -= half
			b.X += half
			a.Touching.Right, b.Touching.Left = true, true
		} else {
			a.X += half
			b.X -= half
			a.Touching.Left, b.Touching.Right = true, true
		}
	} else {
		half := overY / 2
		if a.Center().Y < b.Center().Y {
			a.Y -= half
			b.Y += half
			a.Touching.Down, b.Touching.Up = true, true
		} else {
			a.Y += half
			b.Y -= half
			a.Touching.Up, b.Touching.Down = true, true
		}
	}
	a.sync()
	b.sync()
}

func contains(c Collidable, b *Body) bool {
	if c.Tag() != b.tag {
		return false
	}
	for _, m := range c.Bodies() {
		if m == b {
			return true
		}
	}
	return false
}

func allStatic(c Collidable) bool {
	bodies := c.Bodies()
	if g, ok := c.(*Group); ok {
		return g.static
	}
	for _, b := range bodies {
		if !b.static {
			return false
		}
	}
	return len(bodies) > 0
}
