package arcade

// Collidable is anything a collider can be registered against:
// a single body or a group.
type Collidable interface {
	Bodies() []*Body
	Tag() string
}

// Group is a tagged set of bodies created through the same world.
type Group struct {
	tag      string
	static   bool
	world    *World
	children []*Body
}

// Tag returns the tag every member carries.
func (g *Group) Tag() string {
	return g.tag
}

// Static reports whether members are immovable.
func (g *Group) Static() bool {
	return g.static
}

// Create adds a new member centred on (cx, cy).
// Members of dynamic groups fall under gravity by default.
func (g *Group) Create(cx, cy, w, h float64) *Body {
	b := g.world.newBody(cx, cy, w, h, g.tag, g.static)
	g.children = append(g.children, b)
	return b
}

// Bodies returns the members in creation order, enabled or not.
func (g *Group) Bodies() []*Body {
	return g.children
}

// Len returns the number of members.
func (g *Group) Len() int {
	return len(g.children)
}

// CountActive returns how many members are enabled.
func (g *Group) CountActive() int {
	n := 0
	for _, b := range g.children {
		if b.enabled {
			n++
		}
	}
	return n
}

// Each calls fn for every member in creation order.
func (g *Group) Each(fn func(b *Body)) {
	for _, b := range g.children {
		fn(b)
	}
}
