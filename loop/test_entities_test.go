package loop_test

import "github.com/plus3/spritecore/loop"

type Actor struct {
	Name string
	HP   int
	X    float64
	VX   float64
}

func (a *Actor) String() string {
	return a.Name
}

// registry keeps test actors alive; groups only reference them weakly
var registry []*Actor

func newActors(names ...string) []*Actor {
	out := make([]*Actor, len(names))
	for i, name := range names {
		out[i] = &Actor{Name: name, HP: 10}
	}
	registry = append(registry, out...)
	return out
}

func names(g *loop.Groups[Actor], group string) []string {
	id, ok := g.Lookup(group)
	if !ok {
		return nil
	}
	out := make([]string, 0)
	for a := range g.Chain(id).All() {
		out = append(out, a.Name)
	}
	return out
}
