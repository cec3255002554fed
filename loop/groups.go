// Package loop runs game systems once per frame over named groups of entities.
//
// Groups are chains of entity references (see package chain). Systems read them
// directly and request structural changes through the frame's Commands, which
// are applied after every system has run.
package loop

import (
	"iter"

	"github.com/kamstrup/intmap"
	"github.com/plus3/spritecore/chain"
)

// GroupId identifies a group within one Groups registry. Zero is never assigned.
type GroupId uint32

// Groups is the registry of named entity chains
type Groups[T any] struct {
	chains *intmap.Map[GroupId, *chain.Chain[T]]
	ids    map[string]GroupId
	names  []string
}

// NewGroups creates an empty registry
func NewGroups[T any]() *Groups[T] {
	return &Groups[T]{
		chains: intmap.New[GroupId, *chain.Chain[T]](16),
		ids:    make(map[string]GroupId),
	}
}

// Define returns the id of the named group, creating an empty one if needed.
func (g *Groups[T]) Define(name string) GroupId {
	if id, ok := g.ids[name]; ok {
		return id
	}
	g.names = append(g.names, name)
	id := GroupId(len(g.names))
	g.ids[name] = id
	g.chains.Put(id, chain.New[T]())
	return id
}

// Lookup returns the id of an existing group
func (g *Groups[T]) Lookup(name string) (GroupId, bool) {
	id, ok := g.ids[name]
	return id, ok
}

// Chain returns the group's chain, or nil for an unknown id.
func (g *Groups[T]) Chain(id GroupId) *chain.Chain[T] {
	c, _ := g.chains.Get(id)
	return c
}

// Name returns the group's name, or "" for an unknown id.
func (g *Groups[T]) Name(id GroupId) string {
	if id == 0 || int(id) > len(g.names) {
		return ""
	}
	return g.names[id-1]
}

// Len returns the number of defined groups
func (g *Groups[T]) Len() int {
	return len(g.names)
}

// All iterates groups in definition order
func (g *Groups[T]) All() iter.Seq2[GroupId, *chain.Chain[T]] {
	return func(yield func(GroupId, *chain.Chain[T]) bool) {
		for i := range g.names {
			id := GroupId(i + 1)
			if !yield(id, g.Chain(id)) {
				return
			}
		}
	}
}

// GroupStats describes one group
type GroupStats struct {
	Id   GroupId
	Name string
	Size int
}

// GroupsStats summarizes a registry
type GroupsStats struct {
	GroupCount   int
	TotalMembers int
	Groups       []GroupStats
}

// Compact drops links to collected entities from every group and returns how
// many it dropped.
func (g *Groups[T]) Compact() int {
	dropped := 0
	for _, c := range g.All() {
		dropped += c.Compact()
	}
	return dropped
}

// CollectStats compacts every group and reports its size
func (g *Groups[T]) CollectStats() GroupsStats {
	g.Compact()

	stats := GroupsStats{
		GroupCount: len(g.names),
		Groups:     make([]GroupStats, 0, len(g.names)),
	}
	for id, c := range g.All() {
		stats.Groups = append(stats.Groups, GroupStats{
			Id:   id,
			Name: g.Name(id),
			Size: c.Len(),
		})
		stats.TotalMembers += c.Len()
	}
	return stats
}

// Group is a system field bound to one named group. The Scheduler binds it on
// registration using the field's `group:"name"` tag, or the lower-cased field
// name when there is no tag.
type Group[T any] struct {
	id     GroupId
	groups *Groups[T]
}

type groupBinder[T any] interface {
	bind(groups *Groups[T], id GroupId)
}

func (g *Group[T]) bind(groups *Groups[T], id GroupId) {
	g.groups = groups
	g.id = id
}

// Init binds the field by hand, for systems run outside a Scheduler.
func (g *Group[T]) Init(groups *Groups[T], name string) {
	g.bind(groups, groups.Define(name))
}

// Id returns the bound group id, zero when unbound
func (g *Group[T]) Id() GroupId {
	return g.id
}

// Chain returns the bound chain, nil when unbound
func (g *Group[T]) Chain() *chain.Chain[T] {
	if g.groups == nil {
		return nil
	}
	return g.groups.Chain(g.id)
}

// All iterates the group's live entities
func (g *Group[T]) All() iter.Seq[*T] {
	c := g.Chain()
	if c == nil {
		return func(yield func(*T) bool) {}
	}
	return c.All()
}

// Len returns the group's size
func (g *Group[T]) Len() int {
	c := g.Chain()
	if c == nil {
		return 0
	}
	return c.Len()
}
