// Package chain groups entity references in forward-only linked chains that can
// be rebuilt every frame without heap churn.
//
// A Link references an entity without owning it: the entity is held through a
// weak pointer, so chain teardown never affects the entity's lifetime, and an
// entity collected by its registry simply reads back as nil.
package chain

import (
	"fmt"
	"weak"

	"github.com/plus3/spritecore/ident"
)

// Link is one node of a chain. It owns the rest of the chain through next.
//
// Links hash by identity but compare by configuration: Equal is true for two
// different links that reference the same entity and point at the same next node.
type Link[T any] struct {
	id     ident.Token
	entity weak.Pointer[T]
	next   *Link[T]
}

// NewLink creates an empty link with no entity and no successor
func NewLink[T any]() *Link[T] {
	return &Link[T]{id: ident.Next()}
}

// NewLinkTo creates a link referencing entity in front of next. next may be nil
// to terminate the chain.
func NewLinkTo[T any](entity *T, next *Link[T]) *Link[T] {
	return &Link[T]{
		id:     ident.Next(),
		entity: weak.Make(entity),
		next:   next,
	}
}

// Id returns the link's identity token
func (l *Link[T]) Id() ident.Token {
	return l.id
}

// Entity returns the referenced entity, or nil if none is set or it was collected.
func (l *Link[T]) Entity() *T {
	return l.entity.Value()
}

func (l *Link[T]) SetEntity(entity *T) {
	l.entity = weak.Make(entity)
}

// Next returns the following link, nil at the end of the chain
func (l *Link[T]) Next() *Link[T] {
	return l.next
}

func (l *Link[T]) SetNext(next *Link[T]) {
	l.next = next
}

// String returns the entity's text, or "" when there is no entity.
func (l *Link[T]) String() string {
	entity := l.entity.Value()
	if entity == nil {
		return ""
	}
	return entityString(entity)
}

// Hash returns the identity hash
func (l *Link[T]) Hash() uint64 {
	return l.id.Hash()
}

// Equal reports whether other references the same entity and the same next link.
// It does not compare the rest of the chain.
func (l *Link[T]) Equal(other *Link[T]) bool {
	if l == nil || other == nil {
		return false
	}
	return l.next == other.next && l.entity == other.entity
}

// reset prepares a recycled link for reuse under a new identity
func (l *Link[T]) reset(entity *T, next *Link[T]) {
	l.id = ident.Next()
	l.entity = weak.Make(entity)
	l.next = next
}

// detach clears identity and entity but keeps next
func (l *Link[T]) detach() {
	l.id = 0
	l.entity = weak.Pointer[T]{}
}

func entityString[T any](entity *T) string {
	if v, ok := any(entity).(fmt.Stringer); ok {
		return v.String()
	}
	return fmt.Sprint(*entity)
}
