package chain

import (
	"iter"
	"strings"
)

// Chain owns a forward-only sequence of links, most recently prepended first.
//
// Removed links go to a free list and are reused by Prepend, so a group that
// churns at a steady size stops allocating. A link read through Head or Links is
// only valid while it stays in the chain: once removed it is zeroed and may come
// back under a new identity for another entity.
//
// Entities are never owned: Clear and Remove drop references only, and the
// caller's entity registry is what keeps referenced entities alive.
type Chain[T any] struct {
	head *Link[T]
	free *Link[T]
	size int

	// links removed while an iterator is running; recycled when the last one ends
	iterating int
	pending   []*Link[T]
}

// New creates an empty chain
func New[T any]() *Chain[T] {
	return &Chain[T]{}
}

// Head returns the first link, nil when empty
func (c *Chain[T]) Head() *Link[T] {
	return c.head
}

// Len returns the number of links, including links whose entity has been
// collected. Compact drops those.
func (c *Chain[T]) Len() int {
	return c.size
}

func (c *Chain[T]) Empty() bool {
	return c.head == nil
}

// Prepend puts entity at the front of the chain.
func (c *Chain[T]) Prepend(entity *T) {
	var link *Link[T]
	if c.free != nil {
		link = c.free
		c.free = link.next
		link.reset(entity, c.head)
	} else {
		link = NewLinkTo(entity, c.head)
	}
	c.head = link
	c.size++
}

// Remove unlinks the first link referencing entity. It returns false when the
// walk reaches the end of the chain without a match.
func (c *Chain[T]) Remove(entity *T) bool {
	var pred *Link[T]
	for link := c.head; link != nil; link = link.next {
		if link.Entity() == entity {
			c.unlink(pred, link)
			return true
		}
		pred = link
	}
	return false
}

// RemoveFunc unlinks every link whose entity satisfies match and returns how
// many were removed. Links whose entity was collected are passed as nil.
func (c *Chain[T]) RemoveFunc(match func(entity *T) bool) int {
	removed := 0
	var pred *Link[T]
	link := c.head
	for link != nil {
		next := link.next
		if match(link.Entity()) {
			c.unlink(pred, link)
			removed++
		} else {
			pred = link
		}
		link = next
	}
	return removed
}

// Compact removes links whose entity was collected and returns how many it removed.
func (c *Chain[T]) Compact() int {
	return c.RemoveFunc(func(entity *T) bool { return entity == nil })
}

// Contains reports whether any link references entity
func (c *Chain[T]) Contains(entity *T) bool {
	for link := c.head; link != nil; link = link.next {
		if link.Entity() == entity {
			return true
		}
	}
	return false
}

// Clear unlinks every link. The links are kept for reuse.
func (c *Chain[T]) Clear() {
	link := c.head
	for link != nil {
		next := link.next
		c.release(link)
		link = next
	}
	c.head = nil
	c.size = 0
}

// All iterates live entities from the head. Links with no entity, or whose entity
// was collected, are skipped. Any entity may be removed during iteration and is
// not visited afterwards; entities prepended during iteration are not visited.
func (c *Chain[T]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		c.iterating++
		defer c.endIteration()

		link := c.head
		for link != nil {
			next := link.next
			if entity := link.Entity(); entity != nil {
				if !yield(entity) {
					return
				}
			}
			link = next
		}
	}
}

// Links iterates the links themselves from the head, with the same guarantees
// as All. Links removed during iteration are not yielded.
func (c *Chain[T]) Links() iter.Seq[*Link[T]] {
	return func(yield func(*Link[T]) bool) {
		c.iterating++
		defer c.endIteration()

		link := c.head
		for link != nil {
			next := link.next
			if !link.id.IsZero() && !yield(link) {
				return
			}
			link = next
		}
	}
}

func (c *Chain[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for link := c.head; link != nil; link = link.next {
		if link != c.head {
			b.WriteByte(' ')
		}
		b.WriteString(link.String())
	}
	b.WriteByte(']')
	return b.String()
}

// unlink splices link out of the chain: pred.next = link.next
func (c *Chain[T]) unlink(pred, link *Link[T]) {
	if pred == nil {
		c.head = link.next
	} else {
		pred.next = link.next
	}
	c.size--
	c.release(link)
}

// release recycles link. While iterating, the link keeps its next pointer so a
// running iterator can still step past it, and is parked until iteration ends.
func (c *Chain[T]) release(link *Link[T]) {
	if c.iterating > 0 {
		link.detach()
		c.pending = append(c.pending, link)
		return
	}
	c.recycle(link)
}

func (c *Chain[T]) recycle(link *Link[T]) {
	var zero Link[T]
	*link = zero
	link.next = c.free
	c.free = link
}

func (c *Chain[T]) endIteration() {
	c.iterating--
	if c.iterating > 0 {
		return
	}
	for i, link := range c.pending {
		c.recycle(link)
		c.pending[i] = nil
	}
	c.pending = c.pending[:0]
}
