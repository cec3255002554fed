package loop

// Commands provides a buffer for deferred group changes that are executed at the end of a frame.
// This prevents chains from being restructured while systems are walking them.
type Commands[T any] struct {
	clears    []GroupId
	despawns  []*T
	leaves    []membershipCommand[T]
	joins     []membershipCommand[T]
	defers    []deferCommand
	despawned map[*T]struct{}
}

func newCommands[T any]() *Commands[T] {
	return &Commands[T]{
		despawned: make(map[*T]struct{}),
	}
}

type deferCommand struct {
	fn func()
}

type membershipCommand[T any] struct {
	group  GroupId
	entity *T
}

// Defer queues a function execution operation.
func (c *Commands[T]) Defer(fn func()) {
	c.defers = append(c.defers, deferCommand{fn: fn})
}

// Join queues adding entity to the front of a group.
func (c *Commands[T]) Join(group GroupId, entity *T) {
	c.joins = append(c.joins, membershipCommand[T]{group: group, entity: entity})
}

// Leave queues removing entity from a group.
func (c *Commands[T]) Leave(group GroupId, entity *T) {
	c.leaves = append(c.leaves, membershipCommand[T]{group: group, entity: entity})
}

// Despawn queues removing entity from every group. Joins queued for the same
// entity in this frame are dropped.
func (c *Commands[T]) Despawn(entity *T) {
	c.despawns = append(c.despawns, entity)
}

// Clear queues emptying a group.
func (c *Commands[T]) Clear(group GroupId) {
	c.clears = append(c.clears, group)
}

// Pending returns the number of queued operations
func (c *Commands[T]) Pending() int {
	return len(c.clears) + len(c.despawns) + len(c.leaves) + len(c.joins) + len(c.defers)
}

// Flush applies all commands to groups in the order clears, despawns, leaves,
// joins, defers, and resets the buffer state. Commands naming an unknown group
// are skipped.
func (c *Commands[T]) Flush(groups *Groups[T]) {
	if c.despawned == nil {
		c.despawned = make(map[*T]struct{})
	}

	for _, id := range c.clears {
		if ch := groups.Chain(id); ch != nil {
			ch.Clear()
		}
	}

	for _, entity := range c.despawns {
		c.despawned[entity] = struct{}{}
		for _, ch := range groups.All() {
			for ch.Remove(entity) {
			}
		}
	}

	for _, cmd := range c.leaves {
		if ch := groups.Chain(cmd.group); ch != nil {
			ch.Remove(cmd.entity)
		}
	}

	for _, cmd := range c.joins {
		if _, gone := c.despawned[cmd.entity]; gone {
			continue
		}
		if ch := groups.Chain(cmd.group); ch != nil {
			ch.Prepend(cmd.entity)
		}
	}

	for _, df := range c.defers {
		df.fn()
	}

	clear(c.despawned)
	clear(c.despawns)
	clear(c.leaves)
	clear(c.joins)
	clear(c.defers)
	c.clears = c.clears[:0]
	c.despawns = c.despawns[:0]
	c.leaves = c.leaves[:0]
	c.joins = c.joins[:0]
	c.defers = c.defers[:0]
}
