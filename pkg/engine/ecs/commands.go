package ecs

// CommandBuffer records structural changes requested during a pipeline pass.
// Nothing recorded here is visible to readers until Registry.Maintain runs.
type CommandBuffer struct {
	registry *Registry

	spawns   []func(Entity)
	inserts  []pendingOp
	removes  []pendingOp
	destroys []Entity
}

type pendingOp struct {
	entity Entity
	apply  func()
}

type applyStats struct {
	spawned, inserted, removed, destroyed, skipped int
}

func (s applyStats) total() int {
	return s.spawned + s.inserted + s.removed + s.destroyed + s.skipped
}

// Spawn queues creation of an entity. build runs at commit time with the new
// handle and is expected to insert the entity's components directly.
func (c *CommandBuffer) Spawn(build func(Entity)) {
	c.spawns = append(c.spawns, build)
}

// Insert queues attaching val to e in store s.
func Insert[T any](c *CommandBuffer, s *Store[T], e Entity, val T) {
	c.inserts = append(c.inserts, pendingOp{
		entity: e,
		apply:  func() { s.Insert(e, val) },
	})
}

// Remove queues detaching e's component from s.
func (c *CommandBuffer) Remove(s AnyStore, e Entity) {
	c.removes = append(c.removes, pendingOp{
		entity: e,
		apply:  func() { s.Remove(e) },
	})
}

// Destroy queues removal of e and all its components. Queuing the same
// entity more than once is harmless.
func (c *CommandBuffer) Destroy(e Entity) {
	c.destroys = append(c.destroys, e)
}

// Pending returns the number of queued commands.
func (c *CommandBuffer) Pending() int {
	return len(c.spawns) + len(c.inserts) + len(c.removes) + len(c.destroys)
}

func (c *CommandBuffer) apply() applyStats {
	var stats applyStats
	r := c.registry

	spawns := c.spawns
	c.spawns = nil
	for _, build := range spawns {
		build(r.Create())
		stats.spawned++
	}

	inserts := c.inserts
	c.inserts = nil
	for _, op := range inserts {
		if !r.Alive(op.entity) {
			stats.skipped++
			continue
		}
		op.apply()
		stats.inserted++
	}

	removes := c.removes
	c.removes = nil
	for _, op := range removes {
		if !r.Alive(op.entity) {
			stats.skipped++
			continue
		}
		op.apply()
		stats.removed++
	}

	destroys := c.destroys
	c.destroys = nil
	for _, e := range destroys {
		if r.Destroy(e) != nil {
			stats.skipped++
			continue
		}
		stats.destroyed++
	}
	return stats
}
