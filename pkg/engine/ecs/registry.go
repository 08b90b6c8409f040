package ecs

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"gloomhold/pkg/logger"
)

// ErrDeadEntity is returned when an operation targets a handle whose entity
// has already been destroyed.
var ErrDeadEntity = errors.New("entity is not alive")

// Registry issues entity handles, tracks which are alive and owns the
// component stores registered with it.
type Registry struct {
	generations []uint32
	alive       []bool
	free        []uint32
	live        int

	stores   []AnyStore
	commands *CommandBuffer
}

// NewRegistry creates an empty registry. Slot 0 is reserved so NilEntity is
// never alive.
func NewRegistry() *Registry {
	r := &Registry{
		generations: []uint32{0},
		alive:       []bool{false},
	}
	r.commands = &CommandBuffer{registry: r}
	return r
}

// Register adds a store whose components are stripped when an entity is destroyed.
func (r *Registry) Register(stores ...AnyStore) {
	r.stores = append(r.stores, stores...)
}

// Create allocates a new live entity immediately. Systems running inside a
// pipeline pass should use Commands().Spawn instead.
func (r *Registry) Create() Entity {
	var index uint32
	if n := len(r.free); n > 0 {
		index = r.free[n-1]
		r.free = r.free[:n-1]
	} else {
		index = uint32(len(r.generations))
		r.generations = append(r.generations, 0)
		r.alive = append(r.alive, false)
	}
	r.alive[index] = true
	r.live++
	return newEntity(index, r.generations[index])
}

// Alive reports whether e refers to a live entity.
func (r *Registry) Alive(e Entity) bool {
	idx := e.Index()
	if e == NilEntity || int(idx) >= len(r.generations) {
		return false
	}
	return r.alive[idx] && r.generations[idx] == e.Generation()
}

// Destroy removes e and all of its components immediately. The slot is
// recycled with a bumped generation so stale handles stay dead.
func (r *Registry) Destroy(e Entity) error {
	if !r.Alive(e) {
		return fmt.Errorf("destroy %s: %w", e, ErrDeadEntity)
	}
	for _, s := range r.stores {
		s.Remove(e)
	}
	idx := e.Index()
	r.alive[idx] = false
	r.generations[idx]++
	r.free = append(r.free, idx)
	r.live--
	return nil
}

// Len returns the number of live entities.
func (r *Registry) Len() int {
	return r.live
}

// HasAll reports whether e is alive and present in every given store.
func (r *Registry) HasAll(e Entity, stores ...AnyStore) bool {
	if !r.Alive(e) {
		return false
	}
	for _, s := range stores {
		if !s.Has(e) {
			return false
		}
	}
	return true
}

// Commands returns the deferred command buffer applied by Maintain.
func (r *Registry) Commands() *CommandBuffer {
	return r.commands
}

// Maintain applies every buffered command: spawns first, then component
// inserts, component removals and finally entity destruction.
func (r *Registry) Maintain() {
	stats := r.commands.apply()
	if stats.total() == 0 {
		return
	}
	logger.Component("registry").WithFields(logrus.Fields{
		"spawned":   stats.spawned,
		"inserted":  stats.inserted,
		"removed":   stats.removed,
		"destroyed": stats.destroyed,
		"skipped":   stats.skipped,
		"live":      r.live,
	}).Debug("Registry maintained")
}
