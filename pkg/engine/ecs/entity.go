package ecs

import "fmt"

// Entity is a generational handle: the low 32 bits hold the slot index and
// the high 32 bits the generation of that slot when the handle was issued.
// A handle whose generation no longer matches its slot refers to a destroyed
// entity and is never confused with the slot's new occupant.
type Entity uint64

// NilEntity is never issued by a Registry.
const NilEntity Entity = 0

func newEntity(index, generation uint32) Entity {
	return Entity(uint64(generation)<<32 | uint64(index))
}

// Index returns the slot index of the handle.
func (e Entity) Index() uint32 {
	return uint32(e)
}

// Generation returns the slot generation the handle was issued with.
func (e Entity) Generation() uint32 {
	return uint32(e >> 32)
}

func (e Entity) String() string {
	if e == NilEntity {
		return "entity(nil)"
	}
	return fmt.Sprintf("entity(%d:%d)", e.Index(), e.Generation())
}
