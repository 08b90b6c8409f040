package ecs

// AnyStore provides type-erased operations so the Registry can strip every
// component of an entity without knowing the concrete component types.
type AnyStore interface {
	Remove(e Entity)
	Has(e Entity) bool
	Len() int
}

// Store holds one component type keyed by entity. Iteration order is the
// order in which entities first received the component, which keeps every
// system pass deterministic for a given seed.
type Store[T any] struct {
	name       string
	components map[Entity]*T
	entities   []Entity
}

// NewStore creates an empty store. The name only appears in log output.
func NewStore[T any](name string) *Store[T] {
	return &Store[T]{
		name:       name,
		components: make(map[Entity]*T),
		entities:   make([]Entity, 0, 64),
	}
}

// Name returns the store's diagnostic name.
func (s *Store[T]) Name() string {
	return s.name
}

// Insert attaches val to e, replacing any previous value.
func (s *Store[T]) Insert(e Entity, val T) {
	if existing, ok := s.components[e]; ok {
		*existing = val
		return
	}
	v := val
	s.components[e] = &v
	s.entities = append(s.entities, e)
}

// Get returns a pointer to e's component. Writes through the pointer update
// the stored value.
func (s *Store[T]) Get(e Entity) (*T, bool) {
	v, ok := s.components[e]
	return v, ok
}

// Has reports whether e carries this component.
func (s *Store[T]) Has(e Entity) bool {
	_, ok := s.components[e]
	return ok
}

// Remove detaches the component from e. Removing an absent component is a no-op.
func (s *Store[T]) Remove(e Entity) {
	if _, ok := s.components[e]; !ok {
		return
	}
	delete(s.components, e)
	for i, entity := range s.entities {
		if entity == e {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			break
		}
	}
}

// Entities returns a snapshot of every entity carrying the component.
// Systems may insert or remove components while ranging over the snapshot.
func (s *Store[T]) Entities() []Entity {
	out := make([]Entity, len(s.entities))
	copy(out, s.entities)
	return out
}

// Len returns the number of entities carrying the component.
func (s *Store[T]) Len() int {
	return len(s.entities)
}

// Clear removes the component from every entity.
func (s *Store[T]) Clear() {
	s.components = make(map[Entity]*T)
	s.entities = s.entities[:0]
}
