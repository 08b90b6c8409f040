package ecs

import (
	"errors"
	"testing"
)

type health struct{ HP int }
type tag struct{}

func newTestRegistry(t *testing.T) (*Registry, *Store[health], *Store[tag]) {
	t.Helper()
	r := NewRegistry()
	hp := NewStore[health]("health")
	tags := NewStore[tag]("tag")
	r.Register(hp, tags)
	return r, hp, tags
}

func TestEntityPacking(t *testing.T) {
	e := newEntity(7, 3)
	if e.Index() != 7 {
		t.Errorf("Index() = %d, want 7", e.Index())
	}
	if e.Generation() != 3 {
		t.Errorf("Generation() = %d, want 3", e.Generation())
	}
	if NilEntity.String() != "entity(nil)" {
		t.Errorf("NilEntity.String() = %q", NilEntity.String())
	}
}

func TestCreateNeverIssuesNil(t *testing.T) {
	r, _, _ := newTestRegistry(t)
	for i := 0; i < 10; i++ {
		if e := r.Create(); e == NilEntity {
			t.Fatalf("Create() returned NilEntity on call %d", i)
		}
	}
	if r.Alive(NilEntity) {
		t.Error("Alive(NilEntity) = true, want false")
	}
}

func TestDestroyStripsComponentsAndInvalidatesHandle(t *testing.T) {
	r, hp, tags := newTestRegistry(t)
	e := r.Create()
	hp.Insert(e, health{HP: 5})
	tags.Insert(e, tag{})

	if err := r.Destroy(e); err != nil {
		t.Fatalf("Destroy() error = %v", err)
	}
	if r.Alive(e) {
		t.Error("Alive() = true after Destroy")
	}
	if hp.Has(e) || tags.Has(e) {
		t.Error("components survived Destroy")
	}
	if err := r.Destroy(e); !errors.Is(err, ErrDeadEntity) {
		t.Errorf("second Destroy() error = %v, want ErrDeadEntity", err)
	}
}

func TestRecycledSlotGetsNewGeneration(t *testing.T) {
	r, hp, _ := newTestRegistry(t)
	old := r.Create()
	if err := r.Destroy(old); err != nil {
		t.Fatal(err)
	}
	fresh := r.Create()
	if fresh.Index() != old.Index() {
		t.Fatalf("slot not recycled: got %d, want %d", fresh.Index(), old.Index())
	}
	if fresh == old {
		t.Fatal("recycled handle equals stale handle")
	}
	hp.Insert(fresh, health{HP: 1})
	if r.Alive(old) {
		t.Error("stale handle reported alive")
	}
	if hp.Has(old) {
		t.Error("stale handle sees new occupant's component")
	}
}

func TestStoreGetIsWritable(t *testing.T) {
	r, hp, _ := newTestRegistry(t)
	e := r.Create()
	hp.Insert(e, health{HP: 10})
	v, _ := hp.Get(e)
	v.HP -= 4
	got, _ := hp.Get(e)
	if got.HP != 6 {
		t.Errorf("HP = %d, want 6", got.HP)
	}
}

func TestStoreKeepsInsertionOrder(t *testing.T) {
	r, hp, _ := newTestRegistry(t)
	a, b, c := r.Create(), r.Create(), r.Create()
	hp.Insert(a, health{})
	hp.Insert(b, health{})
	hp.Insert(c, health{})
	hp.Remove(b)

	got := hp.Entities()
	want := []Entity{a, c}
	if len(got) != len(want) {
		t.Fatalf("Entities() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Entities()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestHasAll(t *testing.T) {
	r, hp, tags := newTestRegistry(t)
	e := r.Create()
	hp.Insert(e, health{})
	if r.HasAll(e, hp, tags) {
		t.Error("HasAll() = true with missing tag")
	}
	tags.Insert(e, tag{})
	if !r.HasAll(e, hp, tags) {
		t.Error("HasAll() = false with both components")
	}
}
