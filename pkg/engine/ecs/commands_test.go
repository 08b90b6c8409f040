package ecs

import "testing"

func TestDeferredDestroyAppliesAtMaintain(t *testing.T) {
	r, hp, _ := newTestRegistry(t)
	e := r.Create()
	hp.Insert(e, health{HP: 0})

	r.Commands().Destroy(e)
	if !r.Alive(e) || !hp.Has(e) {
		t.Fatal("entity removed before Maintain")
	}
	r.Maintain()
	if r.Alive(e) {
		t.Error("entity alive after Maintain")
	}
	if r.Commands().Pending() != 0 {
		t.Errorf("Pending() = %d after Maintain, want 0", r.Commands().Pending())
	}
}

func TestDuplicateDestroyIsHarmless(t *testing.T) {
	r, _, _ := newTestRegistry(t)
	e := r.Create()
	r.Commands().Destroy(e)
	r.Commands().Destroy(e)
	r.Maintain()
	if r.Len() != 0 {
		t.Errorf("Len() = %d, want 0", r.Len())
	}
}

func TestDeferredInsertAndRemove(t *testing.T) {
	r, hp, tags := newTestRegistry(t)
	e := r.Create()
	hp.Insert(e, health{HP: 3})

	Insert(r.Commands(), tags, e, tag{})
	r.Commands().Remove(hp, e)
	if tags.Has(e) || !hp.Has(e) {
		t.Fatal("deferred commands visible before Maintain")
	}
	r.Maintain()
	if !tags.Has(e) {
		t.Error("deferred insert not applied")
	}
	if hp.Has(e) {
		t.Error("deferred remove not applied")
	}
}

func TestSpawnRunsBuilderWithLiveEntity(t *testing.T) {
	r, hp, _ := newTestRegistry(t)
	var spawned Entity
	r.Commands().Spawn(func(e Entity) {
		spawned = e
		hp.Insert(e, health{HP: 9})
	})
	if r.Len() != 0 {
		t.Fatalf("Len() = %d before Maintain, want 0", r.Len())
	}
	r.Maintain()
	if !r.Alive(spawned) {
		t.Fatal("spawned entity not alive")
	}
	if v, ok := hp.Get(spawned); !ok || v.HP != 9 {
		t.Errorf("spawned health = %v, %v", v, ok)
	}
}

func TestInsertOnDestroyedEntityIsSkipped(t *testing.T) {
	r, _, tags := newTestRegistry(t)
	e := r.Create()
	if err := r.Destroy(e); err != nil {
		t.Fatal(err)
	}
	Insert(r.Commands(), tags, e, tag{})
	r.Maintain()
	if tags.Len() != 0 {
		t.Errorf("tags.Len() = %d, want 0", tags.Len())
	}
}

func TestDestroyRunsAfterInsertsInSamePass(t *testing.T) {
	r, _, tags := newTestRegistry(t)
	e := r.Create()
	r.Commands().Destroy(e)
	Insert(r.Commands(), tags, e, tag{})
	r.Maintain()
	if r.Alive(e) || tags.Has(e) {
		t.Error("entity or component survived a pass that destroyed it")
	}
}
