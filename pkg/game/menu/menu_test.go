package menu

import (
	"math/rand"
	"testing"

	"gloomhold/pkg/engine/ecs"
	engineinput "gloomhold/pkg/engine/input"
	"gloomhold/pkg/engine/world"
	"gloomhold/pkg/game/components"
	"gloomhold/pkg/game/config"
	"gloomhold/pkg/game/spawner"
	"gloomhold/pkg/game/state"
	"gloomhold/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Silence()
	m.Run()
}

// newCarryingGame returns a game whose player carries n potions.
func newCarryingGame(t *testing.T, n int) (*state.Game, []ecs.Entity) {
	t.Helper()
	g := state.NewGame(config.Default(), rand.New(rand.NewSource(1)))
	g.Map = world.NewMap(10, 10)
	spawner.Player(g, 2, 2)
	var items []ecs.Entity
	for i := 0; i < n; i++ {
		e := spawner.HealthPotion(g, 2, 2)
		g.Stores.Positions.Remove(e)
		g.Stores.InBackpack.Insert(e, components.InBackpack{Owner: g.Player})
		items = append(items, e)
	}
	return g, items
}

func TestBackpackMenuListsCarriedItems(t *testing.T) {
	g, items := newCarryingGame(t, 2)
	loose := spawner.HealthPotion(g, 3, 3)

	m := NewBackpackMenu(g, "Inventory")
	if len(m.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(m.Items))
	}
	for i, it := range m.Items {
		if it.Entity != items[i] {
			t.Errorf("Items[%d] = %v, want %v", i, it.Entity, items[i])
		}
		if it.Entity == loose {
			t.Error("menu lists an item lying on the floor")
		}
	}
	labels := m.Labels()
	if labels[0] != "a) Health Potion" || labels[1] != "b) Health Potion" {
		t.Errorf("Labels() = %v", labels)
	}
}

func TestHandle(t *testing.T) {
	g, items := newCarryingGame(t, 3)
	tests := []struct {
		name       string
		intent     engineinput.Intent
		wantResult Result
		wantEntity ecs.Entity
	}{
		{"cancel", engineinput.Intent{Action: engineinput.ActionCancel}, Cancel, ecs.NilEntity},
		{"slot b", engineinput.Intent{Action: engineinput.ActionSelect, Slot: 1}, Selected, items[1]},
		{"slot out of range", engineinput.Intent{Action: engineinput.ActionSelect, Slot: 7}, NoResponse, ecs.NilEntity},
		{"confirm first", engineinput.Intent{Action: engineinput.ActionConfirm}, Selected, items[0]},
		{"no input", engineinput.None, NoResponse, ecs.NilEntity},
		{"movement ignored", engineinput.Intent{Action: engineinput.ActionMoveNorth}, NoResponse, ecs.NilEntity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewBackpackMenu(g, "Inventory")
			res, e := m.Handle(tt.intent)
			if res != tt.wantResult || e != tt.wantEntity {
				t.Errorf("Handle() = %v, %v, want %v, %v", res, e, tt.wantResult, tt.wantEntity)
			}
		})
	}
}

func TestMenuNavigationWraps(t *testing.T) {
	g, items := newCarryingGame(t, 3)
	m := NewBackpackMenu(g, "Drop")

	m.Handle(engineinput.Intent{Action: engineinput.ActionMenuUp})
	if m.Selected != 2 {
		t.Fatalf("Selected after up from top = %d, want 2", m.Selected)
	}
	m.Handle(engineinput.Intent{Action: engineinput.ActionMenuDown})
	if m.Selected != 0 {
		t.Fatalf("Selected after down from bottom = %d, want 0", m.Selected)
	}
	m.Handle(engineinput.Intent{Action: engineinput.ActionMenuDown})
	res, e := m.Handle(engineinput.Intent{Action: engineinput.ActionConfirm})
	if res != Selected || e != items[1] {
		t.Errorf("confirm = %v, %v, want Selected, %v", res, e, items[1])
	}
}

func TestEmptyMenuOnlyCancels(t *testing.T) {
	g, _ := newCarryingGame(t, 0)
	m := NewBackpackMenu(g, "Inventory")
	m.Handle(engineinput.Intent{Action: engineinput.ActionMenuDown})
	if res, _ := m.Handle(engineinput.Intent{Action: engineinput.ActionConfirm}); res != NoResponse {
		t.Errorf("confirm on empty menu = %v, want NoResponse", res)
	}
	if res, _ := m.Handle(engineinput.Intent{Action: engineinput.ActionCancel}); res != Cancel {
		t.Errorf("cancel on empty menu = %v, want Cancel", res)
	}
}
