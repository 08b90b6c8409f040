package gameplay

import (
	"testing"

	"gloomhold/pkg/engine/world"
	"gloomhold/pkg/game/spawner"
	"gloomhold/pkg/game/systems"
)

func TestTryMovePlayer(t *testing.T) {
	tests := []struct {
		name string
		dir  world.Direction
		want world.Point
	}{
		{"east", world.East, world.Point{X: 6, Y: 5}},
		{"north west", world.NorthWest, world.Point{X: 4, Y: 4}},
		{"south", world.South, world.Point{X: 5, Y: 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newArena(t, 12, 12, 5, 5)
			vs, _ := g.Stores.Viewsheds.Get(g.Player)
			vs.Dirty = false

			TryMovePlayer(g, tt.dir)

			pos, _ := g.Stores.Positions.Get(g.Player)
			if pos.Point() != tt.want {
				t.Errorf("position = %v, want %v", pos.Point(), tt.want)
			}
			if g.PlayerPos != tt.want {
				t.Errorf("PlayerPos = %v, want %v", g.PlayerPos, tt.want)
			}
			if !vs.Dirty {
				t.Error("viewshed not dirty after move")
			}
		})
	}
}

func TestTryMovePlayerIntoWall(t *testing.T) {
	g := newArena(t, 12, 12, 1, 1)
	TryMovePlayer(g, world.West)
	TryMovePlayer(g, world.North)
	if g.PlayerPos != (world.Point{X: 1, Y: 1}) {
		t.Errorf("player walked into a wall: %v", g.PlayerPos)
	}
}

func TestTryMovePlayerBumpAttacks(t *testing.T) {
	g := newArena(t, 12, 12, 5, 5)
	goblin := spawner.Goblin(g, 6, 5)
	systems.MapIndexing(g)

	TryMovePlayer(g, world.East)

	if g.PlayerPos != (world.Point{X: 5, Y: 5}) {
		t.Errorf("player moved onto the goblin: %v", g.PlayerPos)
	}
	want, ok := g.Stores.WantsToMelee.Get(g.Player)
	if !ok || want.Target != goblin {
		t.Errorf("WantsToMelee = %v, %v, want target %v", want, ok, goblin)
	}
}

func TestTryMovePlayerOverItem(t *testing.T) {
	g := newArena(t, 12, 12, 5, 5)
	spawner.HealthPotion(g, 6, 5)
	systems.MapIndexing(g)

	TryMovePlayer(g, world.East)
	if g.PlayerPos != (world.Point{X: 6, Y: 5}) {
		t.Errorf("player blocked by an item: %v", g.PlayerPos)
	}
	if g.Stores.WantsToMelee.Has(g.Player) {
		t.Error("player attacked an item")
	}
}

func TestGetItem(t *testing.T) {
	g := newArena(t, 12, 12, 5, 5)
	if GetItem(g) {
		t.Error("GetItem() = true with nothing on the floor")
	}
	if got := g.Messages[len(g.Messages)-1]; got != "There is nothing here to pick up." {
		t.Errorf("message = %q", got)
	}

	potion := spawner.HealthPotion(g, 5, 5)
	if !GetItem(g) {
		t.Fatal("GetItem() = false with a potion underfoot")
	}
	want, _ := g.Stores.WantsPickup.Get(g.Player)
	if want.Item != potion || want.CollectedBy != g.Player {
		t.Errorf("WantsPickup = %+v", *want)
	}
}
