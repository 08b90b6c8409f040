package systems

import (
	"testing"

	"gloomhold/pkg/engine/world"
)

func TestVisibilityPlayerUpdatesMapGrids(t *testing.T) {
	g := newArena(t, 30, 30, 10, 10)
	Visibility(g)

	vs, _ := g.Stores.Viewsheds.Get(g.Player)
	if vs.Dirty {
		t.Error("viewshed still dirty after Visibility")
	}
	if !vs.CanSee(world.Point{X: 10, Y: 10}) {
		t.Error("player cannot see own tile")
	}
	for i := range g.Map.Visible {
		if g.Map.Visible[i] && !g.Map.Revealed[i] {
			t.Fatalf("tile %v visible but not revealed", g.Map.PointAt(i))
		}
	}
	if g.Map.Visible[g.Map.Index(25, 25)] {
		t.Error("tile beyond range marked visible")
	}
}

func TestVisibilityRevealedIsMonotonic(t *testing.T) {
	g := newArena(t, 40, 20, 5, 10)
	Visibility(g)
	before := append([]bool(nil), g.Map.Revealed...)

	g.Stores.SetPosition(g.Player, 30, 10)
	g.PlayerPos = world.Point{X: 30, Y: 10}
	Visibility(g)

	for i, was := range before {
		if was && !g.Map.Revealed[i] {
			t.Fatalf("tile %v was revealed and is no longer", g.Map.PointAt(i))
		}
	}
	if g.Map.Visible[g.Map.Index(5, 10)] {
		t.Error("old position still visible after moving away")
	}
	if !g.Map.Revealed[g.Map.Index(5, 10)] {
		t.Error("old position no longer revealed")
	}
}

func TestVisibilitySkipsCleanViewsheds(t *testing.T) {
	g := newArena(t, 20, 20, 5, 5)
	vs, _ := g.Stores.Viewsheds.Get(g.Player)
	vs.Dirty = false
	Visibility(g)
	if len(vs.VisibleTiles) != 0 {
		t.Error("clean viewshed was recomputed")
	}
}

func TestVisibilityMonsterDoesNotTouchMap(t *testing.T) {
	g := newArena(t, 30, 30, 2, 2)
	vsPlayer, _ := g.Stores.Viewsheds.Get(g.Player)
	vsPlayer.Dirty = false
	spawnGoblin(t, g, 20, 20)

	Visibility(g)
	for i := range g.Map.Revealed {
		if g.Map.Revealed[i] || g.Map.Visible[i] {
			t.Fatalf("monster viewshed touched map tile %v", g.Map.PointAt(i))
		}
	}
}
