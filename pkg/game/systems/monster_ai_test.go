package systems

import (
	"testing"

	"gloomhold/pkg/engine/ecs"
	"gloomhold/pkg/engine/world"
	"gloomhold/pkg/game/spawner"
	"gloomhold/pkg/game/state"
)

func spawnGoblin(t *testing.T, g *state.Game, x, y int) ecs.Entity {
	t.Helper()
	return spawner.Goblin(g, x, y)
}

func TestMonsterAIAdjacentAttacks(t *testing.T) {
	g := newArena(t, 20, 20, 5, 5)
	goblin := spawnGoblin(t, g, 6, 6)
	Visibility(g)
	MapIndexing(g)

	MonsterAI(g)

	want, ok := g.Stores.WantsToMelee.Get(goblin)
	if !ok {
		t.Fatal("adjacent goblin did not attack")
	}
	if want.Target != g.Player {
		t.Errorf("target = %v, want player %v", want.Target, g.Player)
	}
	pos, _ := g.Stores.Positions.Get(goblin)
	if pos.Point() != (world.Point{X: 6, Y: 6}) {
		t.Errorf("attacking goblin moved to %v", pos.Point())
	}
}

func TestMonsterAIChasesOneStep(t *testing.T) {
	g := newArena(t, 20, 20, 5, 5)
	goblin := spawnGoblin(t, g, 9, 5)
	Visibility(g)
	MapIndexing(g)

	MonsterAI(g)

	pos, _ := g.Stores.Positions.Get(goblin)
	if pos.Point() != (world.Point{X: 8, Y: 5}) {
		t.Errorf("goblin at %v, want {8 5}", pos.Point())
	}
	if g.Stores.WantsToMelee.Has(goblin) {
		t.Error("distant goblin attacked")
	}
	vs, _ := g.Stores.Viewsheds.Get(goblin)
	if !vs.Dirty {
		t.Error("moved goblin's viewshed not dirty")
	}
	if g.Map.Blocked[g.Map.Index(9, 5)] {
		t.Error("vacated tile still blocked")
	}
	if !g.Map.Blocked[g.Map.Index(8, 5)] {
		t.Error("entered tile not blocked")
	}
}

func TestMonsterAIWithoutLineOfSightWaits(t *testing.T) {
	g := newArena(t, 30, 20, 3, 10)
	for y := 1; y < 19; y++ {
		g.Map.Tiles[g.Map.Index(10, y)] = world.Wall
	}
	g.Map.PopulateBlocked()
	goblin := spawnGoblin(t, g, 14, 10)
	Visibility(g)
	MapIndexing(g)

	MonsterAI(g)

	pos, _ := g.Stores.Positions.Get(goblin)
	if pos.Point() != (world.Point{X: 14, Y: 10}) {
		t.Errorf("blind goblin moved to %v", pos.Point())
	}
	if g.Stores.WantsToMelee.Has(goblin) {
		t.Error("blind goblin attacked")
	}
}

func TestMonsterAIIgnoresDeadMonsters(t *testing.T) {
	g := newArena(t, 20, 20, 5, 5)
	goblin := spawnGoblin(t, g, 6, 5)
	Visibility(g)
	stats, _ := g.Stores.CombatStats.Get(goblin)
	stats.HP = 0

	MonsterAI(g)
	if g.Stores.WantsToMelee.Has(goblin) {
		t.Error("dead goblin attacked")
	}
}
