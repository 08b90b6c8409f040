package gameplay

import (
	"fmt"

	"gloomhold/pkg/game/state"
	"gloomhold/pkg/game/systems"
)

// system is one named pass of the pipeline.
type system struct {
	name string
	run  func(*state.Game) error
}

func infallible(fn func(*state.Game)) func(*state.Game) error {
	return func(g *state.Game) error {
		fn(g)
		return nil
	}
}

// pipeline is the fixed system order. Indexing must follow AI movement and
// precede combat, and damage must follow combat.
var pipeline = []system{
	{"visibility", infallible(systems.Visibility)},
	{"monster_ai", infallible(systems.MonsterAI)},
	{"map_indexing", infallible(systems.MapIndexing)},
	{"melee_combat", systems.MeleeCombat},
	{"damage", infallible(systems.Damage)},
	{"item_collection", infallible(systems.ItemCollection)},
	{"potion_use", infallible(systems.PotionUse)},
	{"item_drop", infallible(systems.ItemDrop)},
}

// RunSystems executes one full pipeline pass, sweeps the dead and commits
// every deferred registry mutation.
func RunSystems(g *state.Game) error {
	for _, sys := range pipeline {
		if err := sys.run(g); err != nil {
			return fmt.Errorf("%s: %w", sys.name, err)
		}
	}
	systems.DeleteTheDead(g)
	g.Registry.Maintain()

	if pos, ok := g.Stores.Positions.Get(g.Player); ok {
		g.PlayerPos = pos.Point()
	}
	return nil
}
