package systems

import (
	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"

	"gloomhold/pkg/engine/ecs"
	"gloomhold/pkg/game/components"
	"gloomhold/pkg/game/state"
	"gloomhold/pkg/logger"
)

// ItemCollection moves requested items from the ground into the collector's
// backpack. The move is committed by Registry.Maintain.
func ItemCollection(g *state.Game) {
	s := g.Stores
	cb := g.Registry.Commands()

	for _, holder := range s.WantsPickup.Entities() {
		want, _ := s.WantsPickup.Get(holder)
		s.WantsPickup.Remove(holder)

		if !g.Registry.HasAll(want.Item, s.Items, s.Positions) {
			continue
		}
		cb.Remove(s.Positions, want.Item)
		ecs.Insert(cb, s.InBackpack, want.Item, components.InBackpack{Owner: want.CollectedBy})

		if want.CollectedBy == g.Player {
			g.AddMessage(gotext.Get("You pick up the %s.", s.NameOf(want.Item)))
		}
		logger.Component("item_system").WithFields(logrus.Fields{
			"item":  s.NameOf(want.Item),
			"owner": want.CollectedBy,
		}).Debug("Item collected")
	}
}

// PotionUse drinks requested potions. Healing never raises HP above MaxHP
// and the potion entity is destroyed at commit.
func PotionUse(g *state.Game) {
	s := g.Stores

	for _, drinker := range s.WantsDrink.Entities() {
		want, _ := s.WantsDrink.Get(drinker)
		s.WantsDrink.Remove(drinker)

		potion, ok := s.Potions.Get(want.Potion)
		if !ok || !g.Registry.Alive(want.Potion) {
			continue
		}
		stats, ok := s.CombatStats.Get(drinker)
		if !ok || stats.HP <= 0 {
			continue
		}

		before := stats.HP
		stats.HP = min(stats.MaxHP, stats.HP+potion.HealAmount)
		g.Registry.Commands().Destroy(want.Potion)

		if drinker == g.Player {
			g.AddMessage(gotext.Get("You drink the %s, healing %d hp.", s.NameOf(want.Potion), potion.HealAmount))
		}
		logger.Component("item_system").WithFields(logrus.Fields{
			"drinker":   drinker,
			"hp_before": before,
			"hp_after":  stats.HP,
		}).Debug("Potion consumed")
	}
}

// ItemDrop places requested backpack items on the dropper's tile. The move
// is committed by Registry.Maintain.
func ItemDrop(g *state.Game) {
	s := g.Stores
	cb := g.Registry.Commands()

	for _, dropper := range s.WantsDrop.Entities() {
		want, _ := s.WantsDrop.Get(dropper)
		s.WantsDrop.Remove(dropper)

		pos, ok := s.Positions.Get(dropper)
		if !ok {
			continue
		}
		bp, ok := s.InBackpack.Get(want.Item)
		if !ok || bp.Owner != dropper || !g.Registry.Alive(want.Item) {
			continue
		}
		cb.Remove(s.InBackpack, want.Item)
		ecs.Insert(cb, s.Positions, want.Item, components.Position{X: pos.X, Y: pos.Y})

		if dropper == g.Player {
			g.AddMessage(gotext.Get("You drop the %s.", s.NameOf(want.Item)))
		}
		logger.Component("item_system").WithFields(logrus.Fields{
			"item": s.NameOf(want.Item),
			"x":    pos.X,
			"y":    pos.Y,
		}).Debug("Item dropped")
	}
}
