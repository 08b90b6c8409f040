package systems

import (
	"fmt"

	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"

	"gloomhold/pkg/engine/ecs"
	"gloomhold/pkg/game/components"
	"gloomhold/pkg/game/state"
	"gloomhold/pkg/logger"
)

// MeleeCombat resolves every WantsToMelee intent into queued damage. All
// intents are consumed whether or not they hit. A target that no longer
// exists is an invariant violation.
func MeleeCombat(g *state.Game) error {
	s := g.Stores
	log := logger.Component("melee_system")
	defer s.WantsToMelee.Clear()

	for _, attacker := range s.WantsToMelee.Entities() {
		want, _ := s.WantsToMelee.Get(attacker)
		stats, ok := s.CombatStats.Get(attacker)
		if !ok || stats.HP <= 0 {
			continue
		}

		if !g.Registry.Alive(want.Target) {
			return fmt.Errorf("%w: %s attacks destroyed %s", ErrInvariant, attacker, want.Target)
		}
		targetStats, ok := s.CombatStats.Get(want.Target)
		if !ok {
			return fmt.Errorf("%w: melee target %s has no combat stats", ErrInvariant, want.Target)
		}
		if targetStats.HP <= 0 {
			continue
		}

		attackerName := s.NameOf(attacker)
		targetName := s.NameOf(want.Target)
		damage := max(0, stats.Power-targetStats.Defense)

		log.WithFields(logrus.Fields{
			"attacker": attackerName,
			"target":   targetName,
			"power":    stats.Power,
			"defense":  targetStats.Defense,
			"damage":   damage,
		}).Debug("Attack resolved")

		if damage == 0 {
			g.AddMessage(gotext.Get("%s is unable to hurt %s.", attackerName, targetName))
			continue
		}
		InflictDamage(g, want.Target, damage)
		g.AddMessage(gotext.Get("%s hits %s, for %d hp.", attackerName, targetName, damage))
	}
	return nil
}

// InflictDamage queues amount on target's SufferDamage, creating it if absent.
func InflictDamage(g *state.Game, target ecs.Entity, amount int) {
	if queue, ok := g.Stores.SufferDamage.Get(target); ok {
		queue.Amounts = append(queue.Amounts, amount)
		return
	}
	g.Stores.SufferDamage.Insert(target, components.SufferDamage{Amounts: []int{amount}})
}
