package systems

import (
	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"

	"gloomhold/pkg/game/state"
	"gloomhold/pkg/logger"
)

// Damage applies and clears every SufferDamage queue. HP may go negative.
func Damage(g *state.Game) {
	s := g.Stores
	for _, e := range s.SufferDamage.Entities() {
		queue, _ := s.SufferDamage.Get(e)
		if stats, ok := s.CombatStats.Get(e); ok {
			stats.HP -= queue.Total()
			logger.Component("damage_system").WithFields(logrus.Fields{
				"entity": e,
				"damage": queue.Total(),
				"hp":     stats.HP,
			}).Debug("Damage applied")
		}
		s.SufferDamage.Remove(e)
	}
}

// DeleteTheDead queues destruction of every entity whose HP is at or below
// zero. The entities disappear at the next Registry.Maintain.
func DeleteTheDead(g *state.Game) {
	s := g.Stores
	for _, e := range s.CombatStats.Entities() {
		stats, _ := s.CombatStats.Get(e)
		if stats.HP > 0 {
			continue
		}
		if e == g.Player {
			g.AddMessage(gotext.Get("You are dead."))
		} else {
			g.AddMessage(gotext.Get("%s is dead.", s.NameOf(e)))
		}
		logger.Component("damage_system").WithFields(logrus.Fields{
			"entity": e,
			"name":   s.NameOf(e),
		}).Info("Entity died")
		g.Registry.Commands().Destroy(e)
	}
}
