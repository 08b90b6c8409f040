package systems

import (
	"github.com/sirupsen/logrus"

	"gloomhold/pkg/engine/world"
	"gloomhold/pkg/game/components"
	"gloomhold/pkg/game/state"
	"gloomhold/pkg/logger"
)

// MonsterAI lets every living monster that can see the player either attack
// from an adjacent tile or take one step along the shortest path.
func MonsterAI(g *state.Game) {
	if !g.PlayerAlive() {
		return
	}
	s := g.Stores
	m := g.Map
	target := g.PlayerPos
	log := logger.Component("monster_ai_system")

	for _, e := range s.Monsters.Entities() {
		vs, ok := s.Viewsheds.Get(e)
		if !ok {
			continue
		}
		pos, ok := s.Positions.Get(e)
		if !ok {
			continue
		}
		stats, ok := s.CombatStats.Get(e)
		if !ok || stats.HP <= 0 {
			continue
		}
		if !vs.CanSee(target) {
			continue
		}

		here := pos.Point()
		entry := log.WithFields(logrus.Fields{"entity": e, "name": s.NameOf(e), "x": here.X, "y": here.Y})

		if here.ChebyshevDistance(target) == 1 {
			s.WantsToMelee.Insert(e, components.WantsToMelee{Target: g.Player})
			entry.Debug("Monster attacks")
			continue
		}

		steps, found := world.AStar(m, m.IndexOf(here), m.IndexOf(target))
		if !found || len(steps) < 2 {
			entry.Debug("Monster has no path to the player")
			continue
		}
		next := m.PointAt(steps[1])
		m.Blocked[m.IndexOf(here)] = false
		m.Blocked[steps[1]] = true
		s.SetPosition(e, next.X, next.Y)
		entry.WithFields(logrus.Fields{"to_x": next.X, "to_y": next.Y}).Debug("Monster moves")
	}
}
