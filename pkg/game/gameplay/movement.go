// Package gameplay provides the player's actions, the system pipeline and
// the turn controller that sequences them.
package gameplay

import (
	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"

	"gloomhold/pkg/engine/world"
	"gloomhold/pkg/game/components"
	"gloomhold/pkg/game/state"
	"gloomhold/pkg/logger"
)

// TryMovePlayer moves the player one step in d. Bumping into something with
// combat stats queues an attack instead. Moves into blocked tiles or off the
// playable area are silently ignored.
func TryMovePlayer(g *state.Game, d world.Direction) {
	s := g.Stores
	pos, ok := s.Positions.Get(g.Player)
	if !ok {
		return
	}
	dest := pos.Point().Add(d)
	m := g.Map
	if dest.X < 1 || dest.X > m.Width-1 || dest.Y < 1 || dest.Y > m.Height-1 {
		return
	}
	idx := m.IndexOf(dest)

	for _, target := range m.TileContent[idx] {
		if target == g.Player || !g.Registry.HasAll(target, s.CombatStats) {
			continue
		}
		s.WantsToMelee.Insert(g.Player, components.WantsToMelee{Target: target})
		logger.Component("player").WithFields(logrus.Fields{
			"target": s.NameOf(target),
			"x":      dest.X,
			"y":      dest.Y,
		}).Debug("Player attacks")
		return
	}

	if m.Blocked[idx] {
		return
	}
	s.SetPosition(g.Player, dest.X, dest.Y)
	g.PlayerPos = dest
}

// GetItem queues pickup of an item lying on the player's tile.
func GetItem(g *state.Game) bool {
	s := g.Stores
	for _, item := range s.Items.Entities() {
		pos, ok := s.Positions.Get(item)
		if !ok || pos.Point() != g.PlayerPos {
			continue
		}
		s.WantsPickup.Insert(g.Player, components.WantsToPickupItem{CollectedBy: g.Player, Item: item})
		return true
	}
	logMessage(g, "There is nothing here to pick up.")
	return false
}

// logMessage translates msg and appends it to the game's message log.
func logMessage(g *state.Game, msg string, a ...any) {
	g.AddMessage(gotext.Get(msg, a...))
}
