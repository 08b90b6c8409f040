// Package systems holds the world-mutating passes run by the turn pipeline.
// Each system reads and writes the shared state.Game and nothing else.
package systems

import (
	"github.com/sirupsen/logrus"

	"gloomhold/pkg/engine/world"
	"gloomhold/pkg/game/state"
	"gloomhold/pkg/logger"
)

// Visibility recomputes dirty viewsheds. The player's viewshed also drives
// the map's Visible and Revealed grids.
func Visibility(g *state.Game) {
	s := g.Stores
	log := logger.Component("visibility_system")

	for _, e := range s.Viewsheds.Entities() {
		vs, _ := s.Viewsheds.Get(e)
		pos, ok := s.Positions.Get(e)
		if !ok || !vs.Dirty {
			continue
		}
		vs.Dirty = false
		vs.VisibleTiles = world.FieldOfView(g.Map, pos.Point(), vs.Range)

		if !s.Players.Has(e) {
			continue
		}
		for i := range g.Map.Visible {
			g.Map.Visible[i] = false
		}
		for _, p := range vs.VisibleTiles {
			idx := g.Map.IndexOf(p)
			g.Map.Revealed[idx] = true
			g.Map.Visible[idx] = true
		}
		log.WithFields(logrus.Fields{
			"entity":  e,
			"visible": len(vs.VisibleTiles),
		}).Debug("Player viewshed updated")
	}
}
