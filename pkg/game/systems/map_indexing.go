package systems

import (
	"github.com/sirupsen/logrus"

	"gloomhold/pkg/game/state"
	"gloomhold/pkg/logger"
)

// MapIndexing rebuilds the Blocked grid and the per-tile occupant lists from
// scratch. Running it twice in a row yields the same result.
func MapIndexing(g *state.Game) {
	s := g.Stores
	m := g.Map

	m.PopulateBlocked()
	m.ClearContentIndex()

	for _, e := range s.Positions.Entities() {
		pos, _ := s.Positions.Get(e)
		if !m.InBounds(pos.X, pos.Y) {
			logger.Component("map_indexing_system").WithFields(logrus.Fields{
				"entity": e,
				"x":      pos.X,
				"y":      pos.Y,
			}).Warn("Entity positioned off the map, not indexed")
			continue
		}
		idx := m.Index(pos.X, pos.Y)
		if s.BlocksTile.Has(e) {
			m.Blocked[idx] = true
		}
		m.TileContent[idx] = append(m.TileContent[idx], e)
	}
}
