package generator

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"gloomhold/pkg/engine/world"
	"gloomhold/pkg/logger"
)

// RoomsAndCorridors scatters non-overlapping rectangular rooms and chains
// each one to the previously accepted room with an L-shaped corridor.
type RoomsAndCorridors struct {
	Width    int
	Height   int
	MaxRooms int
	MinSize  int
	MaxSize  int // exclusive
}

// Name returns the name of this generator
func (g *RoomsAndCorridors) Name() string {
	return "Rooms and Corridors"
}

// Generate builds a fresh map. Rejected candidates are not retried, so the
// number of rooms varies between 1 and MaxRooms.
func (g *RoomsAndCorridors) Generate(rng *rand.Rand) *world.Map {
	m := world.NewMap(g.Width, g.Height)

	for attempt := 0; attempt < g.MaxRooms; attempt++ {
		w := g.MinSize + rng.Intn(g.MaxSize-g.MinSize)
		h := g.MinSize + rng.Intn(g.MaxSize-g.MinSize)
		x := rng.Intn(g.Width - w - 1)
		y := rng.Intn(g.Height - h - 1)
		candidate := world.NewRect(x, y, w, h)

		overlaps := false
		for _, other := range m.Rooms {
			if candidate.Intersect(other) {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}

		m.ApplyRoom(candidate)
		if n := len(m.Rooms); n > 0 {
			joinRooms(m, rng, m.Rooms[n-1].Center(), candidate.Center())
		}
		m.Rooms = append(m.Rooms, candidate)
	}

	m.PopulateBlocked()

	logger.Component("generator").WithFields(logrus.Fields{
		"generator": g.Name(),
		"rooms":     len(m.Rooms),
		"attempts":  g.MaxRooms,
	}).Debug("Map generated")
	return m
}
