package generator

import (
	"github.com/zyedidia/generic/mapset"

	"gloomhold/pkg/engine/world"
)

var connectivitySteps = []world.Direction{world.North, world.East, world.South, world.West}

// DisconnectedRooms returns the rooms whose center cannot be reached from the
// first room's center by walking floor tiles. A map with no rooms has none.
func DisconnectedRooms(m *world.Map) []world.Rect {
	if len(m.Rooms) == 0 {
		return nil
	}
	reached := floodFloor(m, m.Rooms[0].Center())

	var out []world.Rect
	for _, room := range m.Rooms[1:] {
		if !reached.Has(m.IndexOf(room.Center())) {
			out = append(out, room)
		}
	}
	return out
}

// floodFloor collects the indexes of every floor tile connected to start.
func floodFloor(m *world.Map, start world.Point) *mapset.Set[int] {
	visited := mapset.New[int]()
	if !m.InBounds(start.X, start.Y) || m.TileAt(start) != world.Floor {
		return &visited
	}
	visited.Put(m.IndexOf(start))
	queue := []world.Point{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		for _, d := range connectivitySteps {
			n := p.Add(d)
			if !m.InBounds(n.X, n.Y) || m.TileAt(n) != world.Floor || visited.Has(m.IndexOf(n)) {
				continue
			}
			visited.Put(m.IndexOf(n))
			queue = append(queue, n)
		}
	}
	return &visited
}
