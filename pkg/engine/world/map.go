package world

import (
	"fmt"
	"math"

	"gloomhold/pkg/engine/ecs"
)

// TileType is the terrain of a single tile.
type TileType int

const (
	Wall TileType = iota
	Floor
)

func (t TileType) String() string {
	switch t {
	case Wall:
		return "Wall"
	case Floor:
		return "Floor"
	default:
		return fmt.Sprintf("TileType(%d)", int(t))
	}
}

// Point is a tile coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ChebyshevDistance returns the chessboard distance between two points.
func (p Point) ChebyshevDistance(o Point) int {
	dx := abs(p.X - o.X)
	dy := abs(p.Y - o.Y)
	if dx > dy {
		return dx
	}
	return dy
}

// Add returns p moved one step in direction d.
func (p Point) Add(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Map is the tile grid plus the per-tile grids maintained by the systems.
// All slices are indexed by y*Width+x.
type Map struct {
	Width  int
	Height int
	Tiles  []TileType
	Rooms  []Rect

	// Revealed only ever flips to true. Visible is rebuilt each time the
	// player's viewshed is recomputed.
	Revealed []bool
	Visible  []bool

	// Blocked and TileContent are rebuilt by the map indexing pass and are
	// stale in between.
	Blocked     []bool
	TileContent [][]ecs.Entity
}

// NewMap returns a width x height map made entirely of walls.
func NewMap(width, height int) *Map {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("world: invalid map size %dx%d", width, height))
	}
	n := width * height
	m := &Map{
		Width:       width,
		Height:      height,
		Tiles:       make([]TileType, n),
		Revealed:    make([]bool, n),
		Visible:     make([]bool, n),
		Blocked:     make([]bool, n),
		TileContent: make([][]ecs.Entity, n),
	}
	m.PopulateBlocked()
	return m
}

// Index converts a coordinate into a slice index.
func (m *Map) Index(x, y int) int {
	return y*m.Width + x
}

// IndexOf converts a point into a slice index.
func (m *Map) IndexOf(p Point) int {
	return m.Index(p.X, p.Y)
}

// PointAt converts a slice index back into a coordinate.
func (m *Map) PointAt(idx int) Point {
	return Point{X: idx % m.Width, Y: idx / m.Width}
}

// InBounds reports whether (x, y) lies on the map.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// TileAt returns the terrain at p. Out of bounds reads as Wall.
func (m *Map) TileAt(p Point) TileType {
	if !m.InBounds(p.X, p.Y) {
		return Wall
	}
	return m.Tiles[m.IndexOf(p)]
}

// ApplyRoom carves the interior of r to floor.
func (m *Map) ApplyRoom(r Rect) {
	for y := r.Y1 + 1; y <= r.Y2; y++ {
		for x := r.X1 + 1; x <= r.X2; x++ {
			m.setFloor(x, y)
		}
	}
}

// ApplyHorizontalTunnel carves floor along row y between x1 and x2 inclusive.
func (m *Map) ApplyHorizontalTunnel(x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		m.setFloor(x, y)
	}
}

// ApplyVerticalTunnel carves floor along column x between y1 and y2 inclusive.
func (m *Map) ApplyVerticalTunnel(y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		m.setFloor(x, y)
	}
}

// setFloor clips silently so tunnels never write outside the grid.
func (m *Map) setFloor(x, y int) {
	if !m.InBounds(x, y) {
		return
	}
	m.Tiles[m.Index(x, y)] = Floor
}

// PopulateBlocked resets Blocked to the terrain baseline.
func (m *Map) PopulateBlocked() {
	for i, t := range m.Tiles {
		m.Blocked[i] = t == Wall
	}
}

// ClearContentIndex empties every tile's occupant list.
func (m *Map) ClearContentIndex() {
	for i := range m.TileContent {
		m.TileContent[i] = m.TileContent[i][:0]
	}
}

// Dimensions implements BaseMap.
func (m *Map) Dimensions() (int, int) {
	return m.Width, m.Height
}

// IsOpaque implements BaseMap: only walls block sight.
func (m *Map) IsOpaque(idx int) bool {
	return m.Tiles[idx] == Wall
}

// Exits implements BaseMap: in-bounds unblocked neighbours, diagonals cost more.
func (m *Map) Exits(idx int) []Exit {
	p := m.PointAt(idx)
	exits := make([]Exit, 0, 8)
	for _, d := range AllDirections() {
		n := p.Add(d)
		if !m.InBounds(n.X, n.Y) {
			continue
		}
		ni := m.IndexOf(n)
		if m.Blocked[ni] {
			continue
		}
		cost := CardinalCost
		if d.IsDiagonal() {
			cost = DiagonalCost
		}
		exits = append(exits, Exit{Index: ni, Cost: cost})
	}
	return exits
}

// PathingDistance implements BaseMap using Euclidean distance.
func (m *Map) PathingDistance(a, b int) float64 {
	pa, pb := m.PointAt(a), m.PointAt(b)
	dx := float64(pa.X - pb.X)
	dy := float64(pa.Y - pb.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
