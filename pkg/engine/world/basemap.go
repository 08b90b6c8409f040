package world

// Step costs used by Exits.
const (
	CardinalCost = 1.0
	DiagonalCost = 1.45
)

// Exit is a neighbouring tile reachable in one step.
type Exit struct {
	Index int
	Cost  float64
}

// BaseMap is everything field of view and pathfinding need to know about a
// map. Tiles are addressed by their y*width+x index.
type BaseMap interface {
	Dimensions() (width, height int)
	IsOpaque(idx int) bool
	Exits(idx int) []Exit
	PathingDistance(a, b int) float64
}

var _ BaseMap = (*Map)(nil)
