package world

// Direction is one of the eight compass directions on the grid.
// North is towards smaller y.
type Direction int

// Direction constants
const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// AllDirections returns all valid directions, cardinals first.
func AllDirections() []Direction {
	return []Direction{West, East, North, South, NorthWest, NorthEast, SouthWest, SouthEast}
}

// String returns the string representation of a direction
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case NorthEast:
		return "NorthEast"
	case East:
		return "East"
	case SouthEast:
		return "SouthEast"
	case South:
		return "South"
	case SouthWest:
		return "SouthWest"
	case West:
		return "West"
	case NorthWest:
		return "NorthWest"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the direction is one of the eight compass points
func (d Direction) IsValid() bool {
	return d >= North && d <= NorthWest
}

// IsDiagonal reports whether moving in d changes both coordinates.
func (d Direction) IsDiagonal() bool {
	dx, dy := d.Delta()
	return dx != 0 && dy != 0
}

// Opposite returns the opposite direction
func (d Direction) Opposite() Direction {
	if !d.IsValid() {
		return d
	}
	return (d + 4) % 8
}

// Delta returns the x and y offsets for this direction
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case NorthEast:
		return 1, -1
	case East:
		return 1, 0
	case SouthEast:
		return 1, 1
	case South:
		return 0, 1
	case SouthWest:
		return -1, 1
	case West:
		return -1, 0
	case NorthWest:
		return -1, -1
	default:
		return 0, 0
	}
}
