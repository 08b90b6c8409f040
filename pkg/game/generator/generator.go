package generator

import (
	"errors"
	"fmt"
	"math/rand"

	"gloomhold/pkg/engine/world"
	"gloomhold/pkg/game/config"
)

// ErrUnknownGenerator is returned by New for an unrecognised generator name.
var ErrUnknownGenerator = errors.New("unknown map generator")

// MapGenerator is an interface for map generation algorithms
type MapGenerator interface {
	Generate(rng *rand.Rand) *world.Map
	Name() string
}

// New returns the generator registered under name, sized from cfg.
func New(name string, cfg config.Config) (MapGenerator, error) {
	switch name {
	case "", "rooms":
		return &RoomsAndCorridors{
			Width:    cfg.MapWidth,
			Height:   cfg.MapHeight,
			MaxRooms: cfg.MaxRooms,
			MinSize:  cfg.MinRoomSize,
			MaxSize:  cfg.MaxRoomSize,
		}, nil
	case "bsp":
		return &BSPGenerator{Width: cfg.MapWidth, Height: cfg.MapHeight}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownGenerator, name)
	}
}

// joinRooms carves an L-shaped corridor between two points. The coin flip
// only picks which leg comes first; both legs are always carved.
func joinRooms(m *world.Map, rng *rand.Rand, from, to world.Point) {
	if rng.Intn(2) == 1 {
		m.ApplyHorizontalTunnel(from.X, to.X, from.Y)
		m.ApplyVerticalTunnel(from.Y, to.Y, to.X)
	} else {
		m.ApplyVerticalTunnel(from.Y, to.Y, from.X)
		m.ApplyHorizontalTunnel(from.X, to.X, to.Y)
	}
}
