// Package config holds the tunable constants of a game session and binds
// them to command line flags.
package config

import (
	"flag"
	"fmt"
	"time"
)

// Config is the full set of knobs that shape a generated dungeon.
type Config struct {
	MapWidth  int
	MapHeight int

	MaxRooms    int
	MinRoomSize int
	MaxRoomSize int // exclusive

	SightRange int

	MaxMonstersPerRoom int
	MaxItemsPerRoom    int
	PotionHeal         int

	// LogLines is how many message log lines a frame carries.
	LogLines int

	// Seed drives every random decision. Zero means pick one from the clock.
	Seed      int64
	Generator string
}

// Default returns the standard dungeon parameters.
func Default() Config {
	return Config{
		MapWidth:           80,
		MapHeight:          50,
		MaxRooms:           30,
		MinRoomSize:        6,
		MaxRoomSize:        10,
		SightRange:         8,
		MaxMonstersPerRoom: 4,
		MaxItemsPerRoom:    2,
		PotionHeal:         8,
		LogLines:           5,
		Generator:          "rooms",
	}
}

// RegisterFlags binds the user-tunable fields to fs.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 picks one from the clock)")
	fs.StringVar(&c.Generator, "generator", c.Generator, "map generator: rooms or bsp")
	fs.IntVar(&c.MaxRooms, "max-rooms", c.MaxRooms, "maximum number of rooms to attempt")
	fs.IntVar(&c.SightRange, "sight", c.SightRange, "field of view radius")
	fs.IntVar(&c.LogLines, "log-lines", c.LogLines, "number of message lines shown")
}

// ResolveSeed fills in a clock-derived seed when none was given and returns it.
func (c *Config) ResolveSeed() int64 {
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c.Seed
}

// Validate rejects parameter combinations the generators cannot honour.
func (c Config) Validate() error {
	switch {
	case c.MapWidth < 3 || c.MapHeight < 3:
		return fmt.Errorf("map size %dx%d too small", c.MapWidth, c.MapHeight)
	case c.MinRoomSize < 1 || c.MaxRoomSize <= c.MinRoomSize:
		return fmt.Errorf("room size range [%d,%d) is empty", c.MinRoomSize, c.MaxRoomSize)
	case c.MaxRoomSize+2 > c.MapWidth || c.MaxRoomSize+2 > c.MapHeight:
		return fmt.Errorf("rooms up to %d do not fit a %dx%d map", c.MaxRoomSize, c.MapWidth, c.MapHeight)
	case c.MaxRooms < 1:
		return fmt.Errorf("max rooms must be positive, got %d", c.MaxRooms)
	case c.SightRange < 0:
		return fmt.Errorf("sight range must not be negative, got %d", c.SightRange)
	case c.LogLines < 1:
		return fmt.Errorf("log lines must be positive, got %d", c.LogLines)
	}
	return nil
}
