package state

import (
	"math/rand"

	"gloomhold/pkg/engine/ecs"
	"gloomhold/pkg/engine/world"
	"gloomhold/pkg/game/components"
	"gloomhold/pkg/game/config"
)

// maxMessages bounds the message log kept in memory.
const maxMessages = 50

// Game is the whole simulation state shared by every system: the entity
// registry with its stores, the map resource and the player bookkeeping.
type Game struct {
	Registry *ecs.Registry
	Stores   *components.Stores
	Map      *world.Map

	Player    ecs.Entity
	PlayerPos world.Point

	RNG    *rand.Rand
	Config config.Config

	Messages []string

	// RunState mirrors the turn controller so frames can report it.
	RunState RunState
	Turn     int
}

// NewGame creates an empty game with its registry and stores wired up.
// The map and player are filled in by the caller.
func NewGame(cfg config.Config, rng *rand.Rand) *Game {
	reg := ecs.NewRegistry()
	return &Game{
		Registry: reg,
		Stores:   components.NewStores(reg),
		RNG:      rng,
		Config:   cfg,
		Messages: make([]string, 0),
		RunState: PreRun,
	}
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	g.Messages = append(g.Messages, msg)

	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// RecentMessages returns up to n of the newest messages, oldest first.
func (g *Game) RecentMessages(n int) []string {
	if n >= len(g.Messages) {
		out := make([]string, len(g.Messages))
		copy(out, g.Messages)
		return out
	}
	out := make([]string, n)
	copy(out, g.Messages[len(g.Messages)-n:])
	return out
}

// PlayerAlive reports whether the player entity still exists.
func (g *Game) PlayerAlive() bool {
	return g.Registry.Alive(g.Player)
}
