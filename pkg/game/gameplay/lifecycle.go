package gameplay

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"

	"gloomhold/pkg/game/config"
	"gloomhold/pkg/game/generator"
	"gloomhold/pkg/game/spawner"
	"gloomhold/pkg/game/state"
	"gloomhold/pkg/logger"
)

// BuildGame creates a new game: it generates the map with the configured
// generator, places the player in the first room and populates the rest.
func BuildGame(cfg config.Config) (*state.Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	seed := cfg.ResolveSeed()
	rng := rand.New(rand.NewSource(seed))

	gen, err := generator.New(cfg.Generator, cfg)
	if err != nil {
		return nil, err
	}

	g := state.NewGame(cfg, rng)
	g.Map = gen.Generate(rng)
	log := logger.Component("lifecycle")
	if cut := generator.DisconnectedRooms(g.Map); len(cut) > 0 {
		log.WithFields(logrus.Fields{
			"seed":      seed,
			"generator": gen.Name(),
			"rooms":     len(cut),
		}).Warn("Generated map has unreachable rooms")
	}
	spawner.Populate(g)

	log.WithFields(logrus.Fields{
		"seed":      seed,
		"generator": gen.Name(),
		"rooms":     len(g.Map.Rooms),
		"entities":  g.Registry.Len(),
	}).Info("Game built")

	logMessage(g, "Welcome to Gloomhold!")
	return g, nil
}
