// Package spawner builds the player, monsters and items and scatters them
// through generated rooms.
package spawner

import (
	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"gloomhold/pkg/engine/ecs"
	"gloomhold/pkg/engine/world"
	"gloomhold/pkg/game/components"
	"gloomhold/pkg/game/state"
	"gloomhold/pkg/logger"
)

// Render orders: lower values are drawn last, on top.
const (
	renderOrderPlayer  = 0
	renderOrderMonster = 1
	renderOrderItem    = 2
)

// maxPlacementAttempts bounds the search for a free tile in a room.
const maxPlacementAttempts = 100

// Player creates the player entity at (x, y) and records it on g.
func Player(g *state.Game, x, y int) ecs.Entity {
	s := g.Stores
	e := g.Registry.Create()
	s.Positions.Insert(e, components.Position{X: x, Y: y})
	s.Renderables.Insert(e, components.Renderable{
		Glyph:       '@',
		FG:          components.ColorYellow,
		BG:          components.ColorBlack,
		RenderOrder: renderOrderPlayer,
	})
	s.Players.Insert(e, components.Player{})
	s.Viewsheds.Insert(e, components.Viewshed{Range: g.Config.SightRange, Dirty: true})
	s.Names.Insert(e, components.Name{Name: gotext.Get("Player")})
	s.CombatStats.Insert(e, components.CombatStats{MaxHP: 30, HP: 30, Defense: 2, Power: 5})

	g.Player = e
	g.PlayerPos = world.Point{X: x, Y: y}
	return e
}

// RandomMonster creates an orc or a goblin with equal odds.
func RandomMonster(g *state.Game, x, y int) ecs.Entity {
	if g.RNG.Intn(2) == 0 {
		return Orc(g, x, y)
	}
	return Goblin(g, x, y)
}

// Orc creates an orc at (x, y).
func Orc(g *state.Game, x, y int) ecs.Entity {
	return monster(g, x, y, 'o', gotext.Get("Orc"))
}

// Goblin creates a goblin at (x, y).
func Goblin(g *state.Game, x, y int) ecs.Entity {
	return monster(g, x, y, 'g', gotext.Get("Goblin"))
}

func monster(g *state.Game, x, y int, glyph rune, name string) ecs.Entity {
	s := g.Stores
	e := g.Registry.Create()
	s.Positions.Insert(e, components.Position{X: x, Y: y})
	s.Renderables.Insert(e, components.Renderable{
		Glyph:       glyph,
		FG:          components.ColorRed,
		BG:          components.ColorBlack,
		RenderOrder: renderOrderMonster,
	})
	s.Viewsheds.Insert(e, components.Viewshed{Range: g.Config.SightRange, Dirty: true})
	s.Monsters.Insert(e, components.Monster{})
	s.Names.Insert(e, components.Name{Name: name})
	s.BlocksTile.Insert(e, components.BlocksTile{})
	s.CombatStats.Insert(e, components.CombatStats{MaxHP: 16, HP: 16, Defense: 1, Power: 4})
	return e
}

// HealthPotion creates a health potion lying at (x, y).
func HealthPotion(g *state.Game, x, y int) ecs.Entity {
	s := g.Stores
	e := g.Registry.Create()
	s.Positions.Insert(e, components.Position{X: x, Y: y})
	s.Renderables.Insert(e, components.Renderable{
		Glyph:       '¡',
		FG:          components.ColorMagenta,
		BG:          components.ColorBlack,
		RenderOrder: renderOrderItem,
	})
	s.Names.Insert(e, components.Name{Name: gotext.Get("Health Potion")})
	s.Items.Insert(e, components.Item{})
	s.Potions.Insert(e, components.Potion{HealAmount: g.Config.PotionHeal})
	return e
}

// FillRoom populates a room with a random number of monsters and potions,
// each on its own interior tile.
func FillRoom(g *state.Game, room world.Rect) {
	numMonsters := rollDice(g, 1, g.Config.MaxMonstersPerRoom+2) - 3
	numItems := rollDice(g, 1, g.Config.MaxItemsPerRoom+2) - 3

	taken := mapset.New[int]()
	monsterSpots := pickSpots(g, room, numMonsters, &taken)
	itemSpots := pickSpots(g, room, numItems, &taken)

	for _, p := range monsterSpots {
		RandomMonster(g, p.X, p.Y)
	}
	for _, p := range itemSpots {
		HealthPotion(g, p.X, p.Y)
	}

	logger.Component("spawner").WithFields(logrus.Fields{
		"room":     room,
		"monsters": len(monsterSpots),
		"items":    len(itemSpots),
	}).Debug("Room populated")
}

// Populate spawns the player in the first room and fills every other room.
func Populate(g *state.Game) {
	if len(g.Map.Rooms) == 0 {
		panic("spawner: map has no rooms")
	}
	start := g.Map.Rooms[0].Center()
	Player(g, start.X, start.Y)
	for _, room := range g.Map.Rooms[1:] {
		FillRoom(g, room)
	}
}

func pickSpots(g *state.Game, room world.Rect, n int, taken *mapset.Set[int]) []world.Point {
	var spots []world.Point
	for i := 0; i < n; i++ {
		for attempt := 0; attempt < maxPlacementAttempts; attempt++ {
			p := world.Point{
				X: room.X1 + rollDice(g, 1, room.X2-room.X1),
				Y: room.Y1 + rollDice(g, 1, room.Y2-room.Y1),
			}
			idx := g.Map.IndexOf(p)
			if taken.Has(idx) {
				continue
			}
			taken.Put(idx)
			spots = append(spots, p)
			break
		}
	}
	return spots
}

// rollDice sums n rolls of a die with the given number of sides.
func rollDice(g *state.Game, n, sides int) int {
	total := 0
	for i := 0; i < n; i++ {
		total += g.RNG.Intn(sides) + 1
	}
	return total
}
