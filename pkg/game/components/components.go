// Package components defines every component type attached to entities and
// the set of typed stores that hold them.
package components

import (
	"gloomhold/pkg/engine/ecs"
	"gloomhold/pkg/engine/world"
)

// Position places an entity on a map tile.
type Position struct {
	X int
	Y int
}

// Point converts the position to a map coordinate.
func (p Position) Point() world.Point {
	return world.Point{X: p.X, Y: p.Y}
}

// Color is a named terminal color understood by every renderer backend.
type Color string

const (
	ColorBlack   Color = "black"
	ColorRed     Color = "red"
	ColorYellow  Color = "yellow"
	ColorMagenta Color = "magenta"
	ColorGreen   Color = "green"
	ColorCyan    Color = "cyan"
	ColorWhite   Color = "white"
	ColorGray    Color = "gray"
)

// Renderable is how an entity is drawn. Entities with a higher RenderOrder
// are drawn first, so lower values end up on top.
type Renderable struct {
	Glyph       rune
	FG          Color
	BG          Color
	RenderOrder int
}

// Player marks the entity controlled by input.
type Player struct{}

// Monster marks entities driven by the monster AI.
type Monster struct{}

// Name is the display name used in log lines.
type Name struct {
	Name string
}

// Viewshed holds what an entity can currently see.
type Viewshed struct {
	VisibleTiles []world.Point
	Range        int
	Dirty        bool
}

// CanSee reports whether p is in the last computed visible set.
func (v *Viewshed) CanSee(p world.Point) bool {
	for _, t := range v.VisibleTiles {
		if t == p {
			return true
		}
	}
	return false
}

// CombatStats are the fighting attributes of an entity.
type CombatStats struct {
	MaxHP   int
	HP      int
	Defense int
	Power   int
}

// SufferDamage queues damage taken during one pipeline pass.
type SufferDamage struct {
	Amounts []int
}

// Total returns the sum of the queued amounts.
func (s SufferDamage) Total() int {
	total := 0
	for _, a := range s.Amounts {
		total += a
	}
	return total
}

// WantsToMelee is a one-shot attack intent.
type WantsToMelee struct {
	Target ecs.Entity
}

// WantsToPickupItem is a one-shot pickup intent.
type WantsToPickupItem struct {
	CollectedBy ecs.Entity
	Item        ecs.Entity
}

// WantsToDrinkPotion is a one-shot consume intent held by the drinker.
type WantsToDrinkPotion struct {
	Potion ecs.Entity
}

// WantsToDropItem is a one-shot drop intent held by the carrier.
type WantsToDropItem struct {
	Item ecs.Entity
}

// Item marks entities that can be picked up.
type Item struct{}

// Potion heals whoever drinks it.
type Potion struct {
	HealAmount int
}

// InBackpack means the item is carried by Owner and has no Position.
type InBackpack struct {
	Owner ecs.Entity
}

// BlocksTile makes the entity's tile impassable after indexing.
type BlocksTile struct{}
