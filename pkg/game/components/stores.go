package components

import "gloomhold/pkg/engine/ecs"

// Stores groups one store per component type.
type Stores struct {
	Positions    *ecs.Store[Position]
	Renderables  *ecs.Store[Renderable]
	Players      *ecs.Store[Player]
	Monsters     *ecs.Store[Monster]
	Names        *ecs.Store[Name]
	Viewsheds    *ecs.Store[Viewshed]
	CombatStats  *ecs.Store[CombatStats]
	SufferDamage *ecs.Store[SufferDamage]
	WantsToMelee *ecs.Store[WantsToMelee]
	WantsPickup  *ecs.Store[WantsToPickupItem]
	WantsDrink   *ecs.Store[WantsToDrinkPotion]
	WantsDrop    *ecs.Store[WantsToDropItem]
	Items        *ecs.Store[Item]
	Potions      *ecs.Store[Potion]
	InBackpack   *ecs.Store[InBackpack]
	BlocksTile   *ecs.Store[BlocksTile]
}

// NewStores creates every store and registers it with r so entity
// destruction strips all components.
func NewStores(r *ecs.Registry) *Stores {
	s := &Stores{
		Positions:    ecs.NewStore[Position]("position"),
		Renderables:  ecs.NewStore[Renderable]("renderable"),
		Players:      ecs.NewStore[Player]("player"),
		Monsters:     ecs.NewStore[Monster]("monster"),
		Names:        ecs.NewStore[Name]("name"),
		Viewsheds:    ecs.NewStore[Viewshed]("viewshed"),
		CombatStats:  ecs.NewStore[CombatStats]("combat_stats"),
		SufferDamage: ecs.NewStore[SufferDamage]("suffer_damage"),
		WantsToMelee: ecs.NewStore[WantsToMelee]("wants_to_melee"),
		WantsPickup:  ecs.NewStore[WantsToPickupItem]("wants_pickup"),
		WantsDrink:   ecs.NewStore[WantsToDrinkPotion]("wants_drink"),
		WantsDrop:    ecs.NewStore[WantsToDropItem]("wants_drop"),
		Items:        ecs.NewStore[Item]("item"),
		Potions:      ecs.NewStore[Potion]("potion"),
		InBackpack:   ecs.NewStore[InBackpack]("in_backpack"),
		BlocksTile:   ecs.NewStore[BlocksTile]("blocks_tile"),
	}
	r.Register(
		s.Positions, s.Renderables, s.Players, s.Monsters, s.Names,
		s.Viewsheds, s.CombatStats, s.SufferDamage, s.WantsToMelee,
		s.WantsPickup, s.WantsDrink, s.WantsDrop, s.Items, s.Potions,
		s.InBackpack, s.BlocksTile,
	)
	return s
}

// NameOf returns the entity's display name, or a placeholder.
func (s *Stores) NameOf(e ecs.Entity) string {
	if n, ok := s.Names.Get(e); ok {
		return n.Name
	}
	return "something"
}

// SetPosition moves e and marks its viewshed dirty.
func (s *Stores) SetPosition(e ecs.Entity, x, y int) {
	s.Positions.Insert(e, Position{X: x, Y: y})
	if vs, ok := s.Viewsheds.Get(e); ok {
		vs.Dirty = true
	}
}

// Backpack returns the items owned by e, in pickup order.
func (s *Stores) Backpack(e ecs.Entity) []ecs.Entity {
	var items []ecs.Entity
	for _, it := range s.InBackpack.Entities() {
		if bp, _ := s.InBackpack.Get(it); bp.Owner == e {
			items = append(items, it)
		}
	}
	return items
}
