// Package menu provides the item selection lists shown by the inventory and
// drop screens. A menu never blocks: it consumes one intent per call and
// reports whether the player picked, cancelled or did nothing.
package menu

import (
	"fmt"

	"gloomhold/pkg/engine/ecs"
	engineinput "gloomhold/pkg/engine/input"
	"gloomhold/pkg/game/state"
)

// Result is the outcome of feeding one intent to a menu.
type Result int

const (
	NoResponse Result = iota
	Cancel
	Selected
)

func (r Result) String() string {
	switch r {
	case Cancel:
		return "Cancel"
	case Selected:
		return "Selected"
	default:
		return "NoResponse"
	}
}

// MenuItem represents a single item in a menu.
type MenuItem interface {
	// GetLabel returns the display label for this menu item.
	GetLabel() string
	// IsSelectable returns whether this item can be selected.
	IsSelectable() bool
}

// BackpackItem is a carried item entity listed in a menu.
type BackpackItem struct {
	Entity ecs.Entity
	Name   string
}

// GetLabel implements MenuItem.
func (b BackpackItem) GetLabel() string {
	return b.Name
}

// IsSelectable implements MenuItem.
func (b BackpackItem) IsSelectable() bool {
	return b.Entity != ecs.NilEntity
}

// ItemMenu is a selectable list of backpack items.
type ItemMenu struct {
	Title        string
	Instructions string
	Items        []BackpackItem
	Selected     int
}

// NewBackpackMenu lists everything the player carries.
func NewBackpackMenu(g *state.Game, title string) *ItemMenu {
	m := &ItemMenu{
		Title:        title,
		Instructions: "ESCAPE to cancel",
	}
	for _, e := range g.Stores.Backpack(g.Player) {
		m.Items = append(m.Items, BackpackItem{Entity: e, Name: g.Stores.NameOf(e)})
	}
	return m
}

// Labels returns "a) Name" style lines in list order.
func (m *ItemMenu) Labels() []string {
	labels := make([]string, len(m.Items))
	for i, it := range m.Items {
		labels[i] = fmt.Sprintf("%c) %s", 'a'+rune(i), it.GetLabel())
	}
	return labels
}

// Handle applies one intent. On Selected the chosen entity is returned.
func (m *ItemMenu) Handle(intent engineinput.Intent) (Result, ecs.Entity) {
	switch intent.Action {
	case engineinput.ActionCancel:
		return Cancel, ecs.NilEntity
	case engineinput.ActionMenuUp:
		m.moveSelection(-1)
	case engineinput.ActionMenuDown:
		m.moveSelection(1)
	case engineinput.ActionSelect:
		if intent.Slot >= 0 && intent.Slot < len(m.Items) && m.Items[intent.Slot].IsSelectable() {
			m.Selected = intent.Slot
			return Selected, m.Items[intent.Slot].Entity
		}
	case engineinput.ActionConfirm:
		if m.Selected >= 0 && m.Selected < len(m.Items) && m.Items[m.Selected].IsSelectable() {
			return Selected, m.Items[m.Selected].Entity
		}
	}
	return NoResponse, ecs.NilEntity
}

// moveSelection steps to the next selectable item in dir, wrapping around.
func (m *ItemMenu) moveSelection(dir int) {
	n := len(m.Items)
	if n == 0 {
		return
	}
	for step := 1; step <= n; step++ {
		i := ((m.Selected+dir*step)%n + n) % n
		if m.Items[i].IsSelectable() {
			m.Selected = i
			return
		}
	}
}
