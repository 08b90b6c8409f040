package input

import (
	"sort"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceTerminal
	DeviceRemote
)

// Context selects which binding table applies to a key.
type Context int

const (
	// ContextGame is the map view waiting for a player action.
	ContextGame Context = iota
	// ContextMenu is an item selection list.
	ContextMenu
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveNorth
	ActionMoveNorthEast
	ActionMoveEast
	ActionMoveSouthEast
	ActionMoveSouth
	ActionMoveSouthWest
	ActionMoveWest
	ActionMoveNorthWest

	// Player actions
	ActionWait
	ActionPickup
	ActionOpenInventory
	ActionOpenDrop

	// Menu
	ActionMenuUp
	ActionMenuDown
	ActionSelect
	ActionConfirm
	ActionCancel

	// Meta
	ActionQuit
	ActionMapDump
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
// Slot is the zero-based list position for ActionSelect.
type Intent struct {
	Action Action
	Slot   int
}

// None is the empty intent produced when no key was pressed.
var None = Intent{Action: ActionNone}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "k", "arrow_up", "f8").
type RawInput struct {
	Device    Device
	Code      string
	Timestamp time.Time
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// For this turn‑based game each RawInput is already debounced by the
// underlying terminal libraries, but the type keeps the layering explicit.
type DebouncedInput struct {
	Device Device
	Code   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
	}
}

// gameBindings maps raw codes to actions on the map view (3rd-layer bindings).
// Multiple codes may point to the same Action.
var gameBindings = map[string]Action{
	// Cardinal movement (arrows, numpad, Vim, WASD)
	"arrow_up":    ActionMoveNorth,
	"8":           ActionMoveNorth,
	"k":           ActionMoveNorth,
	"w":           ActionMoveNorth,
	"arrow_down":  ActionMoveSouth,
	"2":           ActionMoveSouth,
	"j":           ActionMoveSouth,
	"s":           ActionMoveSouth,
	"arrow_left":  ActionMoveWest,
	"4":           ActionMoveWest,
	"h":           ActionMoveWest,
	"a":           ActionMoveWest,
	"arrow_right": ActionMoveEast,
	"6":           ActionMoveEast,
	"l":           ActionMoveEast,
	"d":           ActionMoveEast,

	// Diagonals (numpad, Vim)
	"9": ActionMoveNorthEast,
	"u": ActionMoveNorthEast,
	"7": ActionMoveNorthWest,
	"y": ActionMoveNorthWest,
	"3": ActionMoveSouthEast,
	"n": ActionMoveSouthEast,
	"1": ActionMoveSouthWest,
	"b": ActionMoveSouthWest,

	".": ActionWait,
	"5": ActionWait,

	"g": ActionPickup,
	"i": ActionOpenInventory,
	"x": ActionOpenDrop,

	"q":      ActionQuit,
	"escape": ActionQuit,
	"ctrl_c": ActionQuit,
	"f8":     ActionMapDump,
}

// menuBindings apply while an item list is shown. Letters a-z select a slot
// and are handled separately in MapToIntent.
var menuBindings = map[string]Action{
	"arrow_up":   ActionMenuUp,
	"arrow_down": ActionMenuDown,
	"enter":      ActionConfirm,
	"escape":     ActionCancel,
	"ctrl_c":     ActionQuit,
}

// MapToIntent is the 3rd+4th layer: it applies the bindings for ctx to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ctx Context, ev DebouncedInput) Intent {
	switch ctx {
	case ContextMenu:
		if act, ok := menuBindings[ev.Code]; ok {
			return Intent{Action: act}
		}
		if len(ev.Code) == 1 && ev.Code[0] >= 'a' && ev.Code[0] <= 'z' {
			return Intent{Action: ActionSelect, Slot: int(ev.Code[0] - 'a')}
		}
	default:
		if act, ok := gameBindings[ev.Code]; ok {
			return Intent{Action: act}
		}
	}
	return None
}

// Resolve runs a raw event through every layer.
func Resolve(ctx Context, raw RawInput) Intent {
	return MapToIntent(ctx, NewDebouncedInput(raw))
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveNorth:
		return "Move North"
	case ActionMoveNorthEast:
		return "Move North-East"
	case ActionMoveEast:
		return "Move East"
	case ActionMoveSouthEast:
		return "Move South-East"
	case ActionMoveSouth:
		return "Move South"
	case ActionMoveSouthWest:
		return "Move South-West"
	case ActionMoveWest:
		return "Move West"
	case ActionMoveNorthWest:
		return "Move North-West"
	case ActionWait:
		return "Wait"
	case ActionPickup:
		return "Pick Up"
	case ActionOpenInventory:
		return "Inventory"
	case ActionOpenDrop:
		return "Drop Item"
	case ActionMenuUp:
		return "Menu Up"
	case ActionMenuDown:
		return "Menu Down"
	case ActionSelect:
		return "Select"
	case ActionConfirm:
		return "Confirm"
	case ActionCancel:
		return "Cancel"
	case ActionQuit:
		return "Quit"
	case ActionMapDump:
		return "Map Dump"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the map view bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range gameBindings {
		result[act] = append(result[act], code)
	}
	// Stable ordering of codes within each action so help text doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
