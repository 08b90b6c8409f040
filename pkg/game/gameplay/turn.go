package gameplay

import (
	"context"
	"fmt"

	"github.com/looplab/fsm"
	"github.com/sirupsen/logrus"

	"gloomhold/pkg/engine/ecs"
	engineinput "gloomhold/pkg/engine/input"
	"gloomhold/pkg/engine/world"
	"gloomhold/pkg/game/components"
	"gloomhold/pkg/game/devtools"
	"gloomhold/pkg/game/menu"
	"gloomhold/pkg/game/state"
	"gloomhold/pkg/logger"
)

// Turn controller events.
const (
	evPrime          = "prime"
	evAct            = "act"
	evOpenInventory  = "open_inventory"
	evOpenDrop       = "open_drop"
	evSelect         = "select"
	evCancel         = "cancel"
	evEndPlayerTurn  = "end_player_turn"
	evEndMonsterTurn = "end_monster_turn"
	evDie            = "die"
)

func st(s state.RunState) string { return string(s) }

// Controller is the turn state machine. Each Tick advances it by at most one
// transition; only AwaitingInput and the menu states consume the intent.
type Controller struct {
	game *state.Game
	fsm  *fsm.FSM
	menu *menu.ItemMenu
	quit bool

	// DumpPath is where the map dump action writes. Empty means the default.
	DumpPath string

	log *logrus.Entry
}

// NewController creates a controller in PreRun for g.
func NewController(g *state.Game) *Controller {
	c := &Controller{
		game: g,
		log:  logger.Component("turn_controller"),
	}
	c.fsm = fsm.NewFSM(
		st(state.PreRun),
		fsm.Events{
			{Name: evPrime, Src: []string{st(state.PreRun)}, Dst: st(state.AwaitingInput)},
			{Name: evAct, Src: []string{st(state.AwaitingInput)}, Dst: st(state.PlayerTurn)},
			{Name: evOpenInventory, Src: []string{st(state.AwaitingInput)}, Dst: st(state.ShowInventory)},
			{Name: evOpenDrop, Src: []string{st(state.AwaitingInput)}, Dst: st(state.ShowDropItem)},
			{Name: evSelect, Src: []string{st(state.ShowInventory), st(state.ShowDropItem)}, Dst: st(state.PlayerTurn)},
			{Name: evCancel, Src: []string{st(state.ShowInventory), st(state.ShowDropItem)}, Dst: st(state.AwaitingInput)},
			{Name: evEndPlayerTurn, Src: []string{st(state.PlayerTurn)}, Dst: st(state.MonsterTurn)},
			{Name: evEndMonsterTurn, Src: []string{st(state.MonsterTurn)}, Dst: st(state.AwaitingInput)},
			{Name: evDie, Src: []string{st(state.PreRun), st(state.PlayerTurn), st(state.MonsterTurn)}, Dst: st(state.GameOver)},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				g.RunState = state.RunState(e.Dst)
				c.log.WithFields(logrus.Fields{
					"event": e.Event,
					"from":  e.Src,
					"to":    e.Dst,
					"turn":  g.Turn,
				}).Debug("Run state changed")
			},
			"leave_" + st(state.MonsterTurn): func(_ context.Context, _ *fsm.Event) {
				g.Turn++
			},
		},
	)
	g.RunState = state.PreRun
	return c
}

// Game returns the game the controller drives.
func (c *Controller) Game() *state.Game {
	return c.game
}

// State returns the current run state.
func (c *Controller) State() state.RunState {
	return state.RunState(c.fsm.Current())
}

// Menu returns the open item menu, or nil outside the menu states.
func (c *Controller) Menu() *menu.ItemMenu {
	if !c.State().IsMenu() {
		return nil
	}
	return c.menu
}

// QuitRequested reports whether the player asked to leave.
func (c *Controller) QuitRequested() bool {
	return c.quit
}

// NeedsInput reports whether the next Tick consumes an intent.
func (c *Controller) NeedsInput() bool {
	switch c.State() {
	case state.AwaitingInput, state.ShowInventory, state.ShowDropItem, state.GameOver:
		return true
	}
	return false
}

// InputContext returns the binding table the next intent should be read with.
func (c *Controller) InputContext() engineinput.Context {
	if c.State().IsMenu() {
		return engineinput.ContextMenu
	}
	return engineinput.ContextGame
}

// Tick advances the state machine by one step. Intents are ignored in the
// pipeline states. A returned error is fatal to the session.
func (c *Controller) Tick(ctx context.Context, intent engineinput.Intent) (state.RunState, error) {
	var err error
	switch c.State() {
	case state.PreRun:
		err = c.runPipeline(ctx, evPrime)
	case state.AwaitingInput:
		err = c.playerInput(ctx, intent)
	case state.PlayerTurn:
		err = c.runPipeline(ctx, evEndPlayerTurn)
	case state.MonsterTurn:
		err = c.runPipeline(ctx, evEndMonsterTurn)
	case state.ShowInventory:
		err = c.menuInput(ctx, intent, c.useItem)
	case state.ShowDropItem:
		err = c.menuInput(ctx, intent, c.dropItem)
	case state.GameOver:
		if intent.Action == engineinput.ActionQuit {
			c.quit = true
		}
	}
	return c.State(), err
}

func (c *Controller) fire(ctx context.Context, event string) error {
	if err := c.fsm.Event(ctx, event); err != nil {
		return fmt.Errorf("turn controller %s in %s: %w", event, c.State(), err)
	}
	return nil
}

func (c *Controller) runPipeline(ctx context.Context, next string) error {
	if err := RunSystems(c.game); err != nil {
		return err
	}
	if !c.game.PlayerAlive() {
		return c.fire(ctx, evDie)
	}
	return c.fire(ctx, next)
}

func (c *Controller) playerInput(ctx context.Context, intent engineinput.Intent) error {
	g := c.game
	switch intent.Action {
	case engineinput.ActionNone:
		return nil
	case engineinput.ActionQuit:
		c.quit = true
		return nil
	case engineinput.ActionMapDump:
		path, err := devtools.DumpRevealedMapToFile(g, c.DumpPath)
		if err != nil {
			logMessage(g, "Map dump failed: %v", err)
		} else {
			logMessage(g, "Map dumped to %s", path)
		}
		return nil
	case engineinput.ActionPickup:
		GetItem(g)
		return c.fire(ctx, evAct)
	case engineinput.ActionWait:
		return c.fire(ctx, evAct)
	case engineinput.ActionOpenInventory:
		c.menu = menu.NewBackpackMenu(g, "Inventory")
		return c.fire(ctx, evOpenInventory)
	case engineinput.ActionOpenDrop:
		c.menu = menu.NewBackpackMenu(g, "Drop Which Item?")
		return c.fire(ctx, evOpenDrop)
	}

	if d, ok := directionFor(intent.Action); ok {
		TryMovePlayer(g, d)
		return c.fire(ctx, evAct)
	}
	return nil
}

func (c *Controller) menuInput(ctx context.Context, intent engineinput.Intent, apply func(item ecs.Entity) bool) error {
	if intent.Action == engineinput.ActionQuit {
		c.quit = true
		return nil
	}
	result, item := c.menu.Handle(intent)
	switch result {
	case menu.Cancel:
		c.menu = nil
		return c.fire(ctx, evCancel)
	case menu.Selected:
		if !apply(item) {
			c.menu = nil
			return c.fire(ctx, evCancel)
		}
		c.menu = nil
		return c.fire(ctx, evSelect)
	}
	return nil
}

// useItem queues drinking the chosen item. Only potions can be used.
func (c *Controller) useItem(item ecs.Entity) bool {
	g := c.game
	if !g.Stores.Potions.Has(item) {
		logMessage(g, "You cannot use the %s.", g.Stores.NameOf(item))
		return false
	}
	g.Stores.WantsDrink.Insert(g.Player, components.WantsToDrinkPotion{Potion: item})
	return true
}

// dropItem queues dropping the chosen item at the player's feet.
func (c *Controller) dropItem(item ecs.Entity) bool {
	c.game.Stores.WantsDrop.Insert(c.game.Player, components.WantsToDropItem{Item: item})
	return true
}

var movementDirections = map[engineinput.Action]world.Direction{
	engineinput.ActionMoveNorth:     world.North,
	engineinput.ActionMoveNorthEast: world.NorthEast,
	engineinput.ActionMoveEast:      world.East,
	engineinput.ActionMoveSouthEast: world.SouthEast,
	engineinput.ActionMoveSouth:     world.South,
	engineinput.ActionMoveSouthWest: world.SouthWest,
	engineinput.ActionMoveWest:      world.West,
	engineinput.ActionMoveNorthWest: world.NorthWest,
}

func directionFor(a engineinput.Action) (world.Direction, bool) {
	d, ok := movementDirections[a]
	return d, ok
}
