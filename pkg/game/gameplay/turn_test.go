package gameplay

import (
	"context"
	"errors"
	"testing"

	engineinput "gloomhold/pkg/engine/input"
	"gloomhold/pkg/game/components"
	"gloomhold/pkg/game/config"
	"gloomhold/pkg/game/spawner"
	"gloomhold/pkg/game/state"
	"gloomhold/pkg/game/systems"
)

func TestPipelineOrder(t *testing.T) {
	want := []string{
		"visibility", "monster_ai", "map_indexing", "melee_combat",
		"damage", "item_collection", "potion_use", "item_drop",
	}
	if len(pipeline) != len(want) {
		t.Fatalf("pipeline has %d systems, want %d", len(pipeline), len(want))
	}
	for i, sys := range pipeline {
		if sys.name != want[i] {
			t.Errorf("pipeline[%d] = %s, want %s", i, sys.name, want[i])
		}
	}
}

func TestControllerBasicCycle(t *testing.T) {
	g := newArena(t, 20, 20, 5, 5)
	c := NewController(g)

	if c.State() != state.PreRun || c.NeedsInput() {
		t.Fatalf("new controller state = %v", c.State())
	}
	tick(t, c, engineinput.None, state.AwaitingInput)
	if !g.Map.Visible[g.Map.Index(5, 5)] {
		t.Error("PreRun did not prime visibility")
	}

	tick(t, c, engineinput.None, state.AwaitingInput)
	tick(t, c, intent(engineinput.ActionMoveEast), state.PlayerTurn)
	tick(t, c, engineinput.None, state.MonsterTurn)
	tick(t, c, engineinput.None, state.AwaitingInput)

	if g.PlayerPos.X != 6 {
		t.Errorf("player x = %d, want 6", g.PlayerPos.X)
	}
	if g.Turn != 1 {
		t.Errorf("Turn = %d, want 1", g.Turn)
	}
	if g.RunState != state.AwaitingInput {
		t.Errorf("game RunState = %v, want mirror of controller", g.RunState)
	}
}

func TestControllerQuitAndMapDump(t *testing.T) {
	g := newArena(t, 20, 20, 5, 5)
	c := NewController(g)
	c.DumpPath = t.TempDir() + "/map.txt"
	tick(t, c, engineinput.None, state.AwaitingInput)

	tick(t, c, intent(engineinput.ActionMapDump), state.AwaitingInput)
	if last := g.Messages[len(g.Messages)-1]; last == "" {
		t.Error("map dump produced no message")
	}
	tick(t, c, intent(engineinput.ActionQuit), state.AwaitingInput)
	if !c.QuitRequested() {
		t.Error("QuitRequested() = false after quit")
	}
}

func TestControllerInventoryDrink(t *testing.T) {
	g := newArena(t, 20, 20, 5, 5)
	potion := spawner.HealthPotion(g, 5, 5)
	c := NewController(g)
	tick(t, c, engineinput.None, state.AwaitingInput)

	tick(t, c, intent(engineinput.ActionPickup), state.PlayerTurn)
	tick(t, c, engineinput.None, state.MonsterTurn)
	tick(t, c, engineinput.None, state.AwaitingInput)
	if bp, ok := g.Stores.InBackpack.Get(potion); !ok || bp.Owner != g.Player {
		t.Fatal("potion not in backpack after pickup turn")
	}

	stats, _ := g.Stores.CombatStats.Get(g.Player)
	stats.HP = 20

	tick(t, c, intent(engineinput.ActionOpenInventory), state.ShowInventory)
	if c.InputContext() != engineinput.ContextMenu {
		t.Error("menu state does not use menu bindings")
	}
	if m := c.Menu(); m == nil || len(m.Items) != 1 {
		t.Fatalf("inventory menu = %+v", m)
	}
	tick(t, c, engineinput.None, state.ShowInventory)
	tick(t, c, engineinput.Intent{Action: engineinput.ActionSelect, Slot: 0}, state.PlayerTurn)
	tick(t, c, engineinput.None, state.MonsterTurn)

	if got := hpOf(t, g, g.Player); got != 28 {
		t.Errorf("HP after drinking = %d, want 28", got)
	}
	if g.Registry.Alive(potion) {
		t.Error("potion survived drinking")
	}
}

func TestControllerDropMenuCancel(t *testing.T) {
	g := newArena(t, 20, 20, 5, 5)
	potion := spawner.HealthPotion(g, 5, 5)
	g.Stores.Positions.Remove(potion)
	g.Stores.InBackpack.Insert(potion, components.InBackpack{Owner: g.Player})
	c := NewController(g)
	tick(t, c, engineinput.None, state.AwaitingInput)

	tick(t, c, intent(engineinput.ActionOpenDrop), state.ShowDropItem)
	tick(t, c, intent(engineinput.ActionCancel), state.AwaitingInput)
	if !g.Stores.InBackpack.Has(potion) || g.Stores.WantsDrop.Len() != 0 {
		t.Error("cancel mutated the world")
	}
	if c.Menu() != nil {
		t.Error("menu still open after cancel")
	}

	tick(t, c, intent(engineinput.ActionOpenDrop), state.ShowDropItem)
	tick(t, c, intent(engineinput.ActionConfirm), state.PlayerTurn)
	tick(t, c, engineinput.None, state.MonsterTurn)
	pos, ok := g.Stores.Positions.Get(potion)
	if !ok || pos.Point() != g.PlayerPos {
		t.Errorf("dropped potion at %v, %v, want %v", pos, ok, g.PlayerPos)
	}
}

func TestGoblinFightToTheDeath(t *testing.T) {
	g := newArena(t, 20, 20, 5, 5)
	goblin := spawner.Goblin(g, 6, 5)
	c := NewController(g)
	tick(t, c, engineinput.None, state.AwaitingInput)

	for round := 1; round <= 4; round++ {
		tick(t, c, intent(engineinput.ActionMoveEast), state.PlayerTurn)
		tick(t, c, engineinput.None, state.MonsterTurn)

		if round < 4 {
			if got, want := hpOf(t, g, goblin), 16-4*round; got != want {
				t.Fatalf("round %d: goblin HP = %d, want %d", round, got, want)
			}
			tick(t, c, engineinput.None, state.AwaitingInput)
		}
	}
	if g.Registry.Alive(goblin) {
		t.Fatal("goblin alive after its HP reached 0")
	}
	if got := hpOf(t, g, g.Player); got != 14 {
		t.Errorf("player HP = %d, want 14", got)
	}
	tick(t, c, engineinput.None, state.AwaitingInput)
}

func TestControllerPlayerDeath(t *testing.T) {
	g := newArena(t, 20, 20, 5, 5)
	spawner.Orc(g, 6, 6)
	stats, _ := g.Stores.CombatStats.Get(g.Player)
	stats.HP = 1
	c := NewController(g)

	tick(t, c, engineinput.None, state.GameOver)
	if g.PlayerAlive() {
		t.Error("player alive in GameOver")
	}
	tick(t, c, intent(engineinput.ActionMoveEast), state.GameOver)
	tick(t, c, intent(engineinput.ActionQuit), state.GameOver)
	if !c.QuitRequested() {
		t.Error("quit ignored in GameOver")
	}
}

func TestControllerInvariantViolationIsFatal(t *testing.T) {
	g := newArena(t, 20, 20, 5, 5)
	orc := spawner.Orc(g, 15, 15)
	c := NewController(g)
	tick(t, c, engineinput.None, state.AwaitingInput)

	g.Stores.WantsToMelee.Insert(g.Player, components.WantsToMelee{Target: orc})
	if err := g.Registry.Destroy(orc); err != nil {
		t.Fatal(err)
	}
	tick(t, c, intent(engineinput.ActionWait), state.PlayerTurn)
	_, err := c.Tick(context.Background(), engineinput.None)
	if !errors.Is(err, systems.ErrInvariant) {
		t.Errorf("Tick() error = %v, want ErrInvariant", err)
	}
}

func TestBuildGameIsDeterministic(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 1234
	a, err := BuildGame(cfg)
	if err != nil {
		t.Fatal(err)
	}
	b, err := BuildGame(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if a.PlayerPos != b.PlayerPos || a.Registry.Len() != b.Registry.Len() {
		t.Errorf("same seed built different games: %v/%d vs %v/%d",
			a.PlayerPos, a.Registry.Len(), b.PlayerPos, b.Registry.Len())
	}
	if a.PlayerPos != a.Map.Rooms[0].Center() {
		t.Errorf("player at %v, want first room center", a.PlayerPos)
	}
}

func TestBuildGameRejectsBadConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Generator = "caves"
	if _, err := BuildGame(cfg); err == nil {
		t.Error("BuildGame() accepted an unknown generator")
	}
	cfg = config.Default()
	cfg.MaxRooms = 0
	if _, err := BuildGame(cfg); err == nil {
		t.Error("BuildGame() accepted MaxRooms = 0")
	}
}
