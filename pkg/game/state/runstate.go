package state

// RunState is the turn controller's current phase.
type RunState string

const (
	PreRun        RunState = "PreRun"
	AwaitingInput RunState = "AwaitingInput"
	PlayerTurn    RunState = "PlayerTurn"
	MonsterTurn   RunState = "MonsterTurn"
	ShowInventory RunState = "ShowInventory"
	ShowDropItem  RunState = "ShowDropItem"
	GameOver      RunState = "GameOver"
)

// IsMenu reports whether the state presents an item selection list.
func (s RunState) IsMenu() bool {
	return s == ShowInventory || s == ShowDropItem
}
