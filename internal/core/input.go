package core

// Action represents a semantic game command, abstracted from physical key presses.
// The platform maps keys to actions; the engine only ever sees actions.
type Action int

const (
	ActionNone      Action = iota
	ActionStart            // Enter - start a game or continue after an attempt ends
	ActionStop             // S - abandon the running game
	ActionPause            // P - pause/unpause gravity
	ActionMoveLeft         // Left arrow
	ActionMoveRight        // Right arrow
	ActionSoftDrop         // Down arrow - one row down, lock if blocked
	ActionHardDrop         // Space - drop until blocked, then lock
	ActionRotateCW         // Up arrow, X
	ActionRotateCCW        // Z
	ActionHold             // C - swap with the held piece
	ActionQuit             // Q, Ctrl+C - exit the program (handled by the platform)
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionStop:
		return "Stop"
	case ActionPause:
		return "Pause"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionHardDrop:
		return "HardDrop"
	case ActionRotateCW:
		return "RotateCW"
	case ActionRotateCCW:
		return "RotateCCW"
	case ActionHold:
		return "Hold"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
