package tetris

import "time"

// Event is a notification emitted by the game as its state changes.
type Event interface {
	isEvent()
}

// StateChanged is emitted on every state transition. Period is the gravity
// period of the stage being played, which doubles as the music tempo.
type StateChanged struct {
	From    State
	To      State
	Outcome Outcome
	Stage   int
	Round   int
	Period  time.Duration
}

// LinesCleared is emitted when a lock removes at least one row.
type LinesCleared struct {
	Count  int // Rows removed by this lock
	Points int // Score awarded for the lock, drop bonus included
	Lines  int // Lines cleared so far in the attempt
}

// PauseToggled is emitted when the running game is paused or resumed.
type PauseToggled struct {
	Paused bool
}

func (StateChanged) isEvent() {}
func (LinesCleared) isEvent() {}
func (PauseToggled) isEvent() {}

// Observer receives game events. Notify is called synchronously from the
// call that caused the change and must not call back into the game.
type Observer interface {
	Notify(Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Event)

// Notify calls f(e).
func (f ObserverFunc) Notify(e Event) { f(e) }
