// Package game provides the main game loop and state management.
package game

// State represents where a session stands.
type State int

const (
	// StatePlaying accepts commands.
	StatePlaying State = iota
	// StateWon means the player stands on the exit.
	StateWon
	// StateLost means the player died.
	StateLost
	// StateQuit means the player left the session.
	StateQuit
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Over reports whether the session has ended.
func (s State) Over() bool {
	return s != StatePlaying
}
