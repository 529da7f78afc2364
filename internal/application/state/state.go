package state

// GameState represents the current state of a level
type GameState int

const (
	StatePlaying GameState = iota
	StatePaused
	StateCleared // The ball settled inside a goal tile
	StateFell    // The ball dropped into a hole
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateCleared:
		return "Cleared"
	case StateFell:
		return "Fell"
	default:
		return "Unknown"
	}
}

// Finished reports whether the level has ended
func (s GameState) Finished() bool {
	return s == StateCleared || s == StateFell
}
