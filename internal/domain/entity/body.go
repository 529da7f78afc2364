package entity

import "math"

// DefaultBallScale is the ball size relative to the tile size
const DefaultBallScale = 0.8

// Ball represents the rolling actor.
// Its size is fixed for its lifetime; only the resolver moves it.
type Ball struct {
	Rect
}

// NewBall creates a ball of the given size with its top-left at the start box
func NewBall(startBox Rect, size int) *Ball {
	return &Ball{
		Rect: Rect{
			Left:   startBox.Left,
			Top:    startBox.Top,
			Right:  startBox.Left + size,
			Bottom: startBox.Top + size,
		},
	}
}

// BallSize returns the ball edge length for a tile size and scale
func BallSize(tileSize int, scale float64) int {
	return int(math.Round(float64(tileSize) * scale))
}

// MoveBy translates the ball, keeping its size
func (b *Ball) MoveBy(dx, dy int) {
	b.Rect = b.Rect.Offset(dx, dy)
}

// Snapshot returns a copy of the ball's box for readers outside the stepper
func (b *Ball) Snapshot() Rect {
	return b.Rect
}
