package system

import "github.com/TeamDev2015/labyLink/internal/domain/entity"

// Move is the displacement a resolver applied in one frame
type Move struct {
	DX, DY int
	Events []Event
}

// Has reports whether any committed query raised the event
func (m Move) Has(e Event) bool {
	return containsEvent(m.Events, e)
}

// Resolver moves the ball one frame at a time, one axis after the other
type Resolver struct {
	querier Querier
}

// NewResolver creates a resolver that consults q
func NewResolver(q Querier) *Resolver {
	return &Resolver{querier: q}
}

// Resolve moves the ball by up to (dx, dy). The vertical pass commits first
// and the horizontal pass starts from the updated position, which lets the
// ball slide along a wall. A blocked offset shrinks by one unit toward zero
// until it is admissible; zero is always committed. Move.Events holds only
// the events of the two committed queries; events raised by rejected
// candidates are discarded.
func (s *Resolver) Resolve(ball *entity.Ball, dx, dy int) Move {
	var move Move

	appliedY, events := s.moveAxis(ball, 0, dy)
	ball.MoveBy(0, appliedY)
	move.DY = appliedY
	move.Events = append(move.Events, events...)

	appliedX, events := s.moveAxis(ball, dx, 0)
	ball.MoveBy(appliedX, 0)
	move.DX = appliedX
	move.Events = append(move.Events, events...)

	return move
}

// moveAxis finds the largest admissible offset along one axis.
// Exactly one of dx, dy is used. At most |offset|+1 queries are made.
func (s *Resolver) moveAxis(ball *entity.Ball, dx, dy int) (int, []Event) {
	offset := dx + dy
	step := sign(offset)

	for d := offset; ; d -= step {
		var candidate entity.Rect
		if dx != 0 {
			candidate = ball.Offset(d, 0)
		} else {
			candidate = ball.Offset(0, d)
		}

		result := s.querier.Query(candidate)
		if result.Admissible || d == 0 {
			return d, result.Events
		}
	}
}

// Helper functions
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
