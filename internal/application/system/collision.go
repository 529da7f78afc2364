package system

import (
	"math"

	"github.com/TeamDev2015/labyLink/internal/domain/entity"
)

// Event is raised by a collision query when the ball reaches a special tile
type Event int

const (
	EventGoal Event = iota + 1
	EventHole
)

// String returns the string representation of the event
func (e Event) String() string {
	switch e {
	case EventGoal:
		return "Goal"
	case EventHole:
		return "Hole"
	default:
		return "Unknown"
	}
}

// Result is the outcome of a collision query
type Result struct {
	Admissible bool
	Events     []Event
}

// Has reports whether the result carries the event
func (r Result) Has(e Event) bool {
	return containsEvent(r.Events, e)
}

// Querier decides whether a candidate box may be occupied
type Querier interface {
	Query(box entity.Rect) Result
}

// Oracle answers collision queries against a stage.
// It only reads the stage, so one oracle can serve any number of callers.
type Oracle struct {
	stage *entity.Stage

	// Optional callbacks fired synchronously by CanMove
	OnGoal func()
	OnHole func()
}

// NewOracle creates an oracle for the stage
func NewOracle(stage *entity.Stage) *Oracle {
	return &Oracle{stage: stage}
}

// Query checks the 3x3 tile neighbourhood around the box's top-left cell.
// The first intersecting wall in row-major order blocks the box; goal and
// hole events found before it are still reported.
func (o *Oracle) Query(box entity.Rect) Result {
	tileSize := o.stage.TileSize
	anchorX := box.Left / tileSize
	anchorY := box.Top / tileSize

	var events []Event
	for ty := anchorY - 1; ty <= anchorY+1; ty++ {
		for tx := anchorX - 1; tx <= anchorX+1; tx++ {
			tile := o.stage.Grid.At(tx, ty)
			if tile == entity.TileOutside {
				continue
			}

			tileBox := o.stage.TileBox(tx, ty)
			switch tile {
			case entity.TileWall:
				if tileBox.Intersects(box) {
					return Result{Admissible: false, Events: events}
				}
			case entity.TileGoal:
				if tileBox.Contains(box) {
					events = append(events, EventGoal)
				}
			case entity.TileHole:
				if o.inHole(tileBox, box) {
					events = append(events, EventHole)
				}
			}
		}
	}

	return Result{Admissible: true, Events: events}
}

// inHole reports whether the box centre is within half a tile of the hole centre
func (o *Oracle) inHole(hole, box entity.Rect) bool {
	ballCenterX := box.Left + box.Width()/2
	ballCenterY := box.Top + box.Height()/2

	distanceX := float64(hole.CenterX() - ballCenterX)
	distanceY := float64(hole.CenterY() - ballCenterY)

	distance := math.Sqrt(distanceX*distanceX + distanceY*distanceY)
	return distance < float64(o.stage.TileSize/2)
}

// CanMove reports whether the box given by its edges is admissible and fires
// OnGoal / OnHole for every event the query raised.
func (o *Oracle) CanMove(left, top, right, bottom int) bool {
	result := o.Query(entity.Rect{Left: left, Top: top, Right: right, Bottom: bottom})
	for _, e := range result.Events {
		switch e {
		case EventGoal:
			if o.OnGoal != nil {
				o.OnGoal()
			}
		case EventHole:
			if o.OnHole != nil {
				o.OnHole()
			}
		}
	}
	return result.Admissible
}

// Bounded blocks candidates that leave the given bounds before asking the
// wrapped querier. Rooms sit on the grid edge, so without it the ball could
// roll past the outermost tiles.
type Bounded struct {
	Querier
	Bounds entity.Rect
}

// Query implements Querier
func (b Bounded) Query(box entity.Rect) Result {
	if !box.Within(b.Bounds) {
		return Result{Admissible: false}
	}
	return b.Querier.Query(box)
}

func containsEvent(events []Event, e Event) bool {
	for _, ev := range events {
		if ev == e {
			return true
		}
	}
	return false
}
