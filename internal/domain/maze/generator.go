// Package maze generates seeded perfect mazes annotated with start, goal and
// hole tiles.
//
// Rooms sit on cells whose coordinates are both even. A cell with exactly one
// odd coordinate is the wall segment between two rooms and is carved when the
// spanning tree joins them. Cells with both coordinates odd are posts and stay
// walls. This is why both dimensions must be odd.
package maze

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/TeamDev2015/labyLink/internal/domain/entity"
)

// ErrInvalidDimensions is returned when a dimension is even or below 3
var ErrInvalidDimensions = errors.New("maze: invalid dimensions")

// MinDimension is the smallest accepted width or height
const MinDimension = 3

// AutoHoles derives the hole count from the number of eligible rooms
const AutoHoles = -1

// holeDensity is the number of eligible rooms per hole when holes are automatic
const holeDensity = 8

// Options controls goal and hole placement
type Options struct {
	Goals int // At least one goal is always placed
	Holes int // Exact hole count, or AutoHoles
}

// DefaultOptions returns one goal and an automatic hole count
func DefaultOptions() Options {
	return Options{Goals: 1, Holes: AutoHoles}
}

// MapResult is the generator output for one level
type MapResult struct {
	Seed   int32
	Grid   *entity.Grid
	StartX int
	StartY int
	Goals  []entity.Point // Primary (farthest) goal first
	Holes  []entity.Point
}

// Start returns the start cell
func (r *MapResult) Start() entity.Point {
	return entity.Point{X: r.StartX, Y: r.StartY}
}

// Generator builds mazes with fixed options
type Generator struct {
	opts      Options
	newSource SourceFunc
}

// New creates a generator using the default random source
func New(opts Options) *Generator {
	if opts.Goals < 1 {
		opts.Goals = 1
	}
	return &Generator{
		opts:      opts,
		newSource: NewSource,
	}
}

// WithSource replaces the random stream constructor
func (g *Generator) WithSource(fn SourceFunc) *Generator {
	g.newSource = fn
	return g
}

// Generate builds a maze with DefaultOptions
func Generate(seed int32, width, height int) (*MapResult, error) {
	return New(DefaultOptions()).Generate(seed, width, height)
}

// ValidateDimensions checks that both dimensions are odd and at least 3.
// Adjusting even sizes is the caller's job.
func ValidateDimensions(width, height int) error {
	if width < MinDimension || height < MinDimension || width%2 == 0 || height%2 == 0 {
		return fmt.Errorf("%w: %dx%d (need odd values >= %d)", ErrInvalidDimensions, width, height, MinDimension)
	}
	return nil
}

// Generate builds the maze for seed. Identical arguments always produce
// identical results.
func (g *Generator) Generate(seed int32, width, height int) (*MapResult, error) {
	if err := ValidateDimensions(width, height); err != nil {
		return nil, err
	}

	rng := g.newSource(seed)
	grid := entity.NewGrid(width, height, entity.TileWall)
	rooms := roomCells(width, height)

	start := rooms[rng.Intn(len(rooms))]
	carve(grid, start, rng)
	grid.Set(start.X, start.Y, entity.TileStart)

	dist := Distances(grid, start)
	goals := g.placeGoals(grid, rooms, start, dist, rng)
	holes := g.placeHoles(grid, rooms, start, goals, dist, rng)

	return &MapResult{
		Seed:   seed,
		Grid:   grid,
		StartX: start.X,
		StartY: start.Y,
		Goals:  goals,
		Holes:  holes,
	}, nil
}

// roomCells lists every room in row-major order
func roomCells(width, height int) []entity.Point {
	rooms := make([]entity.Point, 0, ((width+1)/2)*((height+1)/2))
	for y := 0; y < height; y += 2 {
		for x := 0; x < width; x += 2 {
			rooms = append(rooms, entity.Point{X: x, Y: y})
		}
	}
	return rooms
}

// carve runs an iterative recursive backtracker from start.
// Every room is reached exactly once, so the passages form a spanning tree.
func carve(grid *entity.Grid, start entity.Point, rng Source) {
	stack := []entity.Point{start}
	grid.Set(start.X, start.Y, entity.TileFloor)

	dirs := []entity.Point{{X: 0, Y: -2}, {X: 0, Y: 2}, {X: -2, Y: 0}, {X: 2, Y: 0}}
	candidates := make([]entity.Point, 0, len(dirs))

	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		candidates = candidates[:0]

		for _, d := range dirs {
			nx, ny := curr.X+d.X, curr.Y+d.Y
			if grid.At(nx, ny) == entity.TileWall {
				candidates = append(candidates, d)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := candidates[rng.Intn(len(candidates))]
		grid.Set(curr.X+d.X/2, curr.Y+d.Y/2, entity.TileFloor)
		next := entity.Point{X: curr.X + d.X, Y: curr.Y + d.Y}
		grid.Set(next.X, next.Y, entity.TileFloor)
		stack = append(stack, next)
	}
}

// placeGoals marks the farthest room from start as the primary goal, then
// draws any extra goals from rooms in the farthest quarter of the maze.
func (g *Generator) placeGoals(grid *entity.Grid, rooms []entity.Point, start entity.Point, dist [][]int, rng Source) []entity.Point {
	primary := start
	maxDist := 0
	for _, r := range rooms {
		if d := dist[r.Y][r.X]; d > maxDist {
			maxDist = d
			primary = r
		}
	}
	goals := []entity.Point{primary}

	if g.opts.Goals > 1 {
		threshold := maxDist * 3 / 4
		var far []entity.Point
		for _, r := range rooms {
			if r != start && r != primary && dist[r.Y][r.X] >= threshold {
				far = append(far, r)
			}
		}
		shuffle(rng, far)
		extra := min(g.opts.Goals-1, len(far))
		goals = append(goals, far[:extra]...)
	}

	for _, p := range goals {
		grid.Set(p.X, p.Y, entity.TileGoal)
	}
	return goals
}

// placeHoles draws holes from rooms that stay off every start-to-goal path
// and are not next to the start.
func (g *Generator) placeHoles(grid *entity.Grid, rooms []entity.Point, start entity.Point, goals []entity.Point, dist [][]int, rng Source) []entity.Point {
	protected := mapset.New[entity.Point]()
	for _, goal := range goals {
		for _, p := range ShortestPath(grid, start, goal) {
			protected.Put(p)
		}
	}

	var candidates []entity.Point
	for _, r := range rooms {
		if protected.Has(r) || grid.At(r.X, r.Y) != entity.TileFloor {
			continue
		}
		if dist[r.Y][r.X] <= 2 {
			continue
		}
		candidates = append(candidates, r)
	}

	count := g.opts.Holes
	if count == AutoHoles {
		count = len(candidates) / holeDensity
	}
	count = max(0, min(count, len(candidates)))

	shuffle(rng, candidates)
	holes := candidates[:count]
	for _, p := range holes {
		grid.Set(p.X, p.Y, entity.TileHole)
	}
	return holes
}
