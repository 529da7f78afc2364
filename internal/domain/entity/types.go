package entity

import "image/color"

// TileType represents the type of a tile
type TileType int

const (
	TileFloor TileType = iota
	TileWall
	TileStart
	TileGoal
	TileHole

	// TileOutside is returned for lookups past the grid edge. It is never stored.
	TileOutside TileType = -1
)

// String returns the string representation of the tile type
func (t TileType) String() string {
	switch t {
	case TileFloor:
		return "Floor"
	case TileWall:
		return "Wall"
	case TileStart:
		return "Start"
	case TileGoal:
		return "Goal"
	case TileHole:
		return "Hole"
	case TileOutside:
		return "Outside"
	default:
		return "Unknown"
	}
}

// Passable reports whether an actor may occupy the tile
func (t TileType) Passable() bool {
	return t != TileWall
}

// Color returns the render colour of the tile type
func (t TileType) Color() color.RGBA {
	switch t {
	case TileFloor:
		return color.RGBA{0, 255, 255, 255}
	case TileStart:
		return color.RGBA{0, 200, 0, 255}
	case TileGoal:
		return color.RGBA{220, 0, 0, 255}
	case TileHole:
		return color.RGBA{32, 32, 32, 255}
	default:
		return color.RGBA{0, 0, 0, 255}
	}
}

// Glyph returns the terminal rune of the tile type
func (t TileType) Glyph() rune {
	switch t {
	case TileFloor:
		return ' '
	case TileWall:
		return '█'
	case TileStart:
		return 'S'
	case TileGoal:
		return 'G'
	case TileHole:
		return 'o'
	default:
		return '?'
	}
}

// Point is a cell coordinate in the grid
type Point struct {
	X, Y int
}

// Grid holds the tile kinds of a generated maze.
// It is written once by the generator and read-only afterwards.
type Grid struct {
	Width  int
	Height int
	Tiles  [][]TileType
}

// NewGrid creates a grid filled with the given tile type
func NewGrid(width, height int, fill TileType) *Grid {
	tiles := make([][]TileType, height)
	for y := range tiles {
		tiles[y] = make([]TileType, width)
		for x := range tiles[y] {
			tiles[y][x] = fill
		}
	}
	return &Grid{Width: width, Height: height, Tiles: tiles}
}

// InBounds reports whether the cell lies inside the grid
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the tile at the given cell, or TileOutside past the edge
func (g *Grid) At(x, y int) TileType {
	if !g.InBounds(x, y) {
		return TileOutside
	}
	return g.Tiles[y][x]
}

// Set overwrites the tile at the given cell. Out-of-range cells are ignored.
func (g *Grid) Set(x, y int, t TileType) {
	if !g.InBounds(x, y) {
		return
	}
	g.Tiles[y][x] = t
}

// Cells returns every cell of the given type in row-major order
func (g *Grid) Cells(t TileType) []Point {
	var cells []Point
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Tiles[y][x] == t {
				cells = append(cells, Point{X: x, Y: y})
			}
		}
	}
	return cells
}

// Count returns the number of cells of the given type
func (g *Grid) Count(t TileType) int {
	return len(g.Cells(t))
}

// Equal reports whether both grids hold identical tiles
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.Width != other.Width || g.Height != other.Height {
		return false
	}
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Tiles[y][x] != other.Tiles[y][x] {
				return false
			}
		}
	}
	return true
}

// Stage lays a grid out in world space with a fixed tile size
type Stage struct {
	Grid     *Grid
	TileSize int
}

// NewStage creates a stage for the grid
func NewStage(grid *Grid, tileSize int) *Stage {
	return &Stage{Grid: grid, TileSize: tileSize}
}

// TileBox returns the world-space box of a cell.
// Each box is inset by one unit on every side, leaving a seam between tiles.
func (s *Stage) TileBox(x, y int) Rect {
	left := x*s.TileSize + 1
	top := y*s.TileSize + 1
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + s.TileSize - 2,
		Bottom: top + s.TileSize - 2,
	}
}

// CellAt returns the cell containing the given world coordinates
func (s *Stage) CellAt(px, py int) Point {
	return Point{X: px / s.TileSize, Y: py / s.TileSize}
}

// Bounds returns the world-space extent of the whole grid
func (s *Stage) Bounds() Rect {
	return Rect{
		Right:  s.Grid.Width * s.TileSize,
		Bottom: s.Grid.Height * s.TileSize,
	}
}
