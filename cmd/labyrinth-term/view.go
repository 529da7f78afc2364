package main

import (
	"strings"

	"github.com/TeamDev2015/labyLink/internal/application/level"
	"github.com/TeamDev2015/labyLink/internal/domain/entity"
)

// ballGlyph marks the cell holding the ball's centre
const ballGlyph = '●'

// cellWidth is how many terminal columns one maze cell takes; terminal cells
// are about twice as tall as they are wide.
const cellWidth = 2

// renderRows draws the maze and the ball as one string per grid row
func renderRows(lvl *level.Level) []string {
	stage := lvl.Stage()
	grid := stage.Grid
	ball := lvl.BallBox()
	at := stage.CellAt(ball.CenterX(), ball.CenterY())

	rows := make([]string, grid.Height)
	for y := 0; y < grid.Height; y++ {
		var sb strings.Builder
		for x := 0; x < grid.Width; x++ {
			glyph := grid.At(x, y).Glyph()
			if x == at.X && y == at.Y {
				glyph = ballGlyph
			}

			sb.WriteRune(glyph)
			fill := ' '
			if glyph == entity.TileWall.Glyph() {
				fill = glyph
			}
			for i := 1; i < cellWidth; i++ {
				sb.WriteRune(fill)
			}
		}
		rows[y] = sb.String()
	}
	return rows
}
