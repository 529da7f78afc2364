package maze

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/TeamDev2015/labyLink/internal/domain/entity"
)

var steps = []entity.Point{{X: 0, Y: -1}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 1, Y: 0}}

// walkable reports whether a BFS may enter the cell
func walkable(grid *entity.Grid, x, y int) bool {
	return grid.InBounds(x, y) && grid.At(x, y).Passable()
}

// Distances returns the BFS step count from start to every cell.
// Walls and unreachable cells hold -1.
func Distances(grid *entity.Grid, start entity.Point) [][]int {
	dist := make([][]int, grid.Height)
	for y := range dist {
		dist[y] = make([]int, grid.Width)
		for x := range dist[y] {
			dist[y][x] = -1
		}
	}
	if !walkable(grid, start.X, start.Y) {
		return dist
	}

	dist[start.Y][start.X] = 0
	queue := []entity.Point{start}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		for _, d := range steps {
			nx, ny := curr.X+d.X, curr.Y+d.Y
			if walkable(grid, nx, ny) && dist[ny][nx] < 0 {
				dist[ny][nx] = dist[curr.Y][curr.X] + 1
				queue = append(queue, entity.Point{X: nx, Y: ny})
			}
		}
	}
	return dist
}

// ShortestPath returns the cells from start to end inclusive, or nil when end
// cannot be reached. In a perfect maze this is the unique solution path.
func ShortestPath(grid *entity.Grid, start, end entity.Point) []entity.Point {
	if !walkable(grid, start.X, start.Y) || !walkable(grid, end.X, end.Y) {
		return nil
	}

	cameFrom := make(map[entity.Point]entity.Point)
	visited := mapset.New[entity.Point]()
	visited.Put(start)
	queue := []entity.Point{start}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		if curr == end {
			var path []entity.Point
			for curr != start {
				path = append(path, curr)
				curr = cameFrom[curr]
			}
			path = append(path, start)
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path
		}

		for _, d := range steps {
			next := entity.Point{X: curr.X + d.X, Y: curr.Y + d.Y}
			if walkable(grid, next.X, next.Y) && !visited.Has(next) {
				visited.Put(next)
				cameFrom[next] = curr
				queue = append(queue, next)
			}
		}
	}
	return nil
}

// Reachable returns every non-wall cell connected to start
func Reachable(grid *entity.Grid, start entity.Point) mapset.Set[entity.Point] {
	reachable := mapset.New[entity.Point]()
	queue := []entity.Point{start}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		if !walkable(grid, curr.X, curr.Y) || reachable.Has(curr) {
			continue
		}
		reachable.Put(curr)

		for _, d := range steps {
			next := entity.Point{X: curr.X + d.X, Y: curr.Y + d.Y}
			if walkable(grid, next.X, next.Y) && !reachable.Has(next) {
				queue = append(queue, next)
			}
		}
	}
	return reachable
}
