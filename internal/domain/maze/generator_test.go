package maze

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TeamDev2015/labyLink/internal/domain/entity"
)

// nonWallCount counts every tile an actor may occupy
func nonWallCount(grid *entity.Grid) int {
	return grid.Width*grid.Height - grid.Count(entity.TileWall)
}

func TestGenerate_Deterministic(t *testing.T) {
	sizes := []struct{ w, h int }{{3, 3}, {9, 9}, {21, 15}, {31, 41}}
	seeds := []int32{0, 1, 42, -7, 2147483647}

	for _, size := range sizes {
		for _, seed := range seeds {
			a, err := Generate(seed, size.w, size.h)
			require.NoError(t, err)
			b, err := Generate(seed, size.w, size.h)
			require.NoError(t, err)

			assert.True(t, a.Grid.Equal(b.Grid), "seed %d %dx%d", seed, size.w, size.h)
			assert.Equal(t, a.Start(), b.Start())
			assert.Equal(t, a.Goals, b.Goals)
			assert.Equal(t, a.Holes, b.Holes)
		}
	}
}

func TestGenerate_SeedsProduceDifferentMazes(t *testing.T) {
	a, err := Generate(1, 21, 21)
	require.NoError(t, err)
	b, err := Generate(2, 21, 21)
	require.NoError(t, err)

	assert.False(t, a.Grid.Equal(b.Grid))
}

func TestGenerate_Connectivity(t *testing.T) {
	for seed := int32(0); seed < 50; seed++ {
		result, err := Generate(seed, 15, 11)
		require.NoError(t, err)

		reachable := Reachable(result.Grid, result.Start())
		assert.Equal(t, nonWallCount(result.Grid), reachable.Size(), "seed %d", seed)
	}
}

func TestGenerate_PerfectMaze(t *testing.T) {
	// A spanning tree over n rooms has n-1 carved segments
	result, err := Generate(99, 17, 13)
	require.NoError(t, err)

	rooms := 9 * 7
	assert.Equal(t, 2*rooms-1, nonWallCount(result.Grid))

	// Posts never get carved
	for y := 1; y < result.Grid.Height; y += 2 {
		for x := 1; x < result.Grid.Width; x += 2 {
			assert.Equal(t, entity.TileWall, result.Grid.At(x, y), "post (%d,%d)", x, y)
		}
	}
}

func TestGenerate_SingleStart(t *testing.T) {
	for seed := int32(0); seed < 20; seed++ {
		result, err := Generate(seed, 9, 9)
		require.NoError(t, err)

		starts := result.Grid.Cells(entity.TileStart)
		require.Len(t, starts, 1)
		assert.Equal(t, result.Start(), starts[0])
		assert.Equal(t, 0, result.StartX%2, "start is a room")
		assert.Equal(t, 0, result.StartY%2, "start is a room")
	}
}

func TestGenerate_Dimensions(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		wantErr bool
	}{
		{"even width", 4, 3, true},
		{"even height", 3, 8, true},
		{"too small", 1, 3, true},
		{"zero", 0, 0, true},
		{"negative", -3, 5, true},
		{"minimum", 3, 3, false},
		{"rectangular", 11, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Generate(42, tt.w, tt.h)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidDimensions))
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.w, result.Grid.Width)
			assert.Equal(t, tt.h, result.Grid.Height)
		})
	}
}

func TestGenerate_GoalIsFarthestRoom(t *testing.T) {
	result, err := Generate(7, 21, 21)
	require.NoError(t, err)
	require.NotEmpty(t, result.Goals)

	dist := Distances(result.Grid, result.Start())
	primary := result.Goals[0]
	assert.Equal(t, entity.TileGoal, result.Grid.At(primary.X, primary.Y))
	assert.NotEqual(t, result.Start(), primary)

	for y := 0; y < result.Grid.Height; y += 2 {
		for x := 0; x < result.Grid.Width; x += 2 {
			assert.LessOrEqual(t, dist[y][x], dist[primary.Y][primary.X])
		}
	}
}

func TestGenerate_MinimumMazeHasStartAndGoal(t *testing.T) {
	result, err := Generate(3, 3, 3)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Grid.Count(entity.TileStart))
	assert.Equal(t, 1, result.Grid.Count(entity.TileGoal))
	assert.NotNil(t, ShortestPath(result.Grid, result.Start(), result.Goals[0]))
}

func TestGenerate_HolesStayOffSolutionPaths(t *testing.T) {
	gen := New(Options{Goals: 3, Holes: 3})

	for seed := int32(0); seed < 20; seed++ {
		result, err := gen.Generate(seed, 21, 21)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, len(result.Goals), 1)
		assert.LessOrEqual(t, len(result.Goals), 3)
		assert.LessOrEqual(t, len(result.Holes), 3)
		assert.Equal(t, len(result.Holes), result.Grid.Count(entity.TileHole))

		dist := Distances(result.Grid, result.Start())
		for _, goal := range result.Goals {
			path := ShortestPath(result.Grid, result.Start(), goal)
			require.NotNil(t, path, "seed %d goal %v", seed, goal)
			for _, p := range path {
				assert.NotEqual(t, entity.TileHole, result.Grid.At(p.X, p.Y), "seed %d", seed)
			}
		}
		for _, h := range result.Holes {
			assert.Greater(t, dist[h.Y][h.X], 2, "hole next to start")
		}
	}
}

func TestGenerate_ExplicitHoleCount(t *testing.T) {
	result, err := New(Options{Goals: 1, Holes: 3}).Generate(5, 21, 21)
	require.NoError(t, err)
	assert.Len(t, result.Holes, 3)

	none, err := New(Options{Goals: 1, Holes: 0}).Generate(5, 21, 21)
	require.NoError(t, err)
	assert.Empty(t, none.Holes)
	assert.Equal(t, 0, none.Grid.Count(entity.TileHole))
}

// fixedSource always returns the lowest value
type fixedSource struct {
	calls int
}

func (s *fixedSource) Intn(n int) int {
	s.calls++
	return 0
}

func TestGenerator_WithSource(t *testing.T) {
	src := &fixedSource{}
	gen := New(DefaultOptions()).WithSource(func(seed int32) Source {
		return src
	})

	result, err := gen.Generate(1234, 5, 5)
	require.NoError(t, err)

	assert.Positive(t, src.calls)
	assert.Equal(t, entity.Point{X: 0, Y: 0}, result.Start())

	// Always taking the first direction (up, down, left, right) walks
	// down the left column first.
	assert.Equal(t, entity.TileFloor, result.Grid.At(0, 1))
	assert.Equal(t, entity.TileFloor, result.Grid.At(0, 3))
	assert.Equal(t, nonWallCount(result.Grid), Reachable(result.Grid, result.Start()).Size())
}
