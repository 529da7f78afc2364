package replay

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TeamDev2015/labyLink/internal/application/level"
	"github.com/TeamDev2015/labyLink/internal/application/state"
	"github.com/TeamDev2015/labyLink/internal/domain/maze"
)

func createTestLevelConfig() level.Config {
	return level.Config{
		Seed:     42,
		Width:    9,
		Height:   9,
		TileSize: 40,
		BallSize: 32,
		Maze:     maze.DefaultOptions(),
	}
}

func clampStep(v int) int {
	return max(-12, min(12, v))
}

// playToGoal drives a level along its solution path, recording every frame
func playToGoal(t *testing.T, cfg level.Config) (*level.Level, *Recorder) {
	t.Helper()

	lvl, err := level.New(cfg)
	require.NoError(t, err)
	rec := NewRecorder(cfg)

	result := lvl.Result()
	path := maze.ShortestPath(result.Grid, result.Start(), result.Goals[0])
	for _, cell := range path[1:] {
		target := lvl.Stage().TileBox(cell.X, cell.Y)
		for i := 0; i < 100 && !lvl.State().Finished(); i++ {
			ball := lvl.BallBox()
			if ball.Left == target.Left && ball.Top == target.Top {
				break
			}
			dx, dy := clampStep(target.Left-ball.Left), clampStep(target.Top-ball.Top)
			rec.RecordFrame(dx, dy)
			lvl.Step(dx, dy)
		}
	}
	rec.Stop(lvl.State())
	return lvl, rec
}

func TestNewRecorder(t *testing.T) {
	rec := NewRecorder(createTestLevelConfig())
	data := rec.Data()

	assert.True(t, rec.IsRecording())
	assert.Equal(t, Version, data.Version)
	assert.Equal(t, int32(42), data.Seed)
	assert.Equal(t, 9, data.Width)
	assert.Equal(t, 32, data.BallSize)
	assert.Equal(t, maze.AutoHoles, data.Holes)
	assert.NotEmpty(t, data.StartTime)

	_, err := uuid.Parse(data.ID)
	assert.NoError(t, err)
}

func TestRecorder_IDsAreUnique(t *testing.T) {
	a := NewRecorder(createTestLevelConfig()).Data().ID
	b := NewRecorder(createTestLevelConfig()).Data().ID

	assert.NotEqual(t, a, b)
}

func TestGenerateFilename(t *testing.T) {
	a := NewRecorder(createTestLevelConfig()).Data()
	b := NewRecorder(createTestLevelConfig()).Data()

	name := GenerateFilename(a)
	assert.True(t, strings.HasPrefix(name, "replay_"))
	assert.True(t, strings.HasSuffix(name, "_seed42_"+a.ID[:8]+".json"), name)
	assert.NotEqual(t, name, GenerateFilename(b), "two levels never share a file")
	assert.True(t, strings.HasSuffix(GenerateFilename(ReplayData{ID: "x", Seed: -3}), "_seed-3_x.json"), "short ids are kept whole")
}

func TestRecorder_RecordFrame(t *testing.T) {
	rec := NewRecorder(createTestLevelConfig())

	rec.RecordFrame(3, 0)
	rec.RecordFrame(0, -5)
	rec.Stop(state.StateFell)
	rec.RecordFrame(1, 1)

	data := rec.Data()
	assert.False(t, rec.IsRecording())
	assert.Equal(t, 2, rec.FrameCount())
	assert.Equal(t, FrameInput{F: 1, DX: 0, DY: -5}, data.Frames[1])
	assert.Equal(t, "Fell", data.Outcome)
}

func TestRecorder_SaveEmpty(t *testing.T) {
	var buf bytes.Buffer

	err := NewRecorder(createTestLevelConfig()).Save(&buf)

	assert.True(t, errors.Is(err, ErrEmptyReplay))
	assert.Zero(t, buf.Len())
}

func TestRecorder_SaveAndLoad(t *testing.T) {
	_, rec := playToGoal(t, createTestLevelConfig())

	var buf bytes.Buffer
	require.NoError(t, rec.Save(&buf))

	data, err := Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, rec.Data().ID, data.ID)
	assert.Equal(t, rec.Data().Frames, data.Frames)
	assert.Equal(t, createTestLevelConfig(), data.LevelConfig())
}

func TestLoad_Malformed(t *testing.T) {
	_, err := Load(bytes.NewBufferString("{not json"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode replay")
}

func TestReplayer_Next(t *testing.T) {
	data := ReplayData{
		Seed:   7,
		Frames: []FrameInput{{F: 0, DX: 4}, {F: 1, DY: -4}},
	}
	replayer := NewReplayer(data)

	assert.Equal(t, 2, replayer.TotalFrames())
	assert.Equal(t, int32(7), replayer.Seed())

	fi, ok := replayer.Next()
	require.True(t, ok)
	assert.Equal(t, 4, fi.DX)

	fi, ok = replayer.Next()
	require.True(t, ok)
	assert.Equal(t, -4, fi.DY)
	assert.Equal(t, 2, replayer.CurrentFrame())

	_, ok = replayer.Next()
	assert.False(t, ok)

	replayer.Reset()
	assert.Equal(t, 0, replayer.CurrentFrame())
}

func TestReplayer_RunReproducesLevel(t *testing.T) {
	played, rec := playToGoal(t, createTestLevelConfig())
	require.Equal(t, state.StateCleared, played.State())

	replayed, err := NewReplayer(rec.Data()).Run()
	require.NoError(t, err)

	assert.Equal(t, played.State(), replayed.State())
	assert.Equal(t, played.BallBox(), replayed.BallBox())
	assert.Equal(t, played.Frames(), replayed.Frames())
}

func TestVerify(t *testing.T) {
	_, rec := playToGoal(t, createTestLevelConfig())

	assert.NoError(t, Verify(rec.Data()))
}

func TestVerify_TruncatedReplay(t *testing.T) {
	_, rec := playToGoal(t, createTestLevelConfig())
	data := rec.Data()
	data.Frames = data.Frames[:len(data.Frames)/2]

	err := Verify(data)

	assert.True(t, errors.Is(err, ErrOutcomeMismatch))
}

func TestVerify_InvalidLevel(t *testing.T) {
	data := ReplayData{Seed: 1, Width: 4, Height: 9, TileSize: 40, BallSize: 32, Goals: 1}

	err := Verify(data)

	assert.True(t, errors.Is(err, maze.ErrInvalidDimensions))
}
