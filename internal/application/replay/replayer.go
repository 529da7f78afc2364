package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/TeamDev2015/labyLink/internal/application/level"
)

// ErrOutcomeMismatch is returned when a replay does not end the way it was recorded
var ErrOutcomeMismatch = errors.New("replay outcome mismatch")

// Replayer handles input playback from recorded data
type Replayer struct {
	data  ReplayData
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// Load decodes a replay from r
func Load(r io.Reader) (*ReplayData, error) {
	var data ReplayData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	return &data, nil
}

// LoadFile loads replay data from a file
func LoadFile(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Load(file)
}

// Next returns the input for the current frame and advances
func (r *Replayer) Next() (FrameInput, bool) {
	if r.frame >= len(r.data.Frames) {
		return FrameInput{}, false
	}

	fi := r.data.Frames[r.frame]
	r.frame++
	return fi, true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int32 {
	return r.data.Seed
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// Run plays every recorded frame on a freshly generated level
func (r *Replayer) Run() (*level.Level, error) {
	lvl, err := level.New(r.data.LevelConfig())
	if err != nil {
		return nil, err
	}

	r.Reset()
	for {
		fi, ok := r.Next()
		if !ok {
			break
		}
		lvl.Step(fi.DX, fi.DY)
	}
	return lvl, nil
}

// Verify runs the replay and checks it ends the way it was recorded
func Verify(data ReplayData) error {
	lvl, err := NewReplayer(data).Run()
	if err != nil {
		return err
	}
	if data.Outcome != "" && lvl.State().String() != data.Outcome {
		return fmt.Errorf("%w: recorded %s, replayed %s after %d frames",
			ErrOutcomeMismatch, data.Outcome, lvl.State(), lvl.Frames())
	}
	return nil
}
