package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/TeamDev2015/labyLink/internal/application/level"
	"github.com/TeamDev2015/labyLink/internal/application/state"
)

// ErrEmptyReplay is returned when saving a replay without frames
var ErrEmptyReplay = errors.New("no frames to save")

// Recorder handles input recording for one level
type Recorder struct {
	data      ReplayData
	recording bool
}

// NewRecorder starts recording a level built from cfg
func NewRecorder(cfg level.Config) *Recorder {
	return &Recorder{
		data:      newReplayData(uuid.NewString(), cfg),
		recording: true,
	}
}

// RecordFrame records the displacement requested for one played frame
func (r *Recorder) RecordFrame(dx, dy int) {
	if !r.recording {
		return
	}

	r.data.Frames = append(r.data.Frames, FrameInput{
		F:  len(r.data.Frames),
		DX: dx,
		DY: dy,
	})
}

// Stop ends recording and stores how the level ended
func (r *Recorder) Stop(outcome state.GameState) {
	if !r.recording {
		return
	}
	r.recording = false
	r.data.Outcome = outcome.String()
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the replay data recorded so far
func (r *Recorder) Data() ReplayData {
	return r.data
}

// Save writes the replay as indented JSON
func (r *Recorder) Save(w io.Writer) error {
	if len(r.data.Frames) == 0 {
		return ErrEmptyReplay
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}

// SaveFile writes the replay to filename
func (r *Recorder) SaveFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return r.Save(file)
}

// GenerateFilename names a replay file after the current time, the seed and
// the replay id, so every recorded level gets its own file.
func GenerateFilename(data ReplayData) string {
	id := data.ID
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("replay_%s_seed%d_%s.json", time.Now().Format("20060102_150405"), data.Seed, id)
}
