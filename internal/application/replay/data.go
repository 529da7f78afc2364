package replay

import (
	"time"

	"github.com/TeamDev2015/labyLink/internal/application/level"
	"github.com/TeamDev2015/labyLink/internal/domain/maze"
)

// Version is written into every replay
const Version = "1.0"

// FrameInput records the desired displacement for a single played frame
type FrameInput struct {
	F  int `json:"f"`            // Frame number
	DX int `json:"dx,omitempty"` // Desired horizontal displacement
	DY int `json:"dy,omitempty"` // Desired vertical displacement
}

// ReplayData contains all data needed to replay a level
type ReplayData struct {
	ID        string       `json:"id"`
	Version   string       `json:"version"`
	Seed      int32        `json:"seed"`
	Width     int          `json:"width"`
	Height    int          `json:"height"`
	TileSize  int          `json:"tileSize"`
	BallSize  int          `json:"ballSize"`
	Goals     int          `json:"goals"`
	Holes     int          `json:"holes"`
	StartTime string       `json:"startTime"`
	Outcome   string       `json:"outcome,omitempty"`
	Frames    []FrameInput `json:"frames"`
}

func newReplayData(id string, cfg level.Config) ReplayData {
	return ReplayData{
		ID:        id,
		Version:   Version,
		Seed:      cfg.Seed,
		Width:     cfg.Width,
		Height:    cfg.Height,
		TileSize:  cfg.TileSize,
		BallSize:  cfg.BallSize,
		Goals:     cfg.Maze.Goals,
		Holes:     cfg.Maze.Holes,
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, 0, 3600), // ~1 minute at 60fps
	}
}

// LevelConfig rebuilds the config of the recorded level
func (d ReplayData) LevelConfig() level.Config {
	return level.Config{
		Seed:     d.Seed,
		Width:    d.Width,
		Height:   d.Height,
		TileSize: d.TileSize,
		BallSize: d.BallSize,
		Maze: maze.Options{
			Goals: d.Goals,
			Holes: d.Holes,
		},
	}
}
