package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the config file the loader reads
const FileName = "labyrinth.yaml"

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Loader loads game configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// Load reads labyrinth.yaml over the defaults and validates the result
func (l *Loader) Load() (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, FileName)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s/%s: %w", l.basePath, FileName, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s/%s: %w", l.basePath, FileName, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result
func Parse(data []byte) (*GameConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration invariants.
// A tile must be at least twice the per-frame step, otherwise the collision
// neighbourhood can miss a wall the ball jumps over.
func (c *GameConfig) Validate() error {
	tileSize := c.Maze.TileSize
	switch {
	case tileSize < 4:
		return fmt.Errorf("%w: maze.tileSize %d is below 4", ErrInvalidConfig, tileSize)
	case c.Display.ScreenWidth < 3*tileSize || c.Display.ScreenHeight < 3*tileSize:
		return fmt.Errorf("%w: screen %dx%d holds fewer than 3x3 tiles of %d",
			ErrInvalidConfig, c.Display.ScreenWidth, c.Display.ScreenHeight, tileSize)
	case c.Display.Framerate <= 0:
		return fmt.Errorf("%w: display.framerate must be positive", ErrInvalidConfig)
	case c.Maze.Goals < 1:
		return fmt.Errorf("%w: maze.goals must be at least 1", ErrInvalidConfig)
	case c.Maze.Holes < -1:
		return fmt.Errorf("%w: maze.holes must be -1 or more", ErrInvalidConfig)
	case c.Ball.Scale <= 0 || c.Ball.Scale > 1:
		return fmt.Errorf("%w: ball.scale %.2f outside (0, 1]", ErrInvalidConfig, c.Ball.Scale)
	case int(math.Round(float64(tileSize)*c.Ball.Scale)) > tileSize-2:
		return fmt.Errorf("%w: ball.scale %.2f does not fit inside a %d tile", ErrInvalidConfig, c.Ball.Scale, tileSize)
	case c.Tilt.Alpha < 0 || c.Tilt.Alpha >= 1:
		return fmt.Errorf("%w: tilt.alpha %.2f outside [0, 1)", ErrInvalidConfig, c.Tilt.Alpha)
	case c.Tilt.MaxStep <= 0:
		return fmt.Errorf("%w: tilt.maxStep must be positive", ErrInvalidConfig)
	case tileSize < 2*c.Tilt.MaxStep:
		return fmt.Errorf("%w: maze.tileSize %d must be at least twice tilt.maxStep %d",
			ErrInvalidConfig, tileSize, c.Tilt.MaxStep)
	}
	return nil
}
