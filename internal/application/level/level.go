// Package level owns one playable maze: its grid, the ball, and the systems
// that move the ball through it.
package level

import (
	"fmt"
	"time"

	"github.com/TeamDev2015/labyLink/internal/application/state"
	"github.com/TeamDev2015/labyLink/internal/application/system"
	"github.com/TeamDev2015/labyLink/internal/domain/entity"
	"github.com/TeamDev2015/labyLink/internal/domain/maze"
	"github.com/TeamDev2015/labyLink/internal/infrastructure/config"
)

// Config fully determines a level
type Config struct {
	Seed     int32
	Width    int // Tiles, odd
	Height   int // Tiles, odd
	TileSize int
	BallSize int
	Maze     maze.Options
}

// Dimensions returns how many tiles fit on the screen, rounded down to odd
// counts as the generator requires.
func Dimensions(screenW, screenH, tileSize int) (width, height int) {
	width = screenW / tileSize
	height = screenH / tileSize
	if width%2 == 0 {
		width--
	}
	if height%2 == 0 {
		height--
	}
	return width, height
}

// ConfigFrom derives the level config for seed from the game config
func ConfigFrom(cfg *config.GameConfig, seed int32) Config {
	width, height := Dimensions(cfg.Display.ScreenWidth, cfg.Display.ScreenHeight, cfg.Maze.TileSize)
	return Config{
		Seed:     seed,
		Width:    width,
		Height:   height,
		TileSize: cfg.Maze.TileSize,
		BallSize: entity.BallSize(cfg.Maze.TileSize, cfg.Ball.Scale),
		Maze: maze.Options{
			Goals: cfg.Maze.Goals,
			Holes: cfg.Maze.Holes,
		},
	}
}

// Level is a single maze being played.
// Step must be called from one goroutine; readers use BallBox for a copy.
type Level struct {
	cfg      Config
	result   *maze.MapResult
	stage    *entity.Stage
	ball     *entity.Ball
	resolver *system.Resolver
	state    state.GameState
	frames   int
}

// New generates the maze for cfg and places the ball on the start tile
func New(cfg Config) (*Level, error) {
	result, err := maze.New(cfg.Maze).Generate(cfg.Seed, cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("failed to generate level %d: %w", cfg.Seed, err)
	}

	stage := entity.NewStage(result.Grid, cfg.TileSize)
	ball := entity.NewBall(stage.TileBox(result.StartX, result.StartY), cfg.BallSize)
	oracle := system.NewOracle(stage)

	return &Level{
		cfg:      cfg,
		result:   result,
		stage:    stage,
		ball:     ball,
		resolver: system.NewResolver(system.Bounded{Querier: oracle, Bounds: stage.Bounds()}),
		state:    state.StatePlaying,
	}, nil
}

// Step moves the ball by up to (dx, dy) and updates the level state.
// Once the level is paused or finished the ball stays put.
func (l *Level) Step(dx, dy int) system.Move {
	if l.state != state.StatePlaying {
		return system.Move{}
	}

	l.frames++
	move := l.resolver.Resolve(l.ball, dx, dy)

	switch {
	case move.Has(system.EventHole):
		l.state = state.StateFell
	case move.Has(system.EventGoal):
		l.state = state.StateCleared
	}
	return move
}

// TogglePause pauses or resumes play. Finished levels stay finished.
func (l *Level) TogglePause() {
	switch l.state {
	case state.StatePlaying:
		l.state = state.StatePaused
	case state.StatePaused:
		l.state = state.StatePlaying
	}
}

// Config returns the config the level was built from
func (l *Level) Config() Config {
	return l.cfg
}

// Seed returns the seed the maze was generated from
func (l *Level) Seed() int32 {
	return l.cfg.Seed
}

// Stage returns the maze laid out in world space
func (l *Level) Stage() *entity.Stage {
	return l.stage
}

// Result returns the generator output
func (l *Level) Result() *maze.MapResult {
	return l.result
}

// BallBox returns a copy of the ball's current box
func (l *Level) BallBox() entity.Rect {
	return l.ball.Snapshot()
}

// State returns the current level state
func (l *Level) State() state.GameState {
	return l.state
}

// Frames returns how many frames have been played
func (l *Level) Frames() int {
	return l.frames
}

// Elapsed converts played frames to time at the given framerate
func (l *Level) Elapsed(framerate int) time.Duration {
	if framerate <= 0 {
		return 0
	}
	return time.Duration(l.frames) * time.Second / time.Duration(framerate)
}
