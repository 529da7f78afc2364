package main

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TeamDev2015/labyLink/internal/application/game"
	"github.com/TeamDev2015/labyLink/internal/application/level"
	"github.com/TeamDev2015/labyLink/internal/application/replay"
	"github.com/TeamDev2015/labyLink/internal/application/scene"
	"github.com/TeamDev2015/labyLink/internal/infrastructure/config"
)

func TestLoadConfig_Embedded(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 40, cfg.Maze.TileSize)
	assert.Equal(t, 60, cfg.Display.Framerate)
}

func TestLoadConfig_Directory(t *testing.T) {
	cfg, err := loadConfig("configs")
	require.NoError(t, err)
	assert.Equal(t, 600, cfg.Display.ScreenWidth)

	_, err = loadConfig(t.TempDir())
	assert.Error(t, err)
}

func TestResolveSeed(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, int32(5), resolveSeed(5, cfg), "flag wins")

	cfg.Maze.Seed = 9
	assert.Equal(t, int32(9), resolveSeed(0, cfg), "config next")
	assert.Equal(t, int32(5), resolveSeed(5, cfg))
}

func TestVerifyReplay(t *testing.T) {
	cfg := level.ConfigFrom(config.Default(), 42)
	rec := replay.NewRecorder(cfg)
	rec.RecordFrame(0, 0)
	rec.RecordFrame(0, 0)

	path := filepath.Join(t.TempDir(), "replay.json")
	require.NoError(t, rec.SaveFile(path))

	assert.NoError(t, verifyReplay(path))
	assert.Error(t, verifyReplay(filepath.Join(t.TempDir(), "missing.json")))
}

// exitScene counts OnExit calls
type exitScene struct {
	exits int
}

func (s *exitScene) Update(float64) (scene.Scene, error) { return nil, nil }
func (s *exitScene) Draw(*ebiten.Image) {}
func (s *exitScene) OnEnter() {}
func (s *exitScene) OnExit() { s.exits++ }

func TestRunGame_ClosesSceneOnError(t *testing.T) {
	s := &exitScene{}
	g := game.New(s, 600, 840, 60)
	errQuit := errors.New("window closed")

	err := runGame(g, func(ebiten.Game) error {
		assert.Equal(t, 0, s.exits, "scene stays open while running")
		return errQuit
	})

	assert.ErrorIs(t, err, errQuit)
	assert.Equal(t, 1, s.exits)
}

func TestRunGame_ClosesSceneOnExit(t *testing.T) {
	s := &exitScene{}
	g := game.New(s, 600, 840, 60)

	err := runGame(g, func(ebiten.Game) error { return nil })

	assert.NoError(t, err)
	assert.Equal(t, 1, s.exits)
}
