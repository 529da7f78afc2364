package main

import (
	"embed"
	"flag"
	"fmt"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/TeamDev2015/labyLink/internal/application/game"
	"github.com/TeamDev2015/labyLink/internal/application/replay"
	"github.com/TeamDev2015/labyLink/internal/application/scene/playing"
	"github.com/TeamDev2015/labyLink/internal/infrastructure/config"
)

//go:embed configs
var configFS embed.FS

// loadConfig reads the config from dir, or the embedded defaults when dir is empty
func loadConfig(dir string) (*config.GameConfig, error) {
	if dir != "" {
		return config.NewLoader(dir).Load()
	}

	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs").Load()
}

// resolveSeed prefers the flag, then the config, then the clock
func resolveSeed(flagSeed int64, cfg *config.GameConfig) int32 {
	switch {
	case flagSeed != 0:
		return int32(flagSeed)
	case cfg.Maze.Seed != 0:
		return cfg.Maze.Seed
	default:
		return playing.RandomSeed()
	}
}

func verifyReplay(filename string) error {
	data, err := replay.LoadFile(filename)
	if err != nil {
		return err
	}
	if err := replay.Verify(*data); err != nil {
		return err
	}
	log.Printf("Replay %s verified (seed: %d, %d frames, outcome: %s)",
		data.ID, data.Seed, len(data.Frames), data.Outcome)
	return nil
}

func main() {
	seedFlag := flag.Int64("seed", 0, "Maze seed (0 = from config, else random)")
	configFlag := flag.String("config", "", "Directory holding labyrinth.yaml (default: embedded)")
	recordFlag := flag.String("record", "", "Record every level into this directory (e.g., -record replays)")
	verifyFlag := flag.String("verify", "", "Replay a recording headlessly and check its outcome")
	flag.Parse()

	if *verifyFlag != "" {
		if err := verifyReplay(*verifyFlag); err != nil {
			log.Fatalf("Failed to verify replay: %v", err)
		}
		return
	}

	cfg, err := loadConfig(*configFlag)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	scene, err := playing.New(cfg, resolveSeed(*seedFlag, cfg), *recordFlag)
	if err != nil {
		log.Fatalf("Failed to create level: %v", err)
	}

	display := cfg.Display
	g := game.New(scene, display.ScreenWidth, display.ScreenHeight, display.Framerate)

	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Labyrinth")
	ebiten.SetTPS(display.Framerate)

	if err := runGame(g, ebiten.RunGame); err != nil {
		log.Fatal(err)
	}
}

// runGame runs the loop and exits the scene before the error reaches log.Fatal,
// which skips deferred calls.
func runGame(g *game.Game, run func(ebiten.Game) error) error {
	err := run(g)
	g.Close()
	return err
}
