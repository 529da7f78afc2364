package main

import (
	"embed"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/TeamDev2015/labyLink/internal/application/level"
	"github.com/TeamDev2015/labyLink/internal/application/state"
	"github.com/TeamDev2015/labyLink/internal/application/system"
	"github.com/TeamDev2015/labyLink/internal/domain/entity"
	"github.com/TeamDev2015/labyLink/internal/infrastructure/config"
)

//go:embed configs
var configFS embed.FS

// holdFrames keeps a key's tilt alive between key repeats; terminals report
// presses only.
const holdFrames = 8

// Game runs a level in the terminal
type Game struct {
	screen tcell.Screen
	cfg    *config.GameConfig
	level  *level.Level
	input  *system.InputSystem
	tilt   *system.TiltFilter

	// Frames left on each held direction
	left, right, up, down int
}

// NewGame sets up the screen and the first level
func NewGame(cfg *config.GameConfig, seed int32) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	g := &Game{
		screen: screen,
		cfg:    cfg,
		input:  system.NewInputSystem(&cfg.Tilt),
		tilt:   system.NewTiltFilter(&cfg.Tilt),
	}
	if err := g.load(seed); err != nil {
		screen.Fini()
		return nil, err
	}
	return g, nil
}

func (g *Game) load(seed int32) error {
	lvl, err := level.New(level.ConfigFrom(g.cfg, seed))
	if err != nil {
		return err
	}
	g.level = lvl
	g.tilt.Reset()
	g.left, g.right, g.up, g.down = 0, 0, 0, 0
	return nil
}

// handleInput returns false when the player quits
func (g *Game) handleInput(ev tcell.Event) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false, nil
		case tcell.KeyLeft:
			g.left = holdFrames
		case tcell.KeyRight:
			g.right = holdFrames
		case tcell.KeyUp:
			g.up = holdFrames
		case tcell.KeyDown:
			g.down = holdFrames
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false, nil
			case 'r':
				return true, g.load(g.level.Seed())
			case 'n':
				return true, g.load(int32(time.Now().UnixNano()))
			case 'p', ' ':
				g.level.TogglePause()
			}
		}

	case *tcell.EventResize:
		g.screen.Sync()
	}

	return true, nil
}

// tick plays one frame with whatever directions are still held
func (g *Game) tick() {
	held := system.InputState{
		Left:  g.left > 0,
		Right: g.right > 0,
		Up:    g.up > 0,
		Down:  g.down > 0,
	}
	g.left, g.right, g.up, g.down = max(g.left-1, 0), max(g.right-1, 0), max(g.up-1, 0), max(g.down-1, 0)

	if g.level.State() != state.StatePlaying {
		return
	}
	g.level.Step(g.tilt.Update(g.input.Tilt(held)))
}

func (g *Game) draw() {
	g.screen.Clear()

	wallStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	styles := map[rune]tcell.Style{
		entity.TileStart.Glyph(): tcell.StyleDefault.Foreground(tcell.ColorGreen),
		entity.TileGoal.Glyph():  tcell.StyleDefault.Foreground(tcell.ColorRed),
		entity.TileHole.Glyph():  tcell.StyleDefault.Foreground(tcell.ColorDarkGray),
		ballGlyph:                tcell.StyleDefault.Foreground(tcell.ColorBlue),
	}

	rows := renderRows(g.level)
	for y, row := range rows {
		x := 0
		for _, r := range row {
			style, ok := styles[r]
			if !ok {
				style = wallStyle
			}
			g.screen.SetContent(x, y, r, nil, style)
			x++
		}
	}

	elapsed := g.level.Elapsed(g.cfg.Display.Framerate).Seconds()
	status := fmt.Sprintf("Seed: %d | Time: %.1fs | %s | arrows: tilt  p: pause  r: restart  n: new  q: quit",
		g.level.Seed(), elapsed, g.level.State())
	for i, r := range []rune(status) {
		g.screen.SetContent(i, len(rows)+1, r, nil, tcell.StyleDefault)
	}

	g.screen.Show()
}

func (g *Game) run() error {
	ticker := time.NewTicker(time.Second / time.Duration(g.cfg.Display.Framerate))
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go pollEvents(g.screen.PollEvent, eventChan)

	for {
		select {
		case ev := <-eventChan:
			if ev == nil {
				return nil
			}
			ok, err := g.handleInput(ev)
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}

		case <-ticker.C:
			g.tick()
			g.draw()
		}
	}
}

// pollEvents forwards events until poll returns nil, which tcell does once the
// screen is finalized. The nil is forwarded too.
func pollEvents(poll func() tcell.Event, out chan<- tcell.Event) {
	for {
		ev := poll()
		out <- ev
		if ev == nil {
			return
		}
	}
}

func (g *Game) cleanup() {
	g.screen.Fini()
}

func loadConfig() (*config.GameConfig, error) {
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs").Load()
}

func main() {
	seedFlag := flag.Int64("seed", 0, "Maze seed (0 = from config, else random)")
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	seed := int32(*seedFlag)
	if seed == 0 {
		seed = cfg.Maze.Seed
	}
	if seed == 0 {
		seed = int32(time.Now().UnixNano())
	}

	// The screen owns the terminal until cleanup
	log.SetOutput(io.Discard)

	game, err := NewGame(cfg, seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	runErr := game.run()
	game.cleanup()

	log.SetOutput(os.Stderr)
	if runErr != nil {
		log.Fatalf("Game stopped: %v", runErr)
	}
	log.Printf("Seed %d ended %s after %d frames", game.level.Seed(), game.level.State(), game.level.Frames())
}
