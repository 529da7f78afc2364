// Package playing provides the maze gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/TeamDev2015/labyLink/internal/application/level"
	"github.com/TeamDev2015/labyLink/internal/application/replay"
	"github.com/TeamDev2015/labyLink/internal/application/scene"
	"github.com/TeamDev2015/labyLink/internal/application/state"
	"github.com/TeamDev2015/labyLink/internal/application/system"
	"github.com/TeamDev2015/labyLink/internal/domain/entity"
	"github.com/TeamDev2015/labyLink/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG      = color.RGBA{26, 26, 46, 255}
	colorBall    = color.RGBA{0, 0, 255, 255}
	colorOverlay = color.RGBA{0, 0, 0, 128}
	colorCleared = color.RGBA{0, 100, 0, 160}
	colorFell    = color.RGBA{100, 0, 0, 180}
)

// Playing is the main gameplay scene
type Playing struct {
	config      *config.GameConfig
	level       *level.Level
	inputSystem *system.InputSystem
	tilt        *system.TiltFilter
	screenW     int
	screenH     int

	// Input recording
	recorder  *replay.Recorder
	recordDir string

	// Replaceable in tests
	readInput func() system.InputState
	nextSeed  func() int32
}

// New creates a new Playing scene on the maze generated from seed.
// If recordDir is not empty, every played level is saved there as its own file.
func New(cfg *config.GameConfig, seed int32, recordDir string) (*Playing, error) {
	inputSystem := system.NewInputSystem(&cfg.Tilt)

	p := &Playing{
		config:      cfg,
		inputSystem: inputSystem,
		tilt:        system.NewTiltFilter(&cfg.Tilt),
		screenW:     cfg.Display.ScreenWidth,
		screenH:     cfg.Display.ScreenHeight,
		recordDir:   recordDir,
		readInput:   inputSystem.GetInput,
		nextSeed:    RandomSeed,
	}
	if err := p.load(seed); err != nil {
		return nil, err
	}
	return p, nil
}

// RandomSeed picks a seed from the clock
func RandomSeed() int32 {
	return int32(time.Now().UnixNano())
}

// load replaces the current level with a fresh one built from seed
func (p *Playing) load(seed int32) error {
	lvl, err := level.New(level.ConfigFrom(p.config, seed))
	if err != nil {
		return err
	}

	p.level = lvl
	p.tilt.Reset()
	p.recorder = replay.NewRecorder(lvl.Config())

	cfg := lvl.Config()
	log.Printf("Level started (seed: %d, %dx%d)", seed, cfg.Width, cfg.Height)
	return nil
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	input := p.readInput()

	switch {
	case input.NewSeed:
		p.abandon()
		return nil, p.load(p.nextSeed())
	case input.Restart:
		p.abandon()
		return nil, p.load(p.level.Seed())
	case input.Pause:
		p.level.TogglePause()
		return nil, nil
	}

	if p.level.State() != state.StatePlaying {
		return nil, nil
	}

	p.step(p.tilt.Update(p.inputSystem.Tilt(input)))
	return nil, nil // nil = stay on this scene
}

// step plays one frame with the filtered displacement
func (p *Playing) step(dx, dy int) {
	p.recorder.RecordFrame(dx, dy)
	p.level.Step(dx, dy)

	elapsed := p.level.Elapsed(p.config.Display.Framerate)
	switch p.level.State() {
	case state.StateCleared:
		log.Printf("Level cleared (seed: %d, time: %s)", p.level.Seed(), elapsed)
		p.finish()
	case state.StateFell:
		log.Printf("Ball fell into a hole (seed: %d, time: %s)", p.level.Seed(), elapsed)
		p.finish()
	}
}

func (p *Playing) finish() {
	p.recorder.Stop(p.level.State())
	p.saveRecording()
}

// abandon saves an unfinished run before the level is replaced
func (p *Playing) abandon() {
	if !p.recorder.IsRecording() || p.recorder.FrameCount() == 0 {
		return
	}
	p.finish()
}

// saveRecording saves the current recording to a new file in the record directory
func (p *Playing) saveRecording() {
	if p.recordDir == "" {
		return
	}
	if err := os.MkdirAll(p.recordDir, 0o755); err != nil {
		log.Printf("Failed to create record directory: %v", err)
		return
	}

	filename := filepath.Join(p.recordDir, replay.GenerateFilename(p.recorder.Data()))
	if err := p.recorder.SaveFile(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// Level returns the level being played
func (p *Playing) Level() *level.Level {
	return p.level
}

// Replay returns the recording of the current level
func (p *Playing) Replay() replay.ReplayData {
	return p.recorder.Data()
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	offX, offY := p.origin()
	p.drawTiles(screen, offX, offY)
	p.drawBall(screen, offX, offY)
	p.drawUI(screen)

	switch p.level.State() {
	case state.StatePaused:
		p.drawOverlay(screen, colorOverlay, "PAUSED\n\nPress P to resume")
	case state.StateCleared:
		p.drawOverlay(screen, colorCleared, fmt.Sprintf("CLEARED in %s\n\nR: same maze | N: new maze", p.elapsed()))
	case state.StateFell:
		p.drawOverlay(screen, colorFell, "FELL INTO A HOLE\n\nR: retry | N: new maze")
	}
}

// origin centres the maze on the screen
func (p *Playing) origin() (int, int) {
	bounds := p.level.Stage().Bounds()
	return (p.screenW - bounds.Width()) / 2, (p.screenH - bounds.Height()) / 2
}

func (p *Playing) drawTiles(screen *ebiten.Image, offX, offY int) {
	stage := p.level.Stage()
	grid := stage.Grid
	size := stage.TileSize

	for ty := 0; ty < grid.Height; ty++ {
		for tx := 0; tx < grid.Width; tx++ {
			tile := grid.At(tx, ty)
			x := float64(tx*size + offX)
			y := float64(ty*size + offY)

			if tile == entity.TileHole {
				// A hole sits on a floor tile
				ebitenutil.DrawRect(screen, x, y, float64(size), float64(size), entity.TileFloor.Color())
				r := float32(size) / 2
				vector.DrawFilledCircle(screen, float32(x)+r, float32(y)+r, r, tile.Color(), true)
				continue
			}
			ebitenutil.DrawRect(screen, x, y, float64(size), float64(size), tile.Color())
		}
	}
}

func (p *Playing) drawBall(screen *ebiten.Image, offX, offY int) {
	ball := p.level.BallBox()
	r := float32(ball.Width()) / 2

	vector.DrawFilledCircle(screen, float32(ball.Left+offX)+r, float32(ball.Top+offY)+r, r, colorBall, true)
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	status := fmt.Sprintf("Seed: %d | Time: %s | %s", p.level.Seed(), p.elapsed(), p.level.State())
	ebitenutil.DebugPrintAt(screen, status, 4, 4)

	controls := "Arrows/WASD: Tilt | P: Pause | R: Restart | N: New maze"
	ebitenutil.DebugPrintAt(screen, controls, 4, p.screenH-16)
}

func (p *Playing) drawOverlay(screen *ebiten.Image, c color.Color, text string) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), c)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-70, p.screenH/2-20)
}

func (p *Playing) elapsed() string {
	return fmt.Sprintf("%.1fs", p.level.Elapsed(p.config.Display.Framerate).Seconds())
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.abandon()
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}
