package config

// GameConfig is the root config for labyrinth.yaml
type GameConfig struct {
	Display DisplayConfig `yaml:"display"`
	Maze    MazeConfig    `yaml:"maze"`
	Ball    BallConfig    `yaml:"ball"`
	Tilt    TiltConfig    `yaml:"tilt"`
}

type DisplayConfig struct {
	ScreenWidth  int `yaml:"screenWidth"`
	ScreenHeight int `yaml:"screenHeight"`
	Scale        int `yaml:"scale"`
	Framerate    int `yaml:"framerate"`
}

// MazeConfig controls level generation
type MazeConfig struct {
	TileSize int   `yaml:"tileSize"` // World units per tile edge
	Seed     int32 `yaml:"seed"`     // 0 = pick a new seed at startup
	Goals    int   `yaml:"goals"`
	Holes    int   `yaml:"holes"` // -1 = derived from maze size
}

type BallConfig struct {
	Scale float64 `yaml:"scale"` // Ball edge relative to tile size
}

// TiltConfig controls how tilt samples become displacements
type TiltConfig struct {
	Alpha    float64 `yaml:"alpha"`    // Weight of the previous smoothed value
	Weight   float64 `yaml:"weight"`   // World units per unit of tilt
	KeyAccel float64 `yaml:"keyAccel"` // Tilt produced by a held key
	MaxStep  int     `yaml:"maxStep"`  // Per-frame displacement cap per axis
}

// Default returns the built-in configuration
func Default() *GameConfig {
	return &GameConfig{
		Display: DisplayConfig{
			ScreenWidth:  600,
			ScreenHeight: 840,
			Scale:        1,
			Framerate:    60,
		},
		Maze: MazeConfig{
			TileSize: 40,
			Goals:    1,
			Holes:    -1,
		},
		Ball: BallConfig{
			Scale: 0.8,
		},
		Tilt: TiltConfig{
			Alpha:    0.9,
			Weight:   3,
			KeyAccel: 4,
			MaxStep:  12,
		},
	}
}
