// Package config loads runtime settings from built-in defaults, an optional
// YAML file, an optional .env file and COURTBOUNCE_* environment variables,
// applied in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid config")

// DefaultEnvFile is read by Load when present.
const DefaultEnvFile = ".env"

type Vec3 [3]float32

type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Simulation SimulationConfig `yaml:"simulation"`
	Ball       BallConfig       `yaml:"ball"`
	Court      CourtConfig      `yaml:"court"`
	Contact    ContactConfig    `yaml:"contact"`
	Camera     CameraConfig     `yaml:"camera"`
	Lighting   LightingConfig   `yaml:"lighting"`
	Shaders    ShaderConfig     `yaml:"shaders"`
	HUD        bool             `yaml:"hud"`
}

type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int    `yaml:"target_fps"`
	MSAA      bool   `yaml:"msaa"`
}

type SimulationConfig struct {
	// FixedStep is the time slice passed to every physics step, in seconds.
	FixedStep float32 `yaml:"fixed_step"`
	Gravity   Vec3    `yaml:"gravity"`
	// MaxTicks stops the loop after this many ticks; 0 runs until closed.
	MaxTicks int `yaml:"max_ticks"`
}

type BallConfig struct {
	Radius   float32 `yaml:"radius"`
	Mass     float32 `yaml:"mass"`
	Position Vec3    `yaml:"position"`
	Color    string  `yaml:"color"`
	Segments int     `yaml:"segments"`
}

type CourtConfig struct {
	Width  float32 `yaml:"width"`
	Length float32 `yaml:"length"`
	Color  string  `yaml:"color"`
}

type ContactConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Friction    float32 `yaml:"friction"`
	Restitution float32 `yaml:"restitution"`
}

type CameraConfig struct {
	FOV      float32 `yaml:"fov"`
	Near     float32 `yaml:"near"`
	Far      float32 `yaml:"far"`
	Position Vec3    `yaml:"position"`
	Target   Vec3    `yaml:"target"`
}

type LightingConfig struct {
	Background           string  `yaml:"background"`
	AmbientColor         string  `yaml:"ambient_color"`
	AmbientIntensity     float32 `yaml:"ambient_intensity"`
	DirectionalColor     string  `yaml:"directional_color"`
	DirectionalIntensity float32 `yaml:"directional_intensity"`
	DirectionalPosition  Vec3    `yaml:"directional_position"`
}

type ShaderConfig struct {
	Vertex   string `yaml:"vertex"`
	Fragment string `yaml:"fragment"`
}

func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     1280,
			Height:    720,
			Title:     "Court Bounce",
			TargetFPS: 60,
			MSAA:      true,
		},
		Simulation: SimulationConfig{
			FixedStep: 1.0 / 60.0,
			Gravity:   Vec3{0, -9.82, 0},
		},
		Ball: BallConfig{
			Radius:   0.5,
			Mass:     5,
			Position: Vec3{0, 5, 0},
			Color:    "#ff8c00",
			Segments: 32,
		},
		Court: CourtConfig{
			Width:  30,
			Length: 50,
			Color:  "#cd853f",
		},
		Contact: ContactConfig{
			Enabled:     true,
			Friction:    0.1,
			Restitution: 0.75,
		},
		Camera: CameraConfig{
			FOV:      75,
			Near:     0.1,
			Far:      1000,
			Position: Vec3{0, 5, 10},
			Target:   Vec3{0, 0, 0},
		},
		Lighting: LightingConfig{
			Background:           "#87ceeb",
			AmbientColor:         "#404040",
			AmbientIntensity:     5,
			DirectionalColor:     "#ffffff",
			DirectionalIntensity: 1,
			DirectionalPosition:  Vec3{5, 10, 7.5},
		},
		Shaders: ShaderConfig{
			Vertex:   "assets/shaders/lighting.vs",
			Fragment: "assets/shaders/lighting.fs",
		},
		HUD: true,
	}
}

// Load reads path (skipped when empty) and DefaultEnvFile on top of Default.
func Load(path string) (*Config, error) {
	return LoadFiles(path, DefaultEnvFile)
}

// LoadFiles is Load with an explicit .env location. A missing env file is
// not an error; a missing YAML file is.
func LoadFiles(path, envFile string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Window.TargetFPS < 0:
		return fmt.Errorf("%w: target_fps %d", ErrInvalid, c.Window.TargetFPS)
	case c.Simulation.FixedStep <= 0:
		return fmt.Errorf("%w: fixed_step must be positive, got %g", ErrInvalid, c.Simulation.FixedStep)
	case c.Simulation.MaxTicks < 0:
		return fmt.Errorf("%w: max_ticks %d", ErrInvalid, c.Simulation.MaxTicks)
	case c.Ball.Radius <= 0 || c.Ball.Mass <= 0:
		return fmt.Errorf("%w: ball needs positive radius and mass", ErrInvalid)
	case c.Ball.Segments < 3:
		return fmt.Errorf("%w: ball segments %d", ErrInvalid, c.Ball.Segments)
	case c.Court.Width <= 0 || c.Court.Length <= 0:
		return fmt.Errorf("%w: court size %gx%g", ErrInvalid, c.Court.Width, c.Court.Length)
	case c.Contact.Friction < 0:
		return fmt.Errorf("%w: friction %g", ErrInvalid, c.Contact.Friction)
	case c.Contact.Restitution < 0 || c.Contact.Restitution > 1:
		return fmt.Errorf("%w: restitution %g outside [0, 1]", ErrInvalid, c.Contact.Restitution)
	case c.Camera.FOV <= 0 || c.Camera.FOV >= 180:
		return fmt.Errorf("%w: fov %g", ErrInvalid, c.Camera.FOV)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("%w: clip planes %g/%g", ErrInvalid, c.Camera.Near, c.Camera.Far)
	}

	for name, hex := range map[string]string{
		"ball.color":                 c.Ball.Color,
		"court.color":                c.Court.Color,
		"lighting.background":        c.Lighting.Background,
		"lighting.ambient_color":     c.Lighting.AmbientColor,
		"lighting.directional_color": c.Lighting.DirectionalColor,
	} {
		if _, err := ParseColor(hex); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrInvalid, name, err)
		}
	}
	return nil
}
