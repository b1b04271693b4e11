package config

import (
	"fmt"
	"math"
	"os"

	"github.com/san-kum/bucketsim/internal/dynamo"
	"gopkg.in/yaml.v3"
)

const (
	DefaultTitle        = "Parabolic Bucket Simulation"
	DefaultWidth        = 800
	DefaultHeight       = 600
	DefaultRenderRate   = 60
	DefaultPhysicsRate  = 600
	DefaultGravity      = 980.0
	DefaultBallRadius   = 20.0
	DefaultBallMass     = 10.0
	DefaultBucketWidth  = 600.0
	DefaultBucketHeight = 100.0
	DefaultDragGain     = 10.0
	DefaultQueryRadius  = 10.0
	DefaultFallCap      = 800.0
)

type Config struct {
	Title    string         `yaml:"title"`
	Viewport ViewportConfig `yaml:"viewport"`
	Rates    RatesConfig    `yaml:"rates"`
	Gravity  VecConfig      `yaml:"gravity"`
	Ball     BallConfig     `yaml:"ball"`
	Bucket   BucketConfig   `yaml:"bucket"`
	Drag     DragConfig     `yaml:"drag"`
	Boundary BoundaryConfig `yaml:"boundary"`
}

type ViewportConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type RatesConfig struct {
	Render  int `yaml:"render"`
	Physics int `yaml:"physics"`
}

type VecConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type BallConfig struct {
	Radius float64 `yaml:"radius"`
	Mass   float64 `yaml:"mass"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
}

type BucketConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	XOffset float64 `yaml:"x_offset"`
	YOffset float64 `yaml:"y_offset"`
}

type DragConfig struct {
	Gain        float64 `yaml:"gain"`
	QueryRadius float64 `yaml:"query_radius"`
}

type BoundaryConfig struct {
	FallCap float64 `yaml:"fall_cap"`
}

// DefaultConfig returns the stock scene: an 800x600 window, a 600x100
// bucket centred 100 units above the bottom edge and the ball 200 units
// right of centre.
func DefaultConfig() *Config {
	return &Config{
		Title: DefaultTitle,
		Viewport: ViewportConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
		Rates: RatesConfig{
			Render:  DefaultRenderRate,
			Physics: DefaultPhysicsRate,
		},
		Gravity: VecConfig{Y: DefaultGravity},
		Ball: BallConfig{
			Radius: DefaultBallRadius,
			Mass:   DefaultBallMass,
			X:      DefaultWidth/2 + 200,
			Y:      100,
		},
		Bucket: BucketConfig{
			Width:   DefaultBucketWidth,
			Height:  DefaultBucketHeight,
			XOffset: DefaultWidth / 2,
			YOffset: DefaultHeight - 100,
		},
		Drag: DragConfig{
			Gain:        DefaultDragGain,
			QueryRadius: DefaultQueryRadius,
		},
		Boundary: BoundaryConfig{
			FallCap: DefaultFallCap,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports the first parameter that would make the scene or the
// scheduler impossible to build.
func (c *Config) Validate() error {
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("viewport %vx%v: %w", c.Viewport.Width, c.Viewport.Height, dynamo.ErrParameterBounds)
	}
	if c.Rates.Render <= 0 || c.Rates.Physics <= 0 || c.Rates.Physics%c.Rates.Render != 0 {
		return fmt.Errorf("rates %d/%d: %w", c.Rates.Render, c.Rates.Physics, dynamo.ErrInvalidRates)
	}
	if c.Bucket.Height == 0 {
		return dynamo.ErrZeroHeight
	}
	if math.IsNaN(c.Bucket.Height) || math.IsInf(c.Bucket.Height, 0) {
		return fmt.Errorf("bucket height %v: %w", c.Bucket.Height, dynamo.ErrParameterBounds)
	}
	if c.Bucket.Width < 0 {
		return fmt.Errorf("bucket width %v: %w", c.Bucket.Width, dynamo.ErrParameterBounds)
	}
	if c.Ball.Radius <= 0 || c.Ball.Mass <= 0 {
		return fmt.Errorf("ball radius %v mass %v: %w", c.Ball.Radius, c.Ball.Mass, dynamo.ErrParameterBounds)
	}
	if c.Drag.Gain < 0 || c.Drag.QueryRadius <= 0 {
		return fmt.Errorf("drag gain %v radius %v: %w", c.Drag.Gain, c.Drag.QueryRadius, dynamo.ErrParameterBounds)
	}
	if c.Boundary.FallCap <= 0 {
		return fmt.Errorf("fall cap %v: %w", c.Boundary.FallCap, dynamo.ErrParameterBounds)
	}
	return nil
}

func (c *Config) ViewportRect() dynamo.Viewport {
	return dynamo.Viewport{Width: c.Viewport.Width, Height: c.Viewport.Height}
}

func (c *Config) GravityVec() dynamo.Vec2 {
	return dynamo.Vec2{X: c.Gravity.X, Y: c.Gravity.Y}
}

func (c *Config) BallPosition() dynamo.Vec2 {
	return dynamo.Vec2{X: c.Ball.X, Y: c.Ball.Y}
}
