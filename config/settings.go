package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"

	"cubescene/core"
)

// EnvPrefix prefixes every environment override, e.g. CUBESCENE_WINDOW_BACKEND
const EnvPrefix = "CUBESCENE_"

// Backend names
const (
	BackendOpenGL = "opengl"
	BackendRaylib = "raylib"
)

type Settings struct {
	Window WindowSettings `json:"window" toml:"window" envPrefix:"WINDOW_"`
	Scene  SceneSettings  `json:"scene" toml:"scene" envPrefix:"SCENE_"`
	Camera CameraSettings `json:"camera" toml:"camera" envPrefix:"CAMERA_"`
	Fog    FogSettings    `json:"fog" toml:"fog" envPrefix:"FOG_"`
}

type WindowSettings struct {
	Width   int    `json:"width" toml:"width" env:"WIDTH"`
	Height  int    `json:"height" toml:"height" env:"HEIGHT"`
	Title   string `json:"title" toml:"title" env:"TITLE"`
	Backend string `json:"backend" toml:"backend" env:"BACKEND"`
	VSync   bool   `json:"vsync" toml:"vsync" env:"VSYNC"`
	Samples int    `json:"samples" toml:"samples" env:"SAMPLES"` // MSAA samples, 0 disables
}

// SceneSettings shape the generated objects; changing them needs a restart
type SceneSettings struct {
	GridSize      int     `json:"gridSize" toml:"grid_size" env:"GRID_SIZE"`
	Spacing       float32 `json:"spacing" toml:"spacing" env:"SPACING"`
	ParticleCount int     `json:"particleCount" toml:"particle_count" env:"PARTICLE_COUNT"`
	ParticleBound float32 `json:"particleBound" toml:"particle_bound" env:"PARTICLE_BOUND"`
	ParticleSpeed float32 `json:"particleSpeed" toml:"particle_speed" env:"PARTICLE_SPEED"`
	Seed          uint64  `json:"seed" toml:"seed" env:"SEED"` // 0 seeds from the clock
}

// CameraSettings apply live
type CameraSettings struct {
	OrbitRadius float32 `json:"orbitRadius" toml:"orbit_radius" env:"ORBIT_RADIUS"`
	OrbitSpeed  float32 `json:"orbitSpeed" toml:"orbit_speed" env:"ORBIT_SPEED"`
	ZoomSpeed   float32 `json:"zoomSpeed" toml:"zoom_speed" env:"ZOOM_SPEED"`
	MinZoom     float32 `json:"minZoom" toml:"min_zoom" env:"MIN_ZOOM"`
	MaxZoom     float32 `json:"maxZoom" toml:"max_zoom" env:"MAX_ZOOM"`
}

// FogSettings apply live
type FogSettings struct {
	Near float32 `json:"near" toml:"near" env:"NEAR"`
	Far  float32 `json:"far" toml:"far" env:"FAR"`
}

// Defaults returns the stock scene in a 1280x720 OpenGL window
func Defaults() Settings {
	return Settings{
		Window: WindowSettings{
			Width:   1280,
			Height:  720,
			Title:   "cubescene",
			Backend: BackendOpenGL,
			VSync:   true,
			Samples: 4,
		},
		Scene: SceneSettings{
			GridSize:      core.DefaultGrid.Size,
			Spacing:       core.DefaultGrid.Spacing,
			ParticleCount: core.DefaultParticleCount,
			ParticleBound: core.DefaultParticleBound,
			ParticleSpeed: core.DefaultParticleSpeed,
		},
		Camera: CameraSettings{
			OrbitRadius: core.DefaultTunables.OrbitRadius,
			OrbitSpeed:  core.DefaultTunables.OrbitSpeed,
			ZoomSpeed:   core.DefaultTunables.ZoomSpeed,
			MinZoom:     core.DefaultTunables.MinZoom,
			MaxZoom:     core.DefaultTunables.MaxZoom,
		},
		Fog: FogSettings{Near: 15, Far: 30},
	}
}

// Load reads settings from path over the defaults, then applies environment
// overrides. A missing file is not an error. An empty path skips the file.
// The result is not validated: callers apply their own overrides first.
func Load(path string, log *slog.Logger) (Settings, error) {
	s := Defaults()

	if path != "" {
		if err := decodeFile(path, &s); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return s, err
			}
			log.Info("no settings file found, using defaults", "path", path)
		} else {
			log.Info("loaded settings", "path", path, "grid", s.Scene.GridSize, "particles", s.Scene.ParticleCount)
		}
	}

	if err := env.ParseWithOptions(&s, env.Options{Prefix: EnvPrefix}); err != nil {
		return s, fmt.Errorf("parse env: %w", err)
	}
	return s, nil
}

// Overrides are command line values that win over the file and the
// environment. Nil fields are left alone.
type Overrides struct {
	Backend *string
	Width   *int
	Height  *int
	Seed    *uint64
}

// Apply copies every set override into s
func (s *Settings) Apply(o Overrides) {
	if o.Backend != nil {
		s.Window.Backend = *o.Backend
	}
	if o.Width != nil {
		s.Window.Width = *o.Width
	}
	if o.Height != nil {
		s.Window.Height = *o.Height
	}
	if o.Seed != nil {
		s.Scene.Seed = *o.Seed
	}
}

// decodeFile picks TOML or JSON by file extension
func decodeFile(path string, s *Settings) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(s); err != nil {
			return fmt.Errorf("error parsing %s: %w", path, err)
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(s); err != nil {
			return fmt.Errorf("error parsing %s: %w", path, err)
		}
	}
	return nil
}

// Validate rejects settings the scene cannot be built from
func (s Settings) Validate() error {
	var errs []error
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", s.Window.Width, s.Window.Height))
	}
	if s.Window.Backend != BackendOpenGL && s.Window.Backend != BackendRaylib {
		errs = append(errs, fmt.Errorf("unknown backend %q", s.Window.Backend))
	}
	if s.Scene.GridSize <= 0 {
		errs = append(errs, fmt.Errorf("grid size must be positive, got %d", s.Scene.GridSize))
	}
	if s.Scene.Spacing <= 0 {
		errs = append(errs, fmt.Errorf("spacing must be positive, got %g", s.Scene.Spacing))
	}
	if s.Scene.ParticleCount < 0 {
		errs = append(errs, fmt.Errorf("particle count must not be negative, got %d", s.Scene.ParticleCount))
	}
	if s.Scene.ParticleBound <= 0 {
		errs = append(errs, fmt.Errorf("particle bound must be positive, got %g", s.Scene.ParticleBound))
	}
	if s.Camera.MinZoom > s.Camera.MaxZoom {
		errs = append(errs, fmt.Errorf("min zoom %g above max zoom %g", s.Camera.MinZoom, s.Camera.MaxZoom))
	}
	return errors.Join(errs...)
}

// SceneConfig converts the settings for core.NewScene
func (s Settings) SceneConfig() core.SceneConfig {
	return core.SceneConfig{
		Grid: core.GridConfig{Size: s.Scene.GridSize, Spacing: s.Scene.Spacing},
		Field: core.FieldConfig{
			Count:    s.Scene.ParticleCount,
			Bound:    s.Scene.ParticleBound,
			MaxSpeed: s.Scene.ParticleSpeed,
		},
		Fog:      s.FogConfig(),
		Tunables: s.Tunables(),
		Width:    s.Window.Width,
		Height:   s.Window.Height,
	}
}

func (s Settings) Tunables() core.Tunables {
	return core.Tunables{
		OrbitRadius: s.Camera.OrbitRadius,
		OrbitSpeed:  s.Camera.OrbitSpeed,
		ZoomSpeed:   s.Camera.ZoomSpeed,
		MinZoom:     s.Camera.MinZoom,
		MaxZoom:     s.Camera.MaxZoom,
	}
}

func (s Settings) FogConfig() core.Fog {
	return core.Fog{Color: core.FogColor, Near: s.Fog.Near, Far: s.Fog.Far}
}

// RestartRequired lists the sections that differ between old and updated
// but only take effect on the next start
func RestartRequired(old, updated Settings) []string {
	var sections []string
	if old.Window != updated.Window {
		sections = append(sections, "window")
	}
	if old.Scene != updated.Scene {
		sections = append(sections, "scene")
	}
	return sections
}
