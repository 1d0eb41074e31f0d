// Package config loads the settings shared by every host: defaults, an optional JSON file
// and PARTICLES_* environment overrides (a .env file in the working directory is honoured).
package config

import (
	"encoding/json"
	"image/color"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"

	"github.com/olivierh59500/particle-field-go/drift"
	"github.com/olivierh59500/particle-field-go/field"
)

// Environment variables
const (
	EnvCount    = "PARTICLES_COUNT"
	EnvDistance = "PARTICLES_DISTANCE"
	EnvSeed     = "PARTICLES_SEED"
	EnvWidth    = "PARTICLES_WIDTH"
	EnvHeight   = "PARTICLES_HEIGHT"
	EnvTPS      = "PARTICLES_TPS"
)

// Window describes the host viewport
type Window struct {
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Title      string `json:"title"`
	TPS        int    `json:"tps"`
	Background string `json:"background"`
}

// Field mirrors field.Config with hex colours
type Field struct {
	Count              int      `json:"count"`
	ConnectionDistance float64  `json:"connection_distance"`
	LineWidth          float64  `json:"line_width"`
	LineColor          string   `json:"line_color"`
	LineOpacity        float64  `json:"line_opacity"`
	MaxSpeed           float64  `json:"max_speed"`
	MinRadius          float64  `json:"min_radius"`
	RadiusSpread       float64  `json:"radius_spread"`
	OpacityMin         float64  `json:"opacity_min"`
	OpacityMax         float64  `json:"opacity_max"`
	OpacityStep        float64  `json:"opacity_step"`
	Palette            []string `json:"palette"`
}

// Settings is the whole configuration
type Settings struct {
	Seed     int64        `json:"seed"` // 0 picks a time based seed
	Window   Window       `json:"window"`
	Field    Field        `json:"field"`
	Drift    drift.Config `json:"drift"`
	Parallax Parallax     `json:"parallax"`
}

// Parallax speeds per layer
type Parallax struct {
	FieldSpeed float64 `json:"field_speed"`
	DriftSpeed float64 `json:"drift_speed"`
}

// Default returns the settings of the site background
func Default() Settings {
	return Settings{
		Window: Window{Width: 1280, Height: 720, Title: "Particle Field", TPS: 60, Background: "#0f172a"},
		Field: Field{
			Count:              field.DefaultCount,
			ConnectionDistance: field.DefaultConnectionDistance,
			LineWidth:          field.DefaultLineWidth,
			LineColor:          "#64748b",
			LineOpacity:        0.1,
			MaxSpeed:           field.DefaultMaxSpeed,
			MinRadius:          field.DefaultMinRadius,
			RadiusSpread:       field.DefaultRadiusSpread,
			OpacityMin:         field.DefaultOpacityMin,
			OpacityMax:         field.DefaultOpacityMax,
			OpacityStep:        field.DefaultOpacityStep,
			Palette:            []string{"#00f2ff", "#7c3aed"},
		},
		Drift:    drift.DefaultConfig(),
		Parallax: Parallax{FieldSpeed: 0.02, DriftSpeed: 0.05},
	}
}

// Load reads a JSON file over the defaults. A missing file is not an error.
func Load(path string) (Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return s, errors.Wrapf(err, "read %s", path)
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return s, errors.Wrapf(err, "parse %s", path)
	}
	return s, nil
}

// Save writes the settings as indented JSON
func (s Settings) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode settings")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}

// ApplyEnv loads envFile (if present) into the environment and applies PARTICLES_* overrides
func (s *Settings) ApplyEnv(envFile string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(errors.Cause(err)) {
			return errors.Wrapf(err, "load %s", envFile)
		}
	}

	if err := intEnv(EnvCount, &s.Field.Count); err != nil {
		return err
	}
	if err := floatEnv(EnvDistance, &s.Field.ConnectionDistance); err != nil {
		return err
	}
	if err := intEnv(EnvWidth, &s.Window.Width); err != nil {
		return err
	}
	if err := intEnv(EnvHeight, &s.Window.Height); err != nil {
		return err
	}
	if err := intEnv(EnvTPS, &s.Window.TPS); err != nil {
		return err
	}
	if v, ok := os.LookupEnv(EnvSeed); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return errors.Wrapf(err, "%s", EnvSeed)
		}
		s.Seed = seed
	}
	return nil
}

func intEnv(key string, dst *int) error {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return errors.Wrapf(err, "%s", key)
	}
	*dst = n
	return nil
}

func floatEnv(key string, dst *float64) error {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return errors.Wrapf(err, "%s", key)
	}
	*dst = f
	return nil
}

// FieldConfig converts the settings into a field.Config
func (s Settings) FieldConfig() (field.Config, error) {
	f := s.Field
	cfg := field.Config{
		Count:              f.Count,
		ConnectionDistance: f.ConnectionDistance,
		LineWidth:          f.LineWidth,
		MaxSpeed:           f.MaxSpeed,
		MinRadius:          f.MinRadius,
		RadiusSpread:       f.RadiusSpread,
		OpacityMin:         f.OpacityMin,
		OpacityMax:         f.OpacityMax,
		OpacityStep:        f.OpacityStep,
	}

	if f.LineColor != "" {
		c, err := parseHex(f.LineColor, f.LineOpacity)
		if err != nil {
			return cfg, err
		}
		cfg.LineColor = c
	}
	for _, hex := range f.Palette {
		c, err := parseHex(hex, 1)
		if err != nil {
			return cfg, err
		}
		cfg.Palette = append(cfg.Palette, c)
	}
	return cfg, nil
}

// BackgroundColor parses the window background, opaque black when unset
func (s Settings) BackgroundColor() (color.NRGBA, error) {
	if s.Window.Background == "" {
		return color.NRGBA{A: 255}, nil
	}
	return parseHex(s.Window.Background, 1)
}

func parseHex(hex string, opacity float64) (color.NRGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, errors.Wrapf(err, "colour %q", hex)
	}
	r, g, b := c.RGB255()
	if opacity < 0 {
		opacity = 0
	} else if opacity > 1 {
		opacity = 1
	}
	return color.NRGBA{R: r, G: g, B: b, A: uint8(opacity*255 + 0.5)}, nil
}
