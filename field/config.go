package field

import "image/color"

// Field defaults
const (
	DefaultCount              = 50
	DefaultConnectionDistance = 150.0
	DefaultLineWidth          = 0.5
	DefaultMaxSpeed           = 0.5
	DefaultMinRadius          = 0.5
	DefaultRadiusSpread       = 2.0
	DefaultOpacityMin         = 0.1
	DefaultOpacityMax         = 0.6
	DefaultOpacityStep        = 0.01
)

var (
	// Cyan and purple
	DefaultPalette = []color.NRGBA{
		{R: 0, G: 242, B: 255, A: 255},
		{R: 124, G: 58, B: 237, A: 255},
	}
	DefaultLineColor = color.NRGBA{R: 100, G: 116, B: 139, A: 26} // ~0.1 alpha
)

// Config holds the tunables of a particle field
type Config struct {
	Count              int
	ConnectionDistance float64
	LineWidth          float64
	LineColor          color.NRGBA
	MaxSpeed           float64 // velocity components are drawn from (-MaxSpeed/2, MaxSpeed/2)
	MinRadius          float64
	RadiusSpread       float64
	OpacityMin         float64
	OpacityMax         float64
	OpacityStep        float64 // opacity speed is drawn from (-OpacityStep/2, OpacityStep/2)
	Palette            []color.NRGBA
}

// DefaultConfig returns the configuration of the site background
func DefaultConfig() Config {
	palette := make([]color.NRGBA, len(DefaultPalette))
	copy(palette, DefaultPalette)

	return Config{
		Count:              DefaultCount,
		ConnectionDistance: DefaultConnectionDistance,
		LineWidth:          DefaultLineWidth,
		LineColor:          DefaultLineColor,
		MaxSpeed:           DefaultMaxSpeed,
		MinRadius:          DefaultMinRadius,
		RadiusSpread:       DefaultRadiusSpread,
		OpacityMin:         DefaultOpacityMin,
		OpacityMax:         DefaultOpacityMax,
		OpacityStep:        DefaultOpacityStep,
		Palette:            palette,
	}
}

// normalize replaces unusable values with defaults. Count, speed and radius are kept as given.
func (c Config) normalize() Config {
	d := DefaultConfig()
	if c.Count < 0 {
		c.Count = 0
	}
	if c.ConnectionDistance <= 0 {
		c.ConnectionDistance = d.ConnectionDistance
	}
	if c.LineWidth <= 0 {
		c.LineWidth = d.LineWidth
	}
	if c.LineColor == (color.NRGBA{}) {
		c.LineColor = d.LineColor
	}
	if c.OpacityMax <= c.OpacityMin {
		c.OpacityMin, c.OpacityMax = d.OpacityMin, d.OpacityMax
	}
	if len(c.Palette) == 0 {
		c.Palette = d.Palette
	}
	return c
}
