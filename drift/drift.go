// Package drift draws the hero "floating particles": small glowing dots rising from the
// bottom of the surface to the top, each on its own schedule, wobbling sideways along a
// Perlin noise curve.
package drift

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/aquilax/go-perlin"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/olivierh59500/particle-field-go/field"
)

// Hues in degrees
const (
	HueCyan   = 180.0
	HuePurple = 280.0
)

// Noise parameters
const (
	noiseAlpha = 2.0
	noiseBeta  = 2.0
	noiseOcts  = 3
	wobbleFreq = 0.25 // Noise samples per second
	fadeShare  = 0.1  // Fraction of the rise spent fading in and out
)

// Config tunes the swarm
type Config struct {
	Count          int     `json:"count"`
	MaxDelay       float64 `json:"max_delay"`    // Seconds
	MinDuration    float64 `json:"min_duration"` // Seconds
	DurationSpread float64 `json:"duration_spread"`
	MinSize        float64 `json:"min_size"`
	SizeSpread     float64 `json:"size_spread"`
	PurpleShare    float64 `json:"purple_share"` // Probability of a purple floater
	Wobble         float64 `json:"wobble"`       // Max horizontal excursion
	FrameStep      float64 `json:"frame_step"`   // Seconds advanced per tick
}

// DefaultConfig matches the hero section of the site
func DefaultConfig() Config {
	return Config{
		Count:          30,
		MaxDelay:       15,
		MinDuration:    10,
		DurationSpread: 10,
		MinSize:        2,
		SizeSpread:     4,
		PurpleShare:    0.3,
		Wobble:         25,
		FrameStep:      1.0 / 60,
	}
}

// Floater is one rising dot
type Floater struct {
	Left     float64 // Fraction of the width
	Delay    float64
	Duration float64
	Size     float64
	Hue      float64
	fill     color.NRGBA
	glow     color.NRGBA
}

// Swarm implements field.Layer
type Swarm struct {
	cfg        Config
	floaters   []Floater
	noise      *perlin.Perlin
	elapsed    float64
	offX, offY float64
}

// New creates a swarm seeded from rng
func New(cfg Config, rng *rand.Rand) *Swarm {
	if cfg.FrameStep <= 0 {
		cfg.FrameStep = DefaultConfig().FrameStep
	}
	if cfg.MinDuration <= 0 {
		cfg.MinDuration = DefaultConfig().MinDuration
	}
	if cfg.Count < 0 {
		cfg.Count = 0
	}

	s := &Swarm{
		cfg:      cfg,
		floaters: make([]Floater, cfg.Count),
		noise:    perlin.NewPerlin(noiseAlpha, noiseBeta, noiseOcts, rng.Int63()),
	}
	for i := range s.floaters {
		hue := HueCyan
		left := rng.Float64()
		delay := rng.Float64() * cfg.MaxDelay
		duration := cfg.MinDuration + rng.Float64()*cfg.DurationSpread
		size := cfg.MinSize + rng.Float64()*cfg.SizeSpread
		if rng.Float64() < cfg.PurpleShare {
			hue = HuePurple
		}
		s.floaters[i] = Floater{
			Left:     left,
			Delay:    delay,
			Duration: duration,
			Size:     size,
			Hue:      hue,
			fill:     hsla(hue, 1, 0.7, 0.8),
			glow:     hsla(hue, 1, 0.5, 0.5),
		}
	}
	return s
}

func hsla(h, s, l, a float64) color.NRGBA {
	r, g, b := colorful.Hsl(h, s, l).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(a*255 + 0.5)}
}

// Floaters returns a copy of the floater set
func (s *Swarm) Floaters() []Floater {
	out := make([]Floater, len(s.floaters))
	copy(out, s.floaters)
	return out
}

// Elapsed returns the simulated time in seconds
func (s *Swarm) Elapsed() float64 {
	return s.elapsed
}

// SetOffset translates the swarm at draw time
func (s *Swarm) SetOffset(dx, dy float64) {
	s.offX, s.offY = dx, dy
}

// Position computes where floater i is at the current time on a width x height surface.
// fade is in [0,1]; ok is false while the floater waits for its delay.
func (s *Swarm) Position(i int, width, height float64) (x, y, fade float64, ok bool) {
	f := s.floaters[i]
	local := s.elapsed - f.Delay
	if local < 0 {
		return 0, 0, 0, false
	}

	p := math.Mod(local, f.Duration) / f.Duration
	travel := height + 2*f.Size
	y = height + f.Size - p*travel

	n := s.noise.Noise2D(float64(i)*0.37, s.elapsed*wobbleFreq)
	x = f.Left*width + clamp(n*2, -1, 1)*s.cfg.Wobble

	fade = math.Min(1, math.Min(p/fadeShare, (1-p)/fadeShare))
	return x, y, fade, true
}

// Tick advances time by one frame and draws every visible floater
func (s *Swarm) Tick(surf field.Surface) {
	s.elapsed += s.cfg.FrameStep
	width, height := surf.Size()
	if width <= 0 || height <= 0 {
		return
	}

	for i, f := range s.floaters {
		x, y, fade, ok := s.Position(i, width, height)
		if !ok || fade <= 0 {
			continue
		}
		x += s.offX
		y += s.offY
		surf.FillCircle(x, y, f.Size*1.5, scale(f.glow, fade*0.5))
		surf.FillCircle(x, y, f.Size/2, scale(f.fill, fade))
	}
}

func scale(c color.NRGBA, k float64) color.NRGBA {
	c.A = uint8(float64(c.A) * clamp(k, 0, 1))
	return c
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
