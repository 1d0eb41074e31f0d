// Package field animates a fixed set of glowing particles joined by faint lines
// whenever two of them come closer than the connection distance.
package field

import (
	"math"
	"math/rand"
	"time"
)

// FrameStats describes one tick
type FrameStats struct {
	Frame       uint64
	Particles   int
	Connections int
	Reflections int
	Duration    time.Duration
}

// Option configures a Field
type Option func(*Field)

// WithRand injects the random source used to seed particles
func WithRand(rng *rand.Rand) Option {
	return func(f *Field) {
		if rng != nil {
			f.rng = rng
		}
	}
}

// WithSeed seeds the random source deterministically
func WithSeed(seed int64) Option {
	return func(f *Field) {
		f.rng = rand.New(rand.NewSource(seed))
	}
}

// WithLayers adds layers drawn beneath the particles every tick
func WithLayers(layers ...Layer) Option {
	return func(f *Field) {
		f.layers = append(f.layers, layers...)
	}
}

// WithFrameHook registers a callback invoked after every tick
func WithFrameHook(hook func(FrameStats)) Option {
	return func(f *Field) {
		f.hook = hook
	}
}

// Field struct: Owns the particles and the surface they are drawn on.
// A Field is not safe for concurrent use; the frame driver is its only caller.
type Field struct {
	cfg       Config
	particles []Particle
	layers    []Layer
	hook      func(FrameStats)
	rng       *rand.Rand

	surface       Surface
	driver        FrameDriver
	width, height float64
	offX, offY    float64 // Render translation (parallax)
	running       bool
	frame         uint64
}

// New creates a field. Particles are created by Start.
func New(cfg Config, opts ...Option) *Field {
	f := &Field{
		cfg: cfg.normalize(),
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Start seeds exactly cfg.Count particles across the surface and requests the first frame.
// It does nothing and returns false when either the surface or the driver is missing.
// Starting again reseeds the field.
func (f *Field) Start(s Surface, d FrameDriver) bool {
	if s == nil || d == nil {
		return false
	}
	if f.running {
		f.driver.CancelFrame()
	}

	f.surface = s
	f.driver = d
	f.width, f.height = s.Size()
	f.frame = 0
	f.seed()

	f.running = true
	f.driver.RequestFrame(f.step)
	return true
}

// step is the frame callback; the next frame is requested only once this one is drawn
func (f *Field) step() {
	if !f.running {
		return
	}
	f.Tick()
	if f.running {
		f.driver.RequestFrame(f.step)
	}
}

// Suspend cancels the pending frame, e.g. while the host is hidden
func (f *Field) Suspend() {
	if !f.running {
		return
	}
	f.running = false
	f.driver.CancelFrame()
}

// Resume requests frames again after Suspend
func (f *Field) Resume() {
	if f.running || f.driver == nil {
		return
	}
	f.running = true
	f.driver.RequestFrame(f.step)
}

// Running reports whether a frame is scheduled
func (f *Field) Running() bool {
	return f.running
}

// Resize updates the logical drawing size. Particles keep their coordinates and are
// reflected back by the regular boundary check.
func (f *Field) Resize(width, height float64) {
	if f.surface == nil {
		return
	}
	f.width = math.Max(width, 0)
	f.height = math.Max(height, 0)
	f.surface.Resize(f.width, f.height)
}

// SetOffset translates everything the field draws without moving particles
func (f *Field) SetOffset(dx, dy float64) {
	f.offX, f.offY = dx, dy
}

// Size returns the current logical drawing size
func (f *Field) Size() (float64, float64) {
	return f.width, f.height
}

// Particles returns a copy of the current particle set
func (f *Field) Particles() []Particle {
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}

// Tick clears the surface, advances every particle by one frame and draws the particles
// followed by the connections. It is a no-op before Start.
func (f *Field) Tick() FrameStats {
	if f.surface == nil {
		return FrameStats{Frame: f.frame}
	}
	start := time.Now()

	f.surface.Clear()
	for _, l := range f.layers {
		l.Tick(f.surface)
	}

	stats := FrameStats{Particles: len(f.particles)}
	for i := range f.particles {
		p := &f.particles[i]
		stats.Reflections += p.update(f.width, f.height, f.cfg.OpacityMin, f.cfg.OpacityMax)
		f.surface.FillCircle(p.X+f.offX, p.Y+f.offY, p.Radius, p.fill())
	}
	stats.Connections = f.connect()

	f.frame++
	stats.Frame = f.frame
	stats.Duration = time.Since(start)
	if f.hook != nil {
		f.hook(stats)
	}
	return stats
}

// connect draws a line for every unordered pair closer than the connection distance
func (f *Field) connect() int {
	limit := f.cfg.ConnectionDistance * f.cfg.ConnectionDistance
	count := 0
	for i := 0; i < len(f.particles); i++ {
		a := &f.particles[i]
		for j := i + 1; j < len(f.particles); j++ {
			b := &f.particles[j]
			dx := a.X - b.X
			dy := a.Y - b.Y
			if dx*dx+dy*dy < limit {
				f.surface.StrokeLine(a.X+f.offX, a.Y+f.offY, b.X+f.offX, b.Y+f.offY, f.cfg.LineWidth, f.cfg.LineColor)
				count++
			}
		}
	}
	return count
}

// seed creates the particle set against the current size
func (f *Field) seed() {
	c := f.cfg
	f.particles = make([]Particle, c.Count)
	for i := range f.particles {
		f.particles[i] = Particle{
			X:            f.rng.Float64() * f.width,
			Y:            f.rng.Float64() * f.height,
			VX:           (f.rng.Float64() - 0.5) * c.MaxSpeed,
			VY:           (f.rng.Float64() - 0.5) * c.MaxSpeed,
			Radius:       f.rng.Float64()*c.RadiusSpread + c.MinRadius,
			Color:        c.Palette[f.rng.Intn(len(c.Palette))],
			Opacity:      f.rng.Float64()*(c.OpacityMax-c.OpacityMin) + c.OpacityMin,
			OpacitySpeed: (f.rng.Float64() - 0.5) * c.OpacityStep,
		}
	}
}
