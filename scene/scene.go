// Package scene assembles the background from settings: the floating particles
// underneath, the particle field on top, both shifted by the cursor parallax.
package scene

import (
	"math/rand"
	"time"

	"github.com/olivierh59500/particle-field-go/config"
	"github.com/olivierh59500/particle-field-go/drift"
	"github.com/olivierh59500/particle-field-go/field"
	"github.com/olivierh59500/particle-field-go/parallax"
)

// Scene owns every layer of the background
type Scene struct {
	Field *field.Field
	Swarm *drift.Swarm

	tracker *parallax.Tracker
	speeds  config.Parallax
	seed    int64
}

// Build creates a scene. extra options are applied to the field after the scene's own.
func Build(s config.Settings, extra ...field.Option) (*Scene, error) {
	cfg, err := s.FieldConfig()
	if err != nil {
		return nil, err
	}

	seed := s.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	swarm := drift.New(s.Drift, rng)
	opts := []field.Option{field.WithRand(rng), field.WithLayers(swarm)}
	opts = append(opts, extra...)

	return &Scene{
		Field:   field.New(cfg, opts...),
		Swarm:   swarm,
		tracker: parallax.NewTracker(0, 0),
		speeds:  s.Parallax,
		seed:    seed,
	}, nil
}

// Seed returns the seed in use, useful to reproduce a time seeded run
func (sc *Scene) Seed() int64 {
	return sc.seed
}

// Start seeds the field on surf and starts the frame loop on d
func (sc *Scene) Start(surf field.Surface, d field.FrameDriver) bool {
	if surf == nil {
		return false
	}
	w, h := surf.Size()
	sc.tracker.Resize(w, h)
	sc.apply()
	return sc.Field.Start(surf, d)
}

// Resize follows a viewport change
func (sc *Scene) Resize(w, h float64) {
	sc.Field.Resize(w, h)
	sc.tracker.Resize(w, h)
	sc.apply()
}

// PointerMove shifts the layers for a cursor at (x, y)
func (sc *Scene) PointerMove(x, y float64) {
	sc.tracker.Move(x, y)
	sc.apply()
}

func (sc *Scene) apply() {
	sc.tracker.Apply(
		parallax.Layer{Target: sc.Field, Speed: sc.speeds.FieldSpeed},
		parallax.Layer{Target: sc.Swarm, Speed: sc.speeds.DriftSpeed},
	)
}
