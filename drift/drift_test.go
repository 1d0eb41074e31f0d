package drift_test

import (
	"image/color"
	"math/rand"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/olivierh59500/particle-field-go/drift"
)

type dot struct {
	x, y, r float64
	c       color.NRGBA
}

type dotSurface struct {
	w, h float64
	dots []dot
}

func (s *dotSurface) Size() (float64, float64) { return s.w, s.h }
func (s *dotSurface) Resize(w, h float64)      { s.w, s.h = w, h }
func (s *dotSurface) Clear()                   { s.dots = s.dots[:0] }
func (s *dotSurface) FillCircle(x, y, r float64, c color.Color) {
	s.dots = append(s.dots, dot{x, y, r, c.(color.NRGBA)})
}
func (s *dotSurface) StrokeLine(_, _, _, _, _ float64, _ color.Color) {}

var _ = Describe("Swarm", func() {
	var (
		cfg     drift.Config
		surface *dotSurface
	)

	BeforeEach(func() {
		cfg = drift.DefaultConfig()
		surface = &dotSurface{w: 800, h: 600}
	})

	It("should seed floaters within the configured ranges", func() {
		s := drift.New(cfg, rand.New(rand.NewSource(1)))
		floaters := s.Floaters()

		Expect(floaters).To(HaveLen(30))
		for _, f := range floaters {
			Expect(f.Left).To(BeNumerically(">=", 0))
			Expect(f.Left).To(BeNumerically("<", 1))
			Expect(f.Delay).To(BeNumerically("<", cfg.MaxDelay))
			Expect(f.Duration).To(BeNumerically(">=", cfg.MinDuration))
			Expect(f.Duration).To(BeNumerically("<", cfg.MinDuration+cfg.DurationSpread))
			Expect(f.Size).To(BeNumerically(">=", cfg.MinSize))
			Expect(f.Size).To(BeNumerically("<", cfg.MinSize+cfg.SizeSpread))
			Expect(f.Hue).To(BeElementOf(drift.HueCyan, drift.HuePurple))
		}
	})

	It("should be deterministic for a seed", func() {
		a := drift.New(cfg, rand.New(rand.NewSource(9)))
		b := drift.New(cfg, rand.New(rand.NewSource(9)))
		Expect(a.Floaters()).To(Equal(b.Floaters()))

		for i := 0; i < 120; i++ {
			a.Tick(surface)
		}
		first := append([]dot(nil), surface.dots...)
		surface.dots = nil
		for i := 0; i < 120; i++ {
			b.Tick(surface)
		}
		Expect(surface.dots).To(Equal(first))
	})

	Context("with a single floater and no delay", func() {
		var s *drift.Swarm

		BeforeEach(func() {
			cfg.Count = 1
			cfg.MaxDelay = 0
			cfg.MinDuration = 10
			cfg.DurationSpread = 0
			s = drift.New(cfg, rand.New(rand.NewSource(3)))
		})

		It("should rise from the bottom towards the top", func() {
			s.Tick(surface)
			_, y0, _, ok := s.Position(0, 800, 600)
			Expect(ok).To(BeTrue())
			Expect(y0).To(BeNumerically(">", 590))

			for i := 0; i < 299; i++ {
				s.Tick(surface)
			}
			_, y1, fade, _ := s.Position(0, 800, 600)
			Expect(y1).To(BeNumerically("~", 300, 1))
			Expect(fade).To(BeNumerically("~", 1, 1e-6))
		})

		It("should draw a glow and a dot at full strength mid-rise", func() {
			for i := 0; i < 300; i++ {
				surface.Clear()
				s.Tick(surface)
			}
			Expect(surface.dots).To(HaveLen(2))
			glow, core := surface.dots[0], surface.dots[1]
			Expect(glow.r).To(BeNumerically(">", core.r))
			Expect(core.c.A).To(Equal(uint8(204)))
			Expect(glow.c.A).To(BeNumerically("~", 64, 1))
		})

		It("should keep the wobble within bounds", func() {
			left := s.Floaters()[0].Left * 800
			for i := 0; i < 2000; i++ {
				s.Tick(surface)
				x, _, _, _ := s.Position(0, 800, 600)
				Expect(x).To(BeNumerically("~", left, cfg.Wobble))
			}
		})

		It("should apply the parallax offset when drawing", func() {
			for i := 0; i < 300; i++ {
				s.Tick(surface)
			}
			x, y, _, _ := s.Position(0, 800, 600)

			surface.Clear()
			s.SetOffset(12, -4)
			s.Tick(surface)
			x2, y2, _, _ := s.Position(0, 800, 600)
			Expect(surface.dots[1].x - x2).To(BeNumerically("~", 12, 1e-9))
			Expect(surface.dots[1].y - y2).To(BeNumerically("~", -4, 1e-9))
			Expect(x2).To(BeNumerically("~", x, 1))
			Expect(y2).To(BeNumerically("<", y))
		})
	})

	It("should hold floaters back until their delay elapses", func() {
		cfg.Count = 1
		cfg.MaxDelay = 15
		s := drift.New(cfg, rand.New(rand.NewSource(11)))
		delay := s.Floaters()[0].Delay

		_, _, _, ok := s.Position(0, 800, 600)
		Expect(ok).To(Equal(delay == 0))
		for s.Elapsed() < delay+0.5 {
			s.Tick(surface)
		}
		_, _, _, ok = s.Position(0, 800, 600)
		Expect(ok).To(BeTrue())
	})

	It("should draw nothing on an empty surface", func() {
		s := drift.New(cfg, rand.New(rand.NewSource(5)))
		empty := &dotSurface{}
		for i := 0; i < 1000; i++ {
			s.Tick(empty)
		}
		Expect(empty.dots).To(BeEmpty())
		Expect(s.Elapsed()).To(BeNumerically("~", 1000.0/60, 1e-6))
	})
})
