package field

import "image/color"

// Particle struct: Represents a single glowing point
type Particle struct {
	X, Y         float64 // Position
	VX, VY       float64 // Velocity, per frame
	Radius       float64
	Color        color.NRGBA // Base hue, alpha is ignored
	Opacity      float64
	OpacitySpeed float64
}

// update advances the particle by one frame: displace, then reflect at the bounds,
// then oscillate opacity. Returns the number of velocity components reflected.
func (p *Particle) update(width, height, minOpacity, maxOpacity float64) int {
	p.X += p.VX
	p.Y += p.VY

	reflections := 0
	// Only an outward velocity is reflected
	if (p.X < 0 && p.VX < 0) || (p.X > width && p.VX > 0) {
		p.VX = -p.VX
		reflections++
	}
	if (p.Y < 0 && p.VY < 0) || (p.Y > height && p.VY > 0) {
		p.VY = -p.VY
		reflections++
	}

	p.Opacity += p.OpacitySpeed
	if (p.Opacity > maxOpacity && p.OpacitySpeed > 0) || (p.Opacity < minOpacity && p.OpacitySpeed < 0) {
		p.OpacitySpeed = -p.OpacitySpeed
	}

	return reflections
}

// fill returns the base hue at the current opacity
func (p *Particle) fill() color.NRGBA {
	c := p.Color
	c.A = alpha(p.Opacity)
	return c
}

func alpha(opacity float64) uint8 {
	if opacity <= 0 {
		return 0
	}
	if opacity >= 1 {
		return 255
	}
	return uint8(opacity*255 + 0.5)
}
