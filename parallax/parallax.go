// Package parallax turns a cursor position into per-layer offsets
package parallax

// DefaultSpeed applies to layers without a speed of their own
const DefaultSpeed = 0.05

// Reach scales a unit cursor offset into drawing units
const Reach = 100.0

// Tracker keeps the viewport size and the last cursor position
type Tracker struct {
	width, height float64
	nx, ny        float64 // Cursor position normalized to [-1, 1]
}

// NewTracker creates a tracker for a viewport
func NewTracker(width, height float64) *Tracker {
	t := &Tracker{}
	t.Resize(width, height)
	return t
}

// Resize updates the viewport size; the cursor is re-centred
func (t *Tracker) Resize(width, height float64) {
	t.width, t.height = width, height
	t.nx, t.ny = 0, 0
}

// Move records a cursor position in viewport coordinates
func (t *Tracker) Move(x, y float64) {
	if t.width <= 0 || t.height <= 0 {
		t.nx, t.ny = 0, 0
		return
	}
	t.nx = (x/t.width - 0.5) * 2
	t.ny = (y/t.height - 0.5) * 2
}

// Offset returns the translation of a layer moving at speed
func (t *Tracker) Offset(speed float64) (dx, dy float64) {
	if speed <= 0 {
		speed = DefaultSpeed
	}
	return t.nx * speed * Reach, t.ny * speed * Reach
}

// Offsetter is anything that can be translated at draw time
type Offsetter interface {
	SetOffset(dx, dy float64)
}

// Layer binds an Offsetter to its speed
type Layer struct {
	Target Offsetter
	Speed  float64
}

// Apply pushes the current offsets to every layer
func (t *Tracker) Apply(layers ...Layer) {
	for _, l := range layers {
		if l.Target == nil {
			continue
		}
		l.Target.SetOffset(t.Offset(l.Speed))
	}
}
