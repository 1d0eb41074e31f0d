package window

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"

	"github.com/olivierh59500/particle-field-go/config"
	"github.com/olivierh59500/particle-field-go/scene"
)

// Host implements ebiten.Game and acts as the frame driver of the scene:
// a requested frame is drawn on the next Draw call.
type Host struct {
	settings   config.Settings
	configPath string

	surface *Surface
	scene   *scene.Scene
	pending func()

	width, height int
	cursorX       int
	cursorY       int

	paused  bool // Space
	blurred bool // Suspended because the window lost focus
	hud     bool
}

// NewHost builds the scene and schedules its first frame
func NewHost(s config.Settings, configPath string) (*Host, error) {
	bg, err := s.BackgroundColor()
	if err != nil {
		return nil, err
	}
	h := &Host{
		settings:   s,
		configPath: configPath,
		surface:    NewSurface(s.Window.Width, s.Window.Height, bg),
		width:      s.Window.Width,
		height:     s.Window.Height,
	}
	if err := h.rebuild(s); err != nil {
		return nil, err
	}
	return h, nil
}

// RequestFrame schedules fn for the next Draw
func (h *Host) RequestFrame(fn func()) {
	h.pending = fn
}

// CancelFrame drops the scheduled frame
func (h *Host) CancelFrame() {
	h.pending = nil
}

// Update is called each tick by Ebitengine
func (h *Host) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	h.handleInput()
	h.followFocus()

	mx, my := ebiten.CursorPosition()
	if mx != h.cursorX || my != h.cursorY {
		h.cursorX, h.cursorY = mx, my
		h.scene.PointerMove(float64(mx), float64(my))
	}
	return nil
}

// Draw runs the scheduled frame, if any. The screen is not cleared between frames so a
// suspended scene keeps its last picture.
func (h *Host) Draw(screen *ebiten.Image) {
	fn := h.pending
	h.pending = nil
	if fn == nil {
		return
	}
	h.surface.Bind(screen)
	fn()

	if h.hud {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS %.0f  seed %d", ebiten.ActualFPS(), h.scene.Seed()), 8, 8)
	}
}

// Layout follows the window size
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != h.width || outsideHeight != h.height {
		h.width, h.height = outsideWidth, outsideHeight
		h.scene.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

// handleInput processes keyboard input
func (h *Host) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		h.paused = !h.paused
		if h.paused {
			h.scene.Field.Suspend()
		} else if !h.blurred {
			h.scene.Field.Resume()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.hud = !h.hud
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s := h.settings
		s.Seed = 0
		if err := h.rebuild(s); err != nil {
			log.Printf("reseed: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := h.settings.Save(h.configPath); err != nil {
			log.Printf("save: %v", err)
		} else {
			log.Printf("settings saved to %s", h.configPath)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		if err := h.reload(); err != nil {
			log.Printf("load: %v", err)
		}
	}
}

// followFocus suspends the scene while the window is in the background
func (h *Host) followFocus() {
	focused := ebiten.IsFocused()
	switch {
	case !focused && !h.blurred:
		h.blurred = true
		h.scene.Field.Suspend()
	case focused && h.blurred:
		h.blurred = false
		if !h.paused {
			h.scene.Field.Resume()
		}
	}
}

func (h *Host) reload() error {
	s, err := config.Load(h.configPath)
	if err != nil {
		return err
	}
	if err := h.rebuild(s); err != nil {
		return err
	}
	h.settings = s
	log.Printf("settings loaded from %s", h.configPath)
	return nil
}

// rebuild replaces the scene, keeping the current window size
func (h *Host) rebuild(s config.Settings) error {
	sc, err := scene.Build(s)
	if err != nil {
		return errors.Wrap(err, "build scene")
	}
	if h.scene != nil {
		h.scene.Field.Suspend()
	}
	h.surface.Resize(float64(h.width), float64(h.height))
	h.scene = sc
	h.paused = false
	sc.Start(h.surface, h)
	if h.blurred {
		sc.Field.Suspend()
	}
	log.Printf("scene seeded with %d", sc.Seed())
	return nil
}

// Run opens the window and blocks until it is closed
func Run(s config.Settings, configPath string) error {
	h, err := NewHost(s, configPath)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(s.Window.Width, s.Window.Height)
	ebiten.SetWindowTitle(s.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetScreenClearedEveryFrame(false)
	if s.Window.TPS > 0 {
		ebiten.SetTPS(s.Window.TPS)
	}

	if err := ebiten.RunGame(h); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
