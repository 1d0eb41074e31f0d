package cmd

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/olivierh59500/particle-field-go/field"
	"github.com/olivierh59500/particle-field-go/frame"
	"github.com/olivierh59500/particle-field-go/scene"
	"github.com/olivierh59500/particle-field-go/surface/term"
)

var (
	cellW float64
	cellH float64
)

var termCmd = &cobra.Command{
	Use:   "term",
	Short: "Draw the background in the terminal.",
	Long:  "Draw the background in the terminal. Space pauses, Esc or q quits.",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		bg, err := s.BackgroundColor()
		if err != nil {
			return err
		}

		screen, err := tcell.NewScreen()
		if err != nil {
			return errors.Wrap(err, "open terminal")
		}
		if err := screen.Init(); err != nil {
			return errors.Wrap(err, "init terminal")
		}
		defer screen.Fini()
		screen.EnableMouse()
		screen.HideCursor()

		surf := term.New(screen, cellW, cellH, bg)
		sc, err := scene.Build(s, field.WithFrameHook(func(field.FrameStats) { surf.Show() }))
		if err != nil {
			return err
		}

		interval := frame.DefaultInterval
		if s.Window.TPS > 0 {
			interval = time.Second / time.Duration(s.Window.TPS)
		}
		loop := frame.NewLoop(interval)
		sc.Start(surf, loop)

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		go pollTerminal(screen, loop, sc, surf, cancel)

		if err := loop.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(termCmd)
	termCmd.Flags().Float64Var(&cellW, "cell-width", term.DefaultCellW, "drawing units per terminal column")
	termCmd.Flags().Float64Var(&cellH, "cell-height", term.DefaultCellH, "drawing units per terminal row")
}

// pollTerminal forwards terminal events to the loop goroutine until the screen is finalized
func pollTerminal(screen tcell.Screen, loop *frame.Loop, sc *scene.Scene, surf *term.Surface, quit func()) {
	paused := false
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			loop.Post(func() {
				screen.Sync()
				sc.Resize(surf.FitScreen())
			})
		case *tcell.EventMouse:
			x, y := ev.Position()
			loop.Post(func() {
				sc.PointerMove((float64(x)+0.5)*cellW, (float64(y)+0.5)*cellH)
			})
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
				quit()
			case ev.Rune() == ' ':
				paused = !paused
				p := paused
				loop.Post(func() {
					if p {
						sc.Field.Suspend()
					} else {
						sc.Field.Resume()
					}
				})
			}
		}
	}
}
