package cmd

import (
	"log"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/olivierh59500/particle-field-go/field"
	"github.com/olivierh59500/particle-field-go/frame"
	"github.com/olivierh59500/particle-field-go/record"
	"github.com/olivierh59500/particle-field-go/scene"
	"github.com/olivierh59500/particle-field-go/surface/raster"
)

var (
	benchFrames uint64
	benchOut    string
	benchLabel  string
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run frames headless and record per-frame statistics to SQLite.",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(benchOut, 0755); err != nil {
			return errors.Wrapf(err, "create %s", benchOut)
		}

		rec, err := record.NewSQLiteRecorder(benchOut)
		if err != nil {
			return err
		}
		defer rec.Close()
		if err := rec.StartRun(benchLabel); err != nil {
			return err
		}

		bg, err := s.BackgroundColor()
		if err != nil {
			return err
		}
		surf := raster.New(s.Window.Width, s.Window.Height, bg)

		connections := 0
		sc, err := scene.Build(s, field.WithFrameHook(func(st field.FrameStats) {
			connections += st.Connections
			rec.Write(st)
		}))
		if err != nil {
			return err
		}

		loop := frame.NewLoop(0)
		loop.SetMaxFrames(benchFrames)
		start := time.Now()
		if !sc.Start(surf, loop) {
			return errors.New("nothing to run")
		}
		if err := loop.Run(cmd.Context()); err != nil {
			return err
		}
		elapsed := time.Since(start)

		if err := rec.Close(); err != nil {
			return err
		}
		n := loop.Frames()
		if n > 0 {
			log.Printf("%d frames in %v (%v/frame, %.1f connections/frame)",
				n, elapsed, elapsed/time.Duration(n), float64(connections)/float64(n))
		}
		log.Printf("run %s recorded to %s", rec.RunID(), rec.Path())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(benchCmd)
	benchCmd.Flags().Uint64Var(&benchFrames, "frames", 3600, "number of frames to simulate")
	benchCmd.Flags().StringVar(&benchOut, "out", ".", "directory of the SQLite database")
	benchCmd.Flags().StringVar(&benchLabel, "label", "bench", "label stored with the run")
}
