// Package cmd provides the command-line interface of the particle background.
package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/olivierh59500/particle-field-go/config"
)

var (
	configPath string
	envFile    string
	seed       int64
	count      int
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "particles",
	Short: "Animated particle field background.",
	Long: `Animated particle field background: drifting dots joined by faint ` +
		`lines when they come close. Without a subcommand it opens a window.`,
	SilenceUsage: true,
	RunE:         runWindow,
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVar(&configPath, "config", "particles.json", "settings file, also used by the S/L keys")
	f.StringVar(&envFile, "env", ".env", "environment file with PARTICLES_* overrides")
	f.Int64Var(&seed, "seed", 0, "random seed, 0 picks one from the clock")
	f.IntVar(&count, "count", 0, "number of particles, overrides the settings when set")
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		atexit.Exit(1)
	}
}

// loadSettings merges defaults, the settings file, the environment and the flags
func loadSettings(cmd *cobra.Command) (config.Settings, error) {
	s, err := config.Load(configPath)
	if err != nil {
		return s, err
	}
	if err := s.ApplyEnv(envFile); err != nil {
		return s, err
	}
	if cmd.Flags().Changed("seed") {
		s.Seed = seed
	}
	if cmd.Flags().Changed("count") {
		s.Field.Count = count
	}
	return s, nil
}
