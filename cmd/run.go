package cmd

import (
	"github.com/spf13/cobra"

	"github.com/olivierh59500/particle-field-go/surface/window"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the background in a window.",
	Long: "Open the background in a window. Space pauses, R reseeds, H toggles the " +
		"frame counter, S and L save and load the settings file, Esc or Q quits.",
	RunE: runWindow,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runWindow(cmd *cobra.Command, args []string) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	return window.Run(s, configPath)
}
