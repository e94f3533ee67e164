package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/shield-sim/shield-sim/sim"
)

var logLevel string // Log verbosity level

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "shield-sim",
	Short: "Monte Carlo gamma-ray shielding simulator",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadMaterials returns the materials database: the built-in table, or the
// given YAML file when provided.
func loadMaterials(path string) map[string]sim.Material {
	if path == "" {
		return sim.BuiltinMaterials()
	}
	mats, err := sim.LoadMaterialsFile(path)
	if err != nil {
		logrus.Fatalf("Unable to read materials database: %v", err)
	}
	return mats
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
}
