package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/shield-sim/shield-sim/sim/optimize"
	"github.com/shield-sim/shield-sim/sim/viz"
)

var (
	// CLI flags for plotting
	plotMu        float64 // Attenuation coefficient (cm^-1)
	plotIntensity float64 // Source intensity S
	plotRange     string  // Thickness grid spec (mm)
	plotOutPath   string  // Output image path
)

// plotCmd renders the analytic dose-vs-thickness curve for one material.
var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Render the dose-vs-thickness curve for an attenuation coefficient",
	Run: func(cmd *cobra.Command, args []string) {
		grid, err := optimize.ParseRange(plotRange)
		if err != nil {
			logrus.Fatalf("Invalid thickness range: %v", err)
		}
		if err := viz.DoseVsThickness(plotMu, plotIntensity, grid, plotOutPath); err != nil {
			logrus.Fatalf("Unable to render plot: %v", err)
		}
		fmt.Printf("Plot saved to %s\n", plotOutPath)
	},
}

func init() {
	plotCmd.Flags().Float64Var(&plotMu, "mu", 0.77, "Linear attenuation coefficient (cm^-1)")
	plotCmd.Flags().Float64Var(&plotIntensity, "intensity", 100.0, "Source intensity S")
	plotCmd.Flags().StringVar(&plotRange, "range", "0..100..5", "Thickness grid in mm (start..end..step or start,end,n)")
	plotCmd.Flags().StringVar(&plotOutPath, "out", "dose_vs_thickness.png", "Output image path")

	rootCmd.AddCommand(plotCmd)
}
