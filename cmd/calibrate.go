package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/shield-sim/shield-sim/sim/optimize"
	"github.com/shield-sim/shield-sim/sim/viz"
)

var (
	// CLI flags for calibration
	calCSVPath      string // Measured dose data (CSV with a header row)
	calThicknessCol string // Thickness column name (mm)
	calDoseCol      string // Dose column name
	calPlotPath     string // Optional residual plot output
)

// calibrateCmd fits the attenuation model y = S·exp(-mu·t/10) to measured
// dose data.
var calibrateCmd = &cobra.Command{
	Use:   "calibrate",
	Short: "Fit source intensity and attenuation coefficient to measured doses",
	Run: func(cmd *cobra.Command, args []string) {
		if calCSVPath == "" {
			logrus.Fatalf("No data file provided. Use --csv.")
		}

		thicknesses, doses, err := optimize.LoadCalibrationCSV(calCSVPath, calThicknessCol, calDoseCol)
		if err != nil {
			logrus.Fatalf("Unable to load calibration data: %v", err)
		}

		fit, err := optimize.FitAttenuation(thicknesses, doses)
		if err != nil {
			logrus.Fatalf("Calibration failed: %v", err)
		}

		fmt.Println("=== Calibration Result ===")
		fmt.Printf("Observations        : %d\n", fit.N)
		fmt.Printf("Source intensity S  : %.4f\n", fit.SourceIntensity)
		fmt.Printf("Attenuation mu      : %.4f cm^-1\n", fit.Mu)
		fmt.Printf("R^2                 : %.4f\n", fit.RSquared)
		fmt.Printf("RMSE                : %.4f\n", fit.RMSE)

		if calPlotPath != "" {
			predicted := make([]float64, len(thicknesses))
			for i, t := range thicknesses {
				predicted[i] = fit.Predict(t)
			}
			if err := viz.Residuals(predicted, doses, calPlotPath); err != nil {
				logrus.Fatalf("Unable to render residual plot: %v", err)
			}
			fmt.Printf("Residual plot saved to %s\n", calPlotPath)
		}
	},
}

func init() {
	calibrateCmd.Flags().StringVar(&calCSVPath, "csv", "", "CSV file with measured doses")
	calibrateCmd.Flags().StringVar(&calThicknessCol, "t-col", "thickness_mm", "Thickness column name (mm)")
	calibrateCmd.Flags().StringVar(&calDoseCol, "y-col", "dose", "Dose column name")
	calibrateCmd.Flags().StringVar(&calPlotPath, "plot", "", "Write a residual plot to this path")

	rootCmd.AddCommand(calibrateCmd)
}
