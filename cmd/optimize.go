package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/shield-sim/shield-sim/sim/optimize"
)

var (
	// CLI flags for shield optimization
	optMaterials     []string // Materials to search over, source to detector
	optRanges        []string // Per-material thickness range spec (mm), same order
	optMaterialsPath string   // Optional YAML materials database
	optIntensity     float64  // Source intensity S
	optMaxDose       float64  // Maximum allowed dose behind the shield
	optAreaM2        float64  // Shield area in m^2
	optTopK          int      // Number of solutions to display
)

// optimizeCmd searches layer thickness combinations for the lightest shield
// that keeps the analytic dose under the cap.
var optimizeCmd = &cobra.Command{
	Use:   "optimize",
	Short: "Grid-search the lightest shield satisfying a dose constraint",
	Run: func(cmd *cobra.Command, args []string) {
		if len(optMaterials) == 0 {
			logrus.Fatalf("No materials provided. Use --material (repeatable).")
		}
		if len(optRanges) != len(optMaterials) {
			logrus.Fatalf("Got %d materials but %d ranges; provide one --range per material.",
				len(optMaterials), len(optRanges))
		}

		ranges := make(map[string]string, len(optMaterials))
		for i, name := range optMaterials {
			ranges[name] = optRanges[i]
		}

		logrus.Infof("Starting grid search: materials=%v ranges=%v Dmax=%g", optMaterials, ranges, optMaxDose)

		results, err := optimize.GridSearch(optimize.SearchConfig{
			Order:           optMaterials,
			Ranges:          ranges,
			Materials:       loadMaterials(optMaterialsPath),
			SourceIntensity: optIntensity,
			MaxDose:         optMaxDose,
			AreaM2:          optAreaM2,
			TopK:            optTopK,
		})
		if err != nil {
			logrus.Fatalf("Grid search failed: %v", err)
		}
		if len(results) == 0 {
			fmt.Println("No combination satisfies the dose constraint.")
			return
		}

		fmt.Printf("Top %d solutions:\n", len(results))
		fmt.Printf("%-12s | %-10s | %s\n", "Mass (kg)", "Dose", "Configuration")
		fmt.Println(strings.Repeat("-", 60))
		for _, res := range results {
			fmt.Printf("%-12.2f | %-10.4f | %s\n", res.MassKg, res.Dose, formatThicknesses(res.ThicknessesMm))
		}
	},
}

func formatThicknesses(thicknesses map[string]float64) string {
	names := make([]string, 0, len(thicknesses))
	for name := range thicknesses {
		names = append(names, name)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, name := range names {
		parts[i] = fmt.Sprintf("%s=%gmm", name, thicknesses[name])
	}
	return strings.Join(parts, ", ")
}

func init() {
	optimizeCmd.Flags().StringSliceVar(&optMaterials, "material", nil, "Material to search over, repeatable, source to detector")
	optimizeCmd.Flags().StringSliceVar(&optRanges, "range", nil, "Thickness range in mm per material (start..end..step or start,end,n)")
	optimizeCmd.Flags().StringVar(&optMaterialsPath, "materials", "", "YAML materials database (default: built-in table)")
	optimizeCmd.Flags().Float64Var(&optIntensity, "intensity", 100.0, "Source intensity S")
	optimizeCmd.Flags().Float64Var(&optMaxDose, "max-dose", 0.5, "Maximum allowed dose behind the shield")
	optimizeCmd.Flags().Float64Var(&optAreaM2, "area", 1.0, "Shield area in m^2")
	optimizeCmd.Flags().IntVar(&optTopK, "topk", 5, "Number of solutions to display")

	rootCmd.AddCommand(optimizeCmd)
}
