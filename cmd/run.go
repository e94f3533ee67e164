package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/shield-sim/shield-sim/sim"
	"github.com/shield-sim/shield-sim/sim/store"
)

var (
	// CLI flags for the transport run
	seed          int64    // Seed for the variate stream
	energyMeV     float64  // Source energy in MeV
	numPhotons    int      // Number of photons to simulate
	areaCm2       float64  // Source area (informational)
	layerSpecs    []string // Layers as Material=thickness_cm, source to detector
	materialsPath string   // Optional YAML materials database
	dbPath        string   // Optional SQLite database to persist the run
)

// parseLayerSpec parses one "Material=thickness_cm" layer argument.
func parseLayerSpec(spec string) (name string, thicknessCm float64, err error) {
	parts := strings.SplitN(spec, "=", 2)
	if len(parts) != 2 {
		return "", 0, fmt.Errorf("layer %q: want Material=thickness_cm", spec)
	}
	name = strings.TrimSpace(parts[0])
	if name == "" {
		return "", 0, fmt.Errorf("layer %q: empty material name", spec)
	}
	thicknessCm, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return "", 0, fmt.Errorf("layer %q: bad thickness", spec)
	}
	if thicknessCm < 0 {
		return "", 0, fmt.Errorf("layer %q: thickness must not be negative", spec)
	}
	return name, thicknessCm, nil
}

// runCmd executes the Monte Carlo simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the Monte Carlo transport simulation",
	Run: func(cmd *cobra.Command, args []string) {
		if len(layerSpecs) == 0 {
			logrus.Fatalf("No layers provided. Use --layer Material=thickness_cm (repeatable).")
		}

		materials := loadMaterials(materialsPath)

		s := sim.NewSimulator(seed)
		for _, spec := range layerSpecs {
			name, thickness, err := parseLayerSpec(spec)
			if err != nil {
				logrus.Fatalf("Invalid layer: %v", err)
			}
			mat, ok := materials[name]
			if !ok {
				logrus.Fatalf("Unknown material %q. Available: %v", name, materialNames(materials))
			}
			s.Stack.AddLayer(mat.Layer(thickness))
		}

		logrus.Infof("Starting simulation: %d layers, %d photons, energy=%.3f MeV, seed=%d",
			s.NumLayers(), numPhotons, energyMeV, seed)

		startTime := time.Now()
		result, err := s.Run(sim.SourceConfig{EnergyMeV: energyMeV, NumPhotons: numPhotons, AreaCm2: areaCm2})
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		result.Print()
		logrus.Infof("Simulation complete in %s.", time.Since(startTime))

		if dbPath != "" {
			st, err := store.NewStore(dbPath)
			if err != nil {
				logrus.Fatalf("Unable to open run database: %v", err)
			}
			defer st.Close()
			id, err := st.SaveRun(energyMeV, seed, s.Stack.Layers(), result)
			if err != nil {
				logrus.Fatalf("Unable to persist run: %v", err)
			}
			fmt.Printf("Saved run %s to %s\n", id, dbPath)
		}
	},
}

func materialNames(materials map[string]sim.Material) []string {
	names := make([]string, 0, len(materials))
	for name := range materials {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// init sets up CLI flags and attaches `run` as a subcommand to `root`
func init() {
	runCmd.Flags().Int64Var(&seed, "seed", sim.DefaultSeed, "Seed for the variate stream")
	runCmd.Flags().Float64Var(&energyMeV, "energy", 1.0, "Source energy in MeV")
	runCmd.Flags().IntVar(&numPhotons, "photons", 100000, "Number of photons to simulate")
	runCmd.Flags().Float64Var(&areaCm2, "area", 1.0, "Source area in cm^2 (informational)")
	runCmd.Flags().StringSliceVar(&layerSpecs, "layer", nil, "Shield layer as Material=thickness_cm, repeatable, source to detector")
	runCmd.Flags().StringVar(&materialsPath, "materials", "", "YAML materials database (default: built-in table)")
	runCmd.Flags().StringVar(&dbPath, "db", "", "SQLite database to persist the finished run")

	rootCmd.AddCommand(runCmd)
}
