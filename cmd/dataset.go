package cmd

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/shield-sim/shield-sim/sim"
	"github.com/shield-sim/shield-sim/sim/store"
)

var (
	// CLI flags for dataset generation
	dsDBPath        string // SQLite database to write runs into
	dsSamples       int    // Number of random simulations
	dsPhotons       int    // Photons per simulation
	dsSeed          int64  // Seed for the configuration sampler
	dsMaterialsPath string // Optional YAML materials database
)

// datasetCmd generates a dataset of randomized shield simulations and
// persists them, e.g. as training data for surrogate models.
var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Generate a dataset of random shield simulations",
	Run: func(cmd *cobra.Command, args []string) {
		if dsDBPath == "" {
			logrus.Fatalf("No output database provided. Use --db.")
		}

		materials := loadMaterials(dsMaterialsPath)
		names := materialNames(materials)

		st, err := store.NewStore(dsDBPath)
		if err != nil {
			logrus.Fatalf("Unable to open run database: %v", err)
		}
		defer st.Close()

		// The configuration sampler is seeded separately from the per-run
		// transport streams (which use the sample index), so the whole
		// dataset is reproducible.
		picker := rand.New(rand.NewSource(dsSeed))

		logrus.Infof("Generating %d simulations into %s", dsSamples, dsDBPath)
		startTime := time.Now()

		saved := 0
		for i := 0; i < dsSamples; i++ {
			energy := math.Round(100*(0.5+4.5*picker.Float64())) / 100
			numLayers := 1 + picker.Intn(4)

			s := sim.NewSimulator(int64(i))
			for j := 0; j < numLayers; j++ {
				mat := materials[names[picker.Intn(len(names))]]
				thickness := math.Round(10*(1+14*picker.Float64())) / 10
				s.Stack.AddLayer(mat.Layer(thickness))
			}

			result, err := s.Run(sim.SourceConfig{EnergyMeV: energy, NumPhotons: dsPhotons, AreaCm2: 1.0})
			if err != nil {
				logrus.Errorf("Simulation %d failed: %v", i, err)
				continue
			}
			if _, err := st.SaveRun(energy, int64(i), s.Stack.Layers(), result); err != nil {
				logrus.Errorf("Unable to persist simulation %d: %v", i, err)
				continue
			}
			saved++
		}

		fmt.Printf("Saved %d/%d simulations in %s\n", saved, dsSamples, time.Since(startTime))
	},
}

func init() {
	datasetCmd.Flags().StringVar(&dsDBPath, "db", "", "SQLite database to write runs into")
	datasetCmd.Flags().IntVar(&dsSamples, "samples", 50, "Number of random simulations")
	datasetCmd.Flags().IntVar(&dsPhotons, "photons", 2000, "Photons per simulation")
	datasetCmd.Flags().Int64Var(&dsSeed, "seed", sim.DefaultSeed, "Seed for the configuration sampler")
	datasetCmd.Flags().StringVar(&dsMaterialsPath, "materials", "", "YAML materials database (default: built-in table)")

	rootCmd.AddCommand(datasetCmd)
}
