package viz

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoseVsThickness_WritesImage(t *testing.T) {
	out := filepath.Join(t.TempDir(), "dose.png")

	err := DoseVsThickness(0.77, 100, []float64{0, 10, 20, 30, 40, 50}, out)
	require.NoError(t, err)

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestDoseVsThickness_EmptyGrid(t *testing.T) {
	err := DoseVsThickness(0.77, 100, nil, filepath.Join(t.TempDir(), "dose.png"))
	assert.Error(t, err)
}

func TestResiduals_WritesImage(t *testing.T) {
	out := filepath.Join(t.TempDir(), "residuals.png")

	predicted := []float64{100, 46.3, 21.4, 9.9}
	observed := []float64{101.2, 45.8, 21.9, 10.1}
	err := Residuals(predicted, observed, out)
	require.NoError(t, err)

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestResiduals_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("mismatched lengths", func(t *testing.T) {
		err := Residuals([]float64{1, 2}, []float64{1}, filepath.Join(dir, "r.png"))
		assert.Error(t, err)
	})

	t.Run("no data", func(t *testing.T) {
		err := Residuals(nil, nil, filepath.Join(dir, "r.png"))
		assert.Error(t, err)
	})
}
