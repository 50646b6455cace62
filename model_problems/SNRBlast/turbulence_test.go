package SNRBlast

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zcl-maker/snrblast/readfiles"
)

// writePerturbedDensity lays down a density perturbation field on a coarse
// grid covering [-1,1]^3, in the same on disk format the host framework's
// data import facility consumes.
func writePerturbedDensity(t *testing.T, value float64) (gridFile, dataFile string) {
	t.Helper()
	dir := t.TempDir()
	gridFile = filepath.Join(dir, "grid0.out")
	dataFile = filepath.Join(dir, "rho0.dbl")
	const n = 4
	edges := make([]float64, n+1)
	for i := range edges {
		edges[i] = -1 + 2*float64(i)/n
	}
	assert.NoError(t, readfiles.WriteGridFile(gridFile, [3][]float64{edges, edges, edges}))
	v := make([]float64, n*n*n)
	for i := range v {
		v[i] = value
	}
	assert.NoError(t, readfiles.WriteDBLFile(dataFile, v))
	return
}

func TestTurbulenceInjection(t *testing.T) {
	gridFile, dataFile := writePerturbedDensity(t, 2.5)
	bp := testParams()
	bp.AddTurbulence = true
	bp.GridFile = gridFile
	bp.DensityFile = dataFile
	bl, err := NewBlast(bp)
	assert.NoError(t, err)

	// Ambient density comes from the imported field now
	s := bl.Init(0.9, 0, 0)
	assert.True(t, near(s.Rho, 2.5))
	// but the ambient pressure still reflects the configured medium
	assert.True(t, near(s.Prs, bl.AmbientPrs))
	// Ejecta zones take precedence over the imported field
	sCore := bl.Init(0.5*bl.RCore, 0, 0)
	assert.True(t, near(sCore.Rho, bl.RhoCore))
}

func TestTurbulenceMissingFiles(t *testing.T) {
	bp := testParams()
	bp.AddTurbulence = true
	bp.GridFile = "no_such_grid.out"
	bp.DensityFile = "no_such_rho.dbl"
	_, err := NewBlast(bp)
	assert.Error(t, err)
}
