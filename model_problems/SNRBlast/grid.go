package SNRBlast

import (
	"fmt"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/floats"

	"github.com/zcl-maker/snrblast/utils"
)

// Grid is a uniform rectilinear sampling grid. Cells are addressed by a
// linear index with x1 running fastest, matching the on-disk layout of the
// .dbl field files.
type Grid struct {
	Nx            [3]int
	Xmin, Xmax    [3]float64
	Edges         [3][]float64
	X1, X2, X3    []float64 // cell center coordinates per dimension
	DX1, DX2, DX3 float64
}

func NewGrid(nx [3]int, xmin, xmax [3]float64) (g *Grid, err error) {
	for d := 0; d < 3; d++ {
		if nx[d] < 1 {
			err = fmt.Errorf("grid dimension %d has %d cells", d+1, nx[d])
			return
		}
		if xmax[d] <= xmin[d] {
			err = fmt.Errorf("grid dimension %d is empty: [%g,%g]", d+1, xmin[d], xmax[d])
			return
		}
	}
	g = &Grid{Nx: nx, Xmin: xmin, Xmax: xmax}
	centers := func(d int) (c []float64) {
		g.Edges[d] = floats.Span(make([]float64, nx[d]+1), xmin[d], xmax[d])
		c = make([]float64, nx[d])
		for i := range c {
			c[i] = 0.5 * (g.Edges[d][i] + g.Edges[d][i+1])
		}
		return
	}
	g.X1, g.X2, g.X3 = centers(0), centers(1), centers(2)
	g.DX1 = (xmax[0] - xmin[0]) / float64(nx[0])
	g.DX2 = (xmax[1] - xmin[1]) / float64(nx[1])
	g.DX3 = (xmax[2] - xmin[2]) / float64(nx[2])
	return
}

func (g *Grid) NumCells() int {
	return g.Nx[0] * g.Nx[1] * g.Nx[2]
}

func (g *Grid) CellVolume() float64 {
	return g.DX1 * g.DX2 * g.DX3
}

// Coord maps the linear cell index back to the cell center coordinate.
func (g *Grid) Coord(ind int) (x1, x2, x3 float64) {
	i := ind % g.Nx[0]
	j := (ind / g.Nx[0]) % g.Nx[1]
	k := ind / (g.Nx[0] * g.Nx[1])
	x1, x2, x3 = g.X1[i], g.X2[j], g.X3[k]
	return
}

// Fields holds the sampled state, one flat slice per primitive variable in
// grid cell order.
type Fields struct {
	K             int
	Rho, Prs      []float64
	VX1, VX2, VX3 []float64
	BX1, BX2, BX3 []float64
	AX1, AX2, AX3 []float64
}

func NewFields(K int) (f *Fields) {
	f = &Fields{K: K}
	for _, p := range f.vars() {
		*p = make([]float64, K)
	}
	return
}

func (f *Fields) vars() []*[]float64 {
	return []*[]float64{
		&f.Rho, &f.VX1, &f.VX2, &f.VX3, &f.Prs,
		&f.BX1, &f.BX2, &f.BX3, &f.AX1, &f.AX2, &f.AX3,
	}
}

// Var returns the slice backing the named variable; names follow VarNames.
func (f *Fields) Var(name string) (v []float64, err error) {
	for i, n := range VarNames {
		if n == name {
			v = *f.vars()[i]
			return
		}
	}
	err = fmt.Errorf("unknown variable %q, must be one of %v", name, VarNames)
	return
}

func (f *Fields) set(ind int, s *State) {
	f.Rho[ind] = s.Rho
	f.VX1[ind], f.VX2[ind], f.VX3[ind] = s.V[0], s.V[1], s.V[2]
	f.Prs[ind] = s.Prs
	f.BX1[ind], f.BX2[ind], f.BX3[ind] = s.B[0], s.B[1], s.B[2]
	f.AX1[ind], f.AX2[ind], f.AX3[ind] = s.A[0], s.A[1], s.A[2]
}

// FillGrid evaluates the profile at every cell center using np workers over
// disjoint index ranges. All one-time initialization happened in NewBlast,
// so the workers share nothing mutable. np < 1 selects NumCPU.
func (bl *Blast) FillGrid(g *Grid, np int) (f *Fields) {
	var (
		K = g.NumCells()
	)
	if np < 1 {
		np = runtime.NumCPU()
	}
	if np > K {
		np = K
	}
	f = NewFields(K)
	pm := utils.NewPartitionMap(np, K)
	wg := sync.WaitGroup{}
	for n := 0; n < np; n++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			kMin, kMax := pm.GetBucketRange(n)
			for ind := kMin; ind < kMax; ind++ {
				x1, x2, x3 := g.Coord(ind)
				s := bl.Init(x1, x2, x3)
				f.set(ind, &s)
			}
		}(n)
	}
	wg.Wait()
	return
}
