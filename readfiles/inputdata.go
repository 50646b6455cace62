package readfiles

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"math"
	"os"
)

/*
InputData holds an externally generated scalar field, typically a density
perturbation ("turbulence") produced by a separate spectral code, together
with the rectilinear grid it lives on. The on-disk layout follows the PLUTO
convention: an ASCII grid description listing, per dimension, the cell count
followed by one "index  left-edge  right-edge" line per cell, and a raw
binary .dbl file of little endian float64 values with x1 running fastest.
*/
type InputData struct {
	X1, X2, X3 []float64 // cell center coordinates
	V          []float64 // field values, len = nx1*nx2*nx3
}

func ReadInputData(gridFile, dataFile string) (id *InputData, err error) {
	var (
		centers [3][]float64
	)
	if centers, err = ReadGridFile(gridFile); err != nil {
		return
	}
	id = &InputData{X1: centers[0], X2: centers[1], X3: centers[2]}
	n := len(id.X1) * len(id.X2) * len(id.X3)
	if id.V, err = ReadDBLFile(dataFile); err != nil {
		return
	}
	if len(id.V) != n {
		err = fmt.Errorf("data file %s holds %d values, grid %s describes %d cells",
			dataFile, len(id.V), gridFile, n)
		id = nil
	}
	return
}

func ReadGridFile(filename string) (centers [3][]float64, err error) {
	var (
		file *os.File
	)
	if file, err = os.Open(filename); err != nil {
		return
	}
	defer file.Close()
	reader := bufio.NewReader(file)

	for dim := 0; dim < 3; dim++ {
		var npts int
		if npts, err = readCellCount(reader); err != nil {
			err = fmt.Errorf("grid file %s, dimension %d: %v", filename, dim+1, err)
			return
		}
		centers[dim] = make([]float64, npts)
		for i := 0; i < npts; i++ {
			var (
				idx    int
				xl, xr float64
			)
			if _, err = fmt.Fscan(reader, &idx, &xl, &xr); err != nil {
				err = fmt.Errorf("grid file %s, dimension %d, cell %d: %v", filename, dim+1, i+1, err)
				return
			}
			centers[dim][i] = 0.5 * (xl + xr)
		}
	}
	return
}

// readCellCount scans past comment lines beginning with '#' and returns the
// next integer token.
func readCellCount(reader *bufio.Reader) (npts int, err error) {
	for {
		var b []byte
		if b, err = reader.Peek(1); err != nil {
			return
		}
		switch b[0] {
		case '#':
			if _, err = reader.ReadString('\n'); err != nil {
				return
			}
		case ' ', '\t', '\n', '\r':
			if _, err = reader.ReadByte(); err != nil {
				return
			}
		default:
			_, err = fmt.Fscan(reader, &npts)
			if err == nil && npts < 1 {
				err = fmt.Errorf("non positive cell count %d", npts)
			}
			return
		}
	}
}

func ReadDBLFile(filename string) (v []float64, err error) {
	var (
		fi os.FileInfo
	)
	if fi, err = os.Stat(filename); err != nil {
		return
	}
	if fi.Size()%8 != 0 {
		err = fmt.Errorf("dbl file %s size %d is not a multiple of 8", filename, fi.Size())
		return
	}
	var file *os.File
	if file, err = os.Open(filename); err != nil {
		return
	}
	defer file.Close()
	v = make([]float64, fi.Size()/8)
	if err = binary.Read(bufio.NewReader(file), binary.LittleEndian, v); err != nil {
		v = nil
	}
	return
}

// WriteGridFile writes the grid description for a rectilinear grid given the
// cell edges along each dimension (len(edges[d]) = ncells+1).
func WriteGridFile(filename string, edges [3][]float64) (err error) {
	var (
		file *os.File
	)
	if file, err = os.Create(filename); err != nil {
		return
	}
	defer file.Close()
	w := bufio.NewWriter(file)
	fmt.Fprintf(w, "# GRIDFILE: rectilinear grid description\n")
	for dim := 0; dim < 3; dim++ {
		fmt.Fprintf(w, "%d\n", len(edges[dim])-1)
		for i := 0; i+1 < len(edges[dim]); i++ {
			fmt.Fprintf(w, " %d   %18.12e   %18.12e\n", i+1, edges[dim][i], edges[dim][i+1])
		}
	}
	return w.Flush()
}

func WriteDBLFile(filename string, v []float64) (err error) {
	var (
		file *os.File
	)
	if file, err = os.Create(filename); err != nil {
		return
	}
	defer file.Close()
	w := bufio.NewWriter(file)
	if err = binary.Write(w, binary.LittleEndian, v); err != nil {
		return
	}
	return w.Flush()
}

// Interpolate returns the field trilinearly interpolated at (x1,x2,x3).
// Queries outside the stored grid clamp to the boundary cells, so the
// function is total over R^3. Degenerate dimensions (a single cell) reduce
// the interpolation order accordingly, which covers 1D and 2D input data.
func (id *InputData) Interpolate(x1, x2, x3 float64) (f float64) {
	i, wx := bracket(id.X1, x1)
	j, wy := bracket(id.X2, x2)
	k, wz := bracket(id.X3, x3)
	var (
		nx1 = len(id.X1)
		nx2 = len(id.X2)
	)
	at := func(ii, jj, kk int) float64 {
		return id.V[ii+nx1*(jj+nx2*kk)]
	}
	i1, j1, k1 := min(i+1, nx1-1), min(j+1, nx2-1), min(k+1, len(id.X3)-1)
	c00 := at(i, j, k)*(1-wx) + at(i1, j, k)*wx
	c10 := at(i, j1, k)*(1-wx) + at(i1, j1, k)*wx
	c01 := at(i, j, k1)*(1-wx) + at(i1, j, k1)*wx
	c11 := at(i, j1, k1)*(1-wx) + at(i1, j1, k1)*wx
	c0 := c00*(1-wy) + c10*wy
	c1 := c01*(1-wy) + c11*wy
	f = c0*(1-wz) + c1*wz
	return
}

// bracket locates x within the sorted coordinate slice and returns the lower
// cell index plus the linear weight toward the next one.
func bracket(x []float64, xq float64) (i int, w float64) {
	n := len(x)
	if n == 1 || xq <= x[0] {
		return 0, 0
	}
	if xq >= x[n-1] {
		return n - 2, 1
	}
	// coordinates are nearly uniform, but search stays general
	for i = 0; i < n-2 && x[i+1] < xq; i++ {
	}
	w = (xq - x[i]) / (x[i+1] - x[i])
	w = math.Max(0, math.Min(1, w))
	return
}
