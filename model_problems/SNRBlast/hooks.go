package SNRBlast

// BoundarySide names one face of the computational domain, matching the
// host framework's ordering.
type BoundarySide uint

const (
	X1Beg BoundarySide = iota
	X1End
	X2Beg
	X2End
	X3Beg
	X3End
)

var boundarySideNames = []string{"X1Beg", "X1End", "X2Beg", "X2End", "X3Beg", "X3End"}

func (bs BoundarySide) String() string {
	return boundarySideNames[int(bs)]
}

// UserDefBoundary is the hook letting the problem overwrite ghost zone
// values on one domain side. The blast problem uses the framework's stock
// boundary conditions, so there is nothing to do here.
func (bl *Blast) UserDefBoundary(f *Fields, g *Grid, side BoundarySide) {
}

// Analysis is invoked periodically during the run for user diagnostics.
// Unused by this problem; CLI level reporting lives in Summarize.
func (bl *Blast) Analysis(f *Fields, g *Grid) {
}
