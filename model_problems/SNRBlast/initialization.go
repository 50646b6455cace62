package SNRBlast

import (
	"fmt"
	"strings"
)

// Physical constants in CGS, matching the host framework's values exactly so
// that generated pressures agree bit for bit with its own unit conversions.
const (
	KBoltzmann = 1.3806505e-16 // erg/K
	// Mean mass per gas particle expressed in code density units, the
	// conversion factor between number density and mass density used by
	// the ideal gas pressure p = rho*kB*T/ParticleMass.
	ParticleMass = 1.67e-6
)

type ProfileType uint

const (
	BLAST          ProfileType = iota // uniform core bounded by a power law envelope
	FREE_EXPANSION                    // self-similar free expansion solution
)

var (
	ProfileNames = map[string]ProfileType{
		"blast":         BLAST,
		"freeexpansion": FREE_EXPANSION,
	}
	ProfilePrintNames = []string{"Blast", "Self-Similar Free Expansion"}
)

func NewProfileType(label string) (pt ProfileType) {
	var (
		ok  bool
		err error
	)
	if len(label) == 0 {
		err = fmt.Errorf("empty profile type, must be one of %v", ProfileNames)
		panic(err)
	}
	label = strings.ToLower(label)
	if pt, ok = ProfileNames[label]; !ok {
		err = fmt.Errorf("unable to use profile type named %s", label)
		panic(err)
	}
	return
}

func (pt ProfileType) String() string {
	return ProfilePrintNames[int(pt)]
}

type GeometryType uint

const (
	CARTESIAN GeometryType = iota
	CYLINDRICAL
)

var (
	GeometryNames = map[string]GeometryType{
		"cartesian":   CARTESIAN,
		"cylindrical": CYLINDRICAL,
	}
	GeometryPrintNames = []string{"Cartesian", "Cylindrical"}
)

func NewGeometryType(label string) (gt GeometryType) {
	var (
		ok  bool
		err error
	)
	if len(label) == 0 {
		err = fmt.Errorf("empty geometry type, must be one of %v", GeometryNames)
		panic(err)
	}
	label = strings.ToLower(label)
	if gt, ok = GeometryNames[label]; !ok {
		err = fmt.Errorf("unable to use geometry type named %s", label)
		panic(err)
	}
	return
}

func (gt GeometryType) String() string {
	return GeometryPrintNames[int(gt)]
}

// State is the full primitive state at one spatial point. B is the dynamic
// magnetic field and A the vector potential handed to constrained transport
// schemes; with background field splitting enabled both stay zero and the
// static field is delivered by BackgroundField instead.
type State struct {
	Rho float64
	V   [3]float64
	Prs float64
	B   [3]float64
	A   [3]float64
}

// VarNames orders the exported scalar fields of a sampled State the way the
// file writer lays them out on disk.
var VarNames = []string{"rho", "vx1", "vx2", "vx3", "prs", "bx1", "bx2", "bx3", "ax1", "ax2", "ax3"}
