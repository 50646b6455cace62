package SNRBlast

import (
	"fmt"
	"math"
	"sync"

	"github.com/zcl-maker/snrblast/InputParameters"
	"github.com/zcl-maker/snrblast/readfiles"
	"github.com/zcl-maker/snrblast/utils"
)

/*
Blast maps a spatial coordinate to the primitive state of a spherically
symmetric supernova remnant expanding into a uniform ambient medium. Three
radial zones apply, in this precedence:

 1. ambient medium (default): uniform density n_H*mu and the ideal gas
    pressure at the configured temperature, zero velocity;
 2. ejecta core r <= RCore: uniform density, homologous velocity x/t0;
 3. ejecta envelope RCore < r <= EjectaRadius: density falling as
    (r/RCore)^-n, same homologous velocity law.

The origin is excluded from the ejecta zones, so r = 0 returns the ambient
state with exactly zero velocity. All derived constants are computed once in
NewBlast; Init is pure and safe to call from any number of goroutines.
*/
type Blast struct {
	Profile  ProfileType
	Geometry GeometryType

	EjectaEnergy, EjectaMass, EjectaRadius float64
	DensityExponent                        float64
	Temperature, Gamma                     float64
	SplitField                             bool

	// Derived constants, fixed after construction
	NISM       float64 // ambient number density n_H * mu
	AmbientPrs float64
	RCore      float64 // boundary between the flat core and the envelope
	RhoCore    float64
	Time0      float64 // characteristic expansion time, |v| = r/Time0

	// Free expansion extras
	Fnorm, Alpha, Vej float64
	RhoCh, RCh        float64
	etaCoeff          float64

	Bmag, Theta, Phi float64 // Theta/Phi in radians
	Bfield           [3]float64

	turb *readfiles.InputData

	bckOnce  sync.Once
	bckField [3]float64
}

// Radial correction constants of the self-similar free expansion solution
// (Truelove & McKee style), n = 0 values.
const (
	ssPhi    = 1.1
	ssLambda = 0.343
)

func NewBlast(bp *InputParameters.BlastParameters) (bl *Blast, err error) {
	if err = bp.Validate(); err != nil {
		return
	}
	bl = &Blast{
		Profile:         NewProfileType(bp.Profile),
		Geometry:        NewGeometryType(bp.Geometry),
		EjectaEnergy:    bp.EjectaEnergy,
		EjectaMass:      bp.EjectaMass,
		EjectaRadius:    bp.EjectaRadius,
		DensityExponent: bp.DensityExponent,
		Temperature:     bp.Temperature,
		Gamma:           bp.Gamma,
		SplitField:      bp.BackgroundField,
		Bmag:            bp.Bmag,
		Theta:           utils.DegToRad(bp.Theta),
		Phi:             utils.DegToRad(bp.Phi),
	}
	bl.NISM = bp.HydrogenDensity * bp.MeanMolecularWeight
	bl.AmbientPrs = gasPressure(bl.NISM, bl.Temperature)
	bl.Bfield = [3]float64{
		bl.Bmag * math.Sin(bl.Theta) * math.Cos(bl.Phi),
		bl.Bmag * math.Sin(bl.Theta) * math.Sin(bl.Phi),
		bl.Bmag * math.Cos(bl.Theta),
	}

	switch bl.Profile {
	case BLAST:
		err = bl.deriveBlast(bp)
	case FREE_EXPANSION:
		err = bl.deriveFreeExpansion(bp)
	}
	if err != nil {
		bl = nil
		return
	}

	if bp.AddTurbulence {
		if bl.turb, err = readfiles.ReadInputData(bp.GridFile, bp.DensityFile); err != nil {
			bl = nil
		}
	}
	return
}

// deriveBlast fixes the core radius so that the swept-up fraction eta of the
// ejecta mass lies in the envelope, with the remainder spread uniformly over
// the core. The expansion time is unity in code units.
func (bl *Blast) deriveBlast(bp *InputParameters.BlastParameters) (err error) {
	var (
		n   = bl.DensityExponent
		eta = bp.EjectaFraction
		R3  = utils.POW(bl.EjectaRadius, 3)
	)
	arg := 1.0 - eta*bl.EjectaMass*(3.0-n)/(4.0*math.Pi*bl.NISM*R3)
	if arg <= 0 {
		err = fmt.Errorf("ejecta parameters leave no room for a core: "+
			"EjectaFraction %g with mass %g exceeds the envelope capacity", eta, bl.EjectaMass)
		return
	}
	bl.RCore = bl.EjectaRadius * math.Pow(arg, 1.0/(3.0-n))
	bl.RhoCore = (1.0 - eta) * bl.EjectaMass / (4.0 / 3.0 * math.Pi * utils.POW(bl.RCore, 3))
	bl.Time0 = 1.0
	return
}

// deriveFreeExpansion evaluates the self-similar free expansion solution: a
// flat core holding CoreMassFraction of the ejecta inside w_c*R_ej, a r^-n
// envelope outside, and the ejecta velocity fixed by energy conservation.
func (bl *Blast) deriveFreeExpansion(bp *InputParameters.BlastParameters) (err error) {
	var (
		n  = bl.DensityExponent
		wc = bp.CoreMassFraction
	)
	bl.RCore = wc * bl.EjectaRadius
	bl.Fnorm = 3.0 / 4.0 / math.Pi * (1.0 - n/3.0) / (1.0 - n/3.0*math.Pow(wc, 3.0-n))
	bl.Alpha = (3.0 - n) / (5.0 - n) *
		(math.Pow(wc, n-5.0) - n/5.0) / (math.Pow(wc, n-3.0) - n/3.0) * utils.POW(wc, 2)
	if bl.Alpha <= 0 || math.IsNaN(bl.Alpha) || math.IsInf(bl.Alpha, 0) {
		err = fmt.Errorf("energy shape integral alpha = %g is unusable for n = %g, w_c = %g",
			bl.Alpha, n, wc)
		return
	}
	bl.Vej = math.Sqrt(bl.EjectaEnergy / (0.5 * bl.EjectaMass * bl.Alpha))
	bl.Time0 = bl.EjectaRadius / bl.Vej
	bl.RhoCh = bl.EjectaMass / utils.POW(bl.EjectaRadius, 3)
	bl.RCh = math.Cbrt(bl.EjectaMass / bl.NISM)
	bl.RhoCore = bl.RhoCh * bl.Fnorm * math.Pow(wc, -n)
	bl.etaCoeff = math.Sqrt(ssPhi / ssLambda * bl.Fnorm)
	return
}

// Init returns the full primitive state at one coordinate. It is the per
// cell setup callback handed to the host framework.
func (bl *Blast) Init(x1, x2, x3 float64) (s State) {
	r := utils.Norm3(x1, x2, x3)

	s.Rho = bl.NISM
	s.Prs = bl.AmbientPrs
	if bl.turb != nil {
		// Externally supplied density perturbation replaces the uniform
		// ambient value; the ejecta zones below still take precedence.
		s.Rho = bl.turb.Interpolate(x1, x2, x3)
	}

	if r > 0 && r <= bl.EjectaRadius {
		rho := bl.RhoCore
		if r > bl.RCore {
			rho *= math.Pow(r/bl.RCore, -bl.DensityExponent)
		}
		eta := bl.velocityCorrection(r)
		s.Rho = rho
		s.V[0] = x1 / bl.Time0 * eta
		s.V[1] = x2 / bl.Time0 * eta
		s.V[2] = x3 / bl.Time0 * eta
		s.Prs = gasPressure(rho, bl.Temperature)
	}

	if !bl.SplitField {
		s.B = bl.Bfield
		s.A = bl.vectorPotential(x1, x2, s.B)
	}
	return
}

// velocityCorrection is the radial factor eta(r) applied to the homologous
// velocity in the free expansion profile; the blast profile is strictly
// homologous and uses 1.
func (bl *Blast) velocityCorrection(r float64) (eta float64) {
	eta = 1.0
	if bl.Profile != FREE_EXPANSION {
		return
	}
	var (
		n = bl.DensityExponent
		q = bl.etaCoeff * math.Pow(r/bl.RCh, 1.5)
	)
	eta = (1.0 + (n-3.0)/3.0*q) / (1.0 + n/3.0*q)
	return
}

func gasPressure(rho, T float64) float64 {
	return rho * KBoltzmann * T / ParticleMass
}
