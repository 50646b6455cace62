package InputParameters

import (
	"fmt"
	"math"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file. They correspond one to one
// with the user-defined parameters of the supernova remnant blast problem:
// ejecta energy, mass and radius, the ambient medium description, the
// power law exponents of the free expansion profile and the orientation of
// the uniform magnetic field.
type BlastParameters struct {
	Title               string  `yaml:"Title"`
	Profile             string  `yaml:"Profile"`  // "blast" or "freeExpansion"
	Geometry            string  `yaml:"Geometry"` // "cartesian" or "cylindrical"
	EjectaEnergy        float64 `yaml:"EjectaEnergy"`
	EjectaMass          float64 `yaml:"EjectaMass"`
	EjectaRadius        float64 `yaml:"EjectaRadius"`
	HydrogenDensity     float64 `yaml:"HydrogenDensity"`
	MeanMolecularWeight float64 `yaml:"MeanMolecularWeight"`
	EjectaFraction      float64 `yaml:"EjectaFraction"`   // swept-up fraction eta, blast profile
	CoreMassFraction    float64 `yaml:"CoreMassFraction"` // w_c, freeExpansion profile
	DensityExponent     float64 `yaml:"DensityExponent"`  // n, envelope power law
	VelocityExponent    float64 `yaml:"VelocityExponent"` // s, reserved for steeper ejecta laws
	Bmag                float64 `yaml:"Bmag"`
	Theta               float64 `yaml:"Theta"` // degrees
	Phi                 float64 `yaml:"Phi"`   // degrees
	Temperature         float64 `yaml:"Temperature"`
	Gamma               float64 `yaml:"Gamma"`
	BackgroundField     bool    `yaml:"BackgroundField"`
	AddTurbulence       bool    `yaml:"AddTurbulence"`
	GridFile            string  `yaml:"GridFile"`
	DensityFile         string  `yaml:"DensityFile"`
}

var profileNames = []string{"blast", "freeExpansion"}

var geometryNames = []string{"cartesian", "cylindrical"}

// NewBlastParameters returns the parameter set with the defaults of the
// canonical CTB 109 style run. All lengths, masses and times are in code
// units; Temperature is in Kelvin and Theta/Phi in degrees.
func NewBlastParameters() (bp *BlastParameters) {
	bp = &BlastParameters{
		Title:               "SNR blast wave",
		Profile:             "blast",
		Geometry:            "cartesian",
		EjectaEnergy:        1.0,
		EjectaMass:          1.0,
		EjectaRadius:        0.5,
		HydrogenDensity:     1.0,
		MeanMolecularWeight: 1.0,
		EjectaFraction:      0.5,
		CoreMassFraction:    0.5,
		DensityExponent:     2.0,
		VelocityExponent:    1.0,
		Bmag:                1.0,
		Theta:               0.0,
		Phi:                 0.0,
		Temperature:         1.0e4,
		Gamma:               5. / 3.,
	}
	return
}

func (bp *BlastParameters) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, bp); err != nil {
		return err
	}
	return bp.Validate()
}

// Validate rejects parameter sets that would drive non finite values into
// the derived constants. The host framework used to leave these unchecked,
// producing NaNs deep inside the run instead of an error at load time.
func (bp *BlastParameters) Validate() (err error) {
	named := map[string]float64{
		"EjectaEnergy":        bp.EjectaEnergy,
		"EjectaMass":          bp.EjectaMass,
		"EjectaRadius":        bp.EjectaRadius,
		"HydrogenDensity":     bp.HydrogenDensity,
		"MeanMolecularWeight": bp.MeanMolecularWeight,
		"EjectaFraction":      bp.EjectaFraction,
		"CoreMassFraction":    bp.CoreMassFraction,
		"DensityExponent":     bp.DensityExponent,
		"VelocityExponent":    bp.VelocityExponent,
		"Bmag":                bp.Bmag,
		"Theta":               bp.Theta,
		"Phi":                 bp.Phi,
		"Temperature":         bp.Temperature,
		"Gamma":               bp.Gamma,
	}
	for name, val := range named {
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return fmt.Errorf("parameter %s is not finite", name)
		}
	}
	if !contains(profileNames, bp.Profile) {
		return fmt.Errorf("unknown profile %q, must be one of %v", bp.Profile, profileNames)
	}
	if !contains(geometryNames, bp.Geometry) {
		return fmt.Errorf("unknown geometry %q, must be one of %v", bp.Geometry, geometryNames)
	}
	switch {
	case bp.EjectaEnergy <= 0:
		err = fmt.Errorf("EjectaEnergy must be positive, got %g", bp.EjectaEnergy)
	case bp.EjectaMass <= 0:
		err = fmt.Errorf("EjectaMass must be positive, got %g", bp.EjectaMass)
	case bp.EjectaRadius <= 0:
		err = fmt.Errorf("EjectaRadius must be positive, got %g", bp.EjectaRadius)
	case bp.HydrogenDensity <= 0:
		err = fmt.Errorf("HydrogenDensity must be positive, got %g", bp.HydrogenDensity)
	case bp.MeanMolecularWeight <= 0:
		err = fmt.Errorf("MeanMolecularWeight must be positive, got %g", bp.MeanMolecularWeight)
	case bp.EjectaFraction < 0 || bp.EjectaFraction >= 1:
		err = fmt.Errorf("EjectaFraction must be in [0,1), got %g", bp.EjectaFraction)
	case bp.CoreMassFraction <= 0 || bp.CoreMassFraction >= 1:
		err = fmt.Errorf("CoreMassFraction must be in (0,1), got %g", bp.CoreMassFraction)
	case bp.DensityExponent < 0 || bp.DensityExponent >= 3:
		// n < 3 keeps the core radius and the mass normalization finite
		err = fmt.Errorf("DensityExponent must be in [0,3), got %g", bp.DensityExponent)
	case bp.Bmag < 0:
		err = fmt.Errorf("Bmag must be non negative, got %g", bp.Bmag)
	case bp.Temperature <= 0:
		err = fmt.Errorf("Temperature must be positive, got %g", bp.Temperature)
	case bp.Gamma <= 1:
		err = fmt.Errorf("Gamma must exceed 1, got %g", bp.Gamma)
	}
	if err != nil {
		return
	}
	if bp.AddTurbulence && (len(bp.GridFile) == 0 || len(bp.DensityFile) == 0) {
		err = fmt.Errorf("AddTurbulence requires both GridFile and DensityFile")
	}
	return
}

func (bp *BlastParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", bp.Title)
	fmt.Printf("[%s]\t\t\t= Profile\n", bp.Profile)
	fmt.Printf("[%s]\t\t= Geometry\n", bp.Geometry)
	fmt.Printf("%8.5f\t\t= EjectaEnergy\n", bp.EjectaEnergy)
	fmt.Printf("%8.5f\t\t= EjectaMass\n", bp.EjectaMass)
	fmt.Printf("%8.5f\t\t= EjectaRadius\n", bp.EjectaRadius)
	fmt.Printf("%8.5f\t\t= HydrogenDensity\n", bp.HydrogenDensity)
	fmt.Printf("%8.5f\t\t= MeanMolecularWeight\n", bp.MeanMolecularWeight)
	fmt.Printf("%8.5f\t\t= EjectaFraction\n", bp.EjectaFraction)
	fmt.Printf("%8.5f\t\t= CoreMassFraction\n", bp.CoreMassFraction)
	fmt.Printf("%8.5f\t\t= DensityExponent\n", bp.DensityExponent)
	fmt.Printf("%8.5f\t\t= Bmag\n", bp.Bmag)
	fmt.Printf("%8.5f\t\t= Theta (deg)\n", bp.Theta)
	fmt.Printf("%8.5f\t\t= Phi (deg)\n", bp.Phi)
	fmt.Printf("%8.3e\t\t= Temperature (K)\n", bp.Temperature)
	fmt.Printf("%8.5f\t\t= Gamma\n", bp.Gamma)
	fmt.Printf("[%v]\t\t\t= BackgroundField\n", bp.BackgroundField)
	fmt.Printf("[%v]\t\t\t= AddTurbulence\n", bp.AddTurbulence)
}

func contains(names []string, label string) bool {
	for _, name := range names {
		if name == label {
			return true
		}
	}
	return false
}
