package SNRBlast

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary aggregates the sampled fields into the integral quantities worth
// eyeballing before committing a run: total mass, the three energy budgets
// and the density extrema.
type Summary struct {
	TotalMass      float64
	KineticEnergy  float64
	ThermalEnergy  float64
	MagneticEnergy float64
	RhoMin, RhoMax float64
	MeanPrs        float64
}

func (f *Fields) Summarize(cellVolume, gamma float64) (sum Summary) {
	sum.TotalMass = floats.Sum(f.Rho) * cellVolume
	for i := 0; i < f.K; i++ {
		v2 := f.VX1[i]*f.VX1[i] + f.VX2[i]*f.VX2[i] + f.VX3[i]*f.VX3[i]
		b2 := f.BX1[i]*f.BX1[i] + f.BX2[i]*f.BX2[i] + f.BX3[i]*f.BX3[i]
		sum.KineticEnergy += 0.5 * f.Rho[i] * v2
		sum.MagneticEnergy += 0.5 * b2
	}
	sum.KineticEnergy *= cellVolume
	sum.MagneticEnergy *= cellVolume
	sum.ThermalEnergy = floats.Sum(f.Prs) / (gamma - 1.) * cellVolume
	sum.RhoMin = floats.Min(f.Rho)
	sum.RhoMax = floats.Max(f.Rho)
	sum.MeanPrs = stat.Mean(f.Prs, nil)
	return
}

func (sum Summary) Print() {
	fmt.Printf("%12.5e\t= Total Mass\n", sum.TotalMass)
	fmt.Printf("%12.5e\t= Kinetic Energy\n", sum.KineticEnergy)
	fmt.Printf("%12.5e\t= Thermal Energy\n", sum.ThermalEnergy)
	fmt.Printf("%12.5e\t= Magnetic Energy\n", sum.MagneticEnergy)
	fmt.Printf("%12.5e\t= Density Min\n", sum.RhoMin)
	fmt.Printf("%12.5e\t= Density Max\n", sum.RhoMax)
	fmt.Printf("%12.5e\t= Mean Pressure\n", sum.MeanPrs)
}
