package corrfunc

import (
	"math"

	"github.com/geomodel/sensorcorr/smerr"
	"github.com/geomodel/sensorcorr/utils"
)

const dampedCosineName = "DampedCosineCorrelation"

// DampedCosine is an exponentially damped cosine correlation function
//
//	rho(dt) = A * exp(-|dt| / T) * cos(2 * pi * |dt| / P)
//
// where A is the scale factor, T the damping time constant, and P the
// oscillation period.
type DampedCosine struct {
	spdBase
	a float64
	t float64
	p float64
}

// NewDampedCosine returns a damped cosine correlation function with the given
// parameters. Valid ranges are A in [1e-6, 1] and T, P >= 1e-6.
func NewDampedCosine(a, t, p, dtEpsilon float64) (*DampedCosine, error) {
	cf := &DampedCosine{}
	cf.name = dampedCosineName
	cf.SetDeltaTimeEpsilon(dtEpsilon)
	if err := cf.SetParameters(a, t, p); err != nil {
		return nil, err
	}
	return cf, nil
}

// SetParameters replaces all three parameters as a unit. On a validation
// failure nothing is changed.
func (cf *DampedCosine) SetParameters(a, t, p float64) error {
	const function = "corrfunc.DampedCosine.SetParameters"
	if a < 1.0e-6 || a > 1.0 {
		return smerr.New(smerr.Bounds, "correlation parameter A must be in the range [1e-6, 1]", function)
	}
	if t < 1.0e-6 {
		return smerr.New(smerr.Bounds, "correlation parameter T must be >= 1e-6", function)
	}
	if p < 1.0e-6 {
		return smerr.New(smerr.Bounds, "correlation parameter P must be >= 1e-6", function)
	}
	cf.a, cf.t, cf.p = a, t, p
	return nil
}

// CorrelationCoefficient evaluates the damped cosine for the given delta
// time. Delta times within epsilon of zero evaluate to exactly 1.
func (cf *DampedCosine) CorrelationCoefficient(deltaTime float64) float64 {
	adt := math.Abs(deltaTime)
	if adt < cf.dtEpsilon {
		return 1.0
	}
	corrCoeff := cf.a * math.Exp(-adt/cf.t) * math.Cos(2.0*math.Pi*adt/cf.p)
	return utils.Clamp(corrCoeff, -1.0, 1.0)
}

// Parameters returns A, T, and P in order.
func (cf *DampedCosine) Parameters() []Parameter {
	return []Parameter{
		{Name: "A", Value: cf.a},
		{Name: "T", Value: cf.t},
		{Name: "P", Value: cf.p},
	}
}
