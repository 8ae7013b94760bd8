package corrfunc

import (
	"fmt"
	"math"

	"github.com/geomodel/sensorcorr/smerr"
)

// Constant is a correlation function that evaluates to the same coefficient
// for every delta time at or beyond its epsilon.
type Constant struct {
	spdBase
	value float64
}

// NewConstant returns a constant correlation function with the given
// coefficient, which must lie in [-1, 1].
func NewConstant(corrCoeff, dtEpsilon float64) (*Constant, error) {
	if math.Abs(corrCoeff) > 1.0 {
		return nil, smerr.New(smerr.InvalidUse,
			fmt.Sprintf("provided correlation coefficient %v is outside the valid range [-1, 1]", corrCoeff),
			"corrfunc.NewConstant")
	}
	cf := &Constant{value: corrCoeff}
	cf.name = fmt.Sprintf("Constant-%v", corrCoeff)
	cf.SetDeltaTimeEpsilon(dtEpsilon)
	return cf, nil
}

// CorrelationCoefficient returns the constant coefficient, or exactly 1 for
// delta times within epsilon of zero.
func (cf *Constant) CorrelationCoefficient(deltaTime float64) float64 {
	if math.Abs(deltaTime) < cf.dtEpsilon {
		return 1.0
	}
	return cf.value
}

// Parameters returns the single coefficient parameter A.
func (cf *Constant) Parameters() []Parameter {
	return []Parameter{{Name: "A", Value: cf.value}}
}
