// Package corrfunc implements symmetric positive definite correlation
// functions (SPDCFs) of the time separation between two observations of a
// sensor model parameter. Every function is symmetric in time direction and
// evaluates to a coefficient within [-1, 1].
package corrfunc

import "strconv"

// Parameter is a named correlation function parameter value.
type Parameter struct {
	Name  string
	Value float64
}

// Function is a symmetric positive definite correlation function. The
// deltaTime argument of CorrelationCoefficient is the difference in time, in
// seconds, between the two observations; only its absolute value matters.
// Absolute delta times smaller than the function's delta-time epsilon are
// treated as simultaneous and evaluate to exactly 1.
type Function interface {
	// Name returns a fixed descriptor identifying the function kind.
	Name() string

	// CorrelationCoefficient returns the correlation coefficient for the
	// given delta time, clamped into [-1, 1].
	CorrelationCoefficient(deltaTime float64) float64

	// Parameters returns the named parameter values of the function.
	Parameters() []Parameter

	// DeltaTimeEpsilon returns the smallest absolute delta time for which
	// the function is actually computed.
	DeltaTimeEpsilon() float64

	// SetDeltaTimeEpsilon sets the delta-time epsilon. Negative values are
	// treated as zero.
	SetDeltaTimeEpsilon(dtEpsilon float64)
}

// spdBase carries the state shared by every correlation function.
type spdBase struct {
	name      string
	dtEpsilon float64
}

func (b *spdBase) Name() string { return b.name }

func (b *spdBase) DeltaTimeEpsilon() float64 { return b.dtEpsilon }

func (b *spdBase) SetDeltaTimeEpsilon(dtEpsilon float64) {
	if dtEpsilon < 0 {
		dtEpsilon = 0
	}
	b.dtEpsilon = dtEpsilon
}

func segmentName(prefix string, i int) string {
	return prefix + strconv.Itoa(i)
}
