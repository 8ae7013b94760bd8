package corrfunc

import (
	"math"

	"github.com/geomodel/sensorcorr/smerr"
	"github.com/geomodel/sensorcorr/utils"
)

const linearDecayName = "LinearDecayCorrelation"

// LinearDecay is a piecewise-linear correlation decay. Segment i starts at
// time times[i] with correlation corrs[i]; between segment starts the
// coefficient is interpolated linearly, and beyond the last segment it holds
// the last correlation value.
type LinearDecay struct {
	spdBase
	corrs []float64
	times []float64
}

// NewLinearDecay returns a piecewise-linear correlation function over the
// given segments. Correlations must lie in [0, 1] and decrease strictly
// monotonically; times must increase strictly monotonically.
func NewLinearDecay(initialCorrsPerSegment, timesPerSegment []float64, dtEpsilon float64) (*LinearDecay, error) {
	if err := CheckLinearDecaySegments(initialCorrsPerSegment, timesPerSegment, true); err != nil {
		return nil, err
	}
	cf := &LinearDecay{
		corrs: append([]float64(nil), initialCorrsPerSegment...),
		times: append([]float64(nil), timesPerSegment...),
	}
	cf.name = linearDecayName
	cf.SetDeltaTimeEpsilon(dtEpsilon)
	return cf, nil
}

// CorrelationCoefficient interpolates the segments at the given delta time.
// Delta times within epsilon of zero evaluate to exactly 1.
func (cf *LinearDecay) CorrelationCoefficient(deltaTime float64) float64 {
	if math.Abs(deltaTime) < cf.dtEpsilon {
		return 1.0
	}
	return LinearDecayCoefficient(cf.corrs, cf.times, deltaTime)
}

// Parameters returns the per-segment correlations and times, interleaved.
func (cf *LinearDecay) Parameters() []Parameter {
	params := make([]Parameter, 0, 2*len(cf.corrs))
	for i, c := range cf.corrs {
		params = append(params,
			Parameter{Name: segmentName("Corr_", i), Value: c},
			Parameter{Name: segmentName("Time_", i), Value: cf.times[i]},
		)
	}
	return params
}

// LinearDecayCoefficient evaluates the piecewise-linear decay described by
// the given segments at the given delta time, clamped into [0, 1]. An empty
// segment list evaluates to 0.
func LinearDecayCoefficient(initialCorrsPerSegment, timesPerSegment []float64, deltaTime float64) float64 {
	size := len(initialCorrsPerSegment)
	if size == 0 {
		return 0.0
	}

	adt := math.Abs(deltaTime)
	prevCorr := initialCorrsPerSegment[0]
	prevTime := timesPerSegment[0]
	correlation := prevCorr

	for s := 1; s < size; s++ {
		currCorr := initialCorrsPerSegment[s]
		currTime := timesPerSegment[s]
		if adt <= currTime {
			if currTime-prevTime != 0.0 {
				correlation = prevCorr + (adt-prevTime)/(currTime-prevTime)*(currCorr-prevCorr)
			}
			break
		}
		prevCorr = currCorr
		prevTime = currTime
		correlation = prevCorr
	}

	return utils.Clamp(correlation, 0.0, 1.0)
}

// CheckLinearDecaySegments validates the segment lists: equal lengths,
// correlations within [0, 1], correlations monotonically decreasing, and
// times monotonically increasing. When strict is true the monotonicity must
// hold strictly; otherwise adjacent equal values are allowed.
func CheckLinearDecaySegments(initialCorrsPerSegment, timesPerSegment []float64, strict bool) error {
	const function = "corrfunc.CheckLinearDecaySegments"

	if len(initialCorrsPerSegment) != len(timesPerSegment) {
		return smerr.New(smerr.Bounds, "must have equal number of correlations and times", function)
	}

	for i, corr := range initialCorrsPerSegment {
		if corr < 0.0 || corr > 1.0 {
			return smerr.New(smerr.Bounds, "correlation must be in the range [0, 1]", function)
		}
		if i == 0 {
			continue
		}
		prevCorr := initialCorrsPerSegment[i-1]
		prevTime := timesPerSegment[i-1]
		if corr > prevCorr || (strict && corr == prevCorr) {
			return smerr.New(smerr.Bounds, "correlation must be monotonically decreasing", function)
		}
		if timesPerSegment[i] < prevTime || (strict && timesPerSegment[i] == prevTime) {
			return smerr.New(smerr.Bounds, "time must be monotonically increasing", function)
		}
	}
	return nil
}
