package corrfunc

import (
	"fmt"
	"math"

	"github.com/geomodel/sensorcorr/smerr"
)

const weightedSumName = "WeightedSum"

// WeightedFunction pairs a correlation function with its weight in a
// weighted sum.
type WeightedFunction struct {
	Weight   float64
	Function Function
}

// WeightedSum combines multiple correlation functions as a weighted sum,
// treated as a single function. Members with a nil Function contribute
// neither weight nor correlation.
type WeightedSum struct {
	spdBase
	funcs []WeightedFunction
}

// NewWeightedSum returns a weighted sum of the given functions. The weights
// of the non-nil members must not sum to more than 1.
func NewWeightedSum(funcs []WeightedFunction, dtEpsilon float64) (*WeightedSum, error) {
	if err := checkWeightedFunctions(funcs); err != nil {
		return nil, err
	}
	cf := &WeightedSum{funcs: append([]WeightedFunction(nil), funcs...)}
	cf.name = weightedSumName
	cf.SetDeltaTimeEpsilon(dtEpsilon)
	return cf, nil
}

// SetFunctions replaces the member functions and the delta-time epsilon as a
// unit. On a validation failure nothing is changed.
func (cf *WeightedSum) SetFunctions(funcs []WeightedFunction, dtEpsilon float64) error {
	if err := checkWeightedFunctions(funcs); err != nil {
		return err
	}
	cf.funcs = append([]WeightedFunction(nil), funcs...)
	cf.SetDeltaTimeEpsilon(dtEpsilon)
	return nil
}

// NumFunctions returns the number of member functions, including nil slots.
func (cf *WeightedSum) NumFunctions() int {
	return len(cf.funcs)
}

// Function returns the weighted member function at the given index.
func (cf *WeightedSum) Function(index int) (WeightedFunction, error) {
	const function = "corrfunc.WeightedSum.Function"
	if len(cf.funcs) == 0 {
		return WeightedFunction{}, smerr.New(smerr.IndexOutOfRange, "no correlation functions found", function)
	}
	if index < 0 || index >= len(cf.funcs) {
		return WeightedFunction{}, smerr.New(smerr.IndexOutOfRange,
			fmt.Sprintf("requested function at index %d but valid range is [0, %d]", index, len(cf.funcs)-1),
			function)
	}
	return cf.funcs[index], nil
}

// CorrelationCoefficient sums the weighted member coefficients for the given
// delta time. Delta times within epsilon of zero evaluate to exactly 1.
func (cf *WeightedSum) CorrelationCoefficient(deltaTime float64) float64 {
	if deltaTime == 0.0 || math.Abs(deltaTime) < cf.dtEpsilon {
		return 1.0
	}
	corrSum := 0.0
	for _, wf := range cf.funcs {
		if wf.Function == nil {
			continue
		}
		corrSum += wf.Weight * wf.Function.CorrelationCoefficient(deltaTime)
	}
	return corrSum
}

// Parameters returns, for each member, its weight followed by its own
// parameters.
func (cf *WeightedSum) Parameters() []Parameter {
	var params []Parameter
	for i, wf := range cf.funcs {
		params = append(params, Parameter{Name: segmentName("Weight_", i), Value: wf.Weight})
		if wf.Function != nil {
			params = append(params, wf.Function.Parameters()...)
		}
	}
	return params
}

func checkWeightedFunctions(funcs []WeightedFunction) error {
	sum := 0.0
	for _, wf := range funcs {
		if wf.Function == nil {
			continue
		}
		sum += wf.Weight
	}
	if sum > 1.0 {
		return smerr.New(smerr.Bounds,
			fmt.Sprintf("sum of weights %v is greater than 1", sum),
			"corrfunc.WeightedSum.SetFunctions")
	}
	return nil
}
