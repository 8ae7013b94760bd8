package corrmodel

import (
	"math"

	"github.com/geomodel/sensorcorr/smerr"
	"github.com/geomodel/sensorcorr/utils"
)

// FourParameterModelFormat is the fixed descriptor reported by
// FourParameterModel.Format.
const FourParameterModelFormat = "Four-parameter model (A, alpha, beta, tau)"

// FourParameterParams holds the four correlation parameters of one group:
//
//	A     overall scale factor, within [0, 1]
//	Alpha long-lag correlation fraction, within [0, 1]
//	Beta  shape parameter of the decay, within [0, 10]
//	Tau   time-decay constant, greater than 0
type FourParameterParams struct {
	A     float64
	Alpha float64
	Beta  float64
	Tau   float64
}

// FourParameterModel computes the correlation between two same-group sensor
// model parameters observed deltaTime apart as
//
//	rho = a * (alpha + (1 - alpha) * (1 + beta) / (beta + exp(|deltaTime| / tau)))
//
// using the group's stored parameters. Group parameter slots start
// zero-valued; a group must be configured through
// SetCorrelationGroupParameters before its coefficient is evaluated, since a
// zero tau divides by zero. That precondition is the caller's responsibility
// and is not checked by the evaluator.
type FourParameterModel struct {
	groupMapping []GroupIndex
	corrParams   []FourParameterParams
}

// NewFourParameterModel returns a four-parameter model for the given number
// of sensor model parameters and correlation parameter groups. All
// assignments start unset and all group parameter slots start zero-valued.
func NewFourParameterModel(numSMParams, numCPGroups int) *FourParameterModel {
	return &FourParameterModel{
		groupMapping: newGroupMapping(numSMParams),
		corrParams:   make([]FourParameterParams, numCPGroups),
	}
}

// Format returns FourParameterModelFormat.
func (m *FourParameterModel) Format() string { return FourParameterModelFormat }

// NumSensorModelParameters returns the size of the group assignment table.
func (m *FourParameterModel) NumSensorModelParameters() int { return len(m.groupMapping) }

// NumCorrelationParameterGroups returns the size of the group parameter table.
func (m *FourParameterModel) NumCorrelationParameterGroups() int { return len(m.corrParams) }

// CorrelationParameterGroup returns the group the given sensor model
// parameter is assigned to, or Unassigned if it was never set.
func (m *FourParameterModel) CorrelationParameterGroup(smParamIndex int) (GroupIndex, error) {
	const function = "corrmodel.FourParameterModel.CorrelationParameterGroup"
	if err := checkSensorModelParameterIndex(smParamIndex, len(m.groupMapping), function); err != nil {
		return Unassigned, err
	}
	return m.groupMapping[smParamIndex], nil
}

// SetCorrelationParameterGroup assigns the given sensor model parameter to
// the given group. Both indices are validated before any mutation occurs.
func (m *FourParameterModel) SetCorrelationParameterGroup(smParamIndex, cpGroupIndex int) error {
	const function = "corrmodel.FourParameterModel.SetCorrelationParameterGroup"
	if err := checkSensorModelParameterIndex(smParamIndex, len(m.groupMapping), function); err != nil {
		return err
	}
	if err := checkParameterGroupIndex(cpGroupIndex, len(m.corrParams), function); err != nil {
		return err
	}
	m.groupMapping[smParamIndex] = GroupIndex(cpGroupIndex)
	return nil
}

// SetCorrelationGroupParameters validates params and stores them for the
// given group as a unit. Validation short-circuits on the first violated
// constraint, in the order A, Alpha, Beta, Tau, and a failed call leaves the
// stored parameters unchanged.
func (m *FourParameterModel) SetCorrelationGroupParameters(cpGroupIndex int, params FourParameterParams) error {
	const function = "corrmodel.FourParameterModel.SetCorrelationGroupParameters"
	if err := checkParameterGroupIndex(cpGroupIndex, len(m.corrParams), function); err != nil {
		return err
	}
	if params.A < 0.0 || params.A > 1.0 {
		return smerr.New(smerr.Bounds, "correlation parameter A must be in the range [0, 1]", function)
	}
	if params.Alpha < 0.0 || params.Alpha > 1.0 {
		return smerr.New(smerr.Bounds, "correlation parameter alpha must be in the range [0, 1]", function)
	}
	if params.Beta < 0.0 || params.Beta > 10.0 {
		return smerr.New(smerr.Bounds, "correlation parameter beta must be in the range [0, 10]", function)
	}
	if params.Tau <= 0.0 {
		return smerr.New(smerr.Bounds, "correlation parameter tau must be positive", function)
	}
	m.corrParams[cpGroupIndex] = params
	return nil
}

// CorrelationGroupParameters returns the parameters currently stored for the
// given group: the latest successfully set values, or the zero default if the
// group was never configured.
func (m *FourParameterModel) CorrelationGroupParameters(cpGroupIndex int) (FourParameterParams, error) {
	const function = "corrmodel.FourParameterModel.CorrelationGroupParameters"
	if err := checkParameterGroupIndex(cpGroupIndex, len(m.corrParams), function); err != nil {
		return FourParameterParams{}, err
	}
	return m.corrParams[cpGroupIndex], nil
}

// CorrelationCoefficient evaluates the group's decay at the given time
// separation, clamped into [-1, 1] as a safety net against floating-point
// rounding.
func (m *FourParameterModel) CorrelationCoefficient(cpGroupIndex int, deltaTime float64) (float64, error) {
	const function = "corrmodel.FourParameterModel.CorrelationCoefficient"
	if err := checkParameterGroupIndex(cpGroupIndex, len(m.corrParams), function); err != nil {
		return 0, err
	}
	cp := m.corrParams[cpGroupIndex]
	corrCoeff := cp.A * (cp.Alpha + (1.0-cp.Alpha)*(1.0+cp.Beta)/(cp.Beta+math.Exp(math.Abs(deltaTime)/cp.Tau)))
	return utils.Clamp(corrCoeff, -1.0, 1.0), nil
}
