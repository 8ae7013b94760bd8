package corrmodel

import (
	"github.com/geomodel/sensorcorr/corrfunc"
)

// LinearDecayModelFormat is the fixed descriptor reported by
// LinearDecayModel.Format.
const LinearDecayModelFormat = "LinearDecayCorrelation"

// LinearDecayParams holds the piecewise-linear decay segments of one group.
// Segment i starts at TimesPerSegment[i] with correlation
// InitialCorrsPerSegment[i].
type LinearDecayParams struct {
	InitialCorrsPerSegment []float64
	TimesPerSegment        []float64
}

func (p LinearDecayParams) clone() LinearDecayParams {
	return LinearDecayParams{
		InitialCorrsPerSegment: append([]float64(nil), p.InitialCorrsPerSegment...),
		TimesPerSegment:        append([]float64(nil), p.TimesPerSegment...),
	}
}

// LinearDecayModel computes same-group correlation by linear interpolation
// over per-group decay segments. Group parameter slots start empty, which
// evaluates to a coefficient of 0.
type LinearDecayModel struct {
	groupMapping []GroupIndex
	corrParams   []LinearDecayParams
}

// NewLinearDecayModel returns a linear-decay model for the given number of
// sensor model parameters and correlation parameter groups.
func NewLinearDecayModel(numSMParams, numCPGroups int) *LinearDecayModel {
	return &LinearDecayModel{
		groupMapping: newGroupMapping(numSMParams),
		corrParams:   make([]LinearDecayParams, numCPGroups),
	}
}

// Format returns LinearDecayModelFormat.
func (m *LinearDecayModel) Format() string { return LinearDecayModelFormat }

// NumSensorModelParameters returns the size of the group assignment table.
func (m *LinearDecayModel) NumSensorModelParameters() int { return len(m.groupMapping) }

// NumCorrelationParameterGroups returns the size of the group parameter table.
func (m *LinearDecayModel) NumCorrelationParameterGroups() int { return len(m.corrParams) }

// CorrelationParameterGroup returns the group the given sensor model
// parameter is assigned to, or Unassigned if it was never set.
func (m *LinearDecayModel) CorrelationParameterGroup(smParamIndex int) (GroupIndex, error) {
	const function = "corrmodel.LinearDecayModel.CorrelationParameterGroup"
	if err := checkSensorModelParameterIndex(smParamIndex, len(m.groupMapping), function); err != nil {
		return Unassigned, err
	}
	return m.groupMapping[smParamIndex], nil
}

// SetCorrelationParameterGroup assigns the given sensor model parameter to
// the given group. Both indices are validated before any mutation occurs.
func (m *LinearDecayModel) SetCorrelationParameterGroup(smParamIndex, cpGroupIndex int) error {
	const function = "corrmodel.LinearDecayModel.SetCorrelationParameterGroup"
	if err := checkSensorModelParameterIndex(smParamIndex, len(m.groupMapping), function); err != nil {
		return err
	}
	if err := checkParameterGroupIndex(cpGroupIndex, len(m.corrParams), function); err != nil {
		return err
	}
	m.groupMapping[smParamIndex] = GroupIndex(cpGroupIndex)
	return nil
}

// SetCorrelationGroupParameters validates the segments and stores a copy of
// them for the given group. Monotonicity is checked non-strictly so that
// flat stretches remain representable. A failed call leaves the stored
// segments unchanged.
func (m *LinearDecayModel) SetCorrelationGroupParameters(cpGroupIndex int, params LinearDecayParams) error {
	const function = "corrmodel.LinearDecayModel.SetCorrelationGroupParameters"
	if err := checkParameterGroupIndex(cpGroupIndex, len(m.corrParams), function); err != nil {
		return err
	}
	if err := corrfunc.CheckLinearDecaySegments(params.InitialCorrsPerSegment, params.TimesPerSegment, false); err != nil {
		return err
	}
	m.corrParams[cpGroupIndex] = params.clone()
	return nil
}

// CorrelationGroupParameters returns a copy of the segments currently stored
// for the given group.
func (m *LinearDecayModel) CorrelationGroupParameters(cpGroupIndex int) (LinearDecayParams, error) {
	const function = "corrmodel.LinearDecayModel.CorrelationGroupParameters"
	if err := checkParameterGroupIndex(cpGroupIndex, len(m.corrParams), function); err != nil {
		return LinearDecayParams{}, err
	}
	return m.corrParams[cpGroupIndex].clone(), nil
}

// CorrelationCoefficient interpolates the group's segments at the given time
// separation. Only the absolute value of deltaTime matters; the result is
// clamped into [0, 1].
func (m *LinearDecayModel) CorrelationCoefficient(cpGroupIndex int, deltaTime float64) (float64, error) {
	const function = "corrmodel.LinearDecayModel.CorrelationCoefficient"
	if err := checkParameterGroupIndex(cpGroupIndex, len(m.corrParams), function); err != nil {
		return 0, err
	}
	cp := m.corrParams[cpGroupIndex]
	return corrfunc.LinearDecayCoefficient(cp.InitialCorrsPerSegment, cp.TimesPerSegment, deltaTime), nil
}
