package corrmodel

import (
	"github.com/geomodel/sensorcorr/corrfunc"
)

// MultiFunctionModelFormat is the fixed descriptor reported by
// MultiFunctionModel.Format.
const MultiFunctionModelFormat = "Multi-FunctionCorrelation"

// MultiFunctionModel assigns an arbitrary correlation function to each
// correlation parameter group, allowing different groups to decay with
// different function kinds. Group slots start empty, which evaluates to a
// coefficient of 0.
type MultiFunctionModel struct {
	groupMapping  []GroupIndex
	corrFunctions []corrfunc.Function
}

// NewMultiFunctionModel returns a multi-function model for the given number
// of sensor model parameters and correlation parameter groups.
func NewMultiFunctionModel(numSMParams, numCPGroups int) *MultiFunctionModel {
	return &MultiFunctionModel{
		groupMapping:  newGroupMapping(numSMParams),
		corrFunctions: make([]corrfunc.Function, numCPGroups),
	}
}

// Format returns MultiFunctionModelFormat.
func (m *MultiFunctionModel) Format() string { return MultiFunctionModelFormat }

// NumSensorModelParameters returns the size of the group assignment table.
func (m *MultiFunctionModel) NumSensorModelParameters() int { return len(m.groupMapping) }

// NumCorrelationParameterGroups returns the size of the group function table.
func (m *MultiFunctionModel) NumCorrelationParameterGroups() int { return len(m.corrFunctions) }

// CorrelationParameterGroup returns the group the given sensor model
// parameter is assigned to, or Unassigned if it was never set.
func (m *MultiFunctionModel) CorrelationParameterGroup(smParamIndex int) (GroupIndex, error) {
	const function = "corrmodel.MultiFunctionModel.CorrelationParameterGroup"
	if err := checkSensorModelParameterIndex(smParamIndex, len(m.groupMapping), function); err != nil {
		return Unassigned, err
	}
	return m.groupMapping[smParamIndex], nil
}

// SetCorrelationParameterGroup assigns the given sensor model parameter to
// the given group. Both indices are validated before any mutation occurs.
func (m *MultiFunctionModel) SetCorrelationParameterGroup(smParamIndex, cpGroupIndex int) error {
	const function = "corrmodel.MultiFunctionModel.SetCorrelationParameterGroup"
	if err := checkSensorModelParameterIndex(smParamIndex, len(m.groupMapping), function); err != nil {
		return err
	}
	if err := checkParameterGroupIndex(cpGroupIndex, len(m.corrFunctions), function); err != nil {
		return err
	}
	m.groupMapping[smParamIndex] = GroupIndex(cpGroupIndex)
	return nil
}

// SetCorrelationGroupFunction stores the correlation function for the given
// group. A nil corrFunction stores a zero-valued constant function instead.
// A non-negative dtEpsilon replaces the stored function's delta-time epsilon.
func (m *MultiFunctionModel) SetCorrelationGroupFunction(cpGroupIndex int, corrFunction corrfunc.Function, dtEpsilon float64) error {
	const function = "corrmodel.MultiFunctionModel.SetCorrelationGroupFunction"
	if err := checkParameterGroupIndex(cpGroupIndex, len(m.corrFunctions), function); err != nil {
		return err
	}
	if corrFunction == nil {
		ccf, err := corrfunc.NewConstant(0.0, dtEpsilon)
		if err != nil {
			return err
		}
		corrFunction = ccf
	}
	if dtEpsilon >= 0 {
		corrFunction.SetDeltaTimeEpsilon(dtEpsilon)
	}
	m.corrFunctions[cpGroupIndex] = corrFunction
	return nil
}

// CorrelationGroupFunction returns the correlation function currently stored
// for the given group, or nil if the group was never configured.
func (m *MultiFunctionModel) CorrelationGroupFunction(cpGroupIndex int) (corrfunc.Function, error) {
	const function = "corrmodel.MultiFunctionModel.CorrelationGroupFunction"
	if err := checkParameterGroupIndex(cpGroupIndex, len(m.corrFunctions), function); err != nil {
		return nil, err
	}
	return m.corrFunctions[cpGroupIndex], nil
}

// CorrelationCoefficient evaluates the group's function at the given time
// separation. An unconfigured group evaluates to 0.
func (m *MultiFunctionModel) CorrelationCoefficient(cpGroupIndex int, deltaTime float64) (float64, error) {
	const function = "corrmodel.MultiFunctionModel.CorrelationCoefficient"
	if err := checkParameterGroupIndex(cpGroupIndex, len(m.corrFunctions), function); err != nil {
		return 0, err
	}
	if m.corrFunctions[cpGroupIndex] == nil {
		return 0, nil
	}
	return m.corrFunctions[cpGroupIndex].CorrelationCoefficient(deltaTime), nil
}
