// Package corrmodel models statistical correlation between the adjustable
// parameters of a sensor model, for use by error-propagation and
// bundle-adjustment consumers.
//
// Sensor model parameters are partitioned into disjoint correlation parameter
// groups. Within a group, the correlation between two parameters observed at
// different times is given by a decay function of the time separation; across
// groups the correlation is zero, which is the responsibility of the caller
// (see the covariance package).
package corrmodel

import (
	"github.com/geomodel/sensorcorr/smerr"
)

// GroupIndex identifies a correlation parameter group within a model.
// A sensor model parameter that has never been assigned to a group carries
// the Unassigned value; check Assigned before using a GroupIndex as an
// actual group index.
type GroupIndex int

// Unassigned marks a sensor model parameter that does not belong to any
// correlation parameter group.
const Unassigned GroupIndex = -1

// Assigned reports whether g refers to an actual correlation parameter group.
func (g GroupIndex) Assigned() bool { return g >= 0 }

// CorrelationModel is implemented by every correlation model variant. All
// index-taking operations fail with an IndexOutOfRange error when handed an
// index at or beyond the corresponding table size.
//
// Implementations are plain in-memory value holders with no internal
// synchronization; callers sharing a model across goroutines must serialize
// access externally.
type CorrelationModel interface {
	// Format returns a fixed human-readable descriptor identifying the
	// model kind to consumers that branch on it.
	Format() string

	// NumSensorModelParameters returns the number of sensor model
	// parameters the model was constructed with.
	NumSensorModelParameters() int

	// NumCorrelationParameterGroups returns the number of correlation
	// parameter groups the model was constructed with.
	NumCorrelationParameterGroups() int

	// CorrelationParameterGroup returns the group the given sensor model
	// parameter is assigned to, or Unassigned if it was never set.
	CorrelationParameterGroup(smParamIndex int) (GroupIndex, error)

	// SetCorrelationParameterGroup assigns the given sensor model
	// parameter to the given group, overwriting any prior assignment.
	SetCorrelationParameterGroup(smParamIndex, cpGroupIndex int) error

	// CorrelationCoefficient evaluates the group's correlation at the
	// given time separation. Only the absolute value of deltaTime matters,
	// and the result lies within [-1, 1].
	CorrelationCoefficient(cpGroupIndex int, deltaTime float64) (float64, error)
}

// newGroupMapping returns a group assignment table with every entry
// unassigned.
func newGroupMapping(numSMParams int) []GroupIndex {
	mapping := make([]GroupIndex, numSMParams)
	for i := range mapping {
		mapping[i] = Unassigned
	}
	return mapping
}

func checkSensorModelParameterIndex(smParamIndex, numSMParams int, function string) error {
	if smParamIndex < 0 || smParamIndex >= numSMParams {
		return smerr.New(smerr.IndexOutOfRange, "sensor model parameter index is out of range", function)
	}
	return nil
}

func checkParameterGroupIndex(cpGroupIndex, numCPGroups int, function string) error {
	if cpGroupIndex < 0 || cpGroupIndex >= numCPGroups {
		return smerr.New(smerr.IndexOutOfRange, "correlation parameter group index is out of range", function)
	}
	return nil
}
