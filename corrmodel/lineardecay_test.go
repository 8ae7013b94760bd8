package corrmodel

import (
	"testing"

	"go.viam.com/test"

	"github.com/geomodel/sensorcorr/smerr"
)

func TestLinearDecayModel(t *testing.T) {
	m := NewLinearDecayModel(2, 1)
	test.That(t, m.Format(), test.ShouldEqual, "LinearDecayCorrelation")
	test.That(t, m.NumSensorModelParameters(), test.ShouldEqual, 2)
	test.That(t, m.NumCorrelationParameterGroups(), test.ShouldEqual, 1)

	test.That(t, m.SetCorrelationParameterGroup(0, 0), test.ShouldBeNil)
	test.That(t, m.SetCorrelationParameterGroup(1, 0), test.ShouldBeNil)

	params := LinearDecayParams{
		InitialCorrsPerSegment: []float64{1.0, 0.5, 0.2},
		TimesPerSegment:        []float64{0, 10, 20},
	}
	test.That(t, m.SetCorrelationGroupParameters(0, params), test.ShouldBeNil)

	rho, err := m.CorrelationCoefficient(0, 5)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, rho, test.ShouldAlmostEqual, 0.75)
	rho, err = m.CorrelationCoefficient(0, -5)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, rho, test.ShouldAlmostEqual, 0.75)
	rho, err = m.CorrelationCoefficient(0, 1000)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, rho, test.ShouldAlmostEqual, 0.2)
}

func TestLinearDecayModelRelaxedMonotonicity(t *testing.T) {
	// equal adjacent correlations are accepted at the model level
	m := NewLinearDecayModel(1, 1)
	err := m.SetCorrelationGroupParameters(0, LinearDecayParams{
		InitialCorrsPerSegment: []float64{0.8, 0.8, 0.5},
		TimesPerSegment:        []float64{0, 10, 20},
	})
	test.That(t, err, test.ShouldBeNil)

	rho, err := m.CorrelationCoefficient(0, 5)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, rho, test.ShouldAlmostEqual, 0.8)
}

func TestLinearDecayModelErrors(t *testing.T) {
	m := NewLinearDecayModel(2, 1)

	err := m.SetCorrelationGroupParameters(1, LinearDecayParams{})
	test.That(t, smerr.KindOf(err), test.ShouldEqual, smerr.IndexOutOfRange)

	bad := LinearDecayParams{
		InitialCorrsPerSegment: []float64{0.5, 0.8},
		TimesPerSegment:        []float64{0, 10},
	}
	err = m.SetCorrelationGroupParameters(0, bad)
	test.That(t, smerr.KindOf(err), test.ShouldEqual, smerr.Bounds)

	// a failed set leaves the stored segments unchanged
	stored, err := m.CorrelationGroupParameters(0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, stored.InitialCorrsPerSegment, test.ShouldBeNil)

	// an unconfigured group evaluates to 0
	rho, err := m.CorrelationCoefficient(0, 5)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, rho, test.ShouldEqual, 0.0)

	_, err = m.CorrelationCoefficient(3, 5)
	test.That(t, smerr.KindOf(err), test.ShouldEqual, smerr.IndexOutOfRange)
}

func TestLinearDecayModelOwnsSegments(t *testing.T) {
	m := NewLinearDecayModel(1, 1)
	params := LinearDecayParams{
		InitialCorrsPerSegment: []float64{1.0, 0.5},
		TimesPerSegment:        []float64{0, 10},
	}
	test.That(t, m.SetCorrelationGroupParameters(0, params), test.ShouldBeNil)

	// mutating the caller's slices must not reach the stored copy
	params.InitialCorrsPerSegment[1] = 0.0
	rho, err := m.CorrelationCoefficient(0, 10)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, rho, test.ShouldAlmostEqual, 0.5)

	// and the returned view is a copy too
	stored, err := m.CorrelationGroupParameters(0)
	test.That(t, err, test.ShouldBeNil)
	stored.InitialCorrsPerSegment[0] = 0.0
	rho, err = m.CorrelationCoefficient(0, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, rho, test.ShouldAlmostEqual, 1.0)
}
