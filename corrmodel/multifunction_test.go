package corrmodel

import (
	"math"
	"testing"

	"go.viam.com/test"

	"github.com/geomodel/sensorcorr/corrfunc"
	"github.com/geomodel/sensorcorr/smerr"
)

func TestMultiFunctionModel(t *testing.T) {
	m := NewMultiFunctionModel(2, 2)
	test.That(t, m.Format(), test.ShouldEqual, "Multi-FunctionCorrelation")

	fp, err := corrfunc.NewFourParameter(0.9, 0.5, 2.0, 10.0, 0)
	test.That(t, err, test.ShouldBeNil)
	dc, err := corrfunc.NewDampedCosine(0.8, 10.0, 5.0, 0)
	test.That(t, err, test.ShouldBeNil)

	test.That(t, m.SetCorrelationGroupFunction(0, fp, 0), test.ShouldBeNil)
	test.That(t, m.SetCorrelationGroupFunction(1, dc, 0), test.ShouldBeNil)
	test.That(t, m.SetCorrelationParameterGroup(0, 0), test.ShouldBeNil)
	test.That(t, m.SetCorrelationParameterGroup(1, 1), test.ShouldBeNil)

	rho, err := m.CorrelationCoefficient(0, 10)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, rho, test.ShouldAlmostEqual, 0.9*(0.5+0.5*3.0/(2.0+math.E)), 1e-12)

	rho, err = m.CorrelationCoefficient(1, 2.5)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, rho, test.ShouldAlmostEqual, -0.8*math.Exp(-0.25), 1e-12)

	got, err := m.CorrelationGroupFunction(0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, got.Name(), test.ShouldEqual, "Four-parameter (A, alpha, beta, T)")
}

func TestMultiFunctionModelNilFunction(t *testing.T) {
	m := NewMultiFunctionModel(1, 1)

	// an unconfigured group evaluates to 0
	rho, err := m.CorrelationCoefficient(0, 5)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, rho, test.ShouldEqual, 0.0)
	fn, err := m.CorrelationGroupFunction(0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, fn, test.ShouldBeNil)

	// storing nil installs a zero constant instead
	test.That(t, m.SetCorrelationGroupFunction(0, nil, 1e-6), test.ShouldBeNil)
	fn, err = m.CorrelationGroupFunction(0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, fn, test.ShouldNotBeNil)
	test.That(t, fn.Name(), test.ShouldEqual, "Constant-0")
	rho, err = m.CorrelationCoefficient(0, 5)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, rho, test.ShouldEqual, 0.0)
}

func TestMultiFunctionModelEpsilonOverride(t *testing.T) {
	m := NewMultiFunctionModel(1, 1)
	cf, err := corrfunc.NewConstant(0.5, 0)
	test.That(t, err, test.ShouldBeNil)

	test.That(t, m.SetCorrelationGroupFunction(0, cf, 0.25), test.ShouldBeNil)
	test.That(t, cf.DeltaTimeEpsilon(), test.ShouldEqual, 0.25)

	rho, err := m.CorrelationCoefficient(0, 0.1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, rho, test.ShouldEqual, 1.0)
	rho, err = m.CorrelationCoefficient(0, 0.5)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, rho, test.ShouldEqual, 0.5)
}

func TestMultiFunctionModelErrors(t *testing.T) {
	m := NewMultiFunctionModel(2, 1)

	err := m.SetCorrelationGroupFunction(1, nil, 0)
	test.That(t, smerr.KindOf(err), test.ShouldEqual, smerr.IndexOutOfRange)
	_, err = m.CorrelationGroupFunction(1)
	test.That(t, smerr.KindOf(err), test.ShouldEqual, smerr.IndexOutOfRange)
	_, err = m.CorrelationCoefficient(1, 0)
	test.That(t, smerr.KindOf(err), test.ShouldEqual, smerr.IndexOutOfRange)
	err = m.SetCorrelationParameterGroup(2, 0)
	test.That(t, smerr.KindOf(err), test.ShouldEqual, smerr.IndexOutOfRange)
	err = m.SetCorrelationParameterGroup(0, 1)
	test.That(t, smerr.KindOf(err), test.ShouldEqual, smerr.IndexOutOfRange)
}
