package corrfunc

import (
	"math"
	"testing"

	"go.viam.com/test"

	"github.com/geomodel/sensorcorr/smerr"
)

func TestDampedCosineBounds(t *testing.T) {
	for _, tc := range []struct {
		name    string
		a, T, p float64
		ok      bool
	}{
		{"nominal", 0.8, 10.0, 5.0, true},
		{"a lower edge", 1e-6, 1e-6, 1e-6, true},
		{"a too small", 1e-7, 10.0, 5.0, false},
		{"a too large", 1.0001, 10.0, 5.0, false},
		{"t too small", 0.8, 1e-7, 5.0, false},
		{"p too small", 0.8, 10.0, 1e-7, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewDampedCosine(tc.a, tc.T, tc.p, 0)
			if tc.ok {
				test.That(t, err, test.ShouldBeNil)
			} else {
				test.That(t, smerr.KindOf(err), test.ShouldEqual, smerr.Bounds)
			}
		})
	}
}

func TestDampedCosineCoefficient(t *testing.T) {
	cf, err := NewDampedCosine(0.8, 10.0, 5.0, 0)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cf.Name(), test.ShouldEqual, "DampedCosineCorrelation")

	// at dt=P/2 the cosine is -1
	want := -0.8 * math.Exp(-0.25)
	test.That(t, cf.CorrelationCoefficient(2.5), test.ShouldAlmostEqual, want, 1e-12)
	test.That(t, cf.CorrelationCoefficient(-2.5), test.ShouldAlmostEqual, want, 1e-12)

	// full period brings the cosine back to +1
	test.That(t, cf.CorrelationCoefficient(5), test.ShouldAlmostEqual, 0.8*math.Exp(-0.5), 1e-12)

	// result stays within [-1, 1] across a sweep
	for dt := -50.0; dt <= 50.0; dt += 0.25 {
		rho := cf.CorrelationCoefficient(dt)
		test.That(t, rho, test.ShouldBeLessThanOrEqualTo, 1.0)
		test.That(t, rho, test.ShouldBeGreaterThanOrEqualTo, -1.0)
	}
}

func TestDampedCosineFailedSetLeavesState(t *testing.T) {
	cf, err := NewDampedCosine(0.8, 10.0, 5.0, 0)
	test.That(t, err, test.ShouldBeNil)

	err = cf.SetParameters(2.0, 10.0, 5.0)
	test.That(t, smerr.KindOf(err), test.ShouldEqual, smerr.Bounds)
	test.That(t, cf.Parameters(), test.ShouldResemble, []Parameter{
		{Name: "A", Value: 0.8},
		{Name: "T", Value: 10.0},
		{Name: "P", Value: 5.0},
	})
}
