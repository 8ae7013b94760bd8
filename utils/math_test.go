package utils

import (
	"testing"

	"go.viam.com/test"
)

func TestClamp(t *testing.T) {
	test.That(t, Clamp(1.1, -1, 1), test.ShouldEqual, 1.0)
	test.That(t, Clamp(-1.1, -1, 1), test.ShouldEqual, -1.0)
	test.That(t, Clamp(0.25, -1, 1), test.ShouldEqual, 0.25)
	test.That(t, Clamp(-1, -1, 1), test.ShouldEqual, -1.0)
	test.That(t, Clamp(1, -1, 1), test.ShouldEqual, 1.0)
}

func TestFloat64AlmostEqual(t *testing.T) {
	test.That(t, Float64AlmostEqual(1.0, 1.0+1e-10, 1e-9), test.ShouldBeTrue)
	test.That(t, Float64AlmostEqual(1.0, 1.01, 1e-9), test.ShouldBeFalse)
}

func TestSquare(t *testing.T) {
	test.That(t, Square(3), test.ShouldEqual, 9.0)
	test.That(t, Square(-0.5), test.ShouldEqual, 0.25)
}
