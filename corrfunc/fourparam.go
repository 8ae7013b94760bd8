package corrfunc

import (
	"math"

	"github.com/geomodel/sensorcorr/smerr"
	"github.com/geomodel/sensorcorr/utils"
)

const fourParameterName = "Four-parameter (A, alpha, beta, T)"

// FourParameter is the four-parameter correlation function
//
//	rho(dt) = A * (alpha + (1 - alpha) * (1 + beta) / (beta + exp(|dt| / T)))
//
// where A is the overall scale factor, alpha the long-lag correlation
// fraction, beta the shape parameter of the decay, and T the time-decay
// constant.
type FourParameter struct {
	spdBase
	a     float64
	alpha float64
	beta  float64
	tau   float64
}

// NewFourParameter returns a four-parameter correlation function with the
// given parameters. Valid ranges are A in (0, 1], alpha in [0, 1), beta in
// [0, 10], and T > 0.
func NewFourParameter(a, alpha, beta, tau, dtEpsilon float64) (*FourParameter, error) {
	if err := checkFourParameterFunction(a, alpha, beta, tau); err != nil {
		return nil, err
	}
	cf := &FourParameter{a: a, alpha: alpha, beta: beta, tau: tau}
	cf.name = fourParameterName
	cf.SetDeltaTimeEpsilon(dtEpsilon)
	return cf, nil
}

// SetParameters replaces all four parameters and the delta-time epsilon as a
// unit. On a validation failure nothing is changed.
func (cf *FourParameter) SetParameters(a, alpha, beta, tau, dtEpsilon float64) error {
	if err := checkFourParameterFunction(a, alpha, beta, tau); err != nil {
		return err
	}
	cf.a, cf.alpha, cf.beta, cf.tau = a, alpha, beta, tau
	cf.SetDeltaTimeEpsilon(dtEpsilon)
	return nil
}

// CorrelationCoefficient evaluates the four-parameter decay for the given
// delta time. Delta times within epsilon of zero evaluate to exactly 1.
func (cf *FourParameter) CorrelationCoefficient(deltaTime float64) float64 {
	if deltaTime == 0.0 {
		return 1.0
	}
	adt := math.Abs(deltaTime)
	if adt < cf.dtEpsilon {
		return 1.0
	}
	corrCoeff := cf.a * (cf.alpha + (1.0-cf.alpha)*(1.0+cf.beta)/(cf.beta+math.Exp(adt/cf.tau)))
	return utils.Clamp(corrCoeff, -1.0, 1.0)
}

// Parameters returns A, alpha, beta, and T in order.
func (cf *FourParameter) Parameters() []Parameter {
	return []Parameter{
		{Name: "A", Value: cf.a},
		{Name: "alpha", Value: cf.alpha},
		{Name: "beta", Value: cf.beta},
		{Name: "T", Value: cf.tau},
	}
}

func checkFourParameterFunction(a, alpha, beta, tau float64) error {
	const function = "corrfunc.FourParameter.SetParameters"
	if a <= 0.0 || a > 1.0 {
		return smerr.New(smerr.Bounds, "correlation parameter A must be in the range (0, 1]", function)
	}
	if alpha < 0.0 || alpha >= 1.0 {
		return smerr.New(smerr.Bounds, "correlation parameter alpha must be in the range [0, 1)", function)
	}
	if beta < 0.0 || beta > 10.0 {
		return smerr.New(smerr.Bounds, "correlation parameter beta must be in the range [0, 10]", function)
	}
	if tau <= 0.0 {
		return smerr.New(smerr.Bounds, "correlation parameter T must be positive", function)
	}
	return nil
}
