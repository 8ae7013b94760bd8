// Package covariance assembles cross-correlation and cross-covariance
// matrices for the adjustable parameters of a sensor model from a correlation
// model, for use in error propagation and bundle adjustment.
//
// The correlation model itself only defines within-group correlation; the
// zero correlation between parameters of different groups, and for
// unassigned parameters, is applied here.
package covariance

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/geomodel/sensorcorr/corrmodel"
	"github.com/geomodel/sensorcorr/utils"
)

// CrossCorrelation builds the n x n correlation matrix for a sensor model's
// parameters, where parameter i was observed at obsTimes[i]. Entry (i, j) is
// the model's coefficient at the observation time separation when i and j
// share a group, and 0 otherwise. The diagonal is identically 1.
func CrossCorrelation(model corrmodel.CorrelationModel, obsTimes []float64) (*mat.SymDense, error) {
	n := model.NumSensorModelParameters()
	if len(obsTimes) != n {
		return nil, errors.Errorf("expected %d observation times but got %d", n, len(obsTimes))
	}

	groups := make([]corrmodel.GroupIndex, n)
	for i := 0; i < n; i++ {
		g, err := model.CorrelationParameterGroup(i)
		if err != nil {
			return nil, err
		}
		groups[i] = g
	}

	corr := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		corr.SetSym(i, i, 1.0)
		for j := i + 1; j < n; j++ {
			if !groups[i].Assigned() || groups[i] != groups[j] {
				continue
			}
			rho, err := model.CorrelationCoefficient(int(groups[i]), obsTimes[i]-obsTimes[j])
			if err != nil {
				return nil, err
			}
			corr.SetSym(i, j, rho)
		}
	}
	return corr, nil
}

// CrossCovariance builds the n x n covariance matrix for a sensor model's
// parameters from their standard deviations and observation times. Entry
// (i, j) is sigmas[i]*sigmas[j] scaled by the cross-correlation of i and j;
// the diagonal holds the parameter variances.
func CrossCovariance(model corrmodel.CorrelationModel, sigmas, obsTimes []float64) (*mat.SymDense, error) {
	n := model.NumSensorModelParameters()
	if len(sigmas) != n {
		return nil, errors.Errorf("expected %d standard deviations but got %d", n, len(sigmas))
	}
	for i, sigma := range sigmas {
		if sigma < 0 {
			return nil, errors.Errorf("standard deviation at index %d is negative", i)
		}
	}

	corr, err := CrossCorrelation(model, obsTimes)
	if err != nil {
		return nil, err
	}

	cov := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		cov.SetSym(i, i, utils.Square(sigmas[i]))
		for j := i + 1; j < n; j++ {
			cov.SetSym(i, j, sigmas[i]*sigmas[j]*corr.At(i, j))
		}
	}
	return cov, nil
}
