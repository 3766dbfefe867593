// SPDX-License-Identifier: MIT

// Package krr ties kernel evaluation and ridge solving together into a
// fit/predict estimator for kernelized ridge regression.
//
// Workflow:
//
//	rbf, _ := kernel.NewRBF(0.5)
//	model, _ := krr.New(rbf, 0.1)
//	err := model.Fit(ds)             // Gram → (K+λI)α = y → cache α
//	yHat, _ := model.Predict(point)  // k*·α for a new point
//	rmse, _ := model.RMSE()          // training-set diagnostic
//
// A Model retains a private copy of the training features, the Gram matrix
// and the dual coefficients after Fit; predictions route every new point
// through kernel evaluations against the retained rows (the kernel trick —
// no explicit weight vector ever exists). Refitting replaces all cached
// state; a failed Fit leaves the model unfitted.
package krr
