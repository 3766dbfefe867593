// SPDX-License-Identifier: MIT

// Package sample provides reproducible feature-sampling providers: sources
// that supply an ordered feature matrix and a positionally aligned target
// vector as an immutable dataset.
//
// The sample package provides:
//
//   - Provider, the minimal sampling contract consumed by the estimator
//     layer: Sample(n) returns n aligned (features, target) observations.
//   - Synthetic, a seeded in-memory provider. Determinism is a hard
//     guarantee: two providers with equal configuration and equal seeds
//     return row-for-row identical datasets, and repeated Sample calls on
//     one provider are idempotent (a fresh generator is derived from the
//     seed on every call).
//
// The synthetic target is a smooth nonlinear function of the feature bands
// plus optional Gaussian noise, which gives kernel regressions real
// structure to recover in tests and examples.
package sample
