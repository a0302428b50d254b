// Package config provides configuration for the incremental computation
// engine: the three engine flags, operational limits guarding pathological
// programs, and logging knobs.
//
// # Overview
//
// Config is a small, centralized, strongly-typed record. Typical
// deployments expose it through environment variables (FromEnv) or a JSON
// configuration record validated against an embedded schema (FromJSON).
//
// # Flags
//
//   - IgnoreNominalUseStructural: treat all Nominal identities as
//     Structural(hash(value)).
//   - CheckWellFormed: after each top-level engine operation, run the
//     well-formedness check.
//   - WriteDCG: on every structural change to the node store, emit a
//     graph dump to the configured diagnostic sink.
//
// # Basic Usage
//
//	cfg := config.Default()
//	e := dcg.New(dcg.WithConfig(cfg))
//
//	cfg, err := config.FromEnv()
//	cfg, err := config.FromJSON(r)
package config
