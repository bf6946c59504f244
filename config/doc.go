// SPDX-License-Identifier: MIT

// Package config loads run settings for the lvmaze and lvgraph programs
// from YAML.
//
// Load starts from Default(), strictly unmarshals the document on top of
// it (unknown keys are rejected) and validates the result. Missing keys
// keep their defaults. Write dumps a Config back as YAML, which is how a
// commented starting file is produced.
//
// Defaults: octile heuristic, entropy seed, obstacle in/out 0.5, 25% cap,
// 5 consecutive failures, 10 BFS executions, file-code symbols, info logs.
//
// Errors: every failure wraps ErrInvalid.
package config
