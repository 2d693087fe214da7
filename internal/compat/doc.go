// Package compat answers codec, container, and parameter compatibility
// questions for the rest of the system.
//
// The Oracle interface is the contract the core consumes; Registry is the
// built-in implementation backed by static capability tables. All queries are
// pure: nothing here shells out to an encoder or touches the filesystem.
// Validation policy follows the tool's long-standing behavior: sample rates
// and bitrates a codec cannot take are silently coerced to the nearest legal
// value, and only codec/container mismatches are reported as errors.
package compat
