// Package kernel contains shared domain primitives used across aggregates:
// identifier and monetary value objects. These types are immutable, validate
// themselves, and carry no behavior specific to any single aggregate.
package kernel
