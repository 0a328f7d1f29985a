// Package estimate holds the computed results of the estimate engine: the
// Estimate itself, its customer-facing Preview and the schema.org structured
// data derived from it. Values are immutable once built.
package estimate
