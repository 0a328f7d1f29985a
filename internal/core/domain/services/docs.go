// Package services provides the domain services of the delivery-estimate engine.
//
// The package includes:
//   - DateAdjuster: business-day stepping, dispatch-day and blackout rules, cutoff classification
//   - BaseEstimator: turns a ShippingPolicy (and its region override) into a handling window and ship dates
//   - SlaResolver: picks the most specific transit rule for a destination and carrier
//   - EstimateComposer: base and advanced (handling plus transit) estimates
//   - WarehousePlanner: splits an order across warehouses through a WarehouseAllocator
//   - PreviewFormatter: customer-facing labels, cutoff countdown and JSON-LD structured data
//
// Every service is stateless and takes the current instant as an explicit
// argument, so the same inputs always produce the same estimate. Dates are
// time.Time values, never mutated in place.
package services
