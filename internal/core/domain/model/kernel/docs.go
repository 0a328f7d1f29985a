// Package kernel provides the shared value objects of the estimate domain.
//
// The package includes:
//   - UUID: identifier of stored policies
//   - Coordinates: a validated latitude/longitude pair used to locate warehouses and destinations
//   - CalendarDate: a timezone-free day used for blackout calendars
//   - NormalizeRegion: the canonical spelling of region codes
//
// All types are immutable values; the zero value of each is invalid and fails Validate.
package kernel
