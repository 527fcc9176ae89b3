// Package kernel contains shared value objects used across all domain models.
//
// The kernel provides:
//   - UUID: validated unique identifiers for entities and aggregates
//   - GeoPoint: validated geographic coordinates with distance calculation
//
// All kernel types are immutable value objects created through constructor
// functions. Zero values are invalid and fail Validate().
package kernel
