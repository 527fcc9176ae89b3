// Package services contains stateless domain services that do not belong to a
// single aggregate.
package services
