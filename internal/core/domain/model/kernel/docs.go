// Package kernel contains shared value objects used across the domain model:
// opaque identifiers for users, orders and ratings, and geographic points for
// delivery and field locations.
package kernel
