// Package services contains stateless domain services that operate across
// aggregates. The analytics calculator derives the dashboard figures from
// snapshots of the order, catalog and customer collections.
package services
