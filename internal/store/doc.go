// Package store defines interfaces for data access operations.
// These interfaces abstract the underlying data source from the
// application's core logic, allowing business rules to remain
// independent of how the catalog and user records are held.
package store
