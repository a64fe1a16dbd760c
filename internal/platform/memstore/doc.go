// Package memstore provides in-memory, load-once implementations of the
// store interfaces. Stores are populated at construction and never
// mutated afterwards, which makes them safe for unsynchronized concurrent
// reads from request handlers.
package memstore
