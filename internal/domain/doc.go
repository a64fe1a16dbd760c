// Package domain contains the core entities of the recipe catalog and
// their invariants. Domain types are independent of transport, storage,
// and framework concerns.
package domain
