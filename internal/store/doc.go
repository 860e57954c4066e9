// Package store defines the persistence interfaces consumed by the
// service and API layers, together with the sentinel errors all
// implementations must return. Concrete implementations live in
// internal/platform/postgres.
package store
