// Package store defines the persistence interfaces for the application's
// entities together with the sentinel errors shared by all implementations.
//
// One interface exists per entity kind rather than a generic repository
// hierarchy; implementations live in internal/platform/postgres and run
// against either a connection pool or a transaction via the DBTX interface.
package store
