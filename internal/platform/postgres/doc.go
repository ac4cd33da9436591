// Package postgres provides PostgreSQL-specific implementations for the data
// storage interfaces defined in the internal/store package. It handles query
// execution, error translation to store sentinels, and data mapping between
// domain entities and database records.
package postgres
