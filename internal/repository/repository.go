// Package repository handles all interactions with the database.
//
// It contains raw SQL queries and methods to fetch and persist users,
// properties, and reservations, abstracting SQL away from the service
// layer. Every method is one parameterized statement against the shared
// pool: no transactions, no retries, no local recovery. Failures are
// returned to the caller carrying the underlying driver error; the global
// error handler classifies them once via the sqlerr package.
package repository
