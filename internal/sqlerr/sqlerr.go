// Package sqlerr classifies database driver errors.
//
// The repository layer surfaces driver errors unchanged; this package is
// the single place where a raw Postgres error (SQLSTATE code, constraint
// metadata) is mapped into an errs.HTTPError the API can return, e.g. a
// unique violation on users.email becomes a 400 "USER_ALREADY_EXISTS".
package sqlerr
