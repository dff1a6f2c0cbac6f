// Package database manages the PostgreSQL connection pool used for
// snapshot storage. The pool is opened once at process start, pinged to
// verify reachability, and closed at shutdown.
package database
