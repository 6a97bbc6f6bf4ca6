package repository

import "strings"

// IsUniqueViolation re-classifies driver-level unique-constraint errors
// so services can surface conflicts instead of raw database errors.
// Covers Postgres (SQLSTATE 23505) and SQLite.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "23505") ||
		strings.Contains(msg, "duplicate key value violates unique constraint") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
