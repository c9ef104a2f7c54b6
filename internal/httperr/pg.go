package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error codes the booking write path has to tell apart.
const (
	pgExclusionViolation = "23P01"
	pgUniqueViolation    = "23505"
	pgInsufficientPriv   = "42501"
)

// IsExclusionConflict reports whether err is the reservations table
// rejecting an overlapping insert. The exclusion constraint is the
// authoritative conflict signal; the application-level pre-check is only a
// fast path.
func IsExclusionConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgExclusionViolation || pgErr.Code == pgUniqueViolation
	}
	return false
}

func IsPermissionDenied(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgInsufficientPriv
	}
	return false
}
