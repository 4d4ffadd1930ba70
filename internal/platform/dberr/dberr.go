// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/taibuivan/bluevelvet/internal/platform/apperr"
)

// Codes attached to constraint violations so callers can branch on them
// without inspecting SQLSTATE values.
const (
	CodeUniqueViolation    = "DUPLICATE_NAME"
	CodeReferenceViolation = "REFERENCE_VIOLATION"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	// 2. Constraint violations keep their meaning for the client
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return apperr.Conflict("A record with the same unique value already exists").
				WithCode(CodeUniqueViolation).
				WithCause(err)
		case pgerrcode.ForeignKeyViolation:
			return apperr.Conflict("Operation would break a reference between records").
				WithCode(CodeReferenceViolation).
				WithCause(err)
		case pgerrcode.CheckViolation, pgerrcode.NotNullViolation:
			return apperr.ValidationError("Record failed a database constraint while trying to " + action)
		}
	}

	// 3. Unknown query errors become Internal Server Errors
	return apperr.Internal(err)
}
