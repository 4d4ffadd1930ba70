// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dberr_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taibuivan/bluevelvet/internal/platform/apperr"
	"github.com/taibuivan/bluevelvet/internal/platform/dberr"
)

/*
TestWrap verifies the mapping from driver errors to application errors.
*/
func TestWrap(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantCode   string
		wantStatus int
	}{
		{"NoRows", pgx.ErrNoRows, "NOT_FOUND", http.StatusNotFound},
		{"Unique", &pgconn.PgError{Code: pgerrcode.UniqueViolation}, dberr.CodeUniqueViolation, http.StatusConflict},
		{"ForeignKey", &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}, dberr.CodeReferenceViolation, http.StatusConflict},
		{"Check", &pgconn.PgError{Code: pgerrcode.CheckViolation}, "VALIDATION_ERROR", http.StatusBadRequest},
		{"Unknown", errors.New("connection reset"), "INTERNAL_ERROR", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appErr := apperr.As(dberr.Wrap(tt.err, "save category"))
			require.NotNil(t, appErr)
			assert.Equal(t, tt.wantCode, appErr.Code)
			assert.Equal(t, tt.wantStatus, appErr.HTTPStatus)
		})
	}

	assert.NoError(t, dberr.Wrap(nil, "noop"))
}
