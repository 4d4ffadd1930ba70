// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package respond_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taibuivan/bluevelvet/internal/platform/apperr"
	"github.com/taibuivan/bluevelvet/internal/platform/respond"
	"github.com/taibuivan/bluevelvet/pkg/pagination"
)

/*
TestError verifies the error envelope for application and unknown errors.
*/
func TestError(t *testing.T) {
	t.Run("AppError", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/", nil)

		respond.Error(recorder, request, apperr.Conflict("taken").WithCode("DUPLICATE_NAME"))

		assert.Equal(t, http.StatusConflict, recorder.Code)

		var body respond.ErrorEnvelope
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "DUPLICATE_NAME", body.Code)
		assert.Equal(t, "taken", body.Error)
	})

	t.Run("UnknownError", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request := httptest.NewRequest(http.MethodGet, "/", nil)

		respond.Error(recorder, request, errors.New("boom"))

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.NotContains(t, recorder.Body.String(), "boom")
	})
}

/*
TestPaginated verifies the metadata block of list responses.
*/
func TestPaginated(t *testing.T) {
	recorder := httptest.NewRecorder()

	respond.Paginated(recorder, []string{"a"}, pagination.NewMeta(1, 10, 1))

	var body struct {
		Data []string        `json:"data"`
		Meta pagination.Meta `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, []string{"a"}, body.Data)
	assert.Equal(t, 1, body.Meta.TotalPages)
}

/*
TestAttachment verifies file download headers.
*/
func TestAttachment(t *testing.T) {
	recorder := httptest.NewRecorder()

	respond.Attachment(recorder, "categories.csv", "text/csv; charset=utf-8", []byte("id,name"))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, `attachment; filename="categories.csv"`, recorder.Header().Get("Content-Disposition"))
	assert.Equal(t, "7", recorder.Header().Get("Content-Length"))
	assert.Equal(t, "id,name", recorder.Body.String())
}
