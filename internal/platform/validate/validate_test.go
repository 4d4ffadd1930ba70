// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bluevelvet/internal/platform/apperr"
	"github.com/taibuivan/bluevelvet/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		hasError bool
	}{
		{"valid_string", "Rock Nacional", false},
		{"empty_string", "", true},
		{"whitespace_only", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required("name", tt.value)

			if !tt.hasError {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
				return
			}

			assert.True(t, v.HasErrors())
			ae := apperr.As(v.Err())
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
			assert.Equal(t, "name", ae.Details[0].Field)
		})
	}
}

/*
TestValidator_MaxLen counts runes rather than bytes.
*/
func TestValidator_MaxLen(t *testing.T) {
	v := &validate.Validator{}
	assert.NoError(t, v.MaxLen("name", "Música", 6).Err())

	v = &validate.Validator{}
	assert.Error(t, v.MaxLen("name", "Músicas", 6).Err())
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("name", "").
		MaxLen("name", "abcdef", 3).
		Custom("image", true, "must be an image").
		Custom("image", false, "never reported").
		Err()

	ae := apperr.As(err)
	require.NotNil(t, ae)
	require.Len(t, ae.Details, 3)
	assert.Equal(t, "image", ae.Details[2].Field)
	assert.Equal(t, "must be an image", ae.Details[2].Message)
}

/*
TestRequiredError builds a single-field validation failure.
*/
func TestRequiredError(t *testing.T) {
	ae := validate.RequiredError("parentId", "unknown parent")

	assert.Equal(t, 400, ae.HTTPStatus)
	require.Len(t, ae.Details, 1)
	assert.Equal(t, "parentId", ae.Details[0].Field)
}
