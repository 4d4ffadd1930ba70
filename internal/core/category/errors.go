// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import (
	"fmt"

	"github.com/taibuivan/bluevelvet/internal/platform/apperr"
	"github.com/taibuivan/bluevelvet/internal/platform/dberr"
)

// # Error Codes

const (
	CodeHasSubcategories = "HAS_SUBCATEGORIES"
	CodeCycleDetected    = "CYCLE_DETECTED"
	CodeParentNotFound   = "PARENT_NOT_FOUND"
	CodeDuplicateName    = dberr.CodeUniqueViolation
	CodeEmptyExport      = "EMPTY_EXPORT"
)

// ErrNotFound is returned when an id is not part of the current snapshot.
var ErrNotFound = apperr.NotFound("Category")

func errHasSubcategories(name string) *apperr.AppError {
	return apperr.Conflict(fmt.Sprintf("Category %q has subcategories and cannot be deleted", name)).
		WithCode(CodeHasSubcategories)
}

func errCycle(message string) *apperr.AppError {
	return apperr.Unprocessable(message).WithCode(CodeCycleDetected)
}

func errParentNotFound(parent ID) *apperr.AppError {
	return apperr.Unprocessable(fmt.Sprintf("Parent category %s does not exist", parent)).
		WithCode(CodeParentNotFound)
}

func errDuplicateName(name string, cause error) *apperr.AppError {
	return apperr.Conflict(fmt.Sprintf("A category named %q already exists", name)).
		WithCode(CodeDuplicateName).
		WithCause(cause)
}

var errEmptyExport = apperr.Unprocessable("There are no categories to export").WithCode(CodeEmptyExport)
