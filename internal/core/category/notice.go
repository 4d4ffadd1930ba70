// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/taibuivan/bluevelvet/internal/platform/apperr"
	"github.com/taibuivan/bluevelvet/pkg/textnorm"
)

// Action names the user operation a [Notice] reports on.
type Action string

const (
	ActionLoad   Action = "load"
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionReset  Action = "reset"
	ActionExport Action = "export"
)

// Severity tells a success notice from a failure.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notice is a human-readable outcome of a user operation.
type Notice struct {
	Action      Action   `json:"action"`
	Severity    Severity `json:"severity"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
}

// Notifier receives the outcome of every operation.
type Notifier interface {
	Notify(context context.Context, notice Notice)
}

// LogNotifier writes notices to a structured logger.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a [Notifier] backed by logger.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify implements [Notifier].
func (notifier *LogNotifier) Notify(context context.Context, notice Notice) {
	level := slog.LevelInfo
	if notice.Severity == SeverityError {
		level = slog.LevelWarn
	}

	notifier.logger.LogAttrs(context, level, "category_notice",
		slog.String("action", string(notice.Action)),
		slog.String("severity", string(notice.Severity)),
		slog.String("title", notice.Title),
		slog.String("description", notice.Description),
	)
}

// # Duplicate Detection

// duplicateMarkers are folded fragments found in uniqueness failures from
// stores that do not return a structured code.
var duplicateMarkers = []string{"duplicate", "duplicat", "already exists", "unique constraint", "ja existe"}

/*
IsDuplicateName reports whether err is a name collision.

The DUPLICATE_NAME code is authoritative and any other domain code rules a
collision out. Otherwise the messages of the whole error chain are searched
for known uniqueness phrases, ignoring case and accents.
*/
func IsDuplicateName(err error) bool {
	if err == nil {
		return false
	}
	if appErr := apperr.As(err); appErr != nil {
		switch appErr.Code {
		case CodeDuplicateName:
			return true
		case "INTERNAL_ERROR":
		default:
			return false
		}
	}

	for current := err; current != nil; current = errors.Unwrap(current) {
		message := textnorm.Fold(current.Error())
		for _, marker := range duplicateMarkers {
			if strings.Contains(message, marker) {
				return true
			}
		}
	}
	return false
}

// nameCollision limits duplicate classification to the actions that write a name.
func nameCollision(action Action, err error) bool {
	return (action == ActionCreate || action == ActionUpdate) && IsDuplicateName(err)
}

// # Notice Catalogue

func successNotice(action Action, subject string) Notice {
	notice := Notice{Action: action, Severity: SeveritySuccess}

	switch action {
	case ActionCreate:
		notice.Title = "Category created"
		notice.Description = fmt.Sprintf("%q was created successfully.", subject)
	case ActionUpdate:
		notice.Title = "Category updated"
		notice.Description = fmt.Sprintf("%q was updated successfully.", subject)
	case ActionDelete:
		notice.Title = "Category deleted"
		notice.Description = fmt.Sprintf("%q was deleted.", subject)
	case ActionReset:
		notice.Title = "Categories restored"
		notice.Description = "The factory categories were restored."
	case ActionExport:
		notice.Title = "Export ready"
		notice.Description = fmt.Sprintf("Categories exported to %s.", subject)
	default:
		notice.Title = "Categories loaded"
	}

	return notice
}

func failureNotice(action Action, subject string, err error) Notice {
	notice := Notice{Action: action, Severity: SeverityError}

	if nameCollision(action, err) {
		notice.Title = "Duplicate name"
		notice.Description = fmt.Sprintf("A category named %q already exists. Choose a different name.", subject)
		return notice
	}

	if appErr := apperr.As(err); appErr != nil && appErr.HTTPStatus < http.StatusInternalServerError {
		notice.Description = appErr.Message

		switch appErr.Code {
		case CodeHasSubcategories:
			notice.Title = "Cannot delete category"
		case CodeCycleDetected, CodeParentNotFound:
			notice.Title = "Invalid parent category"
		case CodeEmptyExport:
			notice.Title = "Nothing to export"
		case "VALIDATION_ERROR":
			notice.Title = "Invalid category"
		default:
			notice.Title = "Request rejected"
		}
		return notice
	}

	notice.Description = "Please try again later."
	switch action {
	case ActionCreate, ActionUpdate:
		notice.Title = "Could not save category"
	case ActionDelete:
		notice.Title = "Could not delete category"
	case ActionReset:
		notice.Title = "Could not restore categories"
	case ActionExport:
		notice.Title = "Could not export categories"
	default:
		notice.Title = "Could not load categories"
	}
	return notice
}
