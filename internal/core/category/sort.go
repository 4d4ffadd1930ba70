// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import (
	"slices"
	"strings"

	"github.com/taibuivan/bluevelvet/internal/platform/apperr"
)

// SortField names the column a listing is ordered by.
type SortField string

const (
	SortByName SortField = "name"
	SortByID   SortField = "id"
)

// SortDirection is one of the three states of a column toggle.
type SortDirection string

const (
	// DirectionDefault keeps the hierarchical order.
	DirectionDefault SortDirection = "default"
	DirectionAsc     SortDirection = "asc"
	DirectionDesc    SortDirection = "desc"
)

// SortState is the active column and direction of a listing.
type SortState struct {
	Field     SortField     `json:"field,omitempty"`
	Direction SortDirection `json:"direction"`
}

// Active reports whether the state forces a flat order.
func (state SortState) Active() bool {
	return state.Field != "" && (state.Direction == DirectionAsc || state.Direction == DirectionDesc)
}

/*
Toggle returns the state after a click on field's column header.

The same column cycles default → asc → desc → default. A different column
starts over at asc and forgets the previous column.
*/
func (state SortState) Toggle(field SortField) SortState {
	if state.Field != field || !state.Active() {
		return SortState{Field: field, Direction: DirectionAsc}
	}

	if state.Direction == DirectionAsc {
		return SortState{Field: field, Direction: DirectionDesc}
	}

	return SortState{Direction: DirectionDefault}
}

// ParseSort reads a sort state from its query representation. Empty values
// select the default order.
func ParseSort(field, direction string) (SortState, error) {
	field = strings.ToLower(strings.TrimSpace(field))
	direction = strings.ToLower(strings.TrimSpace(direction))

	if direction == "" || direction == string(DirectionDefault) {
		if field != "" && field != string(SortByName) && field != string(SortByID) {
			return SortState{}, apperr.ValidationError("Unknown sort field",
				apperr.FieldError{Field: "sort", Message: "must be one of: name, id"})
		}
		return SortState{Direction: DirectionDefault}, nil
	}

	state := SortState{Field: SortField(field), Direction: SortDirection(direction)}

	if state.Field != SortByName && state.Field != SortByID {
		return SortState{}, apperr.ValidationError("Unknown sort field",
			apperr.FieldError{Field: "sort", Message: "must be one of: name, id"})
	}
	if state.Direction != DirectionAsc && state.Direction != DirectionDesc {
		return SortState{}, apperr.ValidationError("Unknown sort direction",
			apperr.FieldError{Field: "dir", Message: "must be one of: asc, desc, default"})
	}

	return state, nil
}

/*
SortRows orders rows globally by the state's field and direction.

Sorting discards the hierarchy, so every returned row has Level 0. An
inactive state returns rows untouched. The input slice is never modified.
*/
func SortRows(rows []Row, state SortState, collation Collation) []Row {
	if !state.Active() {
		return rows
	}

	sorted := make([]Row, len(rows))
	for i, row := range rows {
		row.Level = 0
		sorted[i] = row
	}

	var compare func(a, b Category) int
	switch state.Field {
	case SortByID:
		compare = func(a, b Category) int { return compareIDs(a.ID, b.ID) }
	default:
		compare = collation.byName()
	}

	slices.SortStableFunc(sorted, func(a, b Row) int {
		order := compare(a.Category, b.Category)
		if state.Direction == DirectionDesc {
			return -order
		}
		return order
	})

	return sorted
}
