// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import (
	"hash/fnv"
	"strconv"

	"github.com/taibuivan/bluevelvet/pkg/pagination"
	"github.com/taibuivan/bluevelvet/pkg/textnorm"
)

// DisplayMode tells which ordered sequence a listing shows.
type DisplayMode string

const (
	ModeHierarchy DisplayMode = "hierarchy"
	ModeFiltered  DisplayMode = "filtered"
	ModeSorted    DisplayMode = "sorted"
)

// ViewState is the search term, sort and page of a management listing.
type ViewState struct {
	Term string
	Sort SortState
	Page int
}

// Key identifies the ordered sequence selected by the term and sort.
// Two states with the same key page through the same rows.
func (state ViewState) Key() string {
	hash := fnv.New64a()
	_, _ = hash.Write([]byte(textnorm.Fold(state.Term)))
	_, _ = hash.Write([]byte{0})
	if state.Sort.Active() {
		_, _ = hash.Write([]byte(string(state.Sort.Field) + ":" + string(state.Sort.Direction)))
	}
	return strconv.FormatUint(hash.Sum64(), 36)
}

// Resume keeps the requested page only when key, taken from a previous
// response, names the same sequence. A new search or sort starts on page 1.
func (state ViewState) Resume(key string) ViewState {
	if state.Page < 1 || (key != "" && key != state.Key()) {
		state.Page = 1
	}
	return state
}

// View is one rendered page of the management listing.
type View struct {
	Rows          []Row           `json:"rows"`
	Meta          pagination.Meta `json:"-"`
	Key           string          `json:"key"`
	Mode          DisplayMode     `json:"mode"`
	Sort          SortState       `json:"sort"`
	DirectMatches []ID            `json:"directMatches"`
	Stats         Stats           `json:"stats"`
}

/*
Render produces one page of the listing for state.

The rows come from the full hierarchy, or from the search context when the
term is not blank, and are ordered flat when a sort is active. The page is
clamped to the available range.
*/
func (index *Index) Render(state ViewState, collation Collation, pageSize int) View {
	search := index.Search(state.Term)
	rows := index.Filter(search)

	mode := ModeHierarchy
	if search.Active() {
		mode = ModeFiltered
	}
	if state.Sort.Active() {
		rows = SortRows(rows, state.Sort, collation)
		mode = ModeSorted
	}

	page := pagination.Slice(rows, state.Page, pageSize)

	sortState := state.Sort
	if !sortState.Active() {
		sortState = SortState{Direction: DirectionDefault}
	}

	return View{
		Rows:          page.Items,
		Meta:          page.Meta,
		Key:           state.Key(),
		Mode:          mode,
		Sort:          sortState,
		DirectMatches: search.Direct.Sorted(),
		Stats:         index.Stats(),
	}
}
