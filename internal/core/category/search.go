// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import (
	"slices"
	"strings"

	"github.com/taibuivan/bluevelvet/pkg/textnorm"
)

// Set is an unordered collection of category ids.
type Set map[ID]struct{}

// Has reports whether id belongs to the set.
func (set Set) Has(id ID) bool {
	_, ok := set[id]
	return ok
}

// Sorted returns the members ordered by id.
func (set Set) Sorted() []ID {
	ids := make([]ID, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, compareIDs)
	return ids
}

// Search is the outcome of matching a term against category names.
type Search struct {
	Term string

	// Direct holds the categories whose name contains the term.
	Direct Set

	// Context holds the direct matches plus all of their ancestors and
	// descendants.
	Context Set
}

// Active reports whether the term filters anything.
func (search Search) Active() bool {
	return !textnorm.Blank(search.Term)
}

/*
Search matches term against every category name, ignoring case and accents,
and expands the matches with their ancestors and descendants so that each
match keeps its place in the hierarchy.

A blank term yields an inactive [Search] with empty sets.
*/
func (index *Index) Search(term string) Search {
	search := Search{Term: term, Direct: Set{}, Context: Set{}}
	if !search.Active() {
		return search
	}

	needle := textnorm.Fold(term)
	expanded := make([]bool, len(index.records))

	for position, record := range index.records {
		if !strings.Contains(textnorm.Fold(record.Name), needle) {
			continue
		}

		search.Direct[record.ID] = struct{}{}
		search.Context[record.ID] = struct{}{}

		for parent := index.parent[position]; parent != noParent; parent = index.parent[parent] {
			search.Context[index.records[parent].ID] = struct{}{}
		}

		if expanded[position] {
			continue
		}
		expanded[position] = true

		for _, visit := range index.walk(index.children[position], 1) {
			expanded[visit.position] = true
			search.Context[index.records[visit.position].ID] = struct{}{}
		}
	}

	return search
}

// Filter returns the hierarchy restricted to the search context, keeping
// each row's level and flagging the direct matches. An inactive search
// returns the full hierarchy.
func (index *Index) Filter(search Search) []Row {
	rows := index.Flatten()
	if !search.Active() {
		return rows
	}

	filtered := make([]Row, 0, len(search.Context))
	for _, row := range rows {
		if !search.Context.Has(row.Category.ID) {
			continue
		}
		row.Match = search.Direct.Has(row.Category.ID)
		filtered = append(filtered, row)
	}
	return filtered
}
