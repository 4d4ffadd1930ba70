// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import (
	"github.com/taibuivan/bluevelvet/pkg/slice"
)

// subtree returns id together with all of its descendants.
func (index *Index) subtree(id ID) Set {
	set := Set{}
	if id.Empty() {
		return set
	}

	set[id] = struct{}{}
	for _, descendant := range index.Descendants(id) {
		set[descendant] = struct{}{}
	}
	return set
}

/*
ParentCandidates lists the categories that may become the parent of editing,
in hierarchical order.

The edited category and every one of its descendants are left out, since
choosing any of them would close a cycle. An empty editing id (a category
being created) keeps every category eligible.
*/
func (index *Index) ParentCandidates(editing ID) []Row {
	excluded := index.subtree(editing)

	return slice.Filter(index.Flatten(), func(row Row) bool {
		return !excluded.Has(row.Category.ID)
	})
}

/*
CheckParent validates that child may reference parent.

Returns:
  - nil when parent is empty or eligible
  - CYCLE_DETECTED when parent is child itself or one of its descendants
  - PARENT_NOT_FOUND when parent is not part of the snapshot
*/
func (index *Index) CheckParent(child ID, parent *ID) error {
	if parent == nil || parent.Empty() {
		return nil
	}

	target := Category{ParentID: parent}.Parent()

	if !child.Empty() && target == child {
		return errCycle("A category cannot be its own parent")
	}

	if !index.Has(target) {
		return errParentNotFound(target)
	}

	if !child.Empty() && index.subtree(child).Has(target) {
		return errCycle("A category cannot be moved under one of its own subcategories")
	}

	return nil
}

// CheckDelete rejects deleting an unknown category or one that still has
// direct children.
func (index *Index) CheckDelete(id ID) error {
	record, ok := index.Get(id)
	if !ok {
		return ErrNotFound
	}

	if index.HasChildren(id) {
		return errHasSubcategories(record.Name)
	}

	return nil
}
