// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import (
	"slices"

	"github.com/taibuivan/bluevelvet/pkg/pagination"
	"github.com/taibuivan/bluevelvet/pkg/slice"
)

// ShelfItem is a category card on the storefront.
type ShelfItem struct {
	Category    Category `json:"category"`
	ImageURL    string   `json:"imageUrl"`
	HasChildren bool     `json:"hasChildren"`
}

// Shelf is one page of the storefront browser.
type Shelf struct {
	Parent     *Category       `json:"parent,omitempty"`
	Breadcrumb []Category      `json:"breadcrumb"`
	Items      []ShelfItem     `json:"items"`
	Meta       pagination.Meta `json:"-"`
}

// visible reports whether position and all of its ancestors are enabled.
func (index *Index) visible(position int) bool {
	for ; position != noParent; position = index.parent[position] {
		if !index.records[position].Enabled {
			return false
		}
	}
	return true
}

/*
Storefront lists the enabled children of parent, or the enabled roots when
parent is empty, one page at a time.

A disabled category hides its whole subtree, so browsing into a hidden or
unknown parent returns NOT_FOUND. The breadcrumb runs from the root down to
parent itself.
*/
func (index *Index) Storefront(parent ID, page, pageSize int) (Shelf, error) {
	shelf := Shelf{Breadcrumb: []Category{}}

	positions := index.roots
	if !parent.Empty() {
		position, ok := index.position[parent]
		if !ok || !index.visible(position) {
			return Shelf{}, ErrNotFound
		}

		current := index.records[position]
		shelf.Parent = &current

		shelf.Breadcrumb = index.Ancestors(parent)
		slices.Reverse(shelf.Breadcrumb)
		shelf.Breadcrumb = append(shelf.Breadcrumb, current)

		positions = index.children[position]
	}

	enabled := slice.Filter(positions, func(position int) bool {
		return index.records[position].Enabled
	})

	items := slice.Map(enabled, func(position int) ShelfItem {
		record := index.records[position]
		return ShelfItem{
			Category: record,
			ImageURL: record.ImageURL(),
			HasChildren: slices.ContainsFunc(index.children[position], func(child int) bool {
				return index.records[child].Enabled
			}),
		}
	})

	window := pagination.Slice(items, page, pageSize)
	shelf.Items = window.Items
	shelf.Meta = window.Meta

	return shelf, nil
}
