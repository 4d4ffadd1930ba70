// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import "slices"

// Detail is the full view of one category.
type Detail struct {
	Category Category   `json:"category"`
	ImageURL string     `json:"imageUrl"`
	Level    int        `json:"level"`
	Path     []Category `json:"path"`
	Children []Category `json:"children"`
}

// Detail returns id with its root-first path and its direct children.
func (index *Index) Detail(id ID) (Detail, error) {
	record, ok := index.Get(id)
	if !ok {
		return Detail{}, ErrNotFound
	}

	path := index.Ancestors(id)
	slices.Reverse(path)

	return Detail{
		Category: record,
		ImageURL: record.ImageURL(),
		Level:    len(path),
		Path:     path,
		Children: index.Children(id),
	}, nil
}
