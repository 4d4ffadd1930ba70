// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package category implements the product-category hierarchy of the BlueVelvet
catalog.

Categories form a forest: each record may name a parent through ParentID and
the tree is derived from those references on every snapshot. The package
turns a flat snapshot into an [Index] and derives from it everything the
management and storefront screens need.

# Derived Views

  - Hierarchy: depth-first rows with their nesting level.
  - Search: direct matches plus their ancestors and descendants.
  - Sort: flat ordering by name or by id.
  - Parent candidates: every category except the edited one and its subtree.
  - Export: indented CSV of the whole hierarchy.

Reads are served from an immutable snapshot. Every mutation goes through the
[Service], which re-fetches the collection and swaps the snapshot only when
the re-fetch succeeds.
*/
package category

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// PlaceholderImage is served for categories without an uploaded image.
const PlaceholderImage = "/images/category-placeholder.png"

// MaxNameLength bounds the display name of a category.
const MaxNameLength = 120

// # Identifiers

// ID identifies a category.
//
// It is string-backed so that numeric database keys and string keys from
// other sources share one comparable type. JSON numbers and strings both
// decode into it.
type ID string

// String implements [fmt.Stringer].
func (id ID) String() string { return string(id) }

// Empty reports whether the id is unset.
func (id ID) Empty() bool { return strings.TrimSpace(string(id)) == "" }

// Int64 returns the numeric form of the id, if it has one.
func (id ID) Int64() (int64, bool) {
	value, err := strconv.ParseInt(string(id), 10, 64)
	return value, err == nil
}

// UnmarshalJSON accepts a JSON number, a JSON string, or null.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		*id = ID(strings.TrimSpace(text))
		return nil
	}

	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return err
	}
	*id = ID(number.String())
	return nil
}

// IDFromInt64 formats a database key as an [ID].
func IDFromInt64(value int64) ID {
	return ID(strconv.FormatInt(value, 10))
}

// compareIDs orders ids numerically when both are numeric, lexically otherwise.
func compareIDs(a, b ID) int {
	left, leftOK := a.Int64()
	right, rightOK := b.Int64()

	switch {
	case leftOK && rightOK:
		switch {
		case left < right:
			return -1
		case left > right:
			return 1
		}
		return 0
	case leftOK:
		return -1
	case rightOK:
		return 1
	}

	return strings.Compare(string(a), string(b))
}

// # Domain Entities

// Category represents a node of the catalog hierarchy.
type Category struct {
	ID           ID         `json:"id"`
	Name         string     `json:"name"`
	Image        *string    `json:"image"`
	ParentID     *ID        `json:"parentId"`
	ParentName   string     `json:"parentName,omitempty"`
	Enabled      bool       `json:"enabled"`
	CreationTime *time.Time `json:"creationTime,omitempty"`

	// Children is derived from ParentID references and never authoritative.
	Children []Category `json:"children,omitempty"`
}

// Parent returns the referenced parent id, or an empty id for roots.
func (category Category) Parent() ID {
	if category.ParentID == nil {
		return ""
	}
	return ID(strings.TrimSpace(string(*category.ParentID)))
}

// IsRoot reports whether the category references no parent.
func (category Category) IsRoot() bool {
	return category.Parent().Empty()
}

// ImageURL returns the image location, falling back to [PlaceholderImage].
func (category Category) ImageURL() string {
	if category.Image == nil || strings.TrimSpace(*category.Image) == "" {
		return PlaceholderImage
	}
	return *category.Image
}

// # Inputs

// Input is the payload accepted when creating or updating a category.
type Input struct {
	Name     string `json:"name"`
	ParentID *ID    `json:"parentId"`
	Enabled  *bool  `json:"enabled"`
}

// Draft is the validated record handed to a [Repository].
type Draft struct {
	Name     string
	ParentID *ID
	Enabled  bool
	Image    *string
}

// Stats summarizes a snapshot for the management header.
type Stats struct {
	Total   int `json:"total"`
	Enabled int `json:"enabled"`
}
