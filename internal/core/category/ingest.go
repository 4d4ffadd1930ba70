// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Shape describes how an inbound collection was laid out.
type Shape string

const (
	ShapeArray    Shape = "array"
	ShapeEnvelope Shape = "envelope"
	ShapeUnknown  Shape = "unknown"
)

// envelope is the paginated wrapper some sources put around the collection.
type envelope struct {
	Content *[]Category `json:"content"`
}

/*
Decode reads a category collection from JSON.

Accepted layouts:
  - a bare array: [{...}, {...}]
  - a pagination envelope: {"content": [{...}]}

Either may carry pre-nested children, which are flattened by [Unnest]. Any
other valid JSON document yields an empty collection with [ShapeUnknown] so
the caller can report it.
*/
func Decode(data []byte) ([]Category, Shape, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return []Category{}, ShapeUnknown, nil
	}

	switch data[0] {
	case '[':
		var records []Category
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, ShapeUnknown, fmt.Errorf("category: decode array: %w", err)
		}
		return Unnest(records), ShapeArray, nil

	case '{':
		var wrapper envelope
		if err := json.Unmarshal(data, &wrapper); err != nil {
			return nil, ShapeUnknown, fmt.Errorf("category: decode envelope: %w", err)
		}
		if wrapper.Content == nil {
			return []Category{}, ShapeUnknown, nil
		}
		return Unnest(*wrapper.Content), ShapeEnvelope, nil
	}

	if !json.Valid(data) {
		return nil, ShapeUnknown, fmt.Errorf("category: decode: invalid JSON document")
	}
	return []Category{}, ShapeUnknown, nil
}

/*
Unnest turns a possibly pre-nested collection into flat records.

A nested child without its own parentId inherits the id of the node that
contains it; an explicit parentId is kept as the authority. Children are
cleared on output and repeated ids keep their first occurrence, so every
node appears exactly once.
*/
func Unnest(records []Category) []Category {
	type pending struct {
		record Category
		parent ID
	}

	flat := make([]Category, 0, len(records))
	seen := make(map[ID]struct{}, len(records))

	stack := make([]pending, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		stack = append(stack, pending{record: records[i]})
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		record := top.record
		children := record.Children
		record.Children = nil

		if record.IsRoot() && !top.parent.Empty() {
			parent := top.parent
			record.ParentID = &parent
		}

		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, pending{record: children[i], parent: record.ID})
		}

		if _, duplicate := seen[record.ID]; duplicate {
			continue
		}
		seen[record.ID] = struct{}{}
		flat = append(flat, record)
	}

	return flat
}
