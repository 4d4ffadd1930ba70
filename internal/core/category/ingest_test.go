// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bluevelvet/internal/core/category"
)

func parents(records []category.Category) map[category.ID]category.ID {
	out := make(map[category.ID]category.ID, len(records))
	for _, record := range records {
		out[record.ID] = record.Parent()
	}
	return out
}

/*
TestDecode verifies the accepted collection layouts.
*/
func TestDecode(t *testing.T) {
	t.Run("Array", func(t *testing.T) {
		records, shape, err := category.Decode([]byte(`[
			{"id": 1, "name": "Teclados", "parentId": null, "enabled": true},
			{"id": "2", "name": "Pianos", "parentId": 1, "enabled": false}
		]`))
		require.NoError(t, err)

		assert.Equal(t, category.ShapeArray, shape)
		assert.Equal(t, map[category.ID]category.ID{"1": "", "2": "1"}, parents(records))
		assert.False(t, records[1].Enabled)
	})

	t.Run("Envelope", func(t *testing.T) {
		records, shape, err := category.Decode([]byte(`{
			"content": [{"id": 1, "name": "Teclados"}],
			"totalElements": 1
		}`))
		require.NoError(t, err)

		assert.Equal(t, category.ShapeEnvelope, shape)
		assert.Len(t, records, 1)
	})

	t.Run("Unknown", func(t *testing.T) {
		for _, body := range []string{`{"items": []}`, `"hello"`, `42`, ``} {
			records, shape, err := category.Decode([]byte(body))
			require.NoError(t, err, body)

			assert.Equal(t, category.ShapeUnknown, shape, body)
			assert.Empty(t, records, body)
		}
	})

	t.Run("Malformed", func(t *testing.T) {
		_, _, err := category.Decode([]byte(`[{"id": 1`))
		assert.Error(t, err)

		_, _, err = category.Decode([]byte(`nope`))
		assert.Error(t, err)
	})
}

/*
TestDecode_Nested verifies that pre-nested children are flattened without
loss or duplication.
*/
func TestDecode_Nested(t *testing.T) {
	records, _, err := category.Decode([]byte(`[
		{"id": 1, "name": "A", "children": [
			{"id": 2, "name": "B", "children": [
				{"id": 3, "name": "C"}
			]},
			{"id": 4, "name": "D", "parentId": 3}
		]},
		{"id": 3, "name": "C"}
	]`))
	require.NoError(t, err)

	require.Len(t, records, 4)
	assert.Equal(t, map[category.ID]category.ID{"1": "", "2": "1", "3": "2", "4": "3"}, parents(records))
	for _, record := range records {
		assert.Nil(t, record.Children)
	}
}

/*
TestUnnest_MatchesFlatSource verifies that a nested source and its flat
equivalent produce the same hierarchy.
*/
func TestUnnest_MatchesFlatSource(t *testing.T) {
	tree := category.NewIndex(chain(), brazil).Tree()

	fromTree := category.NewIndex(category.Unnest(tree), brazil)
	fromFlat := category.NewIndex(chain(), brazil)

	assert.Equal(t, flat(fromFlat.Flatten()), flat(fromTree.Flatten()))
}

/*
TestFactory verifies the seed catalog restored by a reset.
*/
func TestFactory(t *testing.T) {
	records, err := category.Factory()
	require.NoError(t, err)

	require.Len(t, records, 25)

	seen := map[category.ID]bool{}
	for _, record := range records {
		assert.False(t, seen[record.ID], "duplicate id %s", record.ID)
		if !record.IsRoot() {
			assert.True(t, seen[record.Parent()], "%s precedes its parent", record.Name)
		}
		seen[record.ID] = true
	}

	index := category.NewIndex(records, brazil)
	assert.Len(t, index.Roots(), 6)
	assert.Empty(t, index.Detached())

	ukuleles, ok := index.Get("7")
	require.True(t, ok)
	assert.False(t, ukuleles.Enabled)
}
