// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/bluevelvet/internal/core/category"
)

/*
TestSearch_ExpandsContext verifies that a match brings its ancestors and
descendants into the context set.
*/
func TestSearch_ExpandsContext(t *testing.T) {
	index := category.NewIndex(chain(), brazil)

	search := index.Search("B")

	assert.Equal(t, []category.ID{"B"}, search.Direct.Sorted())
	assert.Equal(t, []category.ID{"A", "B", "C"}, search.Context.Sorted())
}

/*
TestSearch_IgnoresCaseAndAccents verifies the normalized substring match.
*/
func TestSearch_IgnoresCaseAndAccents(t *testing.T) {
	index := factoryIndex(t)

	cases := map[string][]category.ID{
		"percussao":   {"11"},
		"PERCUSSÃO":   {"11"},
		"eletronicas": {"13"},
		"  áudio ":    {"18", "20"},
		"guitarras":   {"2", "3", "4"},
	}

	for term, expected := range cases {
		assert.Equal(t, expected, index.Search(term).Direct.Sorted(), term)
	}
}

/*
TestSearch_BlankTerm verifies that a blank term disables filtering.
*/
func TestSearch_BlankTerm(t *testing.T) {
	index := factoryIndex(t)

	search := index.Search("   ")

	assert.False(t, search.Active())
	assert.Empty(t, search.Direct)
	assert.Empty(t, search.Context)
	assert.Equal(t, flat(index.Flatten()), flat(index.Filter(search)))
}

/*
TestSearch_ContextProperty verifies that every context member is a match, an
ancestor of one or a descendant of one.
*/
func TestSearch_ContextProperty(t *testing.T) {
	index := factoryIndex(t)

	for _, term := range []string{"a", "as", "de", "ções", "o"} {
		search := index.Search(term)

		related := category.Set{}
		for id := range search.Direct {
			assert.True(t, search.Context.Has(id), term)

			related[id] = struct{}{}
			for _, ancestor := range index.Ancestors(id) {
				related[ancestor.ID] = struct{}{}
			}
			for _, descendant := range index.Descendants(id) {
				related[descendant] = struct{}{}
			}
		}

		assert.Equal(t, related.Sorted(), search.Context.Sorted(), term)
	}
}

/*
TestFilter verifies that filtered rows keep their level and flag direct
matches only.
*/
func TestFilter(t *testing.T) {
	index := category.NewIndex(append(chain(), node("D", "D", "")), brazil)

	rows := index.Filter(index.Search("c"))

	assert.Equal(t, []flatRow{{"A", 0}, {"B", 1}, {"C", 2}}, flat(rows))
	assert.False(t, rows[0].Match)
	assert.False(t, rows[1].Match)
	assert.True(t, rows[2].Match)
}
