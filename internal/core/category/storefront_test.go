// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bluevelvet/internal/core/category"
)

func names(categories []category.Category) []string {
	out := make([]string, len(categories))
	for i, record := range categories {
		out[i] = record.Name
	}
	return out
}

func shelfNames(items []category.ShelfItem) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Category.Name
	}
	return out
}

/*
TestStorefront verifies browsing of enabled categories.
*/
func TestStorefront(t *testing.T) {
	index := factoryIndex(t)

	t.Run("Roots", func(t *testing.T) {
		shelf, err := index.Storefront("", 1, 10)
		require.NoError(t, err)

		assert.Nil(t, shelf.Parent)
		assert.Empty(t, shelf.Breadcrumb)
		assert.Equal(t, []string{
			"Acessórios", "Áudio Profissional", "Instrumentos de Corda",
			"Percussão", "Sopro", "Teclados",
		}, shelfNames(shelf.Items))
		assert.Equal(t, category.PlaceholderImage, shelf.Items[0].ImageURL)
	})

	t.Run("HidesDisabled", func(t *testing.T) {
		shelf, err := index.Storefront("1", 1, 10)
		require.NoError(t, err)

		assert.Equal(t, []string{"Baixos", "Guitarras", "Violinos"}, shelfNames(shelf.Items))
		assert.True(t, shelf.Items[1].HasChildren)
		assert.False(t, shelf.Items[0].HasChildren)
		assert.Equal(t, []string{"Instrumentos de Corda"}, names(shelf.Breadcrumb))
	})

	t.Run("Breadcrumb", func(t *testing.T) {
		shelf, err := index.Storefront("2", 1, 10)
		require.NoError(t, err)

		require.NotNil(t, shelf.Parent)
		assert.Equal(t, "Guitarras", shelf.Parent.Name)
		assert.Equal(t, []string{"Instrumentos de Corda", "Guitarras"}, names(shelf.Breadcrumb))
	})

	t.Run("HiddenOrUnknownParent", func(t *testing.T) {
		_, err := index.Storefront("7", 1, 10)
		assert.ErrorIs(t, err, category.ErrNotFound)

		_, err = index.Storefront("404", 1, 10)
		assert.ErrorIs(t, err, category.ErrNotFound)
	})

	t.Run("Paged", func(t *testing.T) {
		shelf, err := index.Storefront("", 9, 4)
		require.NoError(t, err)

		assert.Equal(t, 2, shelf.Meta.Page)
		assert.Equal(t, 2, shelf.Meta.TotalPages)
		assert.Equal(t, []string{"Sopro", "Teclados"}, shelfNames(shelf.Items))
	})
}

/*
TestStorefront_DisabledAncestor verifies that a disabled category hides its
whole subtree.
*/
func TestStorefront_DisabledAncestor(t *testing.T) {
	records := chain()
	records[0].Enabled = false
	index := category.NewIndex(records, brazil)

	shelf, err := index.Storefront("", 1, 10)
	require.NoError(t, err)
	assert.Empty(t, shelf.Items)

	_, err = index.Storefront("C", 1, 10)
	assert.ErrorIs(t, err, category.ErrNotFound)
}

/*
TestDetail verifies the path and children of one category.
*/
func TestDetail(t *testing.T) {
	index := factoryIndex(t)

	detail, err := index.Detail("3")
	require.NoError(t, err)

	assert.Equal(t, "Guitarras Elétricas", detail.Category.Name)
	assert.Equal(t, 2, detail.Level)
	assert.Equal(t, []string{"Instrumentos de Corda", "Guitarras"}, names(detail.Path))
	assert.Empty(t, detail.Children)

	detail, err = index.Detail("8")
	require.NoError(t, err)
	assert.Equal(t, []string{"Pianos Digitais", "Sintetizadores"}, names(detail.Children))

	_, err = index.Detail("404")
	assert.ErrorIs(t, err, category.ErrNotFound)
}
