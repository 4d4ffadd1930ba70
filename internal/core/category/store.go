// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import (
	"context"
	"io"
)

// Repository persists categories.
type Repository interface {
	List(context context.Context) ([]Category, error)
	Create(context context.Context, draft Draft) (*Category, error)
	Update(context context.Context, id ID, draft Draft) (*Category, error)
	Delete(context context.Context, id ID) error

	// Reset replaces the whole collection with records, parents first.
	Reset(context context.Context, records []Category) error
}

// SnapshotCache shares the latest collection between API replicas.
type SnapshotCache interface {
	Load(context context.Context) ([]Category, bool)
	Store(context context.Context, records []Category)
	Invalidate(context context.Context)
}

// ImageStore keeps the binary assets referenced by Category.Image.
type ImageStore interface {
	Put(context context.Context, key, contentType string, body io.Reader, size int64) (string, error)
	Remove(context context.Context, url string) error
}
