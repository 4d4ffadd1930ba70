// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/taibuivan/bluevelvet/internal/platform/apperr"
	"github.com/taibuivan/bluevelvet/internal/platform/constants"
	"github.com/taibuivan/bluevelvet/internal/platform/validate"
	"github.com/taibuivan/bluevelvet/pkg/pointer"
	"github.com/taibuivan/bluevelvet/pkg/textnorm"
	"github.com/taibuivan/bluevelvet/pkg/uuidv7"
)

// # Field Identifiers

const (
	FieldName     = "name"
	FieldParentID = "parentId"
	FieldImage    = "image"
)

// imageKeyPrefix namespaces category images inside the bucket.
const imageKeyPrefix = "categories/"

// Attachment is an image uploaded together with a category.
type Attachment struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Result is the outcome of a successful mutation.
type Result struct {
	Category *Category `json:"category,omitempty"`
	Notice   Notice    `json:"notice"`
}

// Options configures a [Service]. Zero values select the defaults.
type Options struct {
	Cache          SnapshotCache
	Images         ImageStore
	Notifier       Notifier
	Locale         string
	PageSize       int
	StorefrontSize int
	Clock          func() time.Time
}

// Service owns the category snapshot and every operation on it.
//
// Reads are answered from an immutable [Index]. Mutations are serialized;
// each one writes through the [Repository], re-fetches the collection and
// swaps the snapshot only if that re-fetch succeeds.
type Service struct {
	repo      Repository
	cache     SnapshotCache
	images    ImageStore
	notifier  Notifier
	collation Collation
	pageSize  int
	shelfSize int
	clock     func() time.Time
	logger    *slog.Logger

	snapshot atomic.Pointer[Index]
	stale    atomic.Bool
	refresh  sync.Mutex
	mutation sync.Mutex
}

// NewService creates the category [Service].
func NewService(repo Repository, options Options, logger *slog.Logger) *Service {
	service := &Service{
		repo:      repo,
		cache:     options.Cache,
		images:    options.Images,
		notifier:  options.Notifier,
		collation: NewCollation(pointer.Fallback(nonEmpty(options.Locale), constants.DefaultCatalogLocale)),
		pageSize:  options.PageSize,
		shelfSize: options.StorefrontSize,
		clock:     options.Clock,
		logger:    logger,
	}

	if service.cache == nil {
		service.cache = noCache{}
	}
	if service.notifier == nil {
		service.notifier = NewLogNotifier(logger)
	}
	if service.pageSize < 1 {
		service.pageSize = constants.CategoryPageSize
	}
	if service.shelfSize < 1 {
		service.shelfSize = constants.StorefrontPageSize
	}
	if service.clock == nil {
		service.clock = time.Now
	}

	return service
}

// # Snapshot

/*
Snapshot returns the current index, loading it on first use.

When a previous re-fetch failed the snapshot is marked stale and reloaded
here; if the reload fails again the last good snapshot is served.
*/
func (service *Service) Snapshot(context context.Context) (*Index, error) {
	current := service.snapshot.Load()
	if current != nil && !service.stale.Load() {
		return current, nil
	}

	index, err := service.reload(context, current == nil)
	if err == nil {
		return index, nil
	}

	if current != nil {
		service.logger.Warn("category_snapshot_stale", slog.Any("error", err))
		return current, nil
	}

	service.notifier.Notify(context, failureNotice(ActionLoad, "", err))
	return nil, err
}

// reload fetches the collection and swaps the snapshot. Mutations bypass
// the shared cache so they never rebuild from a copy older than their write.
func (service *Service) reload(context context.Context, useCache bool) (*Index, error) {
	service.refresh.Lock()
	defer service.refresh.Unlock()

	var (
		records []Category
		hit     bool
	)
	if useCache {
		records, hit = service.cache.Load(context)
	}

	if !hit {
		var err error
		if records, err = service.repo.List(context); err != nil {
			return nil, err
		}
		service.cache.Store(context, records)
	}

	index := NewIndex(records, service.collation)
	if detached := index.Detached(); len(detached) > 0 {
		service.logger.Warn("category_cycle_detached", slog.Any("ids", detached))
	}

	service.snapshot.Store(index)
	service.stale.Store(false)

	service.logger.Debug("category_snapshot_loaded",
		slog.Int("count", index.Len()),
		slog.Bool("cache_hit", hit),
	)
	return index, nil
}

// commit publishes a successful write. A failed re-fetch leaves the prior
// snapshot in place and marks it stale.
func (service *Service) commit(context context.Context) {
	service.cache.Invalidate(context)

	if _, err := service.reload(context, false); err != nil {
		service.stale.Store(true)
		service.logger.Error("category_refresh_failed", slog.Any("error", err))
	}
}

// # Queries

// View renders one page of the management listing.
func (service *Service) View(context context.Context, state ViewState) (View, error) {
	index, err := service.Snapshot(context)
	if err != nil {
		return View{}, err
	}
	return index.Render(state, service.collation, service.pageSize), nil
}

// Tree returns the nested forest.
func (service *Service) Tree(context context.Context) ([]Category, error) {
	index, err := service.Snapshot(context)
	if err != nil {
		return nil, err
	}
	return index.Tree(), nil
}

// Detail returns one category with its path and children.
func (service *Service) Detail(context context.Context, id ID) (Detail, error) {
	index, err := service.Snapshot(context)
	if err != nil {
		return Detail{}, err
	}
	return index.Detail(id)
}

// ParentCandidates lists the eligible parents for editing, or for a new
// category when editing is empty.
func (service *Service) ParentCandidates(context context.Context, editing ID) ([]Row, error) {
	index, err := service.Snapshot(context)
	if err != nil {
		return nil, err
	}
	if !editing.Empty() && !index.Has(editing) {
		return nil, ErrNotFound
	}
	return index.ParentCandidates(editing), nil
}

// Storefront returns one page of enabled categories under parent.
func (service *Service) Storefront(context context.Context, parent ID, page int) (Shelf, error) {
	index, err := service.Snapshot(context)
	if err != nil {
		return Shelf{}, err
	}
	return index.Storefront(parent, page, service.shelfSize)
}

// Export renders the CSV download of the whole hierarchy.
func (service *Service) Export(context context.Context) (Export, error) {
	index, err := service.Snapshot(context)
	if err != nil {
		return Export{}, err
	}

	export, err := index.Export(service.clock())
	if err != nil {
		service.notifier.Notify(context, failureNotice(ActionExport, "", err))
		return Export{}, err
	}

	service.notifier.Notify(context, successNotice(ActionExport, export.Filename))
	service.logger.Info("category_exported",
		slog.String("filename", export.Filename),
		slog.Int("rows", export.Rows),
	)
	return export, nil
}

// # Mutations

// Create validates input, stores the optional image and inserts the category.
func (service *Service) Create(context context.Context, input Input, image *Attachment) (Result, error) {
	service.mutation.Lock()
	defer service.mutation.Unlock()

	created, err := service.create(context, input, image)
	return service.report(context, ActionCreate, input.Name, created, err)
}

func (service *Service) create(context context.Context, input Input, image *Attachment) (*Category, error) {
	draft, err := service.draft(input, image)
	if err != nil {
		return nil, err
	}

	index, err := service.Snapshot(context)
	if err != nil {
		return nil, err
	}
	if err := index.CheckParent("", draft.ParentID); err != nil {
		return nil, err
	}

	if draft.Image, err = service.upload(context, draft.Name, image); err != nil {
		return nil, err
	}

	created, err := service.repo.Create(context, draft)
	if err != nil {
		service.discard(context, draft.Image)
		return nil, err
	}

	service.commit(context)
	service.logger.Info("category_created",
		slog.String("category_id", created.ID.String()),
		slog.String("name", created.Name),
	)
	return created, nil
}

// Update replaces the name, parent and visibility of id, and its image when
// a new one is attached.
func (service *Service) Update(context context.Context, id ID, input Input, image *Attachment) (Result, error) {
	service.mutation.Lock()
	defer service.mutation.Unlock()

	updated, err := service.update(context, id, input, image)
	return service.report(context, ActionUpdate, input.Name, updated, err)
}

func (service *Service) update(context context.Context, id ID, input Input, image *Attachment) (*Category, error) {
	draft, err := service.draft(input, image)
	if err != nil {
		return nil, err
	}

	index, err := service.Snapshot(context)
	if err != nil {
		return nil, err
	}

	current, ok := index.Get(id)
	if !ok {
		return nil, ErrNotFound
	}
	if err := index.CheckParent(id, draft.ParentID); err != nil {
		return nil, err
	}

	draft.Image = current.Image
	uploaded, err := service.upload(context, draft.Name, image)
	if err != nil {
		return nil, err
	}
	if uploaded != nil {
		draft.Image = uploaded
	}

	updated, err := service.repo.Update(context, id, draft)
	if err != nil {
		service.discard(context, uploaded)
		return nil, err
	}

	if uploaded != nil {
		service.discard(context, current.Image)
	}

	service.commit(context)
	service.logger.Info("category_updated",
		slog.String("category_id", id.String()),
		slog.String("name", updated.Name),
	)
	return updated, nil
}

// Delete removes a category that has no subcategories. The check runs on
// the current snapshot before the store is contacted.
func (service *Service) Delete(context context.Context, id ID) (Result, error) {
	service.mutation.Lock()
	defer service.mutation.Unlock()

	deleted, err := service.delete(context, id)

	name := id.String()
	if deleted != nil {
		name = deleted.Name
	} else if index := service.snapshot.Load(); index != nil {
		if current, ok := index.Get(id); ok {
			name = current.Name
		}
	}

	// The store only knows the id when it rejects a parent.
	if deleted == nil && apperr.HasCode(err, CodeHasSubcategories) {
		err = errHasSubcategories(name).WithCause(err)
	}
	return service.report(context, ActionDelete, name, deleted, err)
}

func (service *Service) delete(context context.Context, id ID) (*Category, error) {
	index, err := service.Snapshot(context)
	if err != nil {
		return nil, err
	}
	if err := index.CheckDelete(id); err != nil {
		return nil, err
	}

	current, _ := index.Get(id)
	if err := service.repo.Delete(context, id); err != nil {
		return nil, err
	}

	service.discard(context, current.Image)
	service.commit(context)
	service.logger.Warn("category_deleted",
		slog.String("category_id", id.String()),
		slog.String("name", current.Name),
	)
	return &current, nil
}

// Reset restores the factory catalog.
func (service *Service) Reset(context context.Context) (Result, error) {
	service.mutation.Lock()
	defer service.mutation.Unlock()

	records, err := Factory()
	if err == nil {
		err = service.repo.Reset(context, records)
	}
	if err == nil {
		service.commit(context)
		service.logger.Warn("category_reset", slog.Int("count", len(records)))
	}

	return service.report(context, ActionReset, "", nil, err)
}

// # Helpers

// report notifies the outcome of a mutation and gives name collisions the
// DUPLICATE_NAME code whatever their origin.
func (service *Service) report(context context.Context, action Action, name string, category *Category, err error) (Result, error) {
	name = strings.TrimSpace(name)

	if err != nil {
		notice := failureNotice(action, name, err)
		service.notifier.Notify(context, notice)

		if nameCollision(action, err) {
			return Result{Notice: notice}, errDuplicateName(name, err)
		}
		return Result{Notice: notice}, err
	}

	notice := successNotice(action, name)
	service.notifier.Notify(context, notice)
	return Result{Category: category, Notice: notice}, nil
}

// draft validates input without touching the store.
func (service *Service) draft(input Input, image *Attachment) (Draft, error) {
	name := strings.TrimSpace(input.Name)

	validator := &validate.Validator{}
	validator.Required(FieldName, name).MaxLen(FieldName, name, MaxNameLength)

	if image != nil {
		validator.Custom(FieldImage, !strings.HasPrefix(image.ContentType, "image/"), "must be an image")
		validator.Custom(FieldImage, image.Size > constants.MaxImageBytes,
			fmt.Sprintf("must not exceed %d bytes", constants.MaxImageBytes))
	}

	if err := validator.Err(); err != nil {
		return Draft{}, err
	}

	draft := Draft{
		Name:    name,
		Enabled: pointer.Fallback(input.Enabled, true),
	}
	if input.ParentID != nil && !input.ParentID.Empty() {
		parent := Category{ParentID: input.ParentID}.Parent()
		draft.ParentID = &parent
	}
	return draft, nil
}

// upload stores image and returns its URL, or nil when there is nothing to
// store.
func (service *Service) upload(context context.Context, name string, image *Attachment) (*string, error) {
	if image == nil {
		return nil, nil
	}
	if service.images == nil {
		service.logger.Warn("category_image_ignored", slog.String("reason", "storage_disabled"))
		return nil, nil
	}

	key := imageKeyPrefix + uuidv7.New() + "-" + textnorm.Slug(name) + strings.ToLower(path.Ext(image.Filename))

	url, err := service.images.Put(context, key, image.ContentType, image.Body, image.Size)
	if err != nil {
		return nil, fmt.Errorf("category: store image: %w", err)
	}
	return &url, nil
}

// discard removes an image that is no longer referenced. Failures are
// logged only.
func (service *Service) discard(context context.Context, url *string) {
	if service.images == nil || url == nil || *url == "" {
		return
	}
	if err := service.images.Remove(context, *url); err != nil {
		service.logger.Warn("category_image_cleanup_failed",
			slog.String("url", *url),
			slog.Any("error", err),
		)
	}
}

func nonEmpty(value string) *string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return &value
}

// noCache is used when no [SnapshotCache] is configured.
type noCache struct{}

func (noCache) Load(context.Context) ([]Category, bool) { return nil, false }
func (noCache) Store(context.Context, []Category)       {}
func (noCache) Invalidate(context.Context)              {}
