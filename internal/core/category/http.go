// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/taibuivan/bluevelvet/internal/platform/constants"
	"github.com/taibuivan/bluevelvet/internal/platform/middleware"
	requestutil "github.com/taibuivan/bluevelvet/internal/platform/request"
	"github.com/taibuivan/bluevelvet/internal/platform/respond"
	"github.com/taibuivan/bluevelvet/internal/platform/sec"
	"github.com/taibuivan/bluevelvet/pkg/convert"
	"github.com/taibuivan/bluevelvet/pkg/pagination"
	"github.com/taibuivan/bluevelvet/pkg/pointer"
)

// Multipart field names of a category payload.
const (
	formCategory = "category"
	formImage    = "image"
)

// Handler implements the HTTP layer of the category hierarchy.
type Handler struct {
	service *Service
}

// NewHandler constructs a new category [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the category endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// # Public Catalog
	router.Get("/tree", handler.getTree)
	router.Get("/storefront", handler.browseStorefront)
	router.Get("/{id}", handler.getCategory)

	// # Catalog Management
	router.Group(func(staff chi.Router) {
		staff.Use(middleware.RequireRole(sec.RoleModerator))

		staff.Get("/", handler.listCategories)
		staff.Get("/export.csv", handler.exportCategories)
		staff.Get("/parent-candidates", handler.listParentCandidates)
		staff.Get("/{id}/parent-candidates", handler.listParentCandidates)

		staff.Post("/", handler.createCategory)
		staff.Put("/{id}", handler.updateCategory)

		// Admin strict only
		staff.With(middleware.RequireRole(sec.RoleAdmin)).Delete("/{id}", handler.deleteCategory)
		staff.With(middleware.RequireRole(sec.RoleAdmin)).Post("/reset", handler.resetCategories)
	})

	return router
}

/*
GET /api/v1/categories.

Description: Management listing. Hierarchical by default, restricted to the
search context when q is set, flat when a sort is active.

Request (Query):
  - q: string (accent- and case-insensitive name filter)
  - sort: "name" | "id"
  - dir: "asc" | "desc" | "default"
  - page: int (1-indexed, clamped)
  - key: string (view key of the previous response; a mismatch restarts at page 1)

Response:
  - 200: View: Rows, direct matches and stats, with pagination meta
  - 400: Validation: Unknown sort field or direction
*/
func (handler *Handler) listCategories(writer http.ResponseWriter, request *http.Request) {
	query := request.URL.Query()

	sortState, err := ParseSort(query.Get("sort"), query.Get("dir"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	state := ViewState{
		Term: query.Get("q"),
		Sort: sortState,
		Page: pagination.FromRequest(request).Page,
	}.Resume(query.Get("key"))

	view, err := handler.service.View(request.Context(), state)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, view, view.Meta)
}

/*
GET /api/v1/categories/tree.

Description: Returns the whole forest with nested children.

Response:
  - 200: []Category: Roots with their subtrees
*/
func (handler *Handler) getTree(writer http.ResponseWriter, request *http.Request) {
	tree, err := handler.service.Tree(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, tree)
}

/*
GET /api/v1/categories/{id}.

Response:
  - 200: Detail: Category with path and direct children
  - 404: 404: ErrNotFound: Category does not exist
*/
func (handler *Handler) getCategory(writer http.ResponseWriter, request *http.Request) {
	detail, err := handler.service.Detail(request.Context(), ID(requestutil.ID(request, "id")))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, detail)
}

/*
GET /api/v1/categories/storefront.

Description: Enabled categories under a parent, for customer browsing.

Request (Query):
  - parent: string (category id; roots when absent)
  - page: int

Response:
  - 200: Shelf: Items and breadcrumb, with pagination meta
  - 404: 404: ErrNotFound: Parent is unknown or hidden
*/
func (handler *Handler) browseStorefront(writer http.ResponseWriter, request *http.Request) {
	parent := ID(request.URL.Query().Get("parent"))

	shelf, err := handler.service.Storefront(request.Context(), parent, pagination.FromRequest(request).Page)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, shelf, shelf.Meta)
}

/*
GET /api/v1/categories/parent-candidates
GET /api/v1/categories/{id}/parent-candidates.

Description: Eligible parents for a new category, or for {id} excluding the
category itself and its whole subtree.

Response:
  - 200: []Row: Candidates in hierarchical order
  - 404: 404: ErrNotFound: Category does not exist
*/
func (handler *Handler) listParentCandidates(writer http.ResponseWriter, request *http.Request) {
	candidates, err := handler.service.ParentCandidates(request.Context(), ID(requestutil.ID(request, "id")))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, candidates)
}

/*
GET /api/v1/categories/export.csv.

Description: Downloads the hierarchy as CSV with names indented by depth.

Response:
  - 200: text/csv: categories_<date>_<time>.csv
  - 422: 422: EMPTY_EXPORT: There are no categories
*/
func (handler *Handler) exportCategories(writer http.ResponseWriter, request *http.Request) {
	export, err := handler.service.Export(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Attachment(writer, export.Filename, ExportContentType, export.Content)
}

/*
POST /api/v1/categories.

Request (Body), either:
  - application/json: Input
  - multipart/form-data: "category" (Input as JSON) and optional "image" file

Response:
  - 201: Result: Created category and notice
  - 400: Validation: Empty name or bad image
  - 409: 409: DUPLICATE_NAME: Name already taken
  - 422: 422: PARENT_NOT_FOUND: Unknown parent
*/
func (handler *Handler) createCategory(writer http.ResponseWriter, request *http.Request) {
	input, image, err := decodePayload(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	defer image.close()

	result, err := handler.service.Create(request.Context(), input, image.attachment())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, result)
}

/*
PUT /api/v1/categories/{id}.

Request: same body as create.

Response:
  - 200: Result: Updated category and notice
  - 404: 404: ErrNotFound: Category does not exist
  - 409: 409: DUPLICATE_NAME: Name already taken
  - 422: 422: CYCLE_DETECTED: Parent is the category or one of its descendants
*/
func (handler *Handler) updateCategory(writer http.ResponseWriter, request *http.Request) {
	input, image, err := decodePayload(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	defer image.close()

	result, err := handler.service.Update(request.Context(), ID(requestutil.ID(request, "id")), input, image.attachment())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

/*
DELETE /api/v1/categories/{id}.

Response:
  - 200: Result: Deleted category and notice
  - 404: 404: ErrNotFound: Category does not exist
  - 409: 409: HAS_SUBCATEGORIES: Category still has children
*/
func (handler *Handler) deleteCategory(writer http.ResponseWriter, request *http.Request) {
	result, err := handler.service.Delete(request.Context(), ID(requestutil.ID(request, "id")))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

/*
POST /api/v1/categories/reset.

Description: Replaces every category with the factory catalog.

Response:
  - 200: Result: Notice
*/
func (handler *Handler) resetCategories(writer http.ResponseWriter, request *http.Request) {
	result, err := handler.service.Reset(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, result)
}

// # Payload Decoding

// upload wraps an optional multipart file.
type upload struct {
	file *requestutil.Upload
}

func (image upload) attachment() *Attachment {
	if image.file == nil {
		return nil
	}
	return &Attachment{
		Filename:    image.file.Filename,
		ContentType: image.file.ContentType,
		Size:        image.file.Size,
		Body:        image.file.Body,
	}
}

func (image upload) close() {
	if image.file != nil {
		_ = image.file.Body.Close()
	}
}

// decodePayload reads an [Input] from a JSON body or from a multipart form.
// A form without the "category" part may carry name, parentId and enabled
// as plain fields.
func decodePayload(request *http.Request) (Input, upload, error) {
	var input Input

	if !requestutil.IsMultipart(request) {
		err := requestutil.DecodeJSON(request, &input)
		return input, upload{}, err
	}

	if err := requestutil.ParseMultipart(request, constants.MaxImageBytes); err != nil {
		return input, upload{}, err
	}

	found, err := requestutil.DecodeFormJSON(request, formCategory, &input)
	if err != nil {
		return input, upload{}, err
	}

	if !found {
		input.Name = request.FormValue(FieldName)
		if parent := ID(request.FormValue(FieldParentID)); !parent.Empty() {
			input.ParentID = &parent
		}
		if enabled := request.FormValue("enabled"); enabled != "" {
			input.Enabled = pointer.To(convert.ToBool(enabled))
		}
	}

	file, err := requestutil.FormFile(request, formImage)
	if err != nil {
		return input, upload{}, err
	}

	return input, upload{file: file}, nil
}
