// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/taibuivan/bluevelvet/internal/platform/apperr"
	"github.com/taibuivan/bluevelvet/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
ID retrieves a named path parameter, such as a category id, from the request.
*/
func ID(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

// # Multipart

// Upload is a file part extracted from a multipart request.
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        multipart.File
}

// IsMultipart reports whether the request carries a multipart/form-data body.
func IsMultipart(request *http.Request) bool {
	return strings.HasPrefix(request.Header.Get("Content-Type"), "multipart/form-data")
}

/*
ParseMultipart parses a multipart/form-data body, keeping at most maxMemory
bytes in memory and the rest in temporary files.

Returns:
  - error: apperr.ValidationError if the body is not valid multipart data
*/
func ParseMultipart(request *http.Request, maxMemory int64) error {
	if err := request.ParseMultipartForm(maxMemory); err != nil {
		return apperr.ValidationError("Request body must be valid multipart form data")
	}
	return nil
}

/*
DecodeFormJSON decodes a JSON document carried in a multipart form field.

Returns:
  - bool: false when the field is absent
  - error: validate.ErrInvalidJSON if the field holds malformed JSON
*/
func DecodeFormJSON(request *http.Request, field string, target interface{}) (bool, error) {
	raw := request.FormValue(field)
	if raw == "" {
		return false, nil
	}

	if err := json.Unmarshal([]byte(raw), target); err != nil {
		return true, validate.ErrInvalidJSON
	}
	return true, nil
}

/*
FormFile returns the named file part, or nil when the request carries none.

The caller owns Upload.Body and must close it.
*/
func FormFile(request *http.Request, field string) (*Upload, error) {
	file, header, err := request.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.ValidationError("Could not read uploaded file")
	}

	return &Upload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	}, nil
}
