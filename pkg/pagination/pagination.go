// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// It standardizes how page-based navigation is requested via query parameters
// and how the resulting metadata is delivered in the API response envelope.
package pagination

import (
	"net/http"
	"strconv"
)

const (
	// DefaultLimit is the number of items per page if not specified.
	DefaultLimit = 20
	// MaxLimit is the upper bound for items per page to prevent system abuse.
	MaxLimit = 100
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
)

// Params holds the parsed page and limit from a request's query string.
type Params struct {
	Page  int
	Limit int
}

// Meta is the pagination metadata included in API list responses.
type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewMeta constructs pagination metadata for a response.
//
// It automatically calculates the TotalPages based on the total count and limit.
func NewMeta(page, limit, total int) Meta {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}

// Clamp bounds page to the range [1, totalPages].
//
// An empty result set still has a single (empty) page 1.
func Clamp(page, totalPages int) int {
	if totalPages < 1 || page < 1 {
		return DefaultPage
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Page is one window of an in-memory sequence together with its metadata.
type Page[T any] struct {
	Items []T
	Meta  Meta
}

// Slice returns the window of items for the requested page.
//
// # Clamping
//
// The page is clamped with [Clamp] so that a request past the end yields the
// last page, and a limit below 1 falls back to [DefaultLimit].
func Slice[T any](items []T, page, limit int) Page[T] {
	if limit < 1 {
		limit = DefaultLimit
	}

	meta := NewMeta(page, limit, len(items))
	meta.Page = Clamp(page, meta.TotalPages)

	start := (meta.Page - 1) * limit
	end := min(start+limit, len(items))
	if start >= end {
		return Page[T]{Items: []T{}, Meta: meta}
	}

	return Page[T]{Items: items[start:end], Meta: meta}
}

// FromRequest parses "page" and "limit" query parameters from an HTTP request.
//
// # Clamping
//
// Invalid, negative, or excessive values are automatically clamped to
// [DefaultPage], [DefaultLimit], or [MaxLimit].
func FromRequest(r *http.Request) Params {
	page := parseIntParam(r, "page", DefaultPage)
	limit := parseIntParam(r, "limit", DefaultLimit)

	if page < 1 {
		page = DefaultPage
	}

	if limit < 1 || limit > MaxLimit {
		limit = DefaultLimit
	}

	return Params{Page: page, Limit: limit}
}

// parseIntParam parses a single integer query parameter with a fallback default.
func parseIntParam(r *http.Request, key string, defaultVal int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultVal
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return defaultVal
	}

	return n
}
