// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package textnorm normalizes free-form Unicode text for matching and for
// building ASCII object keys.
//
// # Usage
//
// [Fold] produces the accent- and case-insensitive form used by catalog
// search, so "Música" and "MUSICA" compare equal. [Slug] produces the
// URL-safe form used for storage object names (e.g., "rock-nacional").
package textnorm

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// nonAlphanumeric matches any sequence of non-alphanumeric, non-hyphen characters.
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9-]+`)
	// multiHyphen collapses multiple consecutive hyphens into one.
	multiHyphen = regexp.MustCompile(`-{2,}`)
)

// Fold returns the comparison form of s.
//
// # Transformation Pipeline
//
// 1. Decomposes to NFD and drops combining marks (é → e).
// 2. Recomposes to NFC.
// 3. Applies Unicode case folding.
// 4. Trims surrounding whitespace.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		result = s
	}

	return strings.TrimSpace(cases.Fold().String(result))
}

// Blank reports whether s holds nothing but whitespace.
func Blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Slug converts an arbitrary Unicode string into a URL-safe ASCII slug.
func Slug(s string) string {
	// 1. Normalize and remove accents
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	result, _, _ := transform.String(t, s)

	// 2. Lowercase
	result = strings.ToLower(result)

	// 3. Replace whitespace and special chars with hyphens
	result = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '-'
	}, result)

	// 4. Clean up hyphenation
	result = nonAlphanumeric.ReplaceAllString(result, "-")
	result = multiHyphen.ReplaceAllString(result, "-")

	return strings.Trim(result, "-")
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
