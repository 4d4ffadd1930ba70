// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collation orders category names according to the rules of one locale.
type Collation struct {
	tag language.Tag
}

// NewCollation parses a BCP 47 locale such as "pt-BR". Unknown or malformed
// locales fall back to the root collation order.
func NewCollation(locale string) Collation {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Und
	}
	return Collation{tag: tag}
}

// Locale returns the BCP 47 tag in use.
func (collation Collation) Locale() string {
	return collation.tag.String()
}

// byName returns a comparison ordering categories by name, then by id.
//
// A collator keeps internal buffers, so every call builds its own and the
// returned function must stay on one goroutine.
func (collation Collation) byName() func(a, b Category) int {
	collator := collate.New(collation.tag)

	return func(a, b Category) int {
		if order := collator.CompareString(a.Name, b.Name); order != 0 {
			return order
		}
		return compareIDs(a.ID, b.ID)
	}
}
