// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import (
	"strings"
	"time"
)

const (
	// ExportContentType is the media type of the exported document.
	ExportContentType = "text/csv; charset=utf-8"

	csvHeader   = "id,name"
	csvIndent   = "  "
	byteOrder   = "\uFEFF"
	csvQuote    = `"`
	csvSpecials = "\",\r\n"
)

// Export is a rendered CSV download.
type Export struct {
	Filename string
	Content  []byte
	Rows     int
}

// ExportFilename names an export produced at now, e.g.
// categories_2026-03-01_14-05-09.csv.
func ExportFilename(now time.Time) string {
	return "categories_" + now.Format("2006-01-02") + "_" + now.Format("15-04-05") + ".csv"
}

/*
CSV renders the hierarchy as an "id,name" document.

Rows follow [Index.Flatten]. The name is always quoted and is prefixed with
two spaces per level; an id is quoted only when it holds a quote, a comma or
a line break. Rows are separated by "\n" with no trailing newline.
*/
func (index *Index) CSV() string {
	var builder strings.Builder
	builder.WriteString(csvHeader)

	for _, row := range index.Flatten() {
		builder.WriteByte('\n')
		builder.WriteString(csvField(row.Category.ID.String(), false))
		builder.WriteByte(',')
		builder.WriteString(csvField(strings.Repeat(csvIndent, row.Level)+row.Category.Name, true))
	}

	return builder.String()
}

// Export renders the CSV download with a UTF-8 byte order mark. An empty
// snapshot produces no document and reports EMPTY_EXPORT.
func (index *Index) Export(now time.Time) (Export, error) {
	if index.Len() == 0 {
		return Export{}, errEmptyExport
	}

	return Export{
		Filename: ExportFilename(now),
		Content:  []byte(byteOrder + index.CSV()),
		Rows:     index.Len(),
	}, nil
}

// csvField escapes embedded quotes by doubling them.
func csvField(value string, quote bool) string {
	if !quote && !strings.ContainsAny(value, csvSpecials) {
		return value
	}
	return csvQuote + strings.ReplaceAll(value, csvQuote, csvQuote+csvQuote) + csvQuote
}
