// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package convert holds lenient conversions for form and query values, where
// a malformed value is treated the same as an absent one.
package convert

import "strconv"

// ToBool parses "true", "1", "false", "0" and the other [strconv.ParseBool]
// spellings. It returns false on an empty or malformed value.
func ToBool(s string) bool {
	if s == "" {
		return false
	}

	v, _ := strconv.ParseBool(s)
	return v
}
