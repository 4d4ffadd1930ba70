// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package convert_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/bluevelvet/pkg/convert"
)

/*
TestToBool verifies lenient boolean parsing.
*/
func TestToBool(t *testing.T) {
	assert.True(t, convert.ToBool("true"))
	assert.True(t, convert.ToBool("1"))
	assert.False(t, convert.ToBool("0"))
	assert.False(t, convert.ToBool(""))
	assert.False(t, convert.ToBool("yes"))
}
