// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package textnorm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/taibuivan/bluevelvet/pkg/textnorm"
)

/*
TestFold verifies accent and case insensitivity of the comparison form.
*/
func TestFold(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Lowercases", "ROCK", "rock"},
		{"StripsAccents", "Música Clássica", "musica classica"},
		{"StripsCedilla", "Canção", "cancao"},
		{"TrimsWhitespace", "  Jazz  ", "jazz"},
		{"Empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, textnorm.Fold(tt.input))
		})
	}
}

/*
TestBlank verifies whitespace-only detection.
*/
func TestBlank(t *testing.T) {
	assert.True(t, textnorm.Blank(""))
	assert.True(t, textnorm.Blank(" \t\n"))
	assert.False(t, textnorm.Blank(" a "))
}

/*
TestSlug verifies ASCII slug generation.
*/
func TestSlug(t *testing.T) {
	assert.Equal(t, "rock-nacional", textnorm.Slug("Rock Nacional"))
	assert.Equal(t, "musica-classica", textnorm.Slug("  Música -- Clássica! "))
	assert.Equal(t, "", textnorm.Slug("!!!"))
}
