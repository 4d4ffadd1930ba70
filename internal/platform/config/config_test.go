// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taibuivan/bluevelvet/internal/platform/config"
)

/*
TestLoad verifies required variables and catalog defaults.
*/
func TestLoad(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/bluevelvet")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("JWT_PUBLIC_KEY_PATH", "/keys/public.pem")
	t.Setenv("EXTRA_ORIGINS", " https://a.example , ,https://b.example")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "pt-BR", cfg.CatalogLocale)
	assert.Equal(t, 10, cfg.CatalogPageSize)
	assert.Equal(t, 5*time.Minute, cfg.CatalogCacheTTL)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.StorageEnabled())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins())
}

/*
TestLoad_RejectsBadPageSize verifies the page size guard.
*/
func TestLoad_RejectsBadPageSize(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/bluevelvet")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("JWT_PUBLIC_KEY_PATH", "/keys/public.pem")
	t.Setenv("CATALOG_PAGE_SIZE", "0")

	_, err := config.Load()
	assert.Error(t, err)
}
