// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bluevelvet/internal/core/category"
	"github.com/taibuivan/bluevelvet/internal/platform/apperr"
	"github.com/taibuivan/bluevelvet/pkg/pointer"
)

var categoryColumns = []string{"id", "name", "image", "parentid", "enabled", "creationtime"}

func newMockRepository(t *testing.T) (*category.PostgresRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return category.NewPostgresRepository(mock), mock
}

// parentArg matches the *int64 parent column against a remapped key.
type parentArg struct{ key int64 }

func (arg parentArg) Match(value interface{}) bool {
	parent, ok := value.(*int64)
	return ok && parent != nil && *parent == arg.key
}

/*
TestPostgresRepository_List verifies row scanning and nullable columns.
*/
func TestPostgresRepository_List(t *testing.T) {
	repository, mock := newMockRepository(t)
	now := time.Now()
	image := "https://cdn.bluevelvet.app/categories/pianos.png"

	rows := pgxmock.NewRows(categoryColumns).
		AddRow(int64(1), "Teclados", nil, nil, true, now).
		AddRow(int64(2), "Pianos", &image, pointer.To(int64(1)), false, now)
	mock.ExpectQuery(`SELECT (.+) FROM core\.category ORDER BY id ASC`).WillReturnRows(rows)

	records, err := repository.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, category.ID("1"), records[0].ID)
	assert.True(t, records[0].IsRoot())
	assert.Nil(t, records[0].Image)

	assert.Equal(t, category.ID("1"), records[1].Parent())
	assert.Equal(t, image, records[1].ImageURL())
	assert.False(t, records[1].Enabled)
	require.NotNil(t, records[1].CreationTime)

	assert.NoError(t, mock.ExpectationsWereMet())
}

/*
TestPostgresRepository_Create verifies the insert and the duplicate mapping.
*/
func TestPostgresRepository_Create(t *testing.T) {
	draft := category.Draft{Name: "Pianos", ParentID: ref("1"), Enabled: true}

	t.Run("Success", func(t *testing.T) {
		repository, mock := newMockRepository(t)

		mock.ExpectQuery(`INSERT INTO core\.category`).
			WithArgs("Pianos", pgxmock.AnyArg(), parentArg{key: 1}, true).
			WillReturnRows(pgxmock.NewRows(categoryColumns).
				AddRow(int64(9), "Pianos", nil, pointer.To(int64(1)), true, time.Now()))

		created, err := repository.Create(context.Background(), draft)
		require.NoError(t, err)

		assert.Equal(t, category.ID("9"), created.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DuplicateName", func(t *testing.T) {
		repository, mock := newMockRepository(t)

		mock.ExpectQuery(`INSERT INTO core\.category`).
			WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "category_name_key"})

		_, err := repository.Create(context.Background(), draft)

		assert.True(t, apperr.HasCode(err, category.CodeDuplicateName))
		assert.True(t, category.IsDuplicateName(err))
	})

	t.Run("NonNumericParent", func(t *testing.T) {
		repository, mock := newMockRepository(t)

		_, err := repository.Create(context.Background(), category.Draft{Name: "X", ParentID: ref("abc")})

		assert.True(t, apperr.HasCode(err, category.CodeParentNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

/*
TestPostgresRepository_Update verifies the not-found paths.
*/
func TestPostgresRepository_Update(t *testing.T) {
	repository, mock := newMockRepository(t)

	mock.ExpectQuery(`UPDATE core\.category SET`).
		WithArgs("Pianos", pgxmock.AnyArg(), pgxmock.AnyArg(), true, int64(5)).
		WillReturnError(pgx.ErrNoRows)

	_, err := repository.Update(context.Background(), "5", category.Draft{Name: "Pianos", Enabled: true})
	assert.ErrorIs(t, err, category.ErrNotFound)

	_, err = repository.Update(context.Background(), "abc", category.Draft{Name: "Pianos"})
	assert.ErrorIs(t, err, category.ErrNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

/*
TestPostgresRepository_Delete verifies affected rows and the foreign key
mapping.
*/
func TestPostgresRepository_Delete(t *testing.T) {
	t.Run("Deleted", func(t *testing.T) {
		repository, mock := newMockRepository(t)
		mock.ExpectExec(`DELETE FROM core\.category WHERE id = \$1`).
			WithArgs(int64(3)).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		assert.NoError(t, repository.Delete(context.Background(), "3"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing", func(t *testing.T) {
		repository, mock := newMockRepository(t)
		mock.ExpectExec(`DELETE FROM core\.category`).
			WithArgs(int64(3)).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		assert.ErrorIs(t, repository.Delete(context.Background(), "3"), category.ErrNotFound)
	})

	t.Run("StillReferenced", func(t *testing.T) {
		repository, mock := newMockRepository(t)
		mock.ExpectExec(`DELETE FROM core\.category`).
			WithArgs(int64(1)).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.ForeignKeyViolation})

		err := repository.Delete(context.Background(), "1")
		assert.True(t, apperr.HasCode(err, category.CodeHasSubcategories))
	})
}

/*
TestPostgresRepository_Reset verifies the transaction and the remapping of
source ids to new keys.
*/
func TestPostgresRepository_Reset(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repository, mock := newMockRepository(t)

		mock.ExpectBegin()
		mock.ExpectExec(`TRUNCATE core\.category RESTART IDENTITY`).
			WillReturnResult(pgxmock.NewResult("TRUNCATE", 0))
		mock.ExpectQuery(`INSERT INTO core\.category (.+) RETURNING id`).
			WithArgs("Teclados", pgxmock.AnyArg(), pgxmock.AnyArg(), true).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))
		mock.ExpectQuery(`INSERT INTO core\.category (.+) RETURNING id`).
			WithArgs("Pianos", pgxmock.AnyArg(), parentArg{key: 1}, true).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(2)))
		mock.ExpectCommit()

		err := repository.Reset(context.Background(), []category.Category{
			node("8", "Teclados", ""),
			node("9", "Pianos", "8"),
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ChildBeforeParent", func(t *testing.T) {
		repository, mock := newMockRepository(t)

		mock.ExpectBegin()
		mock.ExpectExec(`TRUNCATE`).WillReturnResult(pgxmock.NewResult("TRUNCATE", 0))
		mock.ExpectRollback()

		err := repository.Reset(context.Background(), []category.Category{node("9", "Pianos", "8")})

		require.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
