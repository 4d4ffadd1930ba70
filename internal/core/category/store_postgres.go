// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/taibuivan/bluevelvet/internal/platform/apperr"
	"github.com/taibuivan/bluevelvet/internal/platform/database/schema"
	"github.com/taibuivan/bluevelvet/internal/platform/dberr"
	"github.com/taibuivan/bluevelvet/internal/platform/postgres"
)

// PostgresRepository stores categories in core.category.
type PostgresRepository struct {
	db      postgres.Querier
	builder squirrel.StatementBuilderType
}

// NewPostgresRepository creates a [Repository] over db.
func NewPostgresRepository(db postgres.Querier) *PostgresRepository {
	return &PostgresRepository{
		db:      db,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

var categoryTable = schema.CoreCategory

func returning() string {
	return "RETURNING " + strings.Join(categoryTable.Columns(), ", ")
}

func (repository *PostgresRepository) List(context context.Context) ([]Category, error) {
	query, args, err := repository.builder.
		Select(categoryTable.Columns()...).
		From(categoryTable.Table).
		OrderBy(categoryTable.ID + " ASC").
		ToSql()
	if err != nil {
		return nil, apperr.Internal(err)
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_categories")
	}
	defer rows.Close()

	categories := []Category{}
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_category")
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_categories")
	}
	return categories, nil
}

func (repository *PostgresRepository) Create(context context.Context, draft Draft) (*Category, error) {
	parent, err := parentKey(draft.ParentID)
	if err != nil {
		return nil, err
	}

	query, args, err := repository.builder.
		Insert(categoryTable.Table).
		Columns(categoryTable.InsertColumns()...).
		Values(draft.Name, draft.Image, parent, draft.Enabled).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return nil, apperr.Internal(err)
	}

	category, err := scanCategory(repository.db.QueryRow(context, query, args...))
	if err != nil {
		return nil, dberr.Wrap(err, "create_category")
	}
	return &category, nil
}

func (repository *PostgresRepository) Update(context context.Context, id ID, draft Draft) (*Category, error) {
	key, ok := id.Int64()
	if !ok {
		return nil, ErrNotFound
	}

	parent, err := parentKey(draft.ParentID)
	if err != nil {
		return nil, err
	}

	query, args, err := repository.builder.
		Update(categoryTable.Table).
		Set(categoryTable.Name, draft.Name).
		Set(categoryTable.Image, draft.Image).
		Set(categoryTable.ParentID, parent).
		Set(categoryTable.Enabled, draft.Enabled).
		Where(squirrel.Eq{categoryTable.ID: key}).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return nil, apperr.Internal(err)
	}

	category, err := scanCategory(repository.db.QueryRow(context, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, dberr.Wrap(err, "update_category")
	}
	return &category, nil
}

func (repository *PostgresRepository) Delete(context context.Context, id ID) error {
	key, ok := id.Int64()
	if !ok {
		return ErrNotFound
	}

	query, args, err := repository.builder.
		Delete(categoryTable.Table).
		Where(squirrel.Eq{categoryTable.ID: key}).
		ToSql()
	if err != nil {
		return apperr.Internal(err)
	}

	command, err := repository.db.Exec(context, query, args...)
	if err != nil {
		wrapped := dberr.Wrap(err, "delete_category")
		if apperr.HasCode(wrapped, dberr.CodeReferenceViolation) {
			return errHasSubcategories(id.String()).WithCause(err)
		}
		return wrapped
	}

	if command.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

/*
Reset truncates core.category and inserts records in order inside one
transaction. Source ids are remapped to the keys the database assigns, so a
record's parent must precede it.
*/
func (repository *PostgresRepository) Reset(context context.Context, records []Category) error {
	tx, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "reset_categories")
	}
	defer func() { _ = tx.Rollback(context) }()

	if _, err := tx.Exec(context, "TRUNCATE "+categoryTable.Table+" RESTART IDENTITY"); err != nil {
		return dberr.Wrap(err, "reset_categories")
	}

	keys := make(map[ID]int64, len(records))
	for _, record := range records {
		var parent *int64
		if parentID := record.Parent(); !parentID.Empty() {
			key, ok := keys[parentID]
			if !ok {
				return apperr.Internal(errors.New("category: reset record precedes its parent: " + record.ID.String()))
			}
			parent = &key
		}

		query, args, err := repository.builder.
			Insert(categoryTable.Table).
			Columns(categoryTable.InsertColumns()...).
			Values(record.Name, record.Image, parent, record.Enabled).
			Suffix("RETURNING " + categoryTable.ID).
			ToSql()
		if err != nil {
			return apperr.Internal(err)
		}

		var key int64
		if err := tx.QueryRow(context, query, args...).Scan(&key); err != nil {
			return dberr.Wrap(err, "reset_categories")
		}
		keys[record.ID] = key
	}

	return dberr.Wrap(tx.Commit(context), "reset_categories")
}

// parentKey converts a parent reference to its column value.
func parentKey(parent *ID) (*int64, error) {
	if parent == nil || parent.Empty() {
		return nil, nil
	}

	target := Category{ParentID: parent}.Parent()
	key, ok := target.Int64()
	if !ok {
		return nil, errParentNotFound(target)
	}
	return &key, nil
}

func scanCategory(row pgx.Row) (Category, error) {
	var (
		key          int64
		category     Category
		parent       *int64
		creationTime time.Time
	)

	if err := row.Scan(&key, &category.Name, &category.Image, &parent, &category.Enabled, &creationTime); err != nil {
		return Category{}, err
	}

	category.ID = IDFromInt64(key)
	if parent != nil {
		parentID := IDFromInt64(*parent)
		category.ParentID = &parentID
	}
	category.CreationTime = &creationTime

	return category, nil
}
