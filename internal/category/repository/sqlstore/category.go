package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	repo "hardware-inventory/internal/category/repository"
	"hardware-inventory/internal/model"
	"hardware-inventory/pkg/sqldb"
)

const categoryColumns = `id, name, description, image_scheme, image_key, image_url, created_at, updated_at`

// CreateCategory inserts a new Category row and returns the created entity.
func (r *implRepository) CreateCategory(ctx context.Context, opt repo.CreateCategoryOptions) (model.Category, error) {
	now := r.now()
	cat := model.Category{
		ID:          uuid.NewString(),
		Name:        opt.Name,
		Description: opt.Description,
		Image:       opt.Image,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := cat.Validate(); err != nil {
		return model.Category{}, fmt.Errorf("%w: %v", repo.ErrInvalidRecord, err)
	}

	const query = `
		INSERT INTO categories (id, name, description, image_scheme, image_key, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := sqldb.GetExecutor(ctx, r.db).ExecContext(ctx, query,
		cat.ID, cat.Name, cat.Description,
		string(cat.Image.Scheme), cat.Image.Key, cat.Image.URL, cat.CreatedAt, cat.UpdatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateCategory"), err)
		return model.Category{}, repo.ErrFailedToInsert
	}
	return cat, nil
}

// GetOneCategory retrieves a single Category by ID.
// Returns zero-value Category (ID == "") when not found.
func (r *implRepository) GetOneCategory(ctx context.Context, opt repo.GetOneCategoryOptions) (model.Category, error) {
	query := fmt.Sprintf(`SELECT %s FROM categories WHERE id = $1 LIMIT 1`, categoryColumns)

	cat, err := scanCategory(sqldb.GetExecutor(ctx, r.db).QueryRowContext(ctx, query, opt.ID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Category{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneCategory"), err)
		return model.Category{}, repo.ErrFailedToGet
	}
	return cat, nil
}

// ListCategories returns every Category in insertion order, loading only the requested fields.
func (r *implRepository) ListCategories(ctx context.Context, opt repo.ListCategoriesOptions) ([]model.Category, error) {
	fields, err := projection(opt.Fields)
	if err != nil {
		return nil, err
	}

	columns := []string{"id"}
	for _, f := range fields {
		columns = append(columns, fieldColumns[f]...)
	}
	query := fmt.Sprintf(`SELECT %s FROM categories ORDER BY seq`, strings.Join(columns, ", "))

	rows, err := sqldb.GetExecutor(ctx, r.db).QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListCategories"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var cats []model.Category
	for rows.Next() {
		cat, err := scanProjected(rows, fields)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListCategories"), err)
			return nil, repo.ErrFailedToList
		}
		cats = append(cats, cat)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListCategories"), err)
		return nil, repo.ErrFailedToList
	}
	return cats, nil
}

// UpdateCategory replaces the mutable fields of a Category and returns the updated entity.
func (r *implRepository) UpdateCategory(ctx context.Context, opt repo.UpdateCategoryOptions) (model.Category, error) {
	candidate := model.Category{ID: opt.ID, Name: opt.Name, Description: opt.Description, Image: opt.Image}
	if err := candidate.Validate(); err != nil {
		return model.Category{}, fmt.Errorf("%w: %v", repo.ErrInvalidRecord, err)
	}

	const query = `
		UPDATE categories
		SET name = $1, description = $2, image_scheme = $3, image_key = $4, image_url = $5, updated_at = $6
		WHERE id = $7`

	res, err := sqldb.GetExecutor(ctx, r.db).ExecContext(ctx, query,
		opt.Name, opt.Description, string(opt.Image.Scheme), opt.Image.Key, opt.Image.URL, r.now(), opt.ID,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateCategory"), err)
		return model.Category{}, repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Category{}, nil
	}

	return r.GetOneCategory(ctx, repo.GetOneCategoryOptions{ID: opt.ID})
}

// DeleteCategory removes a Category row and returns what was removed.
func (r *implRepository) DeleteCategory(ctx context.Context, id string) (model.Category, error) {
	var deleted model.Category
	err := sqldb.RunInTransaction(ctx, r.db, func(ctx context.Context) error {
		cat, err := r.GetOneCategory(ctx, repo.GetOneCategoryOptions{ID: id})
		if err != nil || cat.ID == "" {
			return err
		}
		if _, err := sqldb.GetExecutor(ctx, r.db).ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id); err != nil {
			return err
		}
		deleted = cat
		return nil
	})
	if sqldb.IsForeignKeyViolation(err) {
		return model.Category{}, repo.ErrHasItems
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteCategory"), err)
		return model.Category{}, repo.ErrFailedToDelete
	}
	return deleted, nil
}

// ListImageRefs returns the image reference of every Category that has one.
func (r *implRepository) ListImageRefs(ctx context.Context) ([]model.ImageRef, error) {
	const query = `SELECT image_scheme, image_key, image_url FROM categories WHERE image_scheme <> '' ORDER BY seq`

	rows, err := sqldb.GetExecutor(ctx, r.db).QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListImageRefs"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var refs []model.ImageRef
	for rows.Next() {
		var scheme string
		ref := model.ImageRef{Kind: model.ImageKindCategory}
		if err := rows.Scan(&scheme, &ref.Key, &ref.URL); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListImageRefs"), err)
			return nil, repo.ErrFailedToList
		}
		ref.Scheme = model.ImageScheme(scheme)
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, repo.ErrFailedToList
	}
	return refs, nil
}
