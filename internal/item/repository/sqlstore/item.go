package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	repo "hardware-inventory/internal/item/repository"
	"hardware-inventory/internal/model"
	"hardware-inventory/pkg/sqldb"
)

const itemColumns = `id, category_id, name, description, price, number_in_stock,
	image_scheme, image_key, image_url, created_at, updated_at`

// CreateItem inserts a new Item row and returns the created entity.
func (r *implRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (model.Item, error) {
	now := r.now()
	item := model.Item{
		ID:            uuid.NewString(),
		CategoryID:    opt.CategoryID,
		Name:          opt.Name,
		Description:   opt.Description,
		Price:         opt.Price,
		NumberInStock: opt.NumberInStock,
		Image:         opt.Image,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := item.Validate(); err != nil {
		return model.Item{}, fmt.Errorf("%w: %v", repo.ErrInvalidRecord, err)
	}

	const query = `
		INSERT INTO items (id, category_id, name, description, price, number_in_stock,
			image_scheme, image_key, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := sqldb.GetExecutor(ctx, r.db).ExecContext(ctx, query,
		item.ID, item.CategoryID, item.Name, item.Description, item.Price, item.NumberInStock,
		string(item.Image.Scheme), item.Image.Key, item.Image.URL, item.CreatedAt, item.UpdatedAt,
	)
	if sqldb.IsForeignKeyViolation(err) {
		return model.Item{}, repo.ErrCategoryMissing
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return model.Item{}, repo.ErrFailedToInsert
	}
	return item, nil
}

// GetOneItem retrieves a single Item by ID.
// Returns zero-value Item (ID == "") when not found.
func (r *implRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (model.Item, error) {
	query := fmt.Sprintf(`SELECT %s FROM items WHERE id = $1 LIMIT 1`, itemColumns)

	item, err := scanItem(sqldb.GetExecutor(ctx, r.db).QueryRowContext(ctx, query, opt.ID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneItem"), err)
		return model.Item{}, repo.ErrFailedToGet
	}
	return item, nil
}

// ListItems returns a page of Items in insertion order and the total count.
func (r *implRepository) ListItems(ctx context.Context, opt repo.ListItemsOptions) ([]model.Item, int, error) {
	exec := sqldb.GetExecutor(ctx, r.db)

	// 1. Count total (without pagination)
	where, args := r.buildFilter(opt)
	var total int
	if err := exec.QueryRowContext(ctx, "SELECT COUNT(*) FROM items "+where, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListItems"), err)
		return nil, 0, repo.ErrFailedToList
	}

	// 2. Fetch page
	mods, args := r.buildListQuery(opt)
	rows, err := exec.QueryContext(ctx, fmt.Sprintf(`SELECT %s FROM items %s`, itemColumns, mods), args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListItems"), err)
			return nil, 0, repo.ErrFailedToList
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListItems"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return items, total, nil
}

// UpdateItem replaces the mutable fields of an Item and returns the updated entity.
func (r *implRepository) UpdateItem(ctx context.Context, opt repo.UpdateItemOptions) (model.Item, error) {
	candidate := model.Item{
		ID:            opt.ID,
		CategoryID:    opt.CategoryID,
		Name:          opt.Name,
		Description:   opt.Description,
		Price:         opt.Price,
		NumberInStock: opt.NumberInStock,
		Image:         opt.Image,
	}
	if err := candidate.Validate(); err != nil {
		return model.Item{}, fmt.Errorf("%w: %v", repo.ErrInvalidRecord, err)
	}

	const query = `
		UPDATE items
		SET category_id = $1, name = $2, description = $3, price = $4, number_in_stock = $5,
			image_scheme = $6, image_key = $7, image_url = $8, updated_at = $9
		WHERE id = $10`

	res, err := sqldb.GetExecutor(ctx, r.db).ExecContext(ctx, query,
		opt.CategoryID, opt.Name, opt.Description, opt.Price, opt.NumberInStock,
		string(opt.Image.Scheme), opt.Image.Key, opt.Image.URL, r.now(), opt.ID,
	)
	if sqldb.IsForeignKeyViolation(err) {
		return model.Item{}, repo.ErrCategoryMissing
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateItem"), err)
		return model.Item{}, repo.ErrFailedToUpdate
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Item{}, nil
	}

	return r.GetOneItem(ctx, repo.GetOneItemOptions{ID: opt.ID})
}

// DeleteItem removes an Item by ID and returns what was removed.
func (r *implRepository) DeleteItem(ctx context.Context, id string) (model.Item, error) {
	var deleted model.Item
	err := sqldb.RunInTransaction(ctx, r.db, func(ctx context.Context) error {
		item, err := r.GetOneItem(ctx, repo.GetOneItemOptions{ID: id})
		if err != nil || item.ID == "" {
			return err
		}
		if _, err := sqldb.GetExecutor(ctx, r.db).ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id); err != nil {
			return err
		}
		deleted = item
		return nil
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteItem"), err)
		return model.Item{}, repo.ErrFailedToDelete
	}
	return deleted, nil
}

// DeleteItemsByCategory removes every Item of a category in one statement and
// returns the count and the non-empty image references of the removed rows.
func (r *implRepository) DeleteItemsByCategory(ctx context.Context, categoryID string) (int, []model.ImageRef, error) {
	const query = `
		DELETE FROM items WHERE category_id = $1
		RETURNING image_scheme, image_key, image_url`

	rows, err := sqldb.GetExecutor(ctx, r.db).QueryContext(ctx, query, categoryID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteItemsByCategory"), err)
		return 0, nil, repo.ErrFailedToDelete
	}
	defer rows.Close()

	count := 0
	var refs []model.ImageRef
	for rows.Next() {
		ref, err := scanImageRef(rows, model.ImageKindItem)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("DeleteItemsByCategory"), err)
			return 0, nil, repo.ErrFailedToDelete
		}
		count++
		if !ref.IsZero() {
			refs = append(refs, ref)
		}
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("DeleteItemsByCategory"), err)
		return 0, nil, repo.ErrFailedToDelete
	}
	return count, refs, nil
}

// ListImageRefs returns the image reference of every Item that has one.
func (r *implRepository) ListImageRefs(ctx context.Context) ([]model.ImageRef, error) {
	const query = `SELECT image_scheme, image_key, image_url FROM items WHERE image_scheme <> '' ORDER BY seq`

	rows, err := sqldb.GetExecutor(ctx, r.db).QueryContext(ctx, query)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListImageRefs"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var refs []model.ImageRef
	for rows.Next() {
		ref, err := scanImageRef(rows, model.ImageKindItem)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListImageRefs"), err)
			return nil, repo.ErrFailedToList
		}
		refs = append(refs, ref)
	}
	if err := rows.Err(); err != nil {
		return nil, repo.ErrFailedToList
	}
	return refs, nil
}
