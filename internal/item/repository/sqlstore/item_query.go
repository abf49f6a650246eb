package sqlstore

import (
	"fmt"
	"strings"

	repo "hardware-inventory/internal/item/repository"
	"hardware-inventory/internal/model"
)

type scanner interface {
	Scan(dest ...any) error
}

func scanItem(s scanner) (model.Item, error) {
	var (
		item   model.Item
		scheme string
	)
	err := s.Scan(
		&item.ID, &item.CategoryID, &item.Name, &item.Description, &item.Price, &item.NumberInStock,
		&scheme, &item.Image.Key, &item.Image.URL, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return model.Item{}, err
	}
	item.Image.Scheme = model.ImageScheme(scheme)
	if !item.Image.IsZero() {
		item.Image.Kind = model.ImageKindItem
	}
	return item, nil
}

func scanImageRef(s scanner, kind model.ImageKind) (model.ImageRef, error) {
	var ref model.ImageRef
	var scheme string
	if err := s.Scan(&scheme, &ref.Key, &ref.URL); err != nil {
		return model.ImageRef{}, err
	}
	if scheme == "" {
		return model.NoImage(), nil
	}
	ref.Scheme = model.ImageScheme(scheme)
	ref.Kind = kind
	return ref, nil
}

// buildFilter builds the WHERE clause + args shared by count and list.
func (r *implRepository) buildFilter(opt repo.ListItemsOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.CategoryID != "" {
		conditions = append(conditions, fmt.Sprintf("category_id = $%d", idx))
		args = append(args, opt.CategoryID)
		idx++
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

// buildListQuery builds the full WHERE + ORDER + LIMIT + OFFSET clause for ListItems.
func (r *implRepository) buildListQuery(opt repo.ListItemsOptions) (string, []any) {
	where, args := r.buildFilter(opt)
	parts := []string{}
	if where != "" {
		parts = append(parts, where)
	}
	idx := len(args) + 1

	// Insertion order
	parts = append(parts, "ORDER BY seq")

	// Pagination
	if opt.Limit > 0 {
		parts = append(parts, fmt.Sprintf("LIMIT $%d", idx))
		args = append(args, opt.Limit)
		idx++
		if opt.Offset > 0 {
			parts = append(parts, fmt.Sprintf("OFFSET $%d", idx))
			args = append(args, opt.Offset)
		}
	}

	return strings.Join(parts, " "), args
}
