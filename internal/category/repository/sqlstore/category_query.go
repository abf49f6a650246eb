package sqlstore

import (
	"fmt"

	repo "hardware-inventory/internal/category/repository"
	"hardware-inventory/internal/model"
)

// fieldColumns maps each projectable field to the columns that back it.
var fieldColumns = map[model.CategoryField][]string{
	model.CategoryFieldName:        {"name"},
	model.CategoryFieldDescription: {"description"},
	model.CategoryFieldImage:       {"image_scheme", "image_key", "image_url"},
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCategory(s scanner) (model.Category, error) {
	var (
		cat    model.Category
		scheme string
	)
	err := s.Scan(&cat.ID, &cat.Name, &cat.Description, &scheme, &cat.Image.Key, &cat.Image.URL, &cat.CreatedAt, &cat.UpdatedAt)
	if err != nil {
		return model.Category{}, err
	}
	setImage(&cat, scheme)
	return cat, nil
}

// scanProjected scans a row holding id followed by the columns of fields, in order.
func scanProjected(s scanner, fields []model.CategoryField) (model.Category, error) {
	var (
		cat    model.Category
		scheme string
	)
	dest := []any{&cat.ID}
	for _, f := range fields {
		switch f {
		case model.CategoryFieldName:
			dest = append(dest, &cat.Name)
		case model.CategoryFieldDescription:
			dest = append(dest, &cat.Description)
		case model.CategoryFieldImage:
			dest = append(dest, &scheme, &cat.Image.Key, &cat.Image.URL)
		}
	}
	if err := s.Scan(dest...); err != nil {
		return model.Category{}, err
	}
	setImage(&cat, scheme)
	return cat, nil
}

func setImage(cat *model.Category, scheme string) {
	cat.Image.Scheme = model.ImageScheme(scheme)
	if !cat.Image.IsZero() {
		cat.Image.Kind = model.ImageKindCategory
	}
}

// projection validates and de-duplicates the requested fields, keeping display order.
func projection(requested []model.CategoryField) ([]model.CategoryField, error) {
	if len(requested) == 0 {
		return model.CategoryFields, nil
	}
	want := make(map[model.CategoryField]bool, len(requested))
	for _, f := range requested {
		if _, ok := fieldColumns[f]; !ok {
			return nil, fmt.Errorf("%w: %q", repo.ErrUnknownField, f)
		}
		want[f] = true
	}
	var fields []model.CategoryField
	for _, f := range model.CategoryFields {
		if want[f] {
			fields = append(fields, f)
		}
	}
	return fields, nil
}
