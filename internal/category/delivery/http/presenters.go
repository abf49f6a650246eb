package http

import (
	"strings"

	"hardware-inventory/internal/category"
	"hardware-inventory/internal/image"
	"hardware-inventory/internal/model"
	"hardware-inventory/pkg/response"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// --- Request DTOs ---

type createReq struct {
	Name        string `form:"name"        binding:"required,max=40"`
	Description string `form:"description" binding:"required"`

	image *image.Upload
}

// submitted echoes the non-image values back on validation failure.
func (r createReq) submitted() map[string]string {
	return map[string]string{"name": r.Name, "description": r.Description}
}

func (r createReq) toInput() category.CreateCategoryInput {
	return category.CreateCategoryInput{
		Name:        r.Name,
		Description: r.Description,
		Image:       r.image,
	}
}

// ---

type listReq struct {
	Fields string `form:"fields"`
}

func (r listReq) toInput() category.ListCategoriesInput {
	var fields []string
	if r.Fields != "" {
		fields = strings.Split(r.Fields, ",")
	}
	return category.ListCategoriesInput{Fields: fields}
}

// ---

type detailReq struct {
	ID     string `uri:"id"  binding:"required"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (r detailReq) toInput() category.DetailCategoryInput {
	limit := r.Limit
	if limit <= 0 || limit > maxLimit {
		limit = defaultLimit
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
	return category.DetailCategoryInput{ID: r.ID, Limit: limit, Offset: r.Offset}
}

// ---

type updateReq struct {
	ID          string `form:"-"` // populated from URI param
	Name        string `form:"name"         binding:"omitempty,max=40"`
	Description string `form:"description"`
	RemoveImage bool   `form:"remove_image"`

	image *image.Upload
}

func (r updateReq) submitted() map[string]string {
	return map[string]string{"name": r.Name, "description": r.Description}
}

func (r updateReq) toInput() category.UpdateCategoryInput {
	return category.UpdateCategoryInput{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Image:       r.image,
		RemoveImage: r.RemoveImage,
	}
}

// --- Response DTOs ---

type imageResp struct {
	URL    string `json:"url"`
	Source string `json:"source"`
}

func newImageResp(ref model.ImageRef) *imageResp {
	if ref.IsZero() {
		return nil
	}
	return &imageResp{URL: ref.URL, Source: string(ref.Scheme)}
}

type categoryResp struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Image       *imageResp        `json:"image"`
	URL         string            `json:"url"`
	CreatedAt   response.DateTime `json:"created_at"`
	UpdatedAt   response.DateTime `json:"updated_at"`
}

func newCategoryResp(c model.Category) categoryResp {
	return categoryResp{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Image:       newImageResp(c.Image),
		URL:         c.URL(),
		CreatedAt:   response.DateTime(c.CreatedAt),
		UpdatedAt:   response.DateTime(c.UpdatedAt),
	}
}

type itemResp struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Price         string     `json:"price"`
	NumberInStock int        `json:"number_in_stock"`
	Image         *imageResp `json:"image"`
	URL           string     `json:"url"`
}

func newItemResp(it model.Item) itemResp {
	return itemResp{
		ID:            it.ID,
		Name:          it.Name,
		Price:         it.Price.StringFixed(2),
		NumberInStock: it.NumberInStock,
		Image:         newImageResp(it.Image),
		URL:           it.URL(),
	}
}

type listResp struct {
	Fields     []string         `json:"fields"`
	Categories []map[string]any `json:"hardware_types"`
}

// newListResp renders only the requested fields. id and url are always present.
func (h *handler) newListResp(out category.ListCategoriesOutput) listResp {
	fields := make([]string, len(out.Fields))
	for i, f := range out.Fields {
		fields[i] = string(f)
	}

	cats := make([]map[string]any, len(out.Categories))
	for i, c := range out.Categories {
		row := map[string]any{"id": c.ID, "url": c.URL()}
		for _, f := range out.Fields {
			switch f {
			case model.CategoryFieldName:
				row["name"] = c.Name
			case model.CategoryFieldDescription:
				row["description"] = c.Description
			case model.CategoryFieldImage:
				row["image"] = newImageResp(c.Image)
			}
		}
		cats[i] = row
	}
	return listResp{Fields: fields, Categories: cats}
}

type detailResp struct {
	Category categoryResp `json:"hardware_type"`
	Items    []itemResp   `json:"hardware"`
	Total    int          `json:"total"`
	Limit    int          `json:"limit"`
	Offset   int          `json:"offset"`
}

func (h *handler) newDetailResp(out category.DetailCategoryOutput) detailResp {
	items := make([]itemResp, len(out.Items))
	for i, it := range out.Items {
		items[i] = newItemResp(it)
	}
	return detailResp{
		Category: newCategoryResp(out.Category),
		Items:    items,
		Total:    out.Total,
		Limit:    out.Limit,
		Offset:   out.Offset,
	}
}

type createResp struct {
	Category categoryResp `json:"hardware_type"`
}

func (h *handler) newCreateResp(out category.CreateCategoryOutput) createResp {
	return createResp{Category: newCategoryResp(out.Category)}
}

type updateResp struct {
	Category categoryResp `json:"hardware_type"`
}

func (h *handler) newUpdateResp(out category.UpdateCategoryOutput) updateResp {
	return updateResp{Category: newCategoryResp(out.Category)}
}

type deleteResp struct {
	PurgedItems     int `json:"purged_items"`
	CleanupFailures int `json:"cleanup_failures"`
}

func (h *handler) newDeleteResp(out category.DeleteCategoryOutput) deleteResp {
	return deleteResp{PurgedItems: out.PurgedItems, CleanupFailures: out.CleanupFailures}
}
