package http

import (
	"strconv"

	"github.com/shopspring/decimal"

	"hardware-inventory/internal/image"
	"hardware-inventory/internal/item"
	"hardware-inventory/internal/model"
	"hardware-inventory/pkg/response"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// --- Request DTOs ---

type createReq struct {
	CategoryID    string `form:"category_id"     binding:"required"`
	Name          string `form:"name"            binding:"required,max=100"`
	Description   string `form:"description"     binding:"required"`
	Price         string `form:"price"           binding:"required,numeric"`
	NumberInStock string `form:"number_in_stock" binding:"required,numeric"`

	image *image.Upload
}

func (r createReq) submitted() map[string]string {
	return map[string]string{
		"category_id":     r.CategoryID,
		"name":            r.Name,
		"description":     r.Description,
		"price":           r.Price,
		"number_in_stock": r.NumberInStock,
	}
}

// toInput parses the numeric fields. Range checks are left to the use case.
func (r createReq) toInput() (item.CreateItemInput, error) {
	fe := model.FieldErrors{}
	price, err := decimal.NewFromString(r.Price)
	if err != nil {
		fe.Add("price", "must be a number")
	}
	stock, err := strconv.Atoi(r.NumberInStock)
	if err != nil {
		fe.Add("number_in_stock", "must be a whole number")
	}
	if len(fe) > 0 {
		return item.CreateItemInput{}, fe
	}
	return item.CreateItemInput{
		CategoryID:    r.CategoryID,
		Name:          r.Name,
		Description:   r.Description,
		Price:         price,
		NumberInStock: stock,
		Image:         r.image,
	}, nil
}

// ---

type listReq struct {
	CategoryID string `uri:"id" binding:"required"`
	Limit      int    `form:"limit"`
	Offset     int    `form:"offset"`
}

func (r listReq) toInput() item.ListByCategoryInput {
	limit := r.Limit
	if limit <= 0 || limit > maxLimit {
		limit = defaultLimit
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
	return item.ListByCategoryInput{CategoryID: r.CategoryID, Limit: limit, Offset: r.Offset}
}

// ---

type updateReq struct {
	ID            string `form:"-"` // populated from URI param
	CategoryID    string `form:"category_id"`
	Name          string `form:"name"            binding:"omitempty,max=100"`
	Description   string `form:"description"`
	Price         string `form:"price"           binding:"omitempty,numeric"`
	NumberInStock string `form:"number_in_stock" binding:"omitempty,numeric"`
	RemoveImage   bool   `form:"remove_image"`

	image *image.Upload
}

func (r updateReq) submitted() map[string]string {
	return map[string]string{
		"category_id":     r.CategoryID,
		"name":            r.Name,
		"description":     r.Description,
		"price":           r.Price,
		"number_in_stock": r.NumberInStock,
	}
}

func (r updateReq) toInput() (item.UpdateItemInput, error) {
	in := item.UpdateItemInput{
		ID:          r.ID,
		CategoryID:  r.CategoryID,
		Name:        r.Name,
		Description: r.Description,
		Image:       r.image,
		RemoveImage: r.RemoveImage,
	}

	fe := model.FieldErrors{}
	if r.Price != "" {
		price, err := decimal.NewFromString(r.Price)
		if err != nil {
			fe.Add("price", "must be a number")
		}
		in.Price = &price
	}
	if r.NumberInStock != "" {
		stock, err := strconv.Atoi(r.NumberInStock)
		if err != nil {
			fe.Add("number_in_stock", "must be a whole number")
		}
		in.NumberInStock = &stock
	}
	if len(fe) > 0 {
		return item.UpdateItemInput{}, fe
	}
	return in, nil
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

type itemResp struct {
	ID            string            `json:"id"`
	CategoryID    string            `json:"category_id"`
	Name          string            `json:"name"`
	Description   string            `json:"description"`
	Price         string            `json:"price"`
	NumberInStock int               `json:"number_in_stock"`
	Image         *imageResp        `json:"image"`
	URL           string            `json:"url"`
	CreatedAt     response.DateTime `json:"created_at"`
	UpdatedAt     response.DateTime `json:"updated_at"`
}

func newItemResp(it model.Item) itemResp {
	return itemResp{
		ID:            it.ID,
		CategoryID:    it.CategoryID,
		Name:          it.Name,
		Description:   it.Description,
		Price:         it.Price.StringFixed(2),
		NumberInStock: it.NumberInStock,
		Image:         newImageResp(it.Image),
		URL:           it.URL(),
		CreatedAt:     response.DateTime(it.CreatedAt),
		UpdatedAt:     response.DateTime(it.UpdatedAt),
	}
}

type categoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

func newCategoryRef(c model.Category) categoryRef {
	return categoryRef{ID: c.ID, Name: c.Name, URL: c.URL()}
}

type itemBody struct {
	Item itemResp `json:"hardware"`
}

func (h *handler) newItemBody(it model.Item) itemBody {
	return itemBody{Item: newItemResp(it)}
}

type listResp struct {
	Category categoryRef `json:"hardware_type"`
	Items    []itemResp  `json:"hardware"`
	Total    int         `json:"total"`
	Limit    int         `json:"limit"`
	Offset   int         `json:"offset"`
}

func (h *handler) newListResp(out item.ListByCategoryOutput) listResp {
	items := make([]itemResp, len(out.Items))
	for i, it := range out.Items {
		items[i] = newItemResp(it)
	}
	return listResp{
		Category: newCategoryRef(out.Category),
		Items:    items,
		Total:    out.Total,
		Limit:    out.Limit,
		Offset:   out.Offset,
	}
}

type optionsResp struct {
	Categories []categoryRef `json:"hardware_types"`
}

func (h *handler) newOptionsResp(out item.OptionsOutput) optionsResp {
	cats := make([]categoryRef, len(out.Categories))
	for i, c := range out.Categories {
		cats[i] = newCategoryRef(c)
	}
	return optionsResp{Categories: cats}
}
