package http

import (
	"hardware-inventory/internal/category"
	"hardware-inventory/internal/image"
	"hardware-inventory/pkg/log"
)

type handler struct {
	l   log.Logger
	uc  category.UseCase
	img image.UseCase
}

// New creates a new HTTP handler for the category domain.
// img is used only to stage uploaded files before they reach uc.
func New(l log.Logger, uc category.UseCase, img image.UseCase) *handler {
	return &handler{
		l:   l,
		uc:  uc,
		img: img,
	}
}
