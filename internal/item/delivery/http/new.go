package http

import (
	"hardware-inventory/internal/image"
	"hardware-inventory/internal/item"
	"hardware-inventory/pkg/log"
)

type handler struct {
	l   log.Logger
	uc  item.UseCase
	img image.UseCase
}

// New creates a new HTTP handler for the item domain.
func New(l log.Logger, uc item.UseCase, img image.UseCase) *handler {
	return &handler{
		l:   l,
		uc:  uc,
		img: img,
	}
}
