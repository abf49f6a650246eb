package usecase

import (
	catRepo "hardware-inventory/internal/category/repository"
	"hardware-inventory/internal/image"
	"hardware-inventory/internal/item/repository"
	"hardware-inventory/pkg/log"
)

// implUseCase is the private implementation of item.UseCase.
type implUseCase struct {
	repo    repository.Repository
	catRepo catRepo.Repository
	img     image.UseCase
	l       log.Logger
}

// New creates a new item UseCase implementation.
func New(repo repository.Repository, catRepo catRepo.Repository, img image.UseCase, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:    repo,
		catRepo: catRepo,
		img:     img,
		l:       l,
	}
}
