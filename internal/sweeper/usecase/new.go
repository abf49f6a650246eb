package usecase

import (
	"time"

	catRepo "hardware-inventory/internal/category/repository"
	"hardware-inventory/internal/image"
	itemRepo "hardware-inventory/internal/item/repository"
	"hardware-inventory/internal/sweeper"
	"hardware-inventory/pkg/log"
)

type implUseCase struct {
	catRepo  catRepo.Repository
	itemRepo itemRepo.Repository
	img      image.UseCase
	grace    time.Duration
	now      func() time.Time
	l        log.Logger
}

// New creates a new sweeper UseCase implementation.
func New(catRepo catRepo.Repository, itemRepo itemRepo.Repository, img image.UseCase, cfg sweeper.Config, l log.Logger) *implUseCase {
	grace := cfg.GracePeriod
	if grace <= 0 {
		grace = sweeper.DefaultGracePeriod
	}
	return &implUseCase{
		catRepo:  catRepo,
		itemRepo: itemRepo,
		img:      img,
		grace:    grace,
		now:      time.Now,
		l:        l,
	}
}
