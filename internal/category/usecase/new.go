package usecase

import (
	"time"

	"hardware-inventory/internal/category/repository"
	"hardware-inventory/internal/image"
	itemRepo "hardware-inventory/internal/item/repository"
	"hardware-inventory/pkg/log"
	"hardware-inventory/pkg/sqldb"
)

const defaultTxTimeout = 10 * time.Second

// implUseCase is the private implementation of category.UseCase.
type implUseCase struct {
	repo      repository.Repository
	itemRepo  itemRepo.Repository
	img       image.UseCase
	tx        sqldb.Transactor
	txTimeout time.Duration
	l         log.Logger
}

// New creates a new category UseCase implementation.
// tx must run both repositories in one unit of work.
func New(repo repository.Repository, itemRepo itemRepo.Repository, img image.UseCase, tx sqldb.Transactor, txTimeout time.Duration, l log.Logger) *implUseCase {
	if txTimeout <= 0 {
		txTimeout = defaultTxTimeout
	}
	return &implUseCase{
		repo:      repo,
		itemRepo:  itemRepo,
		img:       img,
		tx:        tx,
		txTimeout: txTimeout,
		l:         l,
	}
}
