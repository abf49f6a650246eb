package usecase

import (
	"hardware-inventory/internal/image"
	"hardware-inventory/internal/image/repository"
	"hardware-inventory/pkg/log"
)

// implUseCase is the private implementation of image.UseCase.
type implUseCase struct {
	repo       repository.Repository
	l          log.Logger
	stagingDir string
	maxSize    int64
}

// New creates a new image UseCase implementation.
func New(repo repository.Repository, l log.Logger, cfg image.Config) *implUseCase {
	if cfg.StagingDir == "" {
		panic("image/usecase: staging dir is required")
	}
	return &implUseCase{
		repo:       repo,
		l:          l,
		stagingDir: cfg.StagingDir,
		maxSize:    cfg.Limit(),
	}
}
