package usecase

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"hardware-inventory/internal/image"
	"hardware-inventory/internal/model"
)

// ListBlobs lists the blobs the backend holds for kind.
func (uc *implUseCase) ListBlobs(ctx context.Context, kind model.ImageKind) ([]image.Blob, error) {
	blobs, err := uc.repo.List(ctx, kind)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListBlobs List: %v", err)
		return nil, err
	}
	return blobs, nil
}

// PurgeStaged removes staged uploads last modified before cutoff.
func (uc *implUseCase) PurgeStaged(ctx context.Context, cutoff time.Time) (int, error) {
	entries, err := os.ReadDir(uc.stagingDir)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		uc.l.Errorf(ctx, "uc.PurgeStaged ReadDir: %v", err)
		return 0, err
	}

	removed := 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil || !info.ModTime().Before(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(uc.stagingDir, e.Name())); err != nil && !errors.Is(err, fs.ErrNotExist) {
			uc.l.Warnf(ctx, "uc.PurgeStaged Remove %s: %v", e.Name(), err)
			continue
		}
		removed++
	}
	return removed, nil
}
