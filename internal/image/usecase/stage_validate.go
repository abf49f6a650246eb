package usecase

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"

	"hardware-inventory/internal/image"
	"hardware-inventory/pkg/imagesniff"
)

// Stage copies r into a uniquely named file in the staging directory.
// At most one byte past the size ceiling is written, which is enough for Validate to reject it.
func (uc *implUseCase) Stage(ctx context.Context, originalName string, r io.Reader) (image.Upload, error) {
	if err := os.MkdirAll(uc.stagingDir, 0o755); err != nil {
		uc.l.Errorf(ctx, "uc.Stage MkdirAll: %v", err)
		return image.Upload{}, err
	}

	f, err := os.CreateTemp(uc.stagingDir, "upload-*")
	if err != nil {
		uc.l.Errorf(ctx, "uc.Stage CreateTemp: %v", err)
		return image.Upload{}, err
	}

	size, copyErr := io.Copy(f, io.LimitReader(r, uc.maxSize+1))
	closeErr := f.Close()
	if err := errors.Join(copyErr, closeErr); err != nil {
		os.Remove(f.Name())
		uc.l.Errorf(ctx, "uc.Stage Copy: %v", err)
		return image.Upload{}, err
	}

	return image.Upload{
		Path:         f.Name(),
		OriginalName: originalName,
		Size:         size,
	}, nil
}

// Validate classifies the first bytes of the staged file and enforces the size ceiling.
// Both rules are always checked so the caller can report every violation.
func (uc *implUseCase) Validate(ctx context.Context, up image.Upload) (image.Upload, error) {
	if up.Path == "" {
		return image.Upload{}, image.ErrEmptyUpload
	}

	f, err := os.Open(up.Path)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Validate Open: %v", err)
		return image.Upload{}, err
	}
	result, err := imagesniff.ClassifyReader(f)
	f.Close()
	if err != nil {
		uc.l.Errorf(ctx, "uc.Validate ClassifyReader: %v", err)
		uc.Release(ctx, up)
		return image.Upload{}, err
	}

	var reasons []error
	if !result.IsImage {
		reasons = append(reasons, image.ErrNotAnImage)
	}
	if up.Size > uc.maxSize {
		reasons = append(reasons, image.ErrTooLarge)
	}
	if len(reasons) > 0 {
		uc.l.Infof(ctx, "uc.Validate rejected %q (%s, %d bytes): %v", up.OriginalName, result.MIME, up.Size, reasons)
		uc.Release(ctx, up)
		return image.Upload{}, &image.ValidationError{Reasons: reasons}
	}

	up.ContentType = result.MIME
	up.Extension = result.Extension
	return up, nil
}

// Release removes a staged upload. A missing file is fine.
func (uc *implUseCase) Release(ctx context.Context, up image.Upload) {
	if up.Path == "" {
		return
	}
	if err := os.Remove(up.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		uc.l.Warnf(ctx, "uc.Release Remove %s: %v", up.Path, err)
	}
}
