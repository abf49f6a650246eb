package local

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"hardware-inventory/internal/image"
	repo "hardware-inventory/internal/image/repository"
	"hardware-inventory/internal/model"
)

// Put writes the blob to a temporary file and renames it into place.
func (r *implRepository) Put(ctx context.Context, opt repo.PutOptions) (model.ImageRef, error) {
	dir, err := r.kindDir(opt.Kind)
	if err != nil {
		return model.ImageRef{}, err
	}
	if !validKey(opt.Name) {
		return model.ImageRef{}, repo.ErrInvalidKey
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		r.l.Errorf(ctx, "%s mkdir: %v", r.dsn("Put"), err)
		return model.ImageRef{}, repo.ErrFailedToPut
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		r.l.Errorf(ctx, "%s create: %v", r.dsn("Put"), err)
		return model.ImageRef{}, repo.ErrFailedToPut
	}
	tmpName := tmp.Name()

	_, copyErr := io.Copy(tmp, opt.Body)
	closeErr := tmp.Close()
	if copyErr != nil || closeErr != nil {
		os.Remove(tmpName)
		r.l.Errorf(ctx, "%s write: %v", r.dsn("Put"), errors.Join(copyErr, closeErr))
		return model.ImageRef{}, repo.ErrFailedToPut
	}

	if err := os.Rename(tmpName, filepath.Join(dir, opt.Name)); err != nil {
		os.Remove(tmpName)
		r.l.Errorf(ctx, "%s rename: %v", r.dsn("Put"), err)
		return model.ImageRef{}, repo.ErrFailedToPut
	}

	return model.LocalImage(opt.Kind, opt.Name, r.publicPrefix), nil
}

// Delete unlinks the file behind ref.
func (r *implRepository) Delete(ctx context.Context, ref model.ImageRef) error {
	if ref.Scheme != model.ImageSchemeLocal {
		return repo.ErrSchemeMismatch
	}
	dir, err := r.kindDir(ref.Kind)
	if err != nil {
		return err
	}
	if !validKey(ref.Key) {
		return repo.ErrInvalidKey
	}

	if err := os.Remove(filepath.Join(dir, ref.Key)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return repo.ErrBlobNotFound
		}
		r.l.Errorf(ctx, "%s: %v", r.dsn("Delete"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// List returns the files stored for kind. A missing directory lists as empty.
func (r *implRepository) List(ctx context.Context, kind model.ImageKind) ([]image.Blob, error) {
	dir, err := r.kindDir(kind)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("List"), err)
		return nil, repo.ErrFailedToList
	}

	blobs := make([]image.Blob, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !validKey(e.Name()) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			// removed between ReadDir and Info
			continue
		}
		blobs = append(blobs, image.Blob{
			Ref:     model.LocalImage(kind, e.Name(), r.publicPrefix),
			ModTime: info.ModTime(),
		})
	}
	return blobs, nil
}

func (r *implRepository) kindDir(kind model.ImageKind) (string, error) {
	if !kind.Valid() {
		return "", fmt.Errorf("%w: unknown kind %q", repo.ErrInvalidKey, kind)
	}
	return filepath.Join(r.root, string(kind)), nil
}

// validKey accepts plain file names only. Temporary files are hidden.
func validKey(key string) bool {
	return key != "" && key != "." && key != ".." &&
		filepath.Base(key) == key && key[0] != '.'
}
