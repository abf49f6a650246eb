package gcs

import (
	"context"
	"errors"
	"strings"

	"hardware-inventory/internal/image"
	repo "hardware-inventory/internal/image/repository"
	"hardware-inventory/internal/model"
	"hardware-inventory/pkg/gcs"
)

// Put uploads the blob and returns a remote reference holding the object name and URL.
func (r *implRepository) Put(ctx context.Context, opt repo.PutOptions) (model.ImageRef, error) {
	if !opt.Kind.Valid() || opt.Name == "" || strings.Contains(opt.Name, "/") {
		return model.ImageRef{}, repo.ErrInvalidKey
	}

	obj, err := r.store.Upload(ctx, gcs.UploadRequest{
		Name:        objectName(opt.Kind, opt.Name),
		ContentType: opt.ContentType,
		Body:        opt.Body,
	})
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Put"), err)
		return model.ImageRef{}, repo.ErrFailedToPut
	}

	return model.RemoteImage(opt.Kind, obj.URL, obj.Name), nil
}

// Delete removes the object named by ref.Key.
func (r *implRepository) Delete(ctx context.Context, ref model.ImageRef) error {
	if ref.Scheme != model.ImageSchemeRemote {
		return repo.ErrSchemeMismatch
	}
	if ref.Key == "" {
		return repo.ErrInvalidKey
	}

	err := r.store.Delete(ctx, ref.Key)
	if errors.Is(err, gcs.ErrObjectNotFound) {
		return repo.ErrBlobNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Delete"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// List returns every object under the kind prefix.
func (r *implRepository) List(ctx context.Context, kind model.ImageKind) ([]image.Blob, error) {
	if !kind.Valid() {
		return nil, repo.ErrInvalidKey
	}

	objects, err := r.store.List(ctx, string(kind)+"/")
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("List"), err)
		return nil, repo.ErrFailedToList
	}

	blobs := make([]image.Blob, 0, len(objects))
	for _, o := range objects {
		blobs = append(blobs, image.Blob{
			Ref:     model.RemoteImage(kind, o.URL, o.Name),
			ModTime: o.Updated,
		})
	}
	return blobs, nil
}

func objectName(kind model.ImageKind, name string) string {
	return string(kind) + "/" + name
}
