package repository

import (
	"context"

	"hardware-inventory/internal/image"
	"hardware-inventory/internal/model"
)

// Repository is a blob store for images. Local disk and Google Cloud Storage implement it.
type Repository interface {
	Scheme() model.ImageScheme
	Put(ctx context.Context, opt PutOptions) (model.ImageRef, error)
	// Delete returns ErrBlobNotFound when the blob is already gone.
	Delete(ctx context.Context, ref model.ImageRef) error
	List(ctx context.Context, kind model.ImageKind) ([]image.Blob, error)
}
