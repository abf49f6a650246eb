package gcs

import (
	"context"
	"fmt"

	"hardware-inventory/internal/image/repository"
	"hardware-inventory/internal/model"
	"hardware-inventory/pkg/gcs"
	"hardware-inventory/pkg/log"
)

// ObjectStore is the part of *gcs.Client this repository needs.
type ObjectStore interface {
	Upload(ctx context.Context, req gcs.UploadRequest) (gcs.Object, error)
	Delete(ctx context.Context, name string) error
	List(ctx context.Context, prefix string) ([]gcs.Object, error)
}

type implRepository struct {
	store ObjectStore
	l     log.Logger
}

// New creates a Repository backed by a Google Cloud Storage bucket.
// Objects are named <kind>/<name>.
func New(store ObjectStore, l log.Logger) repository.Repository {
	if store == nil {
		panic("image/repository/gcs: object store is required")
	}
	return &implRepository{store: store, l: l}
}

func (r *implRepository) Scheme() model.ImageScheme {
	return model.ImageSchemeRemote
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("image/repository/gcs.%s", method)
}
