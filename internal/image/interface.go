package image

import (
	"context"
	"io"
	"time"

	"hardware-inventory/internal/model"
)

// UseCase takes an uploaded file from staging to a stored, referenced blob and
// removes blobs once nothing references them.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// Stage copies r into the staging directory.
	Stage(ctx context.Context, originalName string, r io.Reader) (Upload, error)
	// Validate sniffs the staged bytes and checks the size ceiling.
	// A rejected upload is removed from staging before returning.
	Validate(ctx context.Context, up Upload) (Upload, error)
	// Release removes a staged upload that will not be stored.
	Release(ctx context.Context, up Upload)
	// Store moves a validated upload into the backend.
	Store(ctx context.Context, kind model.ImageKind, up Upload) (model.ImageRef, error)
	// Replace runs attach, which must durably point the owning record at next,
	// and only then discards prev. If attach fails next is discarded and prev is kept.
	Replace(ctx context.Context, prev, next model.ImageRef, attach func(ctx context.Context) error) error
	// Discard deletes the blob behind ref. Absent refs and absent blobs are not errors.
	Discard(ctx context.Context, ref model.ImageRef) error

	// ListBlobs lists every stored blob of kind.
	ListBlobs(ctx context.Context, kind model.ImageKind) ([]Blob, error)
	// PurgeStaged removes staged files last modified before cutoff.
	PurgeStaged(ctx context.Context, cutoff time.Time) (int, error)
}
