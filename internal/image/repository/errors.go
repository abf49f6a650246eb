package repository

import "errors"

var (
	ErrBlobNotFound   = errors.New("blob not found")
	ErrSchemeMismatch = errors.New("reference belongs to another storage backend")
	ErrInvalidKey     = errors.New("invalid blob key")
	ErrFailedToPut    = errors.New("failed to store blob")
	ErrFailedToDelete = errors.New("failed to delete blob")
	ErrFailedToList   = errors.New("failed to list blobs")
)
