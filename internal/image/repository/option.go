package repository

import (
	"io"

	"hardware-inventory/internal/model"
)

// PutOptions holds parameters for writing a new blob.
type PutOptions struct {
	Kind        model.ImageKind
	Name        string
	ContentType string
	Body        io.Reader
}
