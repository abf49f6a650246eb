package gcs

import (
	"errors"
	"io"
	"time"
)

// ErrObjectNotFound is returned when the object does not exist in the bucket.
var ErrObjectNotFound = errors.New("gcs: object not found")

// Config selects the bucket and how object URLs are built.
type Config struct {
	Bucket string
	// PublicBaseURL prefixes object names to form their public URL.
	// Defaults to https://storage.googleapis.com/<bucket>.
	PublicBaseURL string
}

// UploadRequest is the input for uploading an object.
type UploadRequest struct {
	Name        string
	ContentType string
	Body        io.Reader
}

// Object is a simplified representation of a stored object.
type Object struct {
	Name       string
	URL        string
	Size       int64
	Generation int64
	Updated    time.Time
}
