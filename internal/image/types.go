package image

import (
	"time"

	"hardware-inventory/internal/model"
)

// Upload is a file received from a client and staged on local disk.
type Upload struct {
	Path         string
	OriginalName string
	Size         int64
	// Set by Validate.
	ContentType string
	Extension   string
}

// Validated reports whether the upload passed Validate.
func (u Upload) Validated() bool {
	return u.ContentType != ""
}

// SizeRule selects how the upload size ceiling is computed.
type SizeRule string

const (
	// SizeRuleLegacy rejects when size/1000 > 1024, i.e. anything over 1,024,000 bytes.
	SizeRuleLegacy SizeRule = "legacy"
	// SizeRuleBinary rejects anything over 1 MiB (1,048,576 bytes).
	SizeRuleBinary SizeRule = "binary"
)

const (
	legacyLimit int64 = 1024 * 1000
	binaryLimit int64 = 1 << 20
)

// Limit returns the largest accepted size in bytes.
func (r SizeRule) Limit() int64 {
	if r == SizeRuleBinary {
		return binaryLimit
	}
	return legacyLimit
}

// Config configures the manager.
type Config struct {
	StagingDir string
	SizeRule   SizeRule
	// MaxSizeBytes overrides SizeRule when positive.
	MaxSizeBytes int64
}

// Blob is a stored image as listed by a backend.
type Blob struct {
	Ref     model.ImageRef
	ModTime time.Time
}

// Limit returns the effective size ceiling in bytes.
func (c Config) Limit() int64 {
	if c.MaxSizeBytes > 0 {
		return c.MaxSizeBytes
	}
	return c.SizeRule.Limit()
}
