// Package imagesniff classifies content as image or not by its leading bytes.
package imagesniff

import (
	"io"

	"github.com/gabriel-vasile/mimetype"
)

// PrefixSize is how many leading bytes are inspected.
const PrefixSize = 3072

// Result is the outcome of a classification.
type Result struct {
	IsImage   bool
	MIME      string
	Extension string
}

// Classify inspects prefix and reports whether it starts like an image.
// The declared content type of an upload is never consulted.
func Classify(prefix []byte) Result {
	if len(prefix) > PrefixSize {
		prefix = prefix[:PrefixSize]
	}
	m := mimetype.Detect(prefix)
	return Result{
		IsImage:   isImage(m),
		MIME:      m.String(),
		Extension: m.Extension(),
	}
}

// ClassifyReader reads up to PrefixSize bytes from r and classifies them.
func ClassifyReader(r io.Reader) (Result, error) {
	buf := make([]byte, PrefixSize)
	n, err := io.ReadFull(r, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return Result{}, err
	}
	return Classify(buf[:n]), nil
}

// rasterTypes are the formats recognized by their binary signature.
// Text-based formats such as SVG are never accepted.
var rasterTypes = []string{
	"image/jpeg",
	"image/png",
	"image/gif",
	"image/webp",
	"image/bmp",
	"image/tiff",
	"image/x-icon",
	"image/avif",
	"image/heic",
	"image/heif",
}

func isImage(m *mimetype.MIME) bool {
	for _, t := range rasterTypes {
		if m.Is(t) {
			return true
		}
	}
	return false
}
