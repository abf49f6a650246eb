package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"hardware-inventory/internal/image"
)

// FormField is the multipart field an image is uploaded under.
const FormField = "image"

// StageFormFile stages the file sent under field. It returns nil when the request carries none.
// The caller owns the returned upload and must hand it to a use case or release it.
func StageFormFile(c *gin.Context, uc image.UseCase, field string) (*image.Upload, error) {
	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	// Browsers send an empty part when no file was picked.
	if fh.Filename == "" && fh.Size == 0 {
		return nil, nil
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	up, err := uc.Stage(c.Request.Context(), fh.Filename, f)
	if err != nil {
		return nil, err
	}
	return &up, nil
}
