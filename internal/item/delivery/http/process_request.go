package http

import (
	"github.com/gin-gonic/gin"

	imageHTTP "hardware-inventory/internal/image/delivery/http"
	pkgErrors "hardware-inventory/pkg/errors"
)

// processCreateReq binds the create form. On the nested route the category comes from the path.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if id := c.Param("id"); id != "" {
		req.CategoryID = id
	}
	if err := c.ShouldBind(&req); err != nil {
		return req, h.bindError(err, req.submitted())
	}
	if id := c.Param("id"); id != "" {
		req.CategoryID = id
	}

	up, err := imageHTTP.StageFormFile(c, h.img, imageHTTP.FormField)
	if err != nil {
		if pkgErrors.IsRequestTooLarge(err) {
			return req, pkgErrors.ErrRequestTooLarge
		}
		h.l.Errorf(c.Request.Context(), "http.processCreateReq StageFormFile: %v", err)
		return req, pkgErrors.ErrInternalServerError
	}
	req.image = up
	return req, nil
}

// processListReq binds the category URI param and pagination query.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindUri(&req); err != nil {
		return req, pkgErrors.ErrBadRequest
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.ErrBadRequest
	}
	return req, nil
}

// processUpdateReq binds the edit form + URI param and stages the optional image.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBind(&req); err != nil {
		return req, h.bindError(err, req.submitted())
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, pkgErrors.ErrBadRequest
	}

	up, err := imageHTTP.StageFormFile(c, h.img, imageHTTP.FormField)
	if err != nil {
		if pkgErrors.IsRequestTooLarge(err) {
			return req, pkgErrors.ErrRequestTooLarge
		}
		h.l.Errorf(c.Request.Context(), "http.processUpdateReq StageFormFile: %v", err)
		return req, pkgErrors.ErrInternalServerError
	}
	req.image = up
	return req, nil
}
