package http

import (
	"github.com/gin-gonic/gin"

	"hardware-inventory/pkg/response"
)

// List godoc
// @Summary     List hardware types
// @Description Returns every hardware type in insertion order. fields restricts the returned attributes.
// @Tags        HardwareTypes
// @Produce     json
// @Param       fields query string false "Comma-separated subset of name,description,image"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Unknown field"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /hardware_types [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err, nil))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Create godoc
// @Summary     Create a hardware type
// @Description Creates a hardware type. The optional image must be a real image under the size ceiling.
// @Tags        HardwareTypes
// @Accept      multipart/form-data
// @Produce     json
// @Param       password    formData string true  "Admin password"
// @Param       name        formData string true  "Name (max 40 characters)"
// @Param       description formData string true  "Description"
// @Param       image       formData file   false "Image"
// @Success     201 {object} createResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     422 {object} response.Resp "Validation failed"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /hardware_types [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err, req.submitted()))
		return
	}

	response.Created(c, h.newCreateResp(output))
}

// Detail godoc
// @Summary     Get a hardware type
// @Description Returns a hardware type with one page of its hardware.
// @Tags        HardwareTypes
// @Produce     json
// @Param       id     path  string true  "Hardware type ID"
// @Param       limit  query int    false "Page size (default: 20)"
// @Param       offset query int    false "Page offset (default: 0)"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /hardware_types/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDetailReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err, nil))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Update godoc
// @Summary     Update a hardware type
// @Description Partial update. A new image replaces the current one; remove_image=true drops it.
// @Tags        HardwareTypes
// @Accept      multipart/form-data
// @Produce     json
// @Param       id           path     string true  "Hardware type ID"
// @Param       password     formData string true  "Admin password"
// @Param       name         formData string false "Name (max 40 characters)"
// @Param       description  formData string false "Description"
// @Param       remove_image formData bool   false "Remove the current image"
// @Param       image        formData file   false "Replacement image"
// @Success     200 {object} updateResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     422 {object} response.Resp "Validation failed"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /hardware_types/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err, req.submitted()))
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Delete godoc
// @Summary     Delete a hardware type
// @Description Removes the hardware type and all of its hardware in one transaction, then their images.
// @Tags        HardwareTypes
// @Produce     json
// @Param       id       path   string true "Hardware type ID"
// @Param       X-Admin-Password header string true "Admin password"
// @Success     200 {object} deleteResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Delete aborted"
// @Router      /hardware_types/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	output, err := h.uc.Delete(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err, nil))
		return
	}

	response.OK(c, h.newDeleteResp(output))
}
