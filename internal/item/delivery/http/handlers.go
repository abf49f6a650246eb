package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hardware-inventory/pkg/response"
)

// Index godoc
// @Summary     Hardware index
// @Description Hardware is browsed per hardware type, so the index redirects to the hardware type list.
// @Tags        Hardware
// @Success     302
// @Router      /hardware [GET]
func (h *handler) Index(c *gin.Context) {
	c.Redirect(http.StatusFound, "/hardware_types")
}

// Options godoc
// @Summary     Hardware type choices
// @Description Lists the hardware types new hardware can be filed under. 409 when none exist yet.
// @Tags        Hardware
// @Produce     json
// @Success     200 {object} optionsResp
// @Failure     409 {object} response.Resp "No hardware type exists"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /hardware/options [GET]
func (h *handler) Options(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Options(ctx)
	if err != nil {
		h.l.Warnf(ctx, "uc.Options: %v", err)
		response.Error(c, h.mapError(err, nil))
		return
	}

	response.OK(c, h.newOptionsResp(output))
}

// Create godoc
// @Summary     Create hardware
// @Description Creates hardware under an existing hardware type. On the nested route the type comes from the path.
// @Tags        Hardware
// @Accept      multipart/form-data
// @Produce     json
// @Param       password        formData string true  "Admin password"
// @Param       category_id     formData string true  "Hardware type ID"
// @Param       name            formData string true  "Name (max 100 characters)"
// @Param       description     formData string true  "Description"
// @Param       price           formData number true  "Price"
// @Param       number_in_stock formData int    true  "Units in stock"
// @Param       image           formData file   false "Image"
// @Success     201 {object} itemBody
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     422 {object} response.Resp "Validation failed"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /hardware [POST]
// @Router      /hardware_types/{id}/hardware [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	input, err := req.toInput()
	if err != nil {
		h.releaseImage(c, req.image)
		response.Error(c, h.mapError(err, req.submitted()))
		return
	}

	output, err := h.uc.Create(ctx, input)
	if err != nil {
		h.l.Warnf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err, req.submitted()))
		return
	}

	response.Created(c, h.newItemBody(output.Item))
}

// ListByCategory godoc
// @Summary     List hardware of a type
// @Description Returns one page of the hardware filed under a hardware type, in insertion order.
// @Tags        Hardware
// @Produce     json
// @Param       id     path  string true  "Hardware type ID"
// @Param       limit  query int    false "Page size (default: 20)"
// @Param       offset query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /hardware_types/{id}/hardware [GET]
func (h *handler) ListByCategory(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ListByCategory(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.ListByCategory: %v", err)
		response.Error(c, h.mapError(err, nil))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get hardware
// @Tags        Hardware
// @Produce     json
// @Param       id path string true "Hardware ID"
// @Success     200 {object} itemBody
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /hardware/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Detail(ctx, c.Param("id"))
	if err != nil {
		h.l.Warnf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err, nil))
		return
	}

	response.OK(c, h.newItemBody(output.Item))
}

// Update godoc
// @Summary     Update hardware
// @Description Partial update. A new image replaces the current one; remove_image=true drops it.
// @Tags        Hardware
// @Accept      multipart/form-data
// @Produce     json
// @Param       id              path     string true  "Hardware ID"
// @Param       password        formData string true  "Admin password"
// @Param       category_id     formData string false "Hardware type ID"
// @Param       name            formData string false "Name"
// @Param       description     formData string false "Description"
// @Param       price           formData number false "Price"
// @Param       number_in_stock formData int    false "Units in stock"
// @Param       remove_image    formData bool   false "Remove the current image"
// @Param       image           formData file   false "Replacement image"
// @Success     200 {object} itemBody
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     422 {object} response.Resp "Validation failed"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /hardware/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	input, err := req.toInput()
	if err != nil {
		h.releaseImage(c, req.image)
		response.Error(c, h.mapError(err, req.submitted()))
		return
	}

	output, err := h.uc.Update(ctx, input)
	if err != nil {
		h.l.Warnf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err, req.submitted()))
		return
	}

	response.OK(c, h.newItemBody(output.Item))
}

// Delete godoc
// @Summary     Delete hardware
// @Description Removes the hardware record, then its image.
// @Tags        Hardware
// @Produce     json
// @Param       id               path   string true "Hardware ID"
// @Param       X-Admin-Password header string true "Admin password"
// @Success     200 {object} response.Resp "OK"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /hardware/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("id")); err != nil {
		h.l.Warnf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err, nil))
		return
	}

	response.OK(c, nil)
}
