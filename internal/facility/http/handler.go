package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/halisaha/field-booking-backend/internal/facility"
	"github.com/halisaha/field-booking-backend/internal/pkg/request"
	"github.com/halisaha/field-booking-backend/internal/pkg/response"
)

type FacilityHandler struct {
	service facility.Service
}

func NewHandler(service facility.Service) *FacilityHandler {
	return &FacilityHandler{service: service}
}

// List returns every facility ordered by name.
func (h *FacilityHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]FacilityResponse, len(items))
	for i, f := range items {
		out[i] = NewFacilityResponse(f)
	}
	c.JSON(http.StatusOK, gin.H{"facilities": out})
}

func (h *FacilityHandler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "Geçersiz tesis kimliği.", err)
		return
	}

	f, err := h.service.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"facility": NewFacilityResponse(f)})
}

func (h *FacilityHandler) Create(c *gin.Context) {
	var body FacilityBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, facility.ErrNameRequired.Message, err)
		return
	}

	f, err := h.service.Create(c.Request.Context(), facility.CreateRequest{
		Name:    body.Name,
		Address: body.Address,
		Phone:   body.Phone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"facility": NewFacilityResponse(f)})
}

func (h *FacilityHandler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "Geçersiz tesis kimliği.", err)
		return
	}

	var body FacilityBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, facility.ErrNameRequired.Message, err)
		return
	}

	f, err := h.service.Update(c.Request.Context(), uri.ID, facility.UpdateRequest{
		Name:    body.Name,
		Address: body.Address,
		Phone:   body.Phone,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"facility": NewFacilityResponse(f)})
}

func (h *FacilityHandler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "Geçersiz tesis kimliği.", err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID); err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
