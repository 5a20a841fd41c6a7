package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/halisaha/field-booking-backend/internal/field"
	"github.com/halisaha/field-booking-backend/internal/pkg/request"
	"github.com/halisaha/field-booking-backend/internal/pkg/response"
)

const msgInvalidID = "Geçersiz saha kimliği."

type FieldHandler struct {
	service field.Service
}

func NewHandler(service field.Service) *FieldHandler {
	return &FieldHandler{service: service}
}

// List returns fields, optionally limited to one facility.
func (h *FieldHandler) List(c *gin.Context) {
	var q ListFieldsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "Geçersiz tesis kimliği.", err)
		return
	}

	items, err := h.service.List(c.Request.Context(), field.Filter{FacilityID: q.FacilityID})
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]FieldResponse, len(items))
	for i, f := range items {
		out[i] = NewFieldResponse(f)
	}
	c.JSON(http.StatusOK, gin.H{"fields": out})
}

func (h *FieldHandler) Get(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, msgInvalidID, err)
		return
	}

	f, err := h.service.GetByID(c.Request.Context(), uri.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"field": NewFieldResponse(f)})
}

func (h *FieldHandler) Create(c *gin.Context) {
	var body FieldBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, field.ErrNameRequired.Message, err)
		return
	}

	f, err := h.service.Create(c.Request.Context(), field.CreateRequest{
		FacilityID: body.FacilityID,
		Name:       body.Name,
		Type:       body.Type,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"field": NewFieldResponse(f)})
}

func (h *FieldHandler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, msgInvalidID, err)
		return
	}

	var body FieldBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, field.ErrNameRequired.Message, err)
		return
	}

	f, err := h.service.Update(c.Request.Context(), uri.ID, field.UpdateRequest{
		FacilityID: body.FacilityID,
		Name:       body.Name,
		Type:       body.Type,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"field": NewFieldResponse(f)})
}

func (h *FieldHandler) Delete(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, msgInvalidID, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), uri.ID); err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
