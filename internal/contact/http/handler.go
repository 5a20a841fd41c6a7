package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/halisaha/field-booking-backend/internal/contact"
	"github.com/halisaha/field-booking-backend/internal/pkg/response"
)

type ContactHandler struct {
	service contact.Service
}

func NewHandler(service contact.Service) *ContactHandler {
	return &ContactHandler{service: service}
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var body SubmitBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, contact.ErrFieldsRequired.Message, err)
		return
	}

	if _, err := h.service.Submit(c.Request.Context(), contact.SubmitRequest{
		CustomerName:  body.CustomerName,
		CustomerPhone: body.CustomerPhone,
		Message:       body.Message,
	}); err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": contact.MsgSent})
}

func (h *ContactHandler) List(c *gin.Context) {
	messages, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]MessageResponse, len(messages))
	for i, m := range messages {
		out[i] = NewMessageResponse(m)
	}
	c.JSON(http.StatusOK, gin.H{"messages": out})
}
