package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/halisaha/field-booking-backend/internal/pkg/response"
	"github.com/halisaha/field-booking-backend/internal/setting"
)

type SettingHandler struct {
	service setting.Service
}

func NewHandler(service setting.Service) *SettingHandler {
	return &SettingHandler{service: service}
}

func (h *SettingHandler) Get(c *gin.Context) {
	values, err := h.service.Get(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": values})
}

// Update accepts a flat JSON object and stores every value as text.
func (h *SettingHandler) Update(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, setting.ErrInvalidBody.Message, err)
		return
	}

	values := make(setting.Settings, len(body))
	for k, v := range body {
		values[k] = stringify(v)
	}

	if err := h.service.Update(c.Request.Context(), values); err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
