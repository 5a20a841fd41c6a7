package http

import (
	"time"

	"github.com/halisaha/field-booking-backend/internal/contact"
)

type SubmitBody struct {
	CustomerName  string `json:"customer_name" binding:"required"`
	CustomerPhone string `json:"customer_phone" binding:"required,trphone"`
	Message       string `json:"message" binding:"required"`
}

type MessageResponse struct {
	ID            string    `json:"id"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	Message       string    `json:"message"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewMessageResponse(m *contact.Message) MessageResponse {
	return MessageResponse{
		ID:            m.ID,
		CustomerName:  m.CustomerName,
		CustomerPhone: m.CustomerPhone,
		Message:       m.Message,
		CreatedAt:     m.CreatedAt,
	}
}
