package http

import (
	"time"

	"github.com/halisaha/field-booking-backend/internal/facility"
)

type FacilityResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

func NewFacilityResponse(f *facility.Facility) FacilityResponse {
	return FacilityResponse{
		ID:        f.ID,
		Name:      f.Name,
		Address:   f.Address,
		Phone:     f.Phone,
		CreatedAt: f.CreatedAt,
	}
}

type FacilityBody struct {
	Name    string `json:"name" binding:"required,max=200"`
	Address string `json:"address" binding:"max=500"`
	Phone   string `json:"phone" binding:"max=50"`
}
