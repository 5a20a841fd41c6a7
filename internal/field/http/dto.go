package http

import (
	"time"

	"github.com/halisaha/field-booking-backend/internal/field"
)

type FieldResponse struct {
	ID           string    `json:"id"`
	FacilityID   string    `json:"facility_id"`
	FacilityName string    `json:"facility_name"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewFieldResponse(f *field.Field) FieldResponse {
	return FieldResponse{
		ID:           f.ID,
		FacilityID:   f.FacilityID,
		FacilityName: f.FacilityName,
		Name:         f.Name,
		Type:         f.Type,
		CreatedAt:    f.CreatedAt,
	}
}

type FieldBody struct {
	FacilityID string `json:"facility_id" binding:"required,uuid"`
	Name       string `json:"name" binding:"required,max=200"`
	Type       string `json:"type" binding:"max=50"`
}

type ListFieldsQuery struct {
	FacilityID string `form:"facility_id" binding:"omitempty,uuid"`
}
