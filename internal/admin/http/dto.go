package http

import (
	"time"

	"github.com/halisaha/field-booking-backend/internal/admin"
	"github.com/halisaha/field-booking-backend/internal/auth"
)

type CredentialsBody struct {
	Username string `json:"username" binding:"required,max=64"`
	Password string `json:"password" binding:"required,max=72"`
}

type CreateUserBody struct {
	Username    string            `json:"username" binding:"required,max=64"`
	Password    string            `json:"password" binding:"required,max=72"`
	Permissions *auth.Permissions `json:"permissions"`
}

type UpdateUserBody struct {
	Password    *string           `json:"password" binding:"omitempty,max=72"`
	Permissions *auth.Permissions `json:"permissions"`
}

type UserResponse struct {
	ID          string           `json:"id"`
	Username    string           `json:"username"`
	Role        string           `json:"role"`
	Permissions auth.Permissions `json:"permissions"`
	CreatedAt   time.Time        `json:"created_at"`
}

func NewUserResponse(a *admin.Admin) UserResponse {
	return UserResponse{
		ID:          a.ID,
		Username:    a.Username,
		Role:        string(a.Role),
		Permissions: auth.EffectivePermissions(a.Role, a.Permissions),
		CreatedAt:   a.CreatedAt,
	}
}

type PrincipalResponse struct {
	ID          string           `json:"id"`
	Username    string           `json:"username"`
	Role        string           `json:"role"`
	Permissions auth.Permissions `json:"permissions"`
}

func NewPrincipalResponse(p auth.Principal) PrincipalResponse {
	return PrincipalResponse{
		ID:          p.ID,
		Username:    p.Username,
		Role:        string(p.Role),
		Permissions: p.Permissions,
	}
}

type PermissionLabel struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}
