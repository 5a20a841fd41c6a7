package http

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/halisaha/field-booking-backend/internal/admin"
	"github.com/halisaha/field-booking-backend/internal/auth"
	"github.com/halisaha/field-booking-backend/internal/pkg/request"
	"github.com/halisaha/field-booking-backend/internal/pkg/response"
)

type AdminHandler struct {
	service      admin.Service
	sessions     *auth.SessionManager
	secureCookie bool
}

// NewHandler builds the admin handler. secureCookie marks the session cookie
// Secure and should be set whenever the site is served over HTTPS.
func NewHandler(service admin.Service, sessions *auth.SessionManager, secureCookie bool) *AdminHandler {
	return &AdminHandler{
		service:      service,
		sessions:     sessions,
		secureCookie: secureCookie,
	}
}

//
// GET /v1/admin/setup
//

func (h *AdminHandler) SetupStatus(c *gin.Context) {
	required, err := h.service.SetupRequired(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"setup_required": required})
}

//
// POST /v1/admin/setup
//

func (h *AdminHandler) Setup(c *gin.Context) {
	var body CredentialsBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, admin.ErrSetupInvalid.Message, err)
		return
	}

	a, err := h.service.Setup(c.Request.Context(), body.Username, body.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Süper admin \"" + a.Username + "\" oluşturuldu. Bu endpoint artık kullanılamaz.",
		"user":    gin.H{"id": a.ID, "username": a.Username, "role": a.Role},
	})
}

//
// POST /v1/admin/login
//

func (h *AdminHandler) Login(c *gin.Context) {
	var body CredentialsBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, admin.ErrCredentialsRequired.Message, err)
		return
	}

	a, err := h.service.Login(c.Request.Context(), body.Username, body.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	token, err := h.sessions.Issue(a.ID)
	if err != nil {
		response.Error(c, err)
		return
	}
	auth.SetSessionCookie(c, token, h.sessions, h.secureCookie)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    gin.H{"username": a.Username, "role": a.Role},
	})
}

//
// POST /v1/admin/logout
//

func (h *AdminHandler) Logout(c *gin.Context) {
	auth.ClearSessionCookie(c, h.secureCookie)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

//
// GET /v1/admin/check
//

func (h *AdminHandler) Check(c *gin.Context) {
	p, ok := auth.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"authenticated": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"user":          NewPrincipalResponse(p),
	})
}

//
// GET /v1/admin/permissions
//

// Permissions lists every permission key with its display label.
func (h *AdminHandler) Permissions(c *gin.Context) {
	out := make([]PermissionLabel, 0, len(auth.PermissionLabels))
	for key, label := range auth.PermissionLabels {
		out = append(out, PermissionLabel{Key: string(key), Label: label})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	c.JSON(http.StatusOK, gin.H{"permissions": out})
}

//
// /v1/admin/users
//

func (h *AdminHandler) ListUsers(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]UserResponse, len(items))
	for i, a := range items {
		out[i] = NewUserResponse(a)
	}
	c.JSON(http.StatusOK, gin.H{"users": out})
}

func (h *AdminHandler) CreateUser(c *gin.Context) {
	var body CreateUserBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, admin.ErrCredentialsRequired.Message, err)
		return
	}

	a, err := h.service.Create(c.Request.Context(), admin.CreateRequest{
		Username:    body.Username,
		Password:    body.Password,
		Permissions: body.Permissions,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": NewUserResponse(a)})
}

func (h *AdminHandler) UpdateUser(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "Geçersiz kullanıcı kimliği.", err)
		return
	}
	var body UpdateUserBody
	if err := c.ShouldBindJSON(&body); err != nil {
		response.BadRequest(c, admin.ErrNothingToUpdate.Message, err)
		return
	}

	actor, _ := auth.GetPrincipal(c)
	a, err := h.service.Update(c.Request.Context(), actor, uri.ID, admin.UpdateRequest{
		Password:    body.Password,
		Permissions: body.Permissions,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": NewUserResponse(a)})
}

func (h *AdminHandler) DeleteUser(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		response.BadRequest(c, "Geçersiz kullanıcı kimliği.", err)
		return
	}

	actor, _ := auth.GetPrincipal(c)
	if err := h.service.Delete(c.Request.Context(), actor, uri.ID); err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
