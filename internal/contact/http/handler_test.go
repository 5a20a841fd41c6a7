package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halisaha/field-booking-backend/internal/auth"
	"github.com/halisaha/field-booking-backend/internal/contact"
	"github.com/halisaha/field-booking-backend/internal/pkg/validation"
)

type stubService struct {
	contact.Service

	submitted []contact.SubmitRequest
}

func (s *stubService) Submit(_ context.Context, req contact.SubmitRequest) (*contact.Message, error) {
	s.submitted = append(s.submitted, req)
	return &contact.Message{ID: "m1", CustomerName: req.CustomerName}, nil
}

func (s *stubService) List(_ context.Context) ([]*contact.Message, error) {
	return []*contact.Message{{ID: "m1", CustomerName: "Mehmet", CustomerPhone: "+905321234567", Message: "selam"}}, nil
}

func session(p *auth.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		if p == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": auth.MsgUnauthenticated})
			return
		}
		auth.SetPrincipal(c, *p)
		c.Next()
	}
}

func setupRouter(t *testing.T, svc contact.Service, p *auth.Principal) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, validation.Register())

	r := gin.New()
	RegisterRoutes(r.Group("/v1"), NewHandler(svc), session(p))
	return r
}

func post(r http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmit(t *testing.T) {
	svc := &stubService{}
	r := setupRouter(t, svc, nil)

	w := post(r, `{"customer_name":"Mehmet","customer_phone":"0532 123 45 67","message":"selam"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, true, out["success"])
	assert.Equal(t, contact.MsgSent, out["message"])
	assert.Len(t, svc.submitted, 1)
}

func TestSubmit_Invalid(t *testing.T) {
	svc := &stubService{}
	r := setupRouter(t, svc, nil)

	w := post(r, `{"customer_name":"Mehmet","message":"selam"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Lütfen tüm alanları doldurun.")

	w = post(r, `{"customer_name":"Mehmet","customer_phone":"12","message":"selam"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, svc.submitted)
}

func TestList_RequiresPermission(t *testing.T) {
	svc := &stubService{}

	tests := []struct {
		name string
		p    *auth.Principal
		want int
	}{
		{"anonymous", nil, http.StatusUnauthorized},
		{"without permission", &auth.Principal{ID: "a1", Role: auth.RoleAdmin}, http.StatusForbidden},
		{"with permission", &auth.Principal{ID: "a2", Role: auth.RoleAdmin, Permissions: auth.Permissions{CanViewMessages: true}}, http.StatusOK},
		{"super admin", &auth.Principal{ID: "a3", Role: auth.RoleSuperAdmin}, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := setupRouter(t, svc, tt.p)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/admin/contact", nil))
			assert.Equal(t, tt.want, w.Code)
		})
	}
}
