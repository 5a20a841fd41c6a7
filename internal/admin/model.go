package admin

import (
	"net/http"
	"time"

	"github.com/halisaha/field-booking-backend/internal/auth"
	"github.com/halisaha/field-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound               = apperror.New(http.StatusNotFound, "Kullanıcı bulunamadı.")
	ErrCredentialsRequired    = apperror.New(http.StatusBadRequest, "Kullanıcı adı ve şifre gerekli.")
	ErrInvalidCredentials     = apperror.New(http.StatusUnauthorized, "Kullanıcı adı veya şifre hatalı.")
	ErrUsernameTaken          = apperror.New(http.StatusConflict, "Bu kullanıcı adı zaten kullanılıyor.")
	ErrSetupCompleted         = apperror.New(http.StatusForbidden, "Kurulum zaten tamamlanmış. Bu endpoint kullanılamaz.")
	ErrSetupInvalid           = apperror.New(http.StatusBadRequest, "Geçerli bir kullanıcı adı ve en az 6 karakterli şifre girin.")
	ErrPasswordTooShort       = apperror.New(http.StatusBadRequest, "Şifre en az 6 karakter olmalı.")
	ErrNothingToUpdate        = apperror.New(http.StatusBadRequest, "Güncellenecek alan yok.")
	ErrCannotEditSuperAdmin   = apperror.New(http.StatusForbidden, "Başka bir süper admini düzenleyemezsiniz.")
	ErrCannotDeleteSuperAdmin = apperror.New(http.StatusForbidden, "Süper admin hesabı silinemez.")
	ErrCannotDeleteSelf       = apperror.New(http.StatusBadRequest, "Kendinizi silemezsiniz.")
)

// Admin is a back-office account.
type Admin struct {
	ID           string
	Username     string
	PasswordHash string
	Role         auth.Role
	Permissions  auth.Permissions
	CreatedAt    time.Time
}

// Principal derives the request-scoped identity of the account.
func (a *Admin) Principal() auth.Principal {
	return auth.Principal{
		ID:          a.ID,
		Username:    a.Username,
		Role:        a.Role,
		Permissions: auth.EffectivePermissions(a.Role, a.Permissions),
	}
}
