package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/halisaha/field-booking-backend/internal/auth"
)

type CreateRequest struct {
	Username string
	Password string
	// Permissions defaults to auth.DefaultPermissions when nil.
	Permissions *auth.Permissions
}

// UpdateRequest changes the password, the permission map, or both.
type UpdateRequest struct {
	Password    *string
	Permissions *auth.Permissions
}

// Service defines business logic for admin accounts and sessions.
type Service interface {
	// SetupRequired reports whether no admin account exists yet.
	SetupRequired(ctx context.Context) (bool, error)
	// Setup creates the first super admin. It fails once any admin exists.
	Setup(ctx context.Context, username, password string) (*Admin, error)
	Login(ctx context.Context, username, password string) (*Admin, error)

	List(ctx context.Context) ([]*Admin, error)
	Create(ctx context.Context, req CreateRequest) (*Admin, error)
	Update(ctx context.Context, actor auth.Principal, id string, req UpdateRequest) (*Admin, error)
	Delete(ctx context.Context, actor auth.Principal, id string) error

	auth.PrincipalLoader
}

type service struct {
	repo   Repository
	hasher auth.PasswordHasher
}

// NewService creates a new admin Service.
func NewService(repo Repository, hasher auth.PasswordHasher) Service {
	return &service{repo: repo, hasher: hasher}
}

// normalizeUsername trims spaces and lowercases the username.
func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

func (s *service) SetupRequired(ctx context.Context) (bool, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

func (s *service) Setup(ctx context.Context, username, password string) (*Admin, error) {
	// Refuse before validating so a finished installation reveals nothing else.
	required, err := s.SetupRequired(ctx)
	if err != nil {
		return nil, err
	}
	if !required {
		return nil, ErrSetupCompleted
	}

	clean := normalizeUsername(username)
	if clean == "" || len(password) < auth.MinPasswordLength {
		return nil, ErrSetupInvalid
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	a := &Admin{
		Username:     clean,
		PasswordHash: hash,
		Role:         auth.RoleSuperAdmin,
		Permissions:  auth.SuperAdminPermissions,
	}
	created, err := s.repo.CreateFirst(ctx, a)
	if err != nil {
		return nil, err
	}
	if !created {
		// Another setup request won the race.
		return nil, ErrSetupCompleted
	}

	zerolog.Ctx(ctx).Info().Str("admin_id", a.ID).Str("username", a.Username).Msg("super admin created")
	return a, nil
}

func (s *service) Login(ctx context.Context, username, password string) (*Admin, error) {
	clean := normalizeUsername(username)
	if clean == "" || password == "" {
		return nil, ErrCredentialsRequired
	}

	a, err := s.repo.GetByUsername(ctx, clean)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to fetch admin by username: %w", err)
	}

	if err := s.hasher.Compare(a.PasswordHash, password); err != nil {
		if !errors.Is(err, auth.ErrPasswordMismatch) {
			zerolog.Ctx(ctx).Error().Err(err).Str("admin_id", a.ID).Msg("stored password hash is unusable")
		}
		return nil, ErrInvalidCredentials
	}

	zerolog.Ctx(ctx).Info().Str("admin_id", a.ID).Msg("admin logged in")
	return a, nil
}

// LoadPrincipal re-reads the account so role and permission changes apply
// to the very next request.
func (s *service) LoadPrincipal(ctx context.Context, adminID string) (auth.Principal, error) {
	a, err := s.repo.GetByID(ctx, adminID)
	if err != nil {
		return auth.Principal{}, err
	}
	return a.Principal(), nil
}

func (s *service) List(ctx context.Context) ([]*Admin, error) {
	return s.repo.List(ctx)
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Admin, error) {
	clean := normalizeUsername(req.Username)
	if clean == "" || req.Password == "" {
		return nil, ErrCredentialsRequired
	}
	if len(req.Password) < auth.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	perms := auth.DefaultPermissions
	if req.Permissions != nil {
		perms = *req.Permissions
	}

	a := &Admin{
		Username:     clean,
		PasswordHash: hash,
		Role:         auth.RoleAdmin,
		Permissions:  perms,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *service) Update(ctx context.Context, actor auth.Principal, id string, req UpdateRequest) (*Admin, error) {
	if req.Password == nil && req.Permissions == nil {
		return nil, ErrNothingToUpdate
	}
	if req.Password != nil && len(*req.Password) < auth.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.Role == auth.RoleSuperAdmin && a.ID != actor.ID {
		return nil, ErrCannotEditSuperAdmin
	}

	if req.Password != nil {
		hash, err := s.hasher.Hash(*req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		a.PasswordHash = hash
	}
	if req.Permissions != nil {
		a.Permissions = *req.Permissions
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().Str("admin_id", a.ID).Str("by", actor.ID).Msg("admin updated")
	return a, nil
}

func (s *service) Delete(ctx context.Context, actor auth.Principal, id string) error {
	if id == actor.ID {
		return ErrCannotDeleteSelf
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if a.Role == auth.RoleSuperAdmin {
		return ErrCannotDeleteSuperAdmin
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	zerolog.Ctx(ctx).Info().Str("admin_id", id).Str("by", actor.ID).Msg("admin deleted")
	return nil
}
