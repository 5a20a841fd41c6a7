package field

import (
	"context"
	"errors"
	"strings"
)

type CreateRequest struct {
	FacilityID string
	Name       string
	Type       string
}

type UpdateRequest struct {
	FacilityID string
	Name       string
	Type       string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Field, error)
	GetByID(ctx context.Context, id string) (*Field, error)
	List(ctx context.Context, filter Filter) ([]*Field, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Field, error)
	Delete(ctx context.Context, id string) error
	// Exists reports whether a field with the given id is present.
	Exists(ctx context.Context, id string) (bool, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Field, error) {
	name := strings.TrimSpace(req.Name)
	if req.FacilityID == "" || name == "" {
		return nil, ErrNameRequired
	}

	f := &Field{
		FacilityID: req.FacilityID,
		Name:       name,
		Type:       strings.TrimSpace(req.Type),
	}
	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	// Reload to pick up the joined facility name.
	return s.repo.GetByID(ctx, f.ID)
}

func (s *service) GetByID(ctx context.Context, id string) (*Field, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Field, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Field, error) {
	name := strings.TrimSpace(req.Name)
	if req.FacilityID == "" || name == "" {
		return nil, ErrNameRequired
	}

	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	f.FacilityID = req.FacilityID
	f.Name = name
	f.Type = strings.TrimSpace(req.Type)

	if err := s.repo.Update(ctx, f); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) Exists(ctx context.Context, id string) (bool, error) {
	_, err := s.repo.GetByID(ctx, id)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}
