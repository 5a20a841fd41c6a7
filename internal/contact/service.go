package contact

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/halisaha/field-booking-backend/internal/pkg/phone"
)

type SubmitRequest struct {
	CustomerName  string
	CustomerPhone string
	Message       string
}

type Service interface {
	Submit(ctx context.Context, req SubmitRequest) (*Message, error)
	List(ctx context.Context) ([]*Message, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Submit(ctx context.Context, req SubmitRequest) (*Message, error) {
	name := strings.TrimSpace(req.CustomerName)
	text := strings.TrimSpace(req.Message)
	if name == "" || text == "" || strings.TrimSpace(req.CustomerPhone) == "" {
		return nil, ErrFieldsRequired
	}

	normalized, ok := phone.Normalize(req.CustomerPhone)
	if !ok {
		return nil, ErrInvalidPhone
	}

	m := &Message{
		CustomerName:  name,
		CustomerPhone: normalized,
		Message:       text,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Info().Str("message_id", m.ID).Msg("contact message received")
	return m, nil
}

func (s *service) List(ctx context.Context) ([]*Message, error) {
	return s.repo.List(ctx)
}
