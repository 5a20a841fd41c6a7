package setting

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
)

type Service interface {
	Get(ctx context.Context) (Settings, error)
	Update(ctx context.Context, values Settings) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Get(ctx context.Context) (Settings, error) {
	return s.repo.All(ctx)
}

func (s *service) Update(ctx context.Context, values Settings) error {
	if len(values) == 0 {
		return ErrNoSettings
	}

	clean := make(Settings, len(values))
	for k, v := range values {
		key := strings.TrimSpace(k)
		if key == "" || len(key) > MaxKeyLength {
			return ErrInvalidKey.WithDetails(map[string]string{"key": k})
		}
		// "phone" and " phone" would otherwise overwrite each other in map order.
		if _, dup := clean[key]; dup {
			return ErrInvalidKey.WithDetails(map[string]string{"key": k})
		}
		clean[key] = v
	}

	if err := s.repo.Upsert(ctx, clean); err != nil {
		return err
	}
	zerolog.Ctx(ctx).Info().Int("count", len(clean)).Msg("site settings updated")
	return nil
}
