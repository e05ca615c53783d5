package room

import (
	"context"

	"github.com/tidewater-dev/hotel-booking-backend/internal/pkg/apperror"
)

// Service exposes the room catalog to the rest of the application.
type Service interface {
	List(ctx context.Context) ([]Room, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]Room, error) {
	rooms, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperror.Wrap(err, ErrCatalogUnavailable.Code, ErrCatalogUnavailable.Message)
	}
	return rooms, nil
}
