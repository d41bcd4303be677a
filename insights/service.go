package insights

import (
	"context"

	"github.com/vitalog-org/vitalog/store"
)

type service struct {
	repo Repository
}

var _ Service = &service{}

func NewService(repo Repository) (Service, error) {
	return &service{
		repo: repo,
	}, nil
}

func (s *service) List(ctx context.Context, userId string, filter *Filter, pagination store.Pagination) ([]*Insight, error) {
	return s.repo.List(ctx, userId, filter, pagination)
}

func (s *service) MarkRead(ctx context.Context, userId string, id string) (*Insight, error) {
	return s.repo.MarkRead(ctx, userId, id)
}
