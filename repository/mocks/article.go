package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/minwoopark/board-api/models"
)

// ArticleRepository is a testify mock of repository.ArticleRepository.
type ArticleRepository struct {
	mock.Mock
}

func (m *ArticleRepository) Create(ctx context.Context, article *models.Article) error {
	args := m.Called(ctx, article)
	return args.Error(0)
}
