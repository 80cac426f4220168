package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/minwoopark/board-api/models"
)

// ArticleRepository stores article records.
type ArticleRepository interface {
	// Create inserts a new article and fills in its generated ID.
	Create(ctx context.Context, article *models.Article) error
}

// GormArticleRepository implements ArticleRepository on a gorm handle.
type GormArticleRepository struct {
	db *gorm.DB
}

func NewGormArticleRepository(db *gorm.DB) *GormArticleRepository {
	return &GormArticleRepository{db: db}
}

func (r *GormArticleRepository) Create(ctx context.Context, article *models.Article) error {
	if err := r.db.WithContext(ctx).Create(article).Error; err != nil {
		return fmt.Errorf("create article %q: %w", article.Title, err)
	}
	return nil
}
