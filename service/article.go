package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/minwoopark/board-api/models"
	"github.com/minwoopark/board-api/repository"
)

// ArticleService handles article creation for authenticated users.
type ArticleService struct {
	articles repository.ArticleRepository
	location *time.Location
}

// NewArticleService builds an ArticleService. tzOffsetHours is the fixed UTC
// offset applied to creation timestamps.
func NewArticleService(articles repository.ArticleRepository, tzOffsetHours int) *ArticleService {
	loc := time.FixedZone("", tzOffsetHours*3600)
	return &ArticleService{articles: articles, location: loc}
}

// Create persists a new article. authorID and authorNickname must come from
// a verified token, never from the request body.
func (s *ArticleService) Create(ctx context.Context, authorID, authorNickname, title, content string) (uint, error) {
	logCtx := logrus.WithFields(logrus.Fields{"author": authorID, "title": title})

	article := &models.Article{
		Title:          title,
		Content:        content,
		AuthorID:       authorID,
		AuthorNickname: authorNickname,
		CreatedAt:      time.Now().In(s.location),
	}
	if err := s.articles.Create(ctx, article); err != nil {
		logCtx.WithError(err).Error("article insert failed")
		return 0, ErrInternal
	}
	if article.ID == 0 {
		logCtx.Error("article insert yielded no generated id")
		return 0, ErrInternal
	}

	logCtx.WithField("article_id", article.ID).Info("article created")
	return article.ID, nil
}
