package models

import "time"

// Article is a post created through the authenticated endpoint. Author
// identity is copied from the verified token at creation time and never
// updated afterwards.
type Article struct {
	ID             uint      `gorm:"primaryKey" json:"article_id"`
	Title          string    `gorm:"size:200;not null" json:"title"`
	Content        string    `gorm:"type:text;not null" json:"content"`
	AuthorID       string    `gorm:"size:100;index;not null" json:"author_id"`
	AuthorNickname string    `gorm:"size:20;not null" json:"author_nickname"`
	CreatedAt      time.Time `json:"created_at"`
}

func (Article) TableName() string {
	return "articles"
}
