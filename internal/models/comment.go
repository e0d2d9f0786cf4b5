package models

import "time"

// CommentMaxContentLength ограничивает колонку comments.content.
const CommentMaxContentLength = 255

type Comment struct {
	ID       int64     `json:"id"`
	Content  string    `json:"content"`
	NewsID   int64     `json:"news_id"`
	Created  time.Time `json:"created"`
	Modified time.Time `json:"modified"`
}

func NewComment(content string, newsID int64, now time.Time) *Comment {
	return &Comment{
		Content:  content,
		NewsID:   newsID,
		Created:  now,
		Modified: now,
	}
}
