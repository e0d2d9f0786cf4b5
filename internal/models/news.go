package models

import "time"

type News struct {
	ID       int64     `json:"id"`
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	AuthorID int64     `json:"author_id"`
	Created  time.Time `json:"created"`
	Modified time.Time `json:"modified"`
	TagIDs   []int64   `json:"tag_ids,omitempty"`
}

// NewNews собирает новость; created и modified равны now.
func NewNews(title, content string, authorID int64, now time.Time) *News {
	return &News{
		Title:    title,
		Content:  content,
		AuthorID: authorID,
		Created:  now,
		Modified: now,
	}
}
