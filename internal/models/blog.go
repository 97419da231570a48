package models

import "time"

// Blog represents a published post belonging to a user
type Blog struct {
	ID          int64       `json:"id"`
	Title       string      `json:"title"`
	Content     string      `json:"content"`
	PublishDate time.Time   `json:"publishDate"`
	AuthorID    int64       `json:"-"`
	Author      *BlogAuthor `json:"author,omitempty"`
}

// BlogAuthor carries the author fields exposed on blog reads
type BlogAuthor struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}
