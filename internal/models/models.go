package models

import (
	"html/template"
	"time"
)

type Post struct {
	PostID   int       `json:"postId" db:"post_id"`
	Title    string    `json:"title" db:"title"`
	Content  string    `json:"content" db:"content"`
	Date     time.Time `json:"date" db:"date"`
	Slug     string    `json:"slug" db:"slug"`
	ImageURL string    `json:"imageUrl" db:"image_url"`
}

// HTMLContent returns the stored markup unescaped. Post content is trusted
// author input and is rendered verbatim.
func (p *Post) HTMLContent() template.HTML {
	return template.HTML(p.Content)
}

type Contact struct {
	ContactID int       `json:"contactId" db:"contact_id"`
	Name      string    `json:"name" db:"name"`
	PhoneNum  string    `json:"phoneNum" db:"phone_num"`
	Email     string    `json:"email" db:"email"`
	Msg       string    `json:"msg" db:"msg"`
	Date      time.Time `json:"date" db:"date"`
}

// Flash is a one-shot notice shown on the next rendered page only.
// Category is one of "success", "warning", "danger".
type Flash struct {
	Category string
	Message  string
}
