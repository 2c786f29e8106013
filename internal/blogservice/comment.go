package blogservice

import (
	"time"

	"blogdomain/internal/userservice"
)

// NewComment creates a comment stamped with the current time. Comments are
// immutable after construction and cannot be removed from a publication.
func NewComment(id, text string, author *userservice.User) *Comment {
	return &Comment{
		ID:        id,
		Text:      text,
		Author:    author,
		CreatedAt: time.Now(),
	}
}

func (c *Comment) View() CommentView {
	return CommentView{
		ID:       c.ID,
		Texto:    c.Text,
		Autor:    c.Author.View(),
		CriadoEm: c.CreatedAt.UTC().Format(time.RFC3339),
	}
}
