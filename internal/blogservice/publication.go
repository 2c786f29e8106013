package blogservice

import (
	"fmt"
	"sort"
	"time"

	"blogdomain/internal/common"
	"blogdomain/internal/userservice"
)

// summaryLimit caps the computed content summary at 100 characters.
const summaryLimit = 100

func newPublication(id string, kind Kind, title, content string, author *userservice.User) *Publication {
	return &Publication{
		ID:         id,
		Kind:       kind,
		Title:      title,
		Content:    content,
		Author:     author,
		CreatedAt:  time.Now(),
		likes:      make(map[string]struct{}),
		categories: make(map[string]struct{}),
	}
}

// NewArticle creates an article. Pass an empty summary when the author did
// not provide one.
func NewArticle(id, title, content string, author *userservice.User, summary string) *Publication {
	p := newPublication(id, KindArticle, title, content, author)
	p.Article = &ArticleFields{Summary: summary}
	return p
}

// NewVideoPost creates a video post with its URL and duration in seconds.
func NewVideoPost(id, title, content string, author *userservice.User, url string, duration int) *Publication {
	p := newPublication(id, KindVideoPost, title, content, author)
	p.Video = &VideoFields{URL: url, Duration: duration}
	return p
}

func (p *Publication) SetTitle(title string) {
	p.Title = title
}

func (p *Publication) SetContent(content string) {
	p.Content = content
}

// ChangeAuthor reassigns the author unconditionally. Authorization is the
// caller's job: check PermissionService before invoking this.
func (p *Publication) ChangeAuthor(author *userservice.User) {
	p.Author = author
}

// AuthorID satisfies userservice.Authored for permission checks.
func (p *Publication) AuthorID() string {
	return p.Author.ID
}

// AssociateCategory records the category id on the publication only. The
// category's own side is not touched here to avoid a cyclic update chain;
// use Category.Associate or BlogService.AssignCategory to keep both sides
// consistent.
func (p *Publication) AssociateCategory(categoryID string) {
	p.categories[categoryID] = struct{}{}
}

func (p *Publication) DissociateCategory(categoryID string) {
	delete(p.categories, categoryID)
}

func (p *Publication) Categories() []string {
	ids := make([]string, 0, len(p.categories))
	for id := range p.categories {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (p *Publication) HasCategory(categoryID string) bool {
	_, ok := p.categories[categoryID]
	return ok
}

// AddComment builds a comment with an id from gen, appends it and returns it.
func (p *Publication) AddComment(text string, author *userservice.User, gen common.IDGenerator) *Comment {
	c := NewComment(gen(), text, author)
	p.comments = append(p.comments, c)
	return c
}

// AddCommentObj appends a pre-built comment.
func (p *Publication) AddCommentObj(c *Comment) {
	p.comments = append(p.comments, c)
}

// Comments returns the comments in insertion order. The slice is a copy;
// comments themselves are shared.
func (p *Publication) Comments() []*Comment {
	out := make([]*Comment, len(p.comments))
	copy(out, p.comments)
	return out
}

// AddLike records a like by the user. Liking twice has no further effect.
func (p *Publication) AddLike(u *userservice.User) {
	p.likes[u.ID] = struct{}{}
}

// RemoveLike removes the user's like, if any.
func (p *Publication) RemoveLike(u *userservice.User) {
	delete(p.likes, u.ID)
}

func (p *Publication) TotalLikes() int {
	return len(p.likes)
}

func (p *Publication) Likes() []string {
	ids := make([]string, 0, len(p.likes))
	for id := range p.likes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Summary returns the first 100 characters of the content, or the whole
// content when it is short enough.
func (p *Publication) Summary() string {
	runes := []rune(p.Content)
	if len(runes) <= summaryLimit {
		return p.Content
	}
	return string(runes[:summaryLimit])
}

// Display renders a single human-readable line for console output.
func (p *Publication) Display() string {
	return fmt.Sprintf("[%s] %s by %s - %s (%d likes, %d comentários)",
		p.ID, p.Title, p.Author.Name, p.Summary(), p.TotalLikes(), len(p.comments))
}

// View builds the wire shape of the publication, dispatching on Kind for the
// variant fields.
func (p *Publication) View() PublicationView {
	comments := make([]CommentView, 0, len(p.comments))
	for _, c := range p.comments {
		comments = append(comments, c.View())
	}

	view := PublicationView{
		ID:             p.ID,
		Tipo:           p.Kind,
		Titulo:         p.Title,
		Conteudo:       p.Content,
		ResumoConteudo: p.Summary(),
		Autor:          p.Author.View(),
		Comentarios:    comments,
		Likes:          p.Likes(),
		TotalLikes:     p.TotalLikes(),
		CriadoEm:       p.CreatedAt.UTC().Format(time.RFC3339),
		Categorias:     p.Categories(),
	}

	switch p.Kind {
	case KindArticle:
		if p.Article != nil && p.Article.Summary != "" {
			view.Resumo = &p.Article.Summary
		}
	case KindVideoPost:
		if p.Video != nil {
			view.URL = &p.Video.URL
			view.Duracao = &p.Video.Duration
		}
	}

	return view
}
