package blogservice

import (
	"errors"
	"time"

	"blogdomain/internal/common"
	"blogdomain/internal/userservice"
)

var (
	ErrPublicationNotFound = errors.New("publication not found")
	ErrCategoryNotFound    = errors.New("category not found")
	// ErrEditPermission signals a denied edit. Deletion does not use it:
	// DeletePublication reports denial through an Outcome instead.
	ErrEditPermission = errors.New("permission denied: cannot edit this publication")
)

// Kind discriminates the publication variants. The set is closed: a
// publication is either an article or a video post.
type Kind string

const (
	KindArticle   Kind = "Artigo"
	KindVideoPost Kind = "VideoPost"
)

// Publication is the tagged-variant content entity. The shared record covers
// both kinds; exactly one of Article or Video is non-nil, matching Kind.
type Publication struct {
	ID        string
	Kind      Kind
	Title     string
	Content   string
	Author    *userservice.User
	CreatedAt time.Time

	Article *ArticleFields
	Video   *VideoFields

	comments   []*Comment
	likes      map[string]struct{}
	categories map[string]struct{}
}

// ArticleFields carries the article-only payload. Summary is the explicit
// editorial summary, distinct from the computed 100-character Summary().
// Empty means none was provided.
type ArticleFields struct {
	Summary string
}

// VideoFields carries the video-only payload. Duration is in seconds.
type VideoFields struct {
	URL      string
	Duration int
}

type Comment struct {
	ID        string
	Text      string
	Author    *userservice.User
	CreatedAt time.Time
}

type Category struct {
	ID   string
	Name string

	posts map[string]struct{}
}

// Outcome is the structured result of operations that never return an error,
// such as DeletePublication. Callers branch on OK.
type Outcome struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

type UpdatePublicationRequest struct {
	Title   string `json:"titulo"`
	Content string `json:"conteudo"`
}

// PublicationView is the wire shape of a publication. The variant fields are
// pointers so that only the keys of the publication's own kind are rendered.
type PublicationView struct {
	ID             string               `json:"id"`
	Tipo           Kind                 `json:"tipo"`
	Titulo         string               `json:"titulo"`
	Conteudo       string               `json:"conteudo"`
	ResumoConteudo string               `json:"resumoConteudo"`
	Autor          userservice.UserView `json:"autor"`
	Comentarios    []CommentView        `json:"comentarios"`
	Likes          []string             `json:"likes"`
	TotalLikes     int                  `json:"totalLikes"`
	CriadoEm       string               `json:"criadoEm"`
	Categorias     []string             `json:"categorias"`

	Resumo  *string `json:"resumo,omitempty"`
	URL     *string `json:"url,omitempty"`
	Duracao *int    `json:"duracao,omitempty"`
}

type CommentView struct {
	ID       string               `json:"id"`
	Texto    string               `json:"texto"`
	Autor    userservice.UserView `json:"autor"`
	CriadoEm string               `json:"criadoEm"`
}

type CategoryView struct {
	ID    string   `json:"id"`
	Nome  string   `json:"nome"`
	Posts []string `json:"posts"`
}

// BlogService orchestrates the publication lifecycle. It owns the repository
// and the category registry and consults the permission service before any
// destructive mutation.
type BlogService struct {
	repo       *publicationRepository
	categories *categoryRegistry
	perm       *userservice.PermissionService
	gen        common.IDGenerator
}
