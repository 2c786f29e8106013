package blogservice

import (
	"blogdomain/internal/common"
	"blogdomain/internal/userservice"
)

func NewBlogService(perm *userservice.PermissionService, gen common.IDGenerator) *BlogService {
	return &BlogService{
		repo:       newPublicationRepository(),
		categories: newCategoryRegistry(),
		perm:       perm,
		gen:        gen,
	}
}

// CreatePublication registers a pre-built publication and returns it
// unchanged. Construction is the caller's responsibility.
func (s *BlogService) CreatePublication(p *Publication) *Publication {
	s.repo.save(p)
	return p
}

// DeletePublication removes the publication when the requester is allowed to.
// It never returns an error: absence and denial are reported through the
// Outcome, with user-facing messages.
func (s *BlogService) DeletePublication(id string, requester *userservice.User) Outcome {
	p, ok := s.repo.findByID(id)
	if !ok {
		return Outcome{OK: false, Message: "Publicação não encontrada"}
	}

	if !s.perm.CanDelete(requester, p) {
		return Outcome{OK: false, Message: "Permissão negada: não pode deletar esta publicação"}
	}

	s.repo.delete(id)
	return Outcome{OK: true, Message: "Publicação deletada com sucesso"}
}

// EditPublication applies the provided fields to the publication after a
// permission check. Unlike DeletePublication it reports failure through an
// error: ErrPublicationNotFound or ErrEditPermission. Empty fields are left
// untouched.
func (s *BlogService) EditPublication(id string, requester *userservice.User, req UpdatePublicationRequest) (*Publication, error) {
	p, ok := s.repo.findByID(id)
	if !ok {
		return nil, ErrPublicationNotFound
	}

	if !s.perm.CanEdit(requester, p) {
		return nil, ErrEditPermission
	}

	if req.Title != "" {
		p.SetTitle(req.Title)
	}
	if req.Content != "" {
		p.SetContent(req.Content)
	}
	s.repo.save(p)

	return p, nil
}

// PublicationsByAuthor returns the publications authored by the given user.
func (s *BlogService) PublicationsByAuthor(authorID string) []*Publication {
	return s.repo.findByAuthor(authorID)
}

// PublicationsByCategory returns the publications associated with the given
// category.
func (s *BlogService) PublicationsByCategory(categoryID string) []*Publication {
	return s.repo.findByCategory(categoryID)
}

// Publications returns every registered publication in insertion order.
func (s *BlogService) Publications() []*Publication {
	return s.repo.findAll()
}

// CreateCategory builds a category with a generated id and registers it.
func (s *BlogService) CreateCategory(name string) (*Category, error) {
	v := common.NewValidator()
	validateCategoryName(v, name)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	c := NewCategory(s.gen(), name)
	s.categories.save(c)
	return c, nil
}

func (s *BlogService) CategoryByID(id string) (*Category, bool) {
	return s.categories.findByID(id)
}

func (s *BlogService) Categories() []*Category {
	return s.categories.findAll()
}

// AssignCategory links a category and a publication on both sides in one
// call, so callers holding only ids cannot leave the association half done.
func (s *BlogService) AssignCategory(categoryID, publicationID string) error {
	c, ok := s.categories.findByID(categoryID)
	if !ok {
		return ErrCategoryNotFound
	}
	p, ok := s.repo.findByID(publicationID)
	if !ok {
		return ErrPublicationNotFound
	}

	c.Associate(p)
	return nil
}

// UnassignCategory removes the link on both sides.
func (s *BlogService) UnassignCategory(categoryID, publicationID string) error {
	c, ok := s.categories.findByID(categoryID)
	if !ok {
		return ErrCategoryNotFound
	}
	p, ok := s.repo.findByID(publicationID)
	if !ok {
		return ErrPublicationNotFound
	}

	c.Dissociate(p)
	return nil
}

// CommentPublication appends a comment to a registered publication, using
// the service's id generator for the comment id.
func (s *BlogService) CommentPublication(id, text string, author *userservice.User) (*Comment, error) {
	v := common.NewValidator()
	validateCommentText(v, text)
	if !v.Valid() {
		return nil, v.ValidationError()
	}

	p, ok := s.repo.findByID(id)
	if !ok {
		return nil, ErrPublicationNotFound
	}

	return p.AddComment(text, author, s.gen), nil
}

// LikePublication records a like by the user on a registered publication.
func (s *BlogService) LikePublication(id string, u *userservice.User) error {
	p, ok := s.repo.findByID(id)
	if !ok {
		return ErrPublicationNotFound
	}

	p.AddLike(u)
	return nil
}

// UnlikePublication removes the user's like, if any.
func (s *BlogService) UnlikePublication(id string, u *userservice.User) error {
	p, ok := s.repo.findByID(id)
	if !ok {
		return ErrPublicationNotFound
	}

	p.RemoveLike(u)
	return nil
}
