package blogservice

import (
	"blogdomain/internal/common"
)

// publicationRepository is the in-memory storage for publications. Records
// live in a go-cache store keyed by publication id; a separate slice keeps
// insertion order, which the cache does not preserve.
type publicationRepository struct {
	store *common.Cache
	order []string
}

func newPublicationRepository() *publicationRepository {
	return &publicationRepository{store: common.NewCache()}
}

// save upserts the publication.
func (r *publicationRepository) save(p *Publication) {
	key := common.CacheKeyPublication(p.ID)
	if _, ok := r.store.Get(key); !ok {
		r.order = append(r.order, p.ID)
	}
	r.store.Set(key, p)
}

func (r *publicationRepository) delete(id string) {
	r.store.Delete(common.CacheKeyPublication(id))
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// findByID returns the publication, or ok=false when absent. Lookups never
// error.
func (r *publicationRepository) findByID(id string) (*Publication, bool) {
	v, ok := r.store.Get(common.CacheKeyPublication(id))
	if !ok {
		return nil, false
	}
	return v.(*Publication), true
}

// findAll returns every stored publication in insertion order.
func (r *publicationRepository) findAll() []*Publication {
	out := make([]*Publication, 0, len(r.order))
	for _, id := range r.order {
		if p, ok := r.findByID(id); ok {
			out = append(out, p)
		}
	}
	return out
}

func (r *publicationRepository) findByAuthor(authorID string) []*Publication {
	var out []*Publication
	for _, p := range r.findAll() {
		if p.Author.ID == authorID {
			out = append(out, p)
		}
	}
	return out
}

func (r *publicationRepository) findByCategory(categoryID string) []*Publication {
	var out []*Publication
	for _, p := range r.findAll() {
		if p.HasCategory(categoryID) {
			out = append(out, p)
		}
	}
	return out
}

// categoryRegistry stores categories the same way the repository stores
// publications.
type categoryRegistry struct {
	store *common.Cache
	order []string
}

func newCategoryRegistry() *categoryRegistry {
	return &categoryRegistry{store: common.NewCache()}
}

func (r *categoryRegistry) save(c *Category) {
	key := common.CacheKeyCategory(c.ID)
	if _, ok := r.store.Get(key); !ok {
		r.order = append(r.order, c.ID)
	}
	r.store.Set(key, c)
}

func (r *categoryRegistry) findByID(id string) (*Category, bool) {
	v, ok := r.store.Get(common.CacheKeyCategory(id))
	if !ok {
		return nil, false
	}
	return v.(*Category), true
}

func (r *categoryRegistry) findAll() []*Category {
	out := make([]*Category, 0, len(r.order))
	for _, id := range r.order {
		if c, ok := r.findByID(id); ok {
			out = append(out, c)
		}
	}
	return out
}
