package blogservice

import "sort"

func NewCategory(id, name string) *Category {
	return &Category{
		ID:    id,
		Name:  name,
		posts: make(map[string]struct{}),
	}
}

func (c *Category) Rename(name string) {
	c.Name = name
}

// Associate links the publication to this category on both sides: the
// publication id is recorded here and the category id on the publication.
func (c *Category) Associate(p *Publication) {
	c.posts[p.ID] = struct{}{}
	p.AssociateCategory(c.ID)
}

// Dissociate removes the link on both sides.
func (c *Category) Dissociate(p *Publication) {
	delete(c.posts, p.ID)
	p.DissociateCategory(c.ID)
}

func (c *Category) PostIDs() []string {
	ids := make([]string, 0, len(c.posts))
	for id := range c.posts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (c *Category) View() CategoryView {
	return CategoryView{
		ID:    c.ID,
		Nome:  c.Name,
		Posts: c.PostIDs(),
	}
}
