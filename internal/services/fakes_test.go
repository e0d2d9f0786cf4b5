package services

import (
	"context"
	"sort"

	"news-management/internal/models"
)

// calls записывает порядок обращений к фейковым репозиториям.
type calls struct{ log []string }

func (c *calls) add(name string) {
	if c != nil {
		c.log = append(c.log, name)
	}
}

type fakeTagRepo struct {
	calls *calls
	tags  map[int64]*models.Tag
	links map[[2]int64]bool
	next  int64
	err   error
}

func newFakeTagRepo(c *calls, names ...string) *fakeTagRepo {
	r := &fakeTagRepo{calls: c, tags: map[int64]*models.Tag{}, links: map[[2]int64]bool{}}
	for _, n := range names {
		r.next++
		r.tags[r.next] = &models.Tag{ID: r.next, Name: n}
	}
	return r
}

func (r *fakeTagRepo) Create(_ context.Context, t *models.Tag) error {
	r.calls.add("tags.Create")
	if r.err != nil {
		return r.err
	}
	r.next++
	t.ID = r.next
	cp := *t
	r.tags[t.ID] = &cp
	return nil
}

func (r *fakeTagRepo) Update(_ context.Context, t *models.Tag) error {
	r.calls.add("tags.Update")
	cp := *t
	r.tags[t.ID] = &cp
	return r.err
}

func (r *fakeTagRepo) DeleteByID(_ context.Context, id int64) error {
	r.calls.add("tags.DeleteByID")
	delete(r.tags, id)
	return r.err
}

func (r *fakeTagRepo) FindByID(_ context.Context, id int64) (*models.Tag, error) {
	r.calls.add("tags.FindByID")
	if r.err != nil {
		return nil, r.err
	}
	t, ok := r.tags[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTagRepo) FindAll(_ context.Context) ([]models.Tag, error) {
	r.calls.add("tags.FindAll")
	if r.err != nil {
		return nil, r.err
	}
	ids := make([]int64, 0, len(r.tags))
	for id := range r.tags {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out := []models.Tag{}
	for _, id := range ids {
		out = append(out, *r.tags[id])
	}
	return out, nil
}

func (r *fakeTagRepo) FindAllPaged(ctx context.Context, page, size int) ([]models.Tag, error) {
	all, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	start := (page - 1) * size
	if start >= len(all) {
		return []models.Tag{}, nil
	}
	return all[start:min(start+size, len(all))], nil
}

func (r *fakeTagRepo) FindByNewsID(_ context.Context, newsID int64) ([]models.Tag, error) {
	r.calls.add("tags.FindByNewsID")
	out := []models.Tag{}
	for k := range r.links {
		if k[1] == newsID {
			out = append(out, *r.tags[k[0]])
		}
	}
	return out, r.err
}

func (r *fakeTagRepo) AddToNews(_ context.Context, tagID, newsID int64) error {
	r.calls.add("tags.AddToNews")
	r.links[[2]int64{tagID, newsID}] = true
	return r.err
}

func (r *fakeTagRepo) RemoveFromNews(_ context.Context, tagID, newsID int64) error {
	r.calls.add("tags.RemoveFromNews")
	delete(r.links, [2]int64{tagID, newsID})
	return r.err
}

func (r *fakeTagRepo) DeleteFromAllNews(_ context.Context, tagID int64) error {
	r.calls.add("tags.DeleteFromAllNews")
	for k := range r.links {
		if k[0] == tagID {
			delete(r.links, k)
		}
	}
	return r.err
}

func (r *fakeTagRepo) DeleteByNewsID(_ context.Context, newsID int64) error {
	r.calls.add("tags.DeleteByNewsID")
	for k := range r.links {
		if k[1] == newsID {
			delete(r.links, k)
		}
	}
	return r.err
}

type fakeNewsRepo struct {
	calls *calls
	news  map[int64]*models.News
	next  int64
	err   error
}

func newFakeNewsRepo(c *calls) *fakeNewsRepo {
	return &fakeNewsRepo{calls: c, news: map[int64]*models.News{}}
}

func (r *fakeNewsRepo) put(n models.News) {
	if n.ID > r.next {
		r.next = n.ID
	}
	r.news[n.ID] = &n
}

func (r *fakeNewsRepo) Create(_ context.Context, n *models.News) error {
	r.calls.add("news.Create")
	if r.err != nil {
		return r.err
	}
	r.next++
	n.ID = r.next
	r.put(*n)
	return nil
}

func (r *fakeNewsRepo) Update(_ context.Context, n *models.News) error {
	r.calls.add("news.Update")
	r.put(*n)
	return r.err
}

func (r *fakeNewsRepo) DeleteByID(_ context.Context, id int64) error {
	r.calls.add("news.DeleteByID")
	delete(r.news, id)
	return r.err
}

func (r *fakeNewsRepo) FindByID(_ context.Context, id int64) (*models.News, error) {
	r.calls.add("news.FindByID")
	if r.err != nil {
		return nil, r.err
	}
	n, ok := r.news[id]
	if !ok {
		return nil, nil
	}
	cp := *n
	return &cp, nil
}

func (r *fakeNewsRepo) filter(keep func(models.News) bool) []models.News {
	out := []models.News{}
	for _, n := range r.news {
		if keep(*n) {
			out = append(out, *n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *fakeNewsRepo) FindAll(_ context.Context) ([]models.News, error) {
	return r.filter(func(models.News) bool { return true }), r.err
}

func (r *fakeNewsRepo) FindAllPaged(_ context.Context, page, size int) ([]models.News, error) {
	all := r.filter(func(models.News) bool { return true })
	start := (page - 1) * size
	if start >= len(all) {
		return []models.News{}, r.err
	}
	return all[start:min(start+size, len(all))], r.err
}

func (r *fakeNewsRepo) FindByAuthorID(_ context.Context, authorID int64) ([]models.News, error) {
	r.calls.add("news.FindByAuthorID")
	return r.filter(func(n models.News) bool { return n.AuthorID == authorID }), r.err
}

func (r *fakeNewsRepo) FindByTagID(_ context.Context, tagID int64) ([]models.News, error) {
	return r.filter(func(n models.News) bool {
		for _, id := range n.TagIDs {
			if id == tagID {
				return true
			}
		}
		return false
	}), r.err
}

func (r *fakeNewsRepo) FindByPartOfTitle(_ context.Context, part string) ([]models.News, error) {
	return r.filter(func(n models.News) bool { return containsFold(n.Title, part) }), r.err
}

type fakeCommentRepo struct {
	calls    *calls
	comments map[int64]*models.Comment
	next     int64
	err      error
}

func newFakeCommentRepo(c *calls) *fakeCommentRepo {
	return &fakeCommentRepo{calls: c, comments: map[int64]*models.Comment{}}
}

func (r *fakeCommentRepo) Create(_ context.Context, c *models.Comment) error {
	r.calls.add("comments.Create")
	if r.err != nil {
		return r.err
	}
	r.next++
	c.ID = r.next
	cp := *c
	r.comments[c.ID] = &cp
	return nil
}

func (r *fakeCommentRepo) Update(_ context.Context, c *models.Comment) error {
	r.calls.add("comments.Update")
	cp := *c
	r.comments[c.ID] = &cp
	return r.err
}

func (r *fakeCommentRepo) DeleteByID(_ context.Context, id int64) error {
	r.calls.add("comments.DeleteByID")
	delete(r.comments, id)
	return r.err
}

func (r *fakeCommentRepo) DeleteByNewsID(_ context.Context, newsID int64) error {
	r.calls.add("comments.DeleteByNewsID")
	for id, c := range r.comments {
		if c.NewsID == newsID {
			delete(r.comments, id)
		}
	}
	return r.err
}

func (r *fakeCommentRepo) FindByID(_ context.Context, id int64) (*models.Comment, error) {
	r.calls.add("comments.FindByID")
	if r.err != nil {
		return nil, r.err
	}
	c, ok := r.comments[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCommentRepo) list(keep func(models.Comment) bool) []models.Comment {
	out := []models.Comment{}
	for _, c := range r.comments {
		if keep(*c) {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *fakeCommentRepo) FindAll(_ context.Context) ([]models.Comment, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.list(func(models.Comment) bool { return true }), nil
}

func (r *fakeCommentRepo) FindAllPaged(_ context.Context, page, size int) ([]models.Comment, error) {
	all := r.list(func(models.Comment) bool { return true })
	start := (page - 1) * size
	if start >= len(all) {
		return []models.Comment{}, r.err
	}
	return all[start:min(start+size, len(all))], r.err
}

func (r *fakeCommentRepo) FindByNewsID(_ context.Context, newsID int64) ([]models.Comment, error) {
	r.calls.add("comments.FindByNewsID")
	if r.err != nil {
		return nil, r.err
	}
	return r.list(func(c models.Comment) bool { return c.NewsID == newsID }), nil
}

type fakeAuthorRepo struct {
	authors map[int64]*models.Author
	next    int64
	err     error
}

func newFakeAuthorRepo(names ...string) *fakeAuthorRepo {
	r := &fakeAuthorRepo{authors: map[int64]*models.Author{}}
	for _, n := range names {
		r.next++
		r.authors[r.next] = &models.Author{ID: r.next, Name: n}
	}
	return r
}

func (r *fakeAuthorRepo) Create(_ context.Context, a *models.Author) error {
	if r.err != nil {
		return r.err
	}
	r.next++
	a.ID = r.next
	cp := *a
	r.authors[a.ID] = &cp
	return nil
}

func (r *fakeAuthorRepo) Update(_ context.Context, a *models.Author) error {
	cp := *a
	r.authors[a.ID] = &cp
	return r.err
}

func (r *fakeAuthorRepo) DeleteByID(_ context.Context, id int64) error {
	delete(r.authors, id)
	return r.err
}

func (r *fakeAuthorRepo) FindByID(_ context.Context, id int64) (*models.Author, error) {
	if r.err != nil {
		return nil, r.err
	}
	a, ok := r.authors[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *fakeAuthorRepo) FindAll(_ context.Context) ([]models.Author, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := []models.Author{}
	for id := int64(1); id <= r.next; id++ {
		if a, ok := r.authors[id]; ok {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAuthorRepo) FindAllPaged(ctx context.Context, page, size int) ([]models.Author, error) {
	all, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	start := (page - 1) * size
	if start >= len(all) {
		return []models.Author{}, nil
	}
	return all[start:min(start+size, len(all))], nil
}
