package journal

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"niiting-backend/internal/store"
)

const defaultAuthor = "Elena"

// Display format for the default entry date, e.g. "October 28, 2024".
const dateDisplayLayout = "January 2, 2006"

var (
	ErrNotFound = errors.New("journal entry not found")
	ErrInvalid  = errors.New("title and at least one image are required")
)

type Persister interface {
	SaveBlogPost(ctx context.Context, post store.BlogPost) bool
	RemoveBlogPost(ctx context.Context, id string) bool
}

type Service struct {
	store     *store.Store
	persister Persister
	location  *time.Location
}

func NewService(st *store.Store, persister Persister, location *time.Location) *Service {
	return &Service{store: st, persister: persister, location: location}
}

func validate(req UpsertRequest) error {
	if strings.TrimSpace(req.Title) == "" || len(req.ImageURLs) == 0 {
		return ErrInvalid
	}
	return nil
}

// slugFor derives the public URL segment from the title, suffixing with the
// record id when another entry already owns the slug.
func (s *Service) slugFor(title, id string) string {
	slug := slugify(title)
	if slug == "" {
		return id
	}
	if existing, ok := s.store.BlogPostBySlug(slug); ok && existing.ID != id {
		suffix := id
		if len(suffix) > 8 {
			suffix = suffix[:8]
		}
		return slug + "-" + suffix
	}
	return slug
}

func (s *Service) Create(ctx context.Context, req UpsertRequest) (store.BlogPost, bool, error) {
	if err := validate(req); err != nil {
		return store.BlogPost{}, false, err
	}

	now := time.Now().In(s.location)
	date := strings.TrimSpace(req.Date)
	if date == "" {
		date = now.Format(dateDisplayLayout)
	}
	author := strings.TrimSpace(req.Author)
	if author == "" {
		author = defaultAuthor
	}

	id := uuid.NewString()
	post := store.BlogPost{
		ID:        id,
		Slug:      s.slugFor(req.Title, id),
		Title:     strings.TrimSpace(req.Title),
		Date:      date,
		Content:   req.Content,
		ImageURLs: req.ImageURLs,
		Author:    author,
		CreatedAt: now.UnixMilli(),
	}

	s.store.AddBlogPost(post)
	cached := s.persister.SaveBlogPost(ctx, post)
	return post, cached, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpsertRequest) (store.BlogPost, bool, error) {
	if err := validate(req); err != nil {
		return store.BlogPost{}, false, err
	}

	existing, ok := s.store.BlogPost(id)
	if !ok {
		return store.BlogPost{}, false, ErrNotFound
	}

	date := strings.TrimSpace(req.Date)
	if date == "" {
		date = existing.Date
	}
	author := strings.TrimSpace(req.Author)
	if author == "" {
		author = existing.Author
	}

	post := store.BlogPost{
		ID:        id,
		Slug:      s.slugFor(req.Title, id),
		Title:     strings.TrimSpace(req.Title),
		Date:      date,
		Content:   req.Content,
		ImageURLs: req.ImageURLs,
		Author:    author,
		CreatedAt: existing.CreatedAt,
		Pinned:    existing.Pinned,
	}

	s.store.UpdateBlogPost(id, post)
	cached := s.persister.SaveBlogPost(ctx, post)
	return post, cached, nil
}

func (s *Service) Delete(ctx context.Context, id string) bool {
	if !s.store.DeleteBlogPost(id) {
		return true
	}
	return s.persister.RemoveBlogPost(ctx, id)
}

func (s *Service) TogglePin(ctx context.Context, id string) (store.BlogPost, bool, error) {
	post, ok := s.store.ToggleBlogPin(id)
	if !ok {
		return store.BlogPost{}, false, ErrNotFound
	}
	cached := s.persister.SaveBlogPost(ctx, post)
	return post, cached, nil
}

func (s *Service) List() []store.BlogPost {
	return s.store.SortedBlogs()
}

func (s *Service) GetBySlug(slug string) (store.BlogPost, error) {
	post, ok := s.store.BlogPostBySlug(strings.TrimSpace(slug))
	if !ok {
		return store.BlogPost{}, ErrNotFound
	}
	return post, nil
}
