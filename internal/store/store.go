package store

import (
	"errors"
	"sort"
	"strings"
	"sync"
)

var (
	ErrDuplicateEmail     = errors.New("email already subscribed")
	ErrSubscriberNotFound = errors.New("subscriber not found")
)

// Store holds the site's content collections in memory for the lifetime of
// the process. Mutations are synchronous; durability is the persistence
// adapter's job, invoked by the service layer after each mutation.
type Store struct {
	mu          sync.RWMutex
	portfolio   []PortfolioItem
	blogs       []BlogPost
	subscribers []Subscriber
	settings    SiteSettings
	credential  Credential
}

func New() *Store {
	return &Store{settings: DefaultSettings()}
}

// Hydrate replaces every collection at once. Used by the persistence adapter
// on startup and by backup import.
func (s *Store) Hydrate(portfolio []PortfolioItem, blogs []BlogPost, subscribers []Subscriber, settings SiteSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.portfolio = append([]PortfolioItem(nil), portfolio...)
	s.blogs = append([]BlogPost(nil), blogs...)
	s.subscribers = append([]Subscriber(nil), subscribers...)
	s.settings = settings
}

// Portfolio

func (s *Store) AddPortfolioItem(item PortfolioItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.portfolio = append([]PortfolioItem{item}, s.portfolio...)
}

func (s *Store) UpdatePortfolioItem(id string, item PortfolioItem) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.portfolio {
		if s.portfolio[i].ID == id {
			item.ID = id
			s.portfolio[i] = item
			return true
		}
	}
	return false
}

// DeletePortfolioItem removes the record matching id. Deleting an unknown id
// is a no-op.
func (s *Store) DeletePortfolioItem(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.portfolio {
		if s.portfolio[i].ID == id {
			s.portfolio = append(s.portfolio[:i], s.portfolio[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) TogglePortfolioPin(id string) (PortfolioItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.portfolio {
		if s.portfolio[i].ID == id {
			s.portfolio[i].Pinned = !s.portfolio[i].Pinned
			return s.portfolio[i], true
		}
	}
	return PortfolioItem{}, false
}

func (s *Store) PortfolioItem(id string) (PortfolioItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.portfolio {
		if item.ID == id {
			return item, true
		}
	}
	return PortfolioItem{}, false
}

// Portfolio returns the raw collection in insertion order (most recent
// first by construction).
func (s *Store) Portfolio() []PortfolioItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]PortfolioItem(nil), s.portfolio...)
}

// SortedPortfolio is the derived public view: optional category filter,
// pinned records first, then CreatedAt descending within each pin partition.
func (s *Store) SortedPortfolio(category string) []PortfolioItem {
	s.mu.RLock()
	items := make([]PortfolioItem, 0, len(s.portfolio))
	for _, item := range s.portfolio {
		if category == "" || item.Category == category {
			items = append(items, item)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Pinned != items[j].Pinned {
			return items[i].Pinned
		}
		return items[i].CreatedAt > items[j].CreatedAt
	})
	return items
}

// Blogs

func (s *Store) AddBlogPost(post BlogPost) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blogs = append([]BlogPost{post}, s.blogs...)
}

func (s *Store) UpdateBlogPost(id string, post BlogPost) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.blogs {
		if s.blogs[i].ID == id {
			post.ID = id
			s.blogs[i] = post
			return true
		}
	}
	return false
}

func (s *Store) DeleteBlogPost(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.blogs {
		if s.blogs[i].ID == id {
			s.blogs = append(s.blogs[:i], s.blogs[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) ToggleBlogPin(id string) (BlogPost, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.blogs {
		if s.blogs[i].ID == id {
			s.blogs[i].Pinned = !s.blogs[i].Pinned
			return s.blogs[i], true
		}
	}
	return BlogPost{}, false
}

func (s *Store) BlogPost(id string) (BlogPost, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, post := range s.blogs {
		if post.ID == id {
			return post, true
		}
	}
	return BlogPost{}, false
}

func (s *Store) BlogPostBySlug(slug string) (BlogPost, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, post := range s.blogs {
		if post.Slug == slug {
			return post, true
		}
	}
	return BlogPost{}, false
}

func (s *Store) Blogs() []BlogPost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]BlogPost(nil), s.blogs...)
}

func (s *Store) SortedBlogs() []BlogPost {
	s.mu.RLock()
	posts := append([]BlogPost(nil), s.blogs...)
	s.mu.RUnlock()

	sort.SliceStable(posts, func(i, j int) bool {
		if posts[i].Pinned != posts[j].Pinned {
			return posts[i].Pinned
		}
		return posts[i].CreatedAt > posts[j].CreatedAt
	})
	return posts
}

// Subscribers

// AddSubscriber appends a signup. Emails are deduplicated case-insensitively
// across the collection.
func (s *Store) AddSubscriber(sub Subscriber) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.subscribers {
		if strings.EqualFold(existing.Email, sub.Email) {
			return ErrDuplicateEmail
		}
	}
	s.subscribers = append([]Subscriber{sub}, s.subscribers...)
	return nil
}

// UpdateSubscriberEmail rewrites a subscriber's address. The same
// case-insensitive dedup that guards signup applies here, so an edit cannot
// smuggle in a duplicate; the record's own address may be re-cased freely.
func (s *Store) UpdateSubscriberEmail(id, email string) (Subscriber, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.subscribers {
		if s.subscribers[i].ID != id && strings.EqualFold(s.subscribers[i].Email, email) {
			return Subscriber{}, ErrDuplicateEmail
		}
	}
	for i := range s.subscribers {
		if s.subscribers[i].ID == id {
			s.subscribers[i].Email = email
			return s.subscribers[i], nil
		}
	}
	return Subscriber{}, ErrSubscriberNotFound
}

func (s *Store) DeleteSubscriber(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.subscribers {
		if s.subscribers[i].ID == id {
			s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
			return true
		}
	}
	return false
}

func (s *Store) Subscribers() []Subscriber {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Subscriber(nil), s.subscribers...)
}

// Settings

// ReplaceSettings installs a full settings document wholesale. Callers are
// expected to submit a complete draft, not a partial patch.
func (s *Store) ReplaceSettings(settings SiteSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
}

func (s *Store) Settings() SiteSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// Credential

func (s *Store) SetCredential(cred Credential) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.credential = cred
}

func (s *Store) CredentialHash() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.credential.PasswordHash
}

func (s *Store) CredentialDoc() Credential {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.credential
}
