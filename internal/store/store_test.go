package store

import (
	"errors"
	"testing"
	"time"
)

func TestAddPortfolioItemPrepends(t *testing.T) {
	s := New()
	s.AddPortfolioItem(PortfolioItem{ID: "a", Title: "First"})
	s.AddPortfolioItem(PortfolioItem{ID: "b", Title: "Second"})

	items := s.Portfolio()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ID != "b" || items[1].ID != "a" {
		t.Fatalf("expected most-recent-first order, got %q then %q", items[0].ID, items[1].ID)
	}
}

func TestUpdatePortfolioItemPreservesID(t *testing.T) {
	s := New()
	s.AddPortfolioItem(PortfolioItem{ID: "a", Title: "Old"})

	ok := s.UpdatePortfolioItem("a", PortfolioItem{ID: "ignored", Title: "New"})
	if !ok {
		t.Fatalf("expected update to find item")
	}
	item, ok := s.PortfolioItem("a")
	if !ok {
		t.Fatalf("item missing after update")
	}
	if item.Title != "New" {
		t.Fatalf("expected title New, got %q", item.Title)
	}
}

func TestUpdatePortfolioItemUnknownID(t *testing.T) {
	s := New()
	s.AddPortfolioItem(PortfolioItem{ID: "a", Title: "Keep"})

	if ok := s.UpdatePortfolioItem("missing", PortfolioItem{Title: "Nope"}); ok {
		t.Fatalf("expected update of unknown id to report not found")
	}
	if items := s.Portfolio(); len(items) != 1 || items[0].Title != "Keep" {
		t.Fatalf("collection changed by failed update: %+v", items)
	}
}

func TestDeletePortfolioItemIdempotent(t *testing.T) {
	s := New()
	s.AddPortfolioItem(PortfolioItem{ID: "a"})

	if ok := s.DeletePortfolioItem("missing"); ok {
		t.Fatalf("expected delete of unknown id to be a no-op")
	}
	if len(s.Portfolio()) != 1 {
		t.Fatalf("collection changed by no-op delete")
	}

	if ok := s.DeletePortfolioItem("a"); !ok {
		t.Fatalf("expected delete to find item")
	}
	if ok := s.DeletePortfolioItem("a"); ok {
		t.Fatalf("expected second delete to be a no-op")
	}
	if len(s.Portfolio()) != 0 {
		t.Fatalf("expected empty collection")
	}
}

func TestTogglePortfolioPin(t *testing.T) {
	s := New()
	s.AddPortfolioItem(PortfolioItem{ID: "a"})

	item, ok := s.TogglePortfolioPin("a")
	if !ok || !item.Pinned {
		t.Fatalf("expected pin to flip true, got ok=%v pinned=%v", ok, item.Pinned)
	}
	item, ok = s.TogglePortfolioPin("a")
	if !ok || item.Pinned {
		t.Fatalf("expected pin to flip back false")
	}
	if _, ok := s.TogglePortfolioPin("missing"); ok {
		t.Fatalf("expected toggle of unknown id to be a no-op")
	}
}

func TestSortedPortfolioPinnedFirst(t *testing.T) {
	s := New()
	s.Hydrate([]PortfolioItem{
		{ID: "1", Category: CategoryApparel, CreatedAt: 100},
		{ID: "2", Category: CategoryApparel, CreatedAt: 50, Pinned: true},
	}, nil, nil, DefaultSettings())

	sorted := s.SortedPortfolio(CategoryApparel)
	if len(sorted) != 2 {
		t.Fatalf("expected 2 items, got %d", len(sorted))
	}
	if sorted[0].ID != "2" || sorted[1].ID != "1" {
		t.Fatalf("expected order [2 1], got [%s %s]", sorted[0].ID, sorted[1].ID)
	}
}

func TestSortedPortfolioCategoryFilter(t *testing.T) {
	s := New()
	s.Hydrate([]PortfolioItem{
		{ID: "1", Category: CategoryApparel, CreatedAt: 10},
		{ID: "2", Category: CategoryFibre, CreatedAt: 20},
		{ID: "3", Category: CategoryApparel, CreatedAt: 30},
	}, nil, nil, DefaultSettings())

	sorted := s.SortedPortfolio(CategoryApparel)
	if len(sorted) != 2 {
		t.Fatalf("expected 2 apparel items, got %d", len(sorted))
	}
	if sorted[0].ID != "3" || sorted[1].ID != "1" {
		t.Fatalf("expected createdAt descending, got [%s %s]", sorted[0].ID, sorted[1].ID)
	}

	all := s.SortedPortfolio("")
	if len(all) != 3 {
		t.Fatalf("expected unfiltered view to include all items, got %d", len(all))
	}
}

func TestSortedBlogsPinnedThenRecency(t *testing.T) {
	s := New()
	s.Hydrate(nil, []BlogPost{
		{ID: "b1", CreatedAt: 300},
		{ID: "b2", CreatedAt: 100, Pinned: true},
		{ID: "b3", CreatedAt: 200},
	}, nil, DefaultSettings())

	sorted := s.SortedBlogs()
	want := []string{"b2", "b1", "b3"}
	for i, id := range want {
		if sorted[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, sorted[i].ID)
		}
	}
}

func TestAddSubscriberDeduplicates(t *testing.T) {
	s := New()
	if err := s.AddSubscriber(Subscriber{ID: "s1", Email: "a@example.com", Date: time.Now()}); err != nil {
		t.Fatalf("first subscribe failed: %v", err)
	}
	err := s.AddSubscriber(Subscriber{ID: "s2", Email: "A@Example.com", Date: time.Now()})
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
	if len(s.Subscribers()) != 1 {
		t.Fatalf("duplicate subscribe mutated collection")
	}
}

func TestUpdateSubscriberEmailKeepsDedup(t *testing.T) {
	s := New()
	_ = s.AddSubscriber(Subscriber{ID: "s1", Email: "a@example.com"})
	_ = s.AddSubscriber(Subscriber{ID: "s2", Email: "b@example.com"})

	if _, err := s.UpdateSubscriberEmail("s2", "A@Example.com"); !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
	subs := s.Subscribers()
	for _, sub := range subs {
		if sub.ID == "s2" && sub.Email != "b@example.com" {
			t.Fatalf("rejected edit mutated record: %+v", sub)
		}
	}

	// Re-casing a subscriber's own address is not a duplicate.
	sub, err := s.UpdateSubscriberEmail("s1", "A@Example.com")
	if err != nil {
		t.Fatalf("own-address edit rejected: %v", err)
	}
	if sub.Email != "A@Example.com" {
		t.Fatalf("email not updated: %q", sub.Email)
	}

	if _, err := s.UpdateSubscriberEmail("missing", "c@example.com"); !errors.Is(err, ErrSubscriberNotFound) {
		t.Fatalf("expected ErrSubscriberNotFound, got %v", err)
	}
}

func TestDeleteSubscriberIdempotent(t *testing.T) {
	s := New()
	_ = s.AddSubscriber(Subscriber{ID: "s1", Email: "a@example.com"})
	if ok := s.DeleteSubscriber("missing"); ok {
		t.Fatalf("expected no-op delete")
	}
	if ok := s.DeleteSubscriber("s1"); !ok {
		t.Fatalf("expected delete to find subscriber")
	}
}

func TestReplaceSettingsWholesale(t *testing.T) {
	s := New()
	draft := DefaultSettings()
	draft.Hero.Title = "New Title"
	draft.Footer.ContactEmail = "new@example.com"

	s.ReplaceSettings(draft)

	got := s.Settings()
	if got.Hero.Title != "New Title" {
		t.Fatalf("hero title not replaced: %q", got.Hero.Title)
	}
	if got.Footer.ContactEmail != "new@example.com" {
		t.Fatalf("contact email not replaced: %q", got.Footer.ContactEmail)
	}
	if got.Navbar.Logo != "JOJO" {
		t.Fatalf("sibling field dropped: %q", got.Navbar.Logo)
	}
}
