package portfolio

import (
	"context"
	"errors"
	"testing"

	"niiting-backend/internal/store"
)

type fakePersister struct {
	saves   []string
	removes []string
}

func (f *fakePersister) SavePortfolioItem(ctx context.Context, item store.PortfolioItem) bool {
	f.saves = append(f.saves, item.ID)
	return true
}

func (f *fakePersister) RemovePortfolioItem(ctx context.Context, id string) bool {
	f.removes = append(f.removes, id)
	return true
}

func newTestService() (*Service, *store.Store, *fakePersister) {
	st := store.New()
	p := &fakePersister{}
	return NewService(st, p), st, p
}

func validReq() UpsertRequest {
	return UpsertRequest{
		Category:    store.CategoryApparel,
		Title:       "New Work",
		Subtitle:    "Series",
		Description: "A description.",
		ImageURLs:   []string{"https://example.com/a.jpg"},
	}
}

func TestCreateAssignsIDAndTimestamp(t *testing.T) {
	svc, st, p := newTestService()

	item, cached, err := svc.Create(context.Background(), validReq())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if item.ID == "" {
		t.Fatalf("expected generated id")
	}
	if item.CreatedAt == 0 {
		t.Fatalf("expected creation timestamp")
	}
	if !cached {
		t.Fatalf("expected persister to report cached")
	}
	if len(st.Portfolio()) != 1 {
		t.Fatalf("item not added to store")
	}
	if len(p.saves) != 1 || p.saves[0] != item.ID {
		t.Fatalf("persister not invoked for %s: %v", item.ID, p.saves)
	}
}

func TestCreateRejectsMissingTitleOrImages(t *testing.T) {
	svc, st, p := newTestService()

	noTitle := validReq()
	noTitle.Title = "   "
	if _, _, err := svc.Create(context.Background(), noTitle); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid for blank title, got %v", err)
	}

	noImages := validReq()
	noImages.ImageURLs = nil
	if _, _, err := svc.Create(context.Background(), noImages); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid for empty images, got %v", err)
	}

	if len(st.Portfolio()) != 0 {
		t.Fatalf("rejected create mutated the store")
	}
	if len(p.saves) != 0 {
		t.Fatalf("rejected create reached the persister")
	}
}

func TestUpdatePreservesCreatedAtAndPin(t *testing.T) {
	svc, st, _ := newTestService()
	st.AddPortfolioItem(store.PortfolioItem{
		ID: "a", Category: store.CategoryFibre, Title: "Old",
		ImageURLs: []string{"u"}, CreatedAt: 1234, Pinned: true,
	})

	req := validReq()
	item, _, err := svc.Update(context.Background(), "a", req)
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if item.CreatedAt != 1234 {
		t.Fatalf("createdAt changed on update: %d", item.CreatedAt)
	}
	if !item.Pinned {
		t.Fatalf("pin state lost on update")
	}
	if item.Title != "New Work" {
		t.Fatalf("title not replaced: %q", item.Title)
	}
}

func TestUpdateUnknownID(t *testing.T) {
	svc, _, p := newTestService()
	if _, _, err := svc.Update(context.Background(), "missing", validReq()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(p.saves) != 0 {
		t.Fatalf("failed update reached the persister")
	}
}

func TestDeleteIdempotent(t *testing.T) {
	svc, st, p := newTestService()
	st.AddPortfolioItem(store.PortfolioItem{ID: "a"})

	svc.Delete(context.Background(), "a")
	svc.Delete(context.Background(), "a")
	svc.Delete(context.Background(), "missing")

	if len(st.Portfolio()) != 0 {
		t.Fatalf("item not deleted")
	}
	if len(p.removes) != 1 {
		t.Fatalf("expected exactly one persisted removal, got %v", p.removes)
	}
}

func TestTogglePinPersists(t *testing.T) {
	svc, st, p := newTestService()
	st.AddPortfolioItem(store.PortfolioItem{ID: "a"})

	item, _, err := svc.TogglePin(context.Background(), "a")
	if err != nil {
		t.Fatalf("TogglePin: %v", err)
	}
	if !item.Pinned {
		t.Fatalf("expected pinned true")
	}
	if len(p.saves) != 1 {
		t.Fatalf("pin not persisted")
	}

	if _, _, err := svc.TogglePin(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListSortsPinnedFirst(t *testing.T) {
	svc, st, _ := newTestService()
	st.Hydrate([]store.PortfolioItem{
		{ID: "1", Category: store.CategoryApparel, CreatedAt: 100},
		{ID: "2", Category: store.CategoryApparel, CreatedAt: 50, Pinned: true},
	}, nil, nil, store.DefaultSettings())

	items := svc.List(ListFilter{Category: store.CategoryApparel})
	if items[0].ID != "2" || items[1].ID != "1" {
		t.Fatalf("expected [2 1], got [%s %s]", items[0].ID, items[1].ID)
	}
}
