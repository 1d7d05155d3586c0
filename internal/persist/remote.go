package persist

import (
	"context"
	"errors"

	"niiting-backend/internal/db"
	"niiting-backend/internal/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	settingsDocID   = "site_settings"
	credentialDocID = "admin_credential"
)

// Mirror is the optional remote tier: four Mongo collections written
// per-mutation and read wholesale at startup, keyed by the same record ids
// the local snapshots use.
type Mirror struct {
	cols *db.Collections
}

func NewMirror(cols *db.Collections) *Mirror {
	return &Mirror{cols: cols}
}

func (m *Mirror) UpsertPortfolioItem(ctx context.Context, item store.PortfolioItem) error {
	opts := options.Replace().SetUpsert(true)
	_, err := m.cols.Portfolio.ReplaceOne(ctx, bson.M{"_id": item.ID}, item, opts)
	return err
}

func (m *Mirror) DeletePortfolioItem(ctx context.Context, id string) error {
	_, err := m.cols.Portfolio.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (m *Mirror) UpsertBlogPost(ctx context.Context, post store.BlogPost) error {
	opts := options.Replace().SetUpsert(true)
	_, err := m.cols.Blogs.ReplaceOne(ctx, bson.M{"_id": post.ID}, post, opts)
	return err
}

func (m *Mirror) DeleteBlogPost(ctx context.Context, id string) error {
	_, err := m.cols.Blogs.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (m *Mirror) UpsertSubscriber(ctx context.Context, sub store.Subscriber) error {
	opts := options.Replace().SetUpsert(true)
	_, err := m.cols.Subscribers.ReplaceOne(ctx, bson.M{"_id": sub.ID}, sub, opts)
	return err
}

func (m *Mirror) DeleteSubscriber(ctx context.Context, id string) error {
	_, err := m.cols.Subscribers.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

type settingsDoc struct {
	ID       string             `bson:"_id"`
	Settings store.SiteSettings `bson:"settings"`
}

type credentialDoc struct {
	ID         string           `bson:"_id"`
	Credential store.Credential `bson:"credential"`
}

func (m *Mirror) SaveSettings(ctx context.Context, settings store.SiteSettings) error {
	opts := options.Replace().SetUpsert(true)
	doc := settingsDoc{ID: settingsDocID, Settings: settings}
	_, err := m.cols.SiteConfig.ReplaceOne(ctx, bson.M{"_id": settingsDocID}, doc, opts)
	return err
}

func (m *Mirror) SaveCredential(ctx context.Context, cred store.Credential) error {
	opts := options.Replace().SetUpsert(true)
	doc := credentialDoc{ID: credentialDocID, Credential: cred}
	_, err := m.cols.SiteConfig.ReplaceOne(ctx, bson.M{"_id": credentialDocID}, doc, opts)
	return err
}

func (m *Mirror) LoadPortfolio(ctx context.Context) ([]store.PortfolioItem, error) {
	cursor, err := m.cols.Portfolio.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := make([]store.PortfolioItem, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (m *Mirror) LoadBlogs(ctx context.Context) ([]store.BlogPost, error) {
	cursor, err := m.cols.Blogs.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posts := make([]store.BlogPost, 0)
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (m *Mirror) LoadSubscribers(ctx context.Context) ([]store.Subscriber, error) {
	cursor, err := m.cols.Subscribers.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	subs := make([]store.Subscriber, 0)
	if err := cursor.All(ctx, &subs); err != nil {
		return nil, err
	}
	return subs, nil
}

// LoadSettings returns found=false when the singleton has never been written.
func (m *Mirror) LoadSettings(ctx context.Context) (store.SiteSettings, bool, error) {
	var doc settingsDoc
	err := m.cols.SiteConfig.FindOne(ctx, bson.M{"_id": settingsDocID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return store.SiteSettings{}, false, nil
	}
	if err != nil {
		return store.SiteSettings{}, false, err
	}
	return doc.Settings, true, nil
}

func (m *Mirror) LoadCredential(ctx context.Context) (store.Credential, bool, error) {
	var doc credentialDoc
	err := m.cols.SiteConfig.FindOne(ctx, bson.M{"_id": credentialDocID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return store.Credential{}, false, nil
	}
	if err != nil {
		return store.Credential{}, false, err
	}
	return doc.Credential, true, nil
}

// ReplaceAll rewrites every table from the given state. Used after a backup
// import, where per-record mirroring cannot express removals. Upserts run
// before the deletes so an interrupted rewrite leaves a superset of the new
// state, never a gap.
func (m *Mirror) ReplaceAll(ctx context.Context, portfolio []store.PortfolioItem, blogs []store.BlogPost, subscribers []store.Subscriber, settings store.SiteSettings) error {
	portfolioIDs := make([]string, 0, len(portfolio))
	for _, item := range portfolio {
		if err := m.UpsertPortfolioItem(ctx, item); err != nil {
			return err
		}
		portfolioIDs = append(portfolioIDs, item.ID)
	}

	blogIDs := make([]string, 0, len(blogs))
	for _, post := range blogs {
		if err := m.UpsertBlogPost(ctx, post); err != nil {
			return err
		}
		blogIDs = append(blogIDs, post.ID)
	}

	subscriberIDs := make([]string, 0, len(subscribers))
	for _, sub := range subscribers {
		if err := m.UpsertSubscriber(ctx, sub); err != nil {
			return err
		}
		subscriberIDs = append(subscriberIDs, sub.ID)
	}

	if _, err := m.cols.Portfolio.DeleteMany(ctx, bson.M{"_id": bson.M{"$nin": portfolioIDs}}); err != nil {
		return err
	}
	if _, err := m.cols.Blogs.DeleteMany(ctx, bson.M{"_id": bson.M{"$nin": blogIDs}}); err != nil {
		return err
	}
	if _, err := m.cols.Subscribers.DeleteMany(ctx, bson.M{"_id": bson.M{"$nin": subscriberIDs}}); err != nil {
		return err
	}

	return m.SaveSettings(ctx, settings)
}
