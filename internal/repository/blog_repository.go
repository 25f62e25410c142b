package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bloodbanker/bloodbanker-server/internal/database"
	"github.com/bloodbanker/bloodbanker-server/internal/model"
)

// BlogRepo stores blog posts.
type BlogRepo struct{ docStore }

func NewBlogRepo(db *mongo.Database) *BlogRepo {
	return &BlogRepo{docStore{coll: db.Collection(database.BlogsCollection)}}
}

func (r *BlogRepo) List(ctx context.Context, status string) ([]model.BlogPost, error) {
	return findAll[model.BlogPost](ctx, r.coll, statusFilter(status), newestFirst)
}

func (r *BlogRepo) Get(ctx context.Context, id string) (model.BlogPost, error) {
	return findByID[model.BlogPost](ctx, r.coll, id)
}

// Create stores a post as a draft.
func (r *BlogRepo) Create(ctx context.Context, p model.BlogPost) (model.InsertResult, error) {
	p.Status = model.BlogDraft
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	return r.insert(ctx, p)
}

func (r *BlogRepo) SetStatus(ctx context.Context, id, status string) (model.UpdateResult, error) {
	return r.updateByID(ctx, id, bson.M{"status": status})
}

func (r *BlogRepo) Delete(ctx context.Context, id string) (model.DeleteResult, error) {
	return r.deleteByID(ctx, id)
}
