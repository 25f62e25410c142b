package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bloodbanker/bloodbanker-server/internal/model"
)

// ParseID converts a hex string into an ObjectID.
func ParseID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return id, nil
}

// Pick copies the allowed keys present in body into a $set document.
func Pick(body map[string]interface{}, allowed ...string) bson.M {
	set := bson.M{}
	for _, k := range allowed {
		if v, ok := body[k]; ok {
			set[k] = v
		}
	}
	return set
}

// docStore wraps the single-call operations shared by every collection.
type docStore struct {
	coll *mongo.Collection
}

func (s docStore) insert(ctx context.Context, doc interface{}) (model.InsertResult, error) {
	res, err := s.coll.InsertOne(ctx, doc)
	if err != nil {
		return model.InsertResult{}, fmt.Errorf("%s insert: %w", s.coll.Name(), err)
	}
	return model.InsertResult{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

func (s docStore) updateByID(ctx context.Context, hex string, set bson.M) (model.UpdateResult, error) {
	id, err := ParseID(hex)
	if err != nil {
		return model.UpdateResult{}, err
	}
	if len(set) == 0 {
		return model.UpdateResult{}, ErrNoFields
	}
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return model.UpdateResult{}, fmt.Errorf("%s update: %w", s.coll.Name(), err)
	}
	return model.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}, nil
}

func (s docStore) deleteByID(ctx context.Context, hex string) (model.DeleteResult, error) {
	id, err := ParseID(hex)
	if err != nil {
		return model.DeleteResult{}, err
	}
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return model.DeleteResult{}, fmt.Errorf("%s delete: %w", s.coll.Name(), err)
	}
	return model.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}

// Count returns the collection's estimated document count.
func (s docStore) Count(ctx context.Context) (int64, error) {
	n, err := s.coll.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("%s count: %w", s.coll.Name(), err)
	}
	return n, nil
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter interface{}, opts ...*options.FindOptions) ([]T, error) {
	cur, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s find: %w", coll.Name(), err)
	}
	out := []T{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("%s decode: %w", coll.Name(), err)
	}
	return out, nil
}

func findOne[T any](ctx context.Context, coll *mongo.Collection, filter interface{}) (T, error) {
	var out T
	err := coll.FindOne(ctx, filter).Decode(&out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return out, ErrNotFound
	}
	if err != nil {
		return out, fmt.Errorf("%s findOne: %w", coll.Name(), err)
	}
	return out, nil
}

func findByID[T any](ctx context.Context, coll *mongo.Collection, hex string) (T, error) {
	id, err := ParseID(hex)
	if err != nil {
		var zero T
		return zero, err
	}
	return findOne[T](ctx, coll, bson.M{"_id": id})
}

// statusFilter matches every document when status is empty.
func statusFilter(status string) bson.M {
	if status == "" {
		return bson.M{}
	}
	return bson.M{"status": status}
}
