package repository

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bloodbanker/bloodbanker-server/internal/database"
	"github.com/bloodbanker/bloodbanker-server/internal/model"
)

// ProfileFields are the only keys PUT /user/:id may change.
var ProfileFields = []string{"name", "avatar", "upazila", "district", "bloodGroup"}

// UserRepo stores users keyed by email.
type UserRepo struct{ docStore }

func NewUserRepo(db *mongo.Database) *UserRepo {
	return &UserRepo{docStore{coll: db.Collection(database.UsersCollection)}}
}

// List returns every user, optionally narrowed to one status.
func (r *UserRepo) List(ctx context.Context, status string) ([]model.User, error) {
	return findAll[model.User](ctx, r.coll, statusFilter(status))
}

// GetByEmail fetches a user by exact email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	return findOne[model.User](ctx, r.coll, bson.M{"email": email})
}

// Create inserts u unless a user with the same email already exists.  The
// check and the insert are separate calls; a unique index on email closes
// the gap.
func (r *UserRepo) Create(ctx context.Context, u model.User) (model.InsertResult, error) {
	u.Email = strings.TrimSpace(u.Email)
	_, err := r.GetByEmail(ctx, u.Email)
	switch {
	case err == nil:
		return model.InsertResult{}, ErrEmailExists
	case !errors.Is(err, ErrNotFound):
		return model.InsertResult{}, err
	}
	if u.Role == "" {
		u.Role = model.RoleDonor
	}
	if u.Status == "" {
		u.Status = model.StatusActive
	}
	res, err := r.insert(ctx, u)
	if mongo.IsDuplicateKeyError(err) {
		return model.InsertResult{}, ErrEmailExists
	}
	return res, err
}

// UpdateProfile sets the allow-listed profile fields present in body.
func (r *UserRepo) UpdateProfile(ctx context.Context, id string, body map[string]interface{}) (model.UpdateResult, error) {
	return r.updateByID(ctx, id, Pick(body, ProfileFields...))
}

// SetStatus changes a user's status.
func (r *UserRepo) SetStatus(ctx context.Context, id, status string) (model.UpdateResult, error) {
	return r.updateByID(ctx, id, bson.M{"status": status})
}

// SetRole changes a user's role.  Gates observe it on the next request.
func (r *UserRepo) SetRole(ctx context.Context, id, role string) (model.UpdateResult, error) {
	return r.updateByID(ctx, id, bson.M{"role": role})
}

// EnsureIndexes creates the unique email index.  It is safe to call on every
// startup.
func (r *UserRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("email_unique"),
	})
	return err
}
