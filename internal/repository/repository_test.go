package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/bloodbanker/bloodbanker-server/internal/model"
)

func TestUserRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("get by email", func(mt *mtest.T) {
		repo := NewUserRepo(mt.DB)
		ns := mt.DB.Name() + ".users"
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "email", Value: "a@x.com"},
			{Key: "role", Value: "Admin"},
			{Key: "status", Value: "active"},
		}))

		u, err := repo.GetByEmail(ctx, "a@x.com")
		require.NoError(mt, err)
		assert.Equal(mt, "a@x.com", u.Email)
		assert.Equal(mt, model.RoleAdmin, u.Role)
	})

	mt.Run("get by email not found", func(mt *mtest.T) {
		repo := NewUserRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mt.DB.Name()+".users", mtest.FirstBatch))

		_, err := repo.GetByEmail(ctx, "nobody@x.com")
		assert.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("create inserts new email", func(mt *mtest.T) {
		repo := NewUserRepo(mt.DB)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, mt.DB.Name()+".users", mtest.FirstBatch),
			mtest.CreateSuccessResponse(),
		)

		res, err := repo.Create(ctx, model.User{Email: " b@x.com "})
		require.NoError(mt, err)
		assert.True(mt, res.Acknowledged)
		assert.NotNil(mt, res.InsertedID)
	})

	mt.Run("create is idempotent on email", func(mt *mtest.T) {
		repo := NewUserRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, mt.DB.Name()+".users", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: primitive.NewObjectID()},
			{Key: "email", Value: "b@x.com"},
		}))

		_, err := repo.Create(ctx, model.User{Email: "b@x.com"})
		assert.ErrorIs(mt, err, ErrEmailExists)
	})

	mt.Run("update profile", func(mt *mtest.T) {
		repo := NewUserRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		res, err := repo.UpdateProfile(ctx, primitive.NewObjectID().Hex(), map[string]interface{}{
			"name": "Rahim",
			"role": "Admin",
		})
		require.NoError(mt, err)
		assert.EqualValues(mt, 1, res.MatchedCount)
		assert.EqualValues(mt, 1, res.ModifiedCount)
	})
}

func TestDonationRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	ctx := context.Background()

	mt.Run("list by requester", func(mt *mtest.T) {
		repo := NewDonationRepo(mt.DB)
		ns := mt.DB.Name() + ".donations"
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "requesterEmail", Value: "a@x.com"}, {Key: "status", Value: "pending"}},
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "requesterEmail", Value: "a@x.com"}, {Key: "status", Value: "done"}},
		))

		got, err := repo.ListByRequester(ctx, "a@x.com", "", 3)
		require.NoError(mt, err)
		assert.Len(mt, got, 2)
	})

	mt.Run("delete", func(mt *mtest.T) {
		repo := NewDonationRepo(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		res, err := repo.Delete(ctx, primitive.NewObjectID().Hex())
		require.NoError(mt, err)
		assert.EqualValues(mt, 1, res.DeletedCount)
	})

	mt.Run("invalid id never reaches the store", func(mt *mtest.T) {
		repo := NewDonationRepo(mt.DB)
		_, err := repo.Get(ctx, "not-an-id")
		assert.ErrorIs(mt, err, ErrInvalidID)
	})
}

func TestPick(t *testing.T) {
	set := Pick(map[string]interface{}{"name": "n", "role": "Admin", "district": "Dhaka"}, ProfileFields...)
	assert.Equal(t, bson.M{"name": "n", "district": "Dhaka"}, set)
}
