package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bloodbanker/bloodbanker-server/internal/database"
	"github.com/bloodbanker/bloodbanker-server/internal/model"
)

// LocationRepo serves the district and upazila reference collections.
type LocationRepo struct {
	districts docStore
	upazilas  docStore
}

func NewLocationRepo(db *mongo.Database) *LocationRepo {
	return &LocationRepo{
		districts: docStore{coll: db.Collection(database.DistrictsCollection)},
		upazilas:  docStore{coll: db.Collection(database.UpazilasCollection)},
	}
}

func (r *LocationRepo) Districts(ctx context.Context) ([]model.District, error) {
	return findAll[model.District](ctx, r.districts.coll, bson.M{})
}

// Upazilas lists sub-districts, optionally for one district id.
func (r *LocationRepo) Upazilas(ctx context.Context, districtID string) ([]model.Upazila, error) {
	filter := bson.M{}
	if districtID != "" {
		filter["district_id"] = districtID
	}
	return findAll[model.Upazila](ctx, r.upazilas.coll, filter)
}

func (r *LocationRepo) AddDistrict(ctx context.Context, d model.District) (model.InsertResult, error) {
	return r.districts.insert(ctx, d)
}

func (r *LocationRepo) AddUpazila(ctx context.Context, u model.Upazila) (model.InsertResult, error) {
	return r.upazilas.insert(ctx, u)
}
