package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bloodbanker/bloodbanker-server/internal/database"
	"github.com/bloodbanker/bloodbanker-server/internal/model"
)

// DonationFields are the keys PUT /donation/:id may change.
var DonationFields = []string{
	"recipientName", "district", "upazila", "hospitalName", "fullAddress",
	"bloodGroup", "donationDate", "donationTime", "requestMessage",
}

// DonationRepo stores donation requests.
type DonationRepo struct{ docStore }

func NewDonationRepo(db *mongo.Database) *DonationRepo {
	return &DonationRepo{docStore{coll: db.Collection(database.DonationsCollection)}}
}

var newestFirst = options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

// List returns requests in the given status, or all of them.
func (r *DonationRepo) List(ctx context.Context, status string) ([]model.DonationRequest, error) {
	return findAll[model.DonationRequest](ctx, r.coll, statusFilter(status), newestFirst)
}

// ListByRequester returns the requests created by email, optionally
// narrowed by status.  limit <= 0 means no limit.
func (r *DonationRepo) ListByRequester(ctx context.Context, email, status string, limit int64) ([]model.DonationRequest, error) {
	filter := statusFilter(status)
	filter["requesterEmail"] = email
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	return findAll[model.DonationRequest](ctx, r.coll, filter, opts)
}

func (r *DonationRepo) Get(ctx context.Context, id string) (model.DonationRequest, error) {
	return findByID[model.DonationRequest](ctx, r.coll, id)
}

// Create inserts a new request.  Status starts as pending.
func (r *DonationRepo) Create(ctx context.Context, d model.DonationRequest) (model.InsertResult, error) {
	d.Status = model.DonationPending
	d.DonorName, d.DonorEmail = "", ""
	if d.CreatedAt.IsZero() {
		d.CreatedAt = time.Now().UTC()
	}
	return r.insert(ctx, d)
}

// Update sets the allow-listed request fields present in body.
func (r *DonationRepo) Update(ctx context.Context, id string, body map[string]interface{}) (model.UpdateResult, error) {
	return r.updateByID(ctx, id, Pick(body, DonationFields...))
}

// SetStatus moves a request to status.  Donor details are recorded when
// given, which is how a donor accepts a pending request.
func (r *DonationRepo) SetStatus(ctx context.Context, id, status, donorName, donorEmail string) (model.UpdateResult, error) {
	set := bson.M{"status": status}
	if donorEmail != "" {
		set["donorName"] = donorName
		set["donorEmail"] = donorEmail
	}
	return r.updateByID(ctx, id, set)
}

func (r *DonationRepo) Delete(ctx context.Context, id string) (model.DeleteResult, error) {
	return r.deleteByID(ctx, id)
}
