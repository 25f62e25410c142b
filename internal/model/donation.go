package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Donation request lifecycle.
const (
	DonationPending    = "pending"
	DonationInProgress = "inprogress"
	DonationDone       = "done"
	DonationCanceled   = "canceled"
)

// DonationRequest is a document in the `donations` collection.
type DonationRequest struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	RequesterName  string             `bson:"requesterName" json:"requesterName"`
	RequesterEmail string             `bson:"requesterEmail" json:"requesterEmail"`
	RecipientName  string             `bson:"recipientName" json:"recipientName"`
	District       string             `bson:"district" json:"district"`
	Upazila        string             `bson:"upazila" json:"upazila"`
	HospitalName   string             `bson:"hospitalName" json:"hospitalName"`
	FullAddress    string             `bson:"fullAddress" json:"fullAddress"`
	BloodGroup     string             `bson:"bloodGroup" json:"bloodGroup"`
	DonationDate   string             `bson:"donationDate" json:"donationDate"`
	DonationTime   string             `bson:"donationTime" json:"donationTime"`
	RequestMessage string             `bson:"requestMessage,omitempty" json:"requestMessage,omitempty"`
	Status         string             `bson:"status" json:"status"`
	DonorName      string             `bson:"donorName,omitempty" json:"donorName,omitempty"`
	DonorEmail     string             `bson:"donorEmail,omitempty" json:"donorEmail,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}

// ValidDonationStatus reports whether s is a known lifecycle state.
func ValidDonationStatus(s string) bool {
	switch s {
	case DonationPending, DonationInProgress, DonationDone, DonationCanceled:
		return true
	}
	return false
}
