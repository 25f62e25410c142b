// Package queue defines the donation event payload and the background
// consumer that records it.
package queue

// Event types carried in DonationEvent.Type.
const (
	DonationCreated       = "donation.created"
	DonationStatusChanged = "donation.status_changed"
	DonationDeleted       = "donation.deleted"
)

// DonationEvent is published after every donation request write.  It holds
// enough for downstream consumers to log or notify without querying the
// database.
type DonationEvent struct {
	ID             string `json:"id,omitempty"`
	Type           string `json:"type"`
	DonationID     string `json:"donation_id"`
	RequesterEmail string `json:"requester_email,omitempty"`
	DonorEmail     string `json:"donor_email,omitempty"`
	ActorEmail     string `json:"actor_email,omitempty"`
	BloodGroup     string `json:"blood_group,omitempty"`
	District       string `json:"district,omitempty"`
	Status         string `json:"status,omitempty"`
	At             string `json:"at"`
}
