package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// Role values stored on a user document.  The casing is significant: role
// gates compare these strings exactly.
const (
	RoleAdmin     = "Admin"
	RoleVolunteer = "volunteer"
	RoleDonor     = "donor"
)

// User status values.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// User is a document in the `users` collection.  Email is the natural key;
// registration is idempotent on it.
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email      string             `bson:"email" json:"email"`
	Name       string             `bson:"name,omitempty" json:"name,omitempty"`
	Avatar     string             `bson:"avatar,omitempty" json:"avatar,omitempty"`
	District   string             `bson:"district,omitempty" json:"district,omitempty"`
	Upazila    string             `bson:"upazila,omitempty" json:"upazila,omitempty"`
	BloodGroup string             `bson:"bloodGroup,omitempty" json:"bloodGroup,omitempty"`
	Role       string             `bson:"role" json:"role"`
	Status     string             `bson:"status" json:"status"`
}

// HasRole reports whether the user's stored role is one of roles.
func (u User) HasRole(roles ...string) bool {
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}

// ValidRole reports whether r is an assignable role.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleVolunteer || r == RoleDonor
}
