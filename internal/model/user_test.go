package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserHasRole_CaseSensitive(t *testing.T) {
	admin := User{Role: "Admin"}
	assert.True(t, admin.HasRole(RoleAdmin))
	assert.False(t, User{Role: "admin"}.HasRole(RoleAdmin))
	assert.False(t, User{Role: "Volunteer"}.HasRole(RoleVolunteer))
	assert.True(t, User{Role: "volunteer"}.HasRole(RoleAdmin, RoleVolunteer))
	assert.False(t, User{}.HasRole(RoleAdmin, RoleVolunteer, RoleDonor))
}

func TestValidators(t *testing.T) {
	assert.True(t, ValidRole("donor"))
	assert.False(t, ValidRole("ADMIN"))
	assert.True(t, ValidDonationStatus(DonationInProgress))
	assert.False(t, ValidDonationStatus("finished"))
}
