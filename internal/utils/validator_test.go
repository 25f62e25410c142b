package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestValidator_DomainTags(t *testing.T) {
	type roleBody struct {
		Role string `validate:"required,role"`
	}
	type statusBody struct {
		Status string `validate:"required,donation_status"`
	}
	v := NewRequestValidator()

	assert.NoError(t, v.Validate(&roleBody{Role: "Admin"}))
	assert.NoError(t, v.Validate(&roleBody{Role: "volunteer"}))
	assert.Error(t, v.Validate(&roleBody{Role: "admin"}))
	assert.Error(t, v.Validate(&roleBody{Role: "ADMIN"}))
	assert.Error(t, v.Validate(&roleBody{}))

	assert.NoError(t, v.Validate(&statusBody{Status: "inprogress"}))
	assert.Error(t, v.Validate(&statusBody{Status: "finished"}))
}
