package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/validator"
)

func TestEmail(t *testing.T) {
	assert.Nil(t, validator.Email(leaf("user@example.com")))
	assert.Nil(t, validator.Email(leaf("")))
	assert.Equal(t, []string{"email"}, validator.Email(leaf("not-an-email")).Codes())
}

func TestURL(t *testing.T) {
	assert.Nil(t, validator.URL(leaf("https://example.com/path")))
	assert.Nil(t, validator.URL(leaf(nil)))
	assert.True(t, validator.URL(leaf("example")).Has("url"))
}

func TestUUID(t *testing.T) {
	assert.Nil(t, validator.UUID(leaf("123e4567-e89b-12d3-a456-426614174000")))
	assert.Nil(t, validator.UUID(leaf("")))
	assert.True(t, validator.UUID(leaf("123e4567e89b12d3a456426614174000")).Has("uuid"))
	assert.True(t, validator.UUID(leaf("zzze4567-e89b-12d3-a456-426614174000")).Has("uuid"))
	assert.True(t, validator.UUID(leaf(42)).Has("uuid"))
}
