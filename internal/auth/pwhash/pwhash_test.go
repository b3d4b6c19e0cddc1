package pwhash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndValidate(t *testing.T) {
	ph, err := New(bcrypt.MinCost)
	assert.NoError(t, err)

	hash, err := ph.HashPassword("s3cret")
	assert.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.NoError(t, ph.Validate("s3cret", hash))
	assert.Error(t, ph.Validate("wrong", hash))
}

func TestNewCostRange(t *testing.T) {
	_, err := New(100)
	assert.Error(t, err)

	ph, err := New(0)
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, ph.cost)
}
