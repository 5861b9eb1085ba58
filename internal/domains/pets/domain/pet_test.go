package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPet_Valid(t *testing.T) {
	pet, err := NewPet("Rex", "Dog", "available")
	require.NoError(t, err)
	assert.Equal(t, "Rex", pet.Name)
	assert.Equal(t, "Dog", pet.Category)
	assert.Equal(t, StatusAvailable, pet.Status)
	assert.Zero(t, pet.ID)
}

func TestNewPet_LengthLimits(t *testing.T) {
	long := strings.Repeat("a", MaxFieldLength+1)
	exact := strings.Repeat("a", MaxFieldLength)

	_, err := NewPet(exact, exact, exact)
	require.NoError(t, err)

	_, err = NewPet(long, long, long)
	assert.ErrorIs(t, err, ErrNameTooLong)

	_, err = NewPet("Rex", long, long)
	assert.ErrorIs(t, err, ErrCategoryTooLong)

	_, err = NewPet("Rex", "Dog", long)
	assert.ErrorIs(t, err, ErrStatusTooLong)
}

func TestNewPet_CountsCharactersNotBytes(t *testing.T) {
	_, err := NewPet(strings.Repeat("ß", MaxFieldLength), "Dog", "sold")
	require.NoError(t, err)
}

func TestNewPet_AcceptsUnknownStatus(t *testing.T) {
	pet, err := NewPet("Rex", "Dog", "adopted")
	require.NoError(t, err)
	assert.Equal(t, Status("adopted"), pet.Status)
}

func TestParseStatusFilter(t *testing.T) {
	status, err := ParseStatusFilter("pending")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, status)

	_, err = ParseStatusFilter("")
	assert.ErrorIs(t, err, ErrStatusParameterMissing)

	_, err = ParseStatusFilter("unknown")
	assert.ErrorIs(t, err, ErrStatusParameterInvalid)
	assert.Equal(t, "Status parameter is invalid; should be available, pending, or sold", err.Error())
}

func TestSameIdentity(t *testing.T) {
	pet := &Pet{ID: 1, Name: "Rex", Category: "Dog"}
	assert.True(t, pet.SameIdentity("Rex", "Dog"))
	assert.False(t, pet.SameIdentity("Rex", "Cat"))
	assert.False(t, (*Pet)(nil).SameIdentity("Rex", "Dog"))
}
