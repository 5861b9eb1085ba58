package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUser_CheckPassword(t *testing.T) {
	user := NewUser("alice", "alice@example.com", "secret")

	assert.True(t, user.CheckPassword("secret"))
	assert.False(t, user.CheckPassword("Secret"))
	assert.False(t, user.CheckPassword(" secret"))
	assert.False(t, user.CheckPassword(""))

	var missing *User
	assert.False(t, missing.CheckPassword("secret"))
}

func TestUser_ChangeContactReplacesBoth(t *testing.T) {
	user := NewUser("alice", "old@example.com", "old")
	user.ChangeContact("new@example.com", "new")
	assert.Equal(t, &User{Username: "alice", Email: "new@example.com", Password: "new"}, user)
}

func TestUser_Clone(t *testing.T) {
	user := NewUser("alice", "a@example.com", "pw")
	clone := user.Clone()
	clone.Email = "b@example.com"
	assert.Equal(t, "a@example.com", user.Email)
}
