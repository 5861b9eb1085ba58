package mapper

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userdomain "github.com/Apurer/petstore-api/internal/domains/users/domain"
)

func TestToUpdateUserInput(t *testing.T) {
	var payload UpdateUser
	require.NoError(t, json.Unmarshal([]byte(`{"email":"a@example.com"}`), &payload))

	input := ToUpdateUserInput("alice", payload)
	assert.Equal(t, "alice", input.Username)
	require.NotNil(t, input.Email)
	assert.Nil(t, input.Password)
}

func TestFromDomainUser(t *testing.T) {
	raw, err := json.Marshal(FromDomainUser(&userdomain.User{ID: 1, Username: "alice", Email: "a@example.com", Password: "pw"}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"username":"alice","email":"a@example.com","password":"pw"}`, string(raw))
}
