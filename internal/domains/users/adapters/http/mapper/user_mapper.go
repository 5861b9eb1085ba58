package mapper

import (
	usertypes "github.com/Apurer/petstore-api/internal/domains/users/application/types"
	userdomain "github.com/Apurer/petstore-api/internal/domains/users/domain"
)

// User represents the transport-level user payload.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateUser is the POST /user payload.
type CreateUser struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// UpdateUser is the PUT /user/{username} payload.
type UpdateUser struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

func ToCreateUserInput(payload CreateUser) usertypes.CreateUserInput {
	return usertypes.CreateUserInput{Username: payload.Username, Email: payload.Email, Password: payload.Password}
}

func ToUpdateUserInput(username string, payload UpdateUser) usertypes.UpdateUserInput {
	return usertypes.UpdateUserInput{Username: username, Email: payload.Email, Password: payload.Password}
}

// FromDomainUser converts a domain user into a transport representation.
func FromDomainUser(user *userdomain.User) User {
	if user == nil {
		return User{}
	}
	return User{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Password: user.Password,
	}
}
