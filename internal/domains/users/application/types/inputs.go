package types

// CreateUserInput carries the registration payload. Nil members were absent.
type CreateUserInput struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}

// UpdateUserInput replaces the contact details of the user addressed by Username.
type UpdateUserInput struct {
	Username string  `json:"username"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}

// LoginInput carries the query credentials; empty means absent.
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UserIdentifier addresses a single user.
type UserIdentifier struct {
	Username string `json:"username"`
}
