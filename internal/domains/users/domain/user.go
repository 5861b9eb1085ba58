package domain

import "github.com/Apurer/petstore-api/internal/shared/failure"

var (
	ErrMissingUsername = failure.MissingField("username")
	ErrMissingEmail    = failure.MissingField("email")
	ErrMissingPassword = failure.MissingField("password")

	ErrDuplicateUsername  = failure.New(failure.KindDuplicateUsername, "Username already exists")
	ErrInvalidCredentials = failure.New(failure.KindInvalidCredentials, "Invalid username or password")
	ErrUserNotFound       = failure.New(failure.KindNotFound, "User not found")
)

// User represents a Petstore user. Passwords are stored and compared as given.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// NewUser builds an unsaved user.
func NewUser(username, email, password string) *User {
	return &User{Username: username, Email: email, Password: password}
}

// ChangeContact replaces both email and password.
func (u *User) ChangeContact(email, password string) {
	u.Email = email
	u.Password = password
}

// CheckPassword reports an exact match with the stored password.
func (u *User) CheckPassword(password string) bool {
	return u != nil && password != "" && u.Password == password
}

// Clone returns an independent copy.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}
