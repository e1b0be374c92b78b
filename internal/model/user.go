package model

import "time"

// User is an admin dashboard account. Authentication is an email lookup plus
// a bcrypt compare; there are no roles, sessions or tokens.
type User struct {
	ID        string    `json:"_id,omitempty" bson:"_id,omitempty"`
	Username  string    `json:"username" bson:"username"`
	Email     string    `json:"email" bson:"email"`
	Password  string    `json:"password,omitempty" bson:"password"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// PublicUser is a user with the password hash stripped.
type PublicUser struct {
	ID        string    `json:"_id,omitempty"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Public returns the client-safe view of the account.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// RegisterRequest is the body of POST /auth/admin/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /auth/admin/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// MeRequest is the body of POST /auth/admin/me.
type MeRequest struct {
	Email string `json:"email"`
}
