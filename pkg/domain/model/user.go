package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
)

// UserID identifies an admin account
type UserID string

// String returns the string representation of UserID
func (id UserID) String() string {
	return string(id)
}

// User is an admin account allowed to mutate site content
type User struct {
	ID           UserID    `json:"id" firestore:"id" bson:"id"`
	Username     string    `json:"username" firestore:"username" bson:"username"`
	FullName     string    `json:"fullName" firestore:"fullName" bson:"fullName"`
	PasswordHash string    `json:"-" firestore:"password" bson:"password" masq:"secret"`
	CreatedAt    time.Time `json:"createdAt" firestore:"createdAt" bson:"createdAt"`
}

// Validate checks the fields required to persist a user
func (u *User) Validate() error {
	if u.ID == "" {
		return goerr.New("user ID is required")
	}
	if u.Username == "" {
		return goerr.New("username is required", goerr.V("user_id", u.ID))
	}
	if u.PasswordHash == "" {
		return goerr.New("password hash is required", goerr.V("user_id", u.ID))
	}
	return nil
}

// Public returns a copy without the password hash
func (u *User) Public() *User {
	return &User{
		ID:        u.ID,
		Username:  u.Username,
		FullName:  u.FullName,
		CreatedAt: u.CreatedAt,
	}
}
