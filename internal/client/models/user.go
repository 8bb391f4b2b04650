package models

import "time"

// User is an account record. Records are immutable once created.
//
// Exactly one of Password (legacy plaintext) or PasswordHash is set.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Password     string    `json:"password,omitempty"`
	PasswordHash string    `json:"passwordHash,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Public returns a copy without credential material.
func (u User) Public() User {
	u.Password = ""
	u.PasswordHash = ""
	return u
}

// MatchesIdentifier reports whether id equals the user's email or phone.
// Empty identifiers never match.
func (u User) MatchesIdentifier(id string) bool {
	if id == "" {
		return false
	}
	return u.Email == id || u.Phone == id
}

// RegisterRequest carries the fields of the registration form.
type RegisterRequest struct {
	Name     string `validate:"required"`
	Email    string `validate:"required_without=Phone,omitempty,email"`
	Phone    string `validate:"required_without=Email,omitempty,phone"`
	Password []byte `validate:"required,min=6"`
}
