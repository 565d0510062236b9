// Package models holds the data shapes exchanged between the client's forms,
// its session store and the GoBarber API.
package models

import "errors"

// User is the authenticated user as returned by the API. The session store
// owns the live instance; everybody else works on copies.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

// Validate reports whether u is complete enough to act as a session user.
func (u User) Validate() error {
	if u.ID == "" {
		return errors.New("user id is empty")
	}
	if u.Email == "" {
		return errors.New("user email is empty")
	}
	return nil
}

// Session is the authenticated-user state of the process.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
