// Package common contains shared constants and sentinel errors used across
// GoBarber client components.
package common

// Durable-storage keys of the persisted session. The values match the ones
// the web client writes to localStorage, so a session exported from there
// rehydrates unchanged.
const (
	TokenStorageKey = "@App:token"
	UserStorageKey  = "@App:user"
)

// AuthorizationHeaderName carries the bearer token on outbound API requests.
const AuthorizationHeaderName = "Authorization"
