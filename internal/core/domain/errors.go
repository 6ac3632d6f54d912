package domain

import "errors"

var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")

// ErrInvalidCredentials is returned for both an unknown username and a wrong
// password so a caller cannot probe which usernames exist.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidToken covers every token failure (malformed structure, signature
// mismatch, unexpected signing method). No further detail is exposed.
var ErrInvalidToken = errors.New("invalid token")

var ErrOrderNotFound = errors.New("order not found")
