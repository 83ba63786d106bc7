package domain

import "errors"

// ErrTaskNotFound covers both "does not exist" and "exists but belongs to
// another user". The two cases must stay indistinguishable to the client.
var ErrTaskNotFound = errors.New("task not found")

var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUnauthenticated = errors.New("unauthenticated")
