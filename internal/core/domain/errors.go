package domain

import "errors"

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrPasswordMismatch = errors.New("password confirmation does not match")
var ErrUserExists = errors.New("username already taken")
var ErrUserNotFound = errors.New("user not found")

// ErrTaskNotFound covers both a missing task and a task owned by someone
// else. The two cases are indistinguishable to callers so that task ids
// cannot be enumerated across accounts.
var ErrTaskNotFound = errors.New("task not found")
