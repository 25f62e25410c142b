// Package repository holds the MongoDB-backed stores.  Sentinel errors let
// handlers map storage outcomes to HTTP responses: ErrNotFound becomes 404,
// ErrInvalidID 400 and ErrEmailExists the "already exist" message.
package repository

import "errors"

// ErrNotFound is returned when a single-document lookup matches nothing.
var ErrNotFound = errors.New("not found")

// ErrInvalidID is returned when an id is not a 24-hex-character ObjectID.
var ErrInvalidID = errors.New("invalid id")

// ErrEmailExists is returned by UserRepo.Create for a duplicate email.
var ErrEmailExists = errors.New("user already exist")

// ErrNoFields is returned when an update would set nothing.
var ErrNoFields = errors.New("no updatable fields")
