package repository

import "errors"

var (
	ErrSessionNotFound = errors.New("session not found in store")
	ErrSessionExists   = errors.New("session id already exists")
)
