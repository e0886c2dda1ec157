package domain

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("user already exists")
	ErrNoSummoner   = errors.New("no lol username linked to user")
	ErrValidation   = errors.New("invalid input")
)
