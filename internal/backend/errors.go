package backend

import "errors"

var (
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrUserAlreadyExists   = errors.New("username is already taken")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
	ErrExpenseNotFound     = errors.New("expense not found")
	ErrUnparseableMessage  = errors.New("message does not describe a transaction")
)
