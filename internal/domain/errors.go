package domain

import "errors"

// Domain errors (no external dependencies). Handlers map these to HTTP codes.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("insufficient role for this operation")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidQuantity    = errors.New("quantity would drop below zero")
	ErrInsufficientStock  = errors.New("requested quantity exceeds current stock")
	ErrOutOfStock         = errors.New("item is out of stock")
	ErrItemArchived       = errors.New("item is archived")
	ErrDuplicateItem      = errors.New("an active item with this name and category already exists")
	ErrInvalidCategory    = errors.New("invalid category for this item")
	ErrAlreadyResolved    = errors.New("request has already been resolved")
	ErrEmailAlreadyExists = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserSuspended      = errors.New("user account is suspended")
	ErrWeakPassword       = errors.New("password must include an uppercase letter, a number and a special character")
)
