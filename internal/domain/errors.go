package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrEmptyCart is returned by checkout when the cart has no lines.
	ErrEmptyCart = errors.New("cart is empty")
)
