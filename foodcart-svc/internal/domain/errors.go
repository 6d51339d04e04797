package domain

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrProductVanished = errors.New("product no longer exists")
)
