package service

import (
	"errors"
	"sort"
	"strings"

	"foodcart/foodcart-svc/internal/domain"
)

var (
	ErrPersistence       = errors.New("persistence failure")
	ErrProductVanished   = domain.ErrProductVanished
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// ValidationError maps a payload field to every problem found with it.
type ValidationError map[string][]string

func (e ValidationError) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+strings.Join(e[field], " "))
	}
	return "invalid order: " + strings.Join(parts, "; ")
}

func (e ValidationError) add(field, msg string) {
	e[field] = append(e[field], msg)
}
