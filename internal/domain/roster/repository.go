package roster

import (
	"context"
	"errors"
)

var ErrSeasonNotFound = errors.New("roster season not found")

// Repository loads one season of roster listings.
type Repository interface {
	ListBySeason(ctx context.Context, season int, filter Filter) ([]Entry, error)
}
