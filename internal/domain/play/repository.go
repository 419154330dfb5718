package play

import (
	"context"
	"errors"
)

var ErrSeasonNotFound = errors.New("play-by-play season not found")

// Repository loads one season of play-by-play records.
type Repository interface {
	ListBySeason(ctx context.Context, season int, filter Filter) ([]Record, error)
}
