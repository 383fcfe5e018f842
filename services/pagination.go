package services

import (
	"errors"
	"strconv"
)

var ErrInvalidPage = errors.New("invalid page number")

// ParsePage parses a 1-based page query value. An empty value means page 1.
func ParsePage(raw string) (int, error) {
	if raw == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, ErrInvalidPage
	}
	return page, nil
}

// Paginate returns the page-th slice of size items. The result is empty,
// never nil, when the page lies past the end of items.
func Paginate[T any](items []T, page, size int) []T {
	if page < 1 || size < 1 || page-1 > len(items)/size {
		return []T{}
	}
	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
