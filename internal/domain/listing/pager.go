package listing

import "strconv"

// MusicianPageSize is the fixed page size of the musician directory.
const MusicianPageSize = 9

type Page[T any] struct {
	Items      []T `json:"items"`
	Number     int `json:"page"`
	Size       int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

// ParsePageParam maps a raw query value to a page number. Anything that
// is not a positive integer falls back to page 1.
func ParsePageParam(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Paginate slices items into fixed-size pages. A request past the end
// returns the last page; an empty collection is a valid empty page 1 of 1.
func Paginate[T any](items []T, size int, requested int) Page[T] {
	if size < 1 {
		size = 1
	}

	totalPages := (len(items) + size - 1) / size
	if totalPages == 0 {
		totalPages = 1
	}

	page := requested
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * size
	end := start + size
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	return Page[T]{
		Items:      items[start:end],
		Number:     page,
		Size:       size,
		TotalItems: len(items),
		TotalPages: totalPages,
	}
}
