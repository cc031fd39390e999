package models

import (
	"slices"
	"sort"
)

// Pagination holds pagination state and helpers
type Pagination struct {
	CurrentPage int
	TotalPages  int
	TotalItems  int
	PerPage     int
	HasPrev     bool
	HasNext     bool
}

// NewPagination creates pagination from total items and current page
func NewPagination(totalItems, currentPage, perPage int) Pagination {
	if perPage <= 0 {
		perPage = 10
	}
	if currentPage <= 0 {
		currentPage = 1
	}

	totalPages := (totalItems + perPage - 1) / perPage
	if totalPages == 0 {
		totalPages = 1
	}
	if currentPage > totalPages {
		currentPage = totalPages
	}

	return Pagination{
		CurrentPage: currentPage,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
		PerPage:     perPage,
		HasPrev:     currentPage > 1,
		HasNext:     currentPage < totalPages,
	}
}

// Offset returns the starting index for slicing
func (p Pagination) Offset() int {
	return (p.CurrentPage - 1) * p.PerPage
}

// Paginate returns the items of the requested page
func Paginate[T any](items []T, page, perPage int) ([]T, Pagination) {
	pagination := NewPagination(len(items), page, perPage)

	start := pagination.Offset()
	end := start + pagination.PerPage

	if start >= len(items) {
		return []T{}, pagination
	}
	if end > len(items) {
		end = len(items)
	}

	return items[start:end], pagination
}

// Wrap maps i onto [0, n) so prev/next navigation cycles through a
// carousel or lightbox. It returns 0 when n is 0.
func Wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// CollectTags returns all unique tags from posts, sorted
func CollectTags(posts []Post) []string {
	counts := make(map[string]int)
	for _, post := range posts {
		for _, tag := range post.Tags {
			counts[tag]++
		}
	}
	tags := make([]string, 0, len(counts))
	for tag := range counts {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// FilterByTag returns posts that have the specified tag
func FilterByTag(posts []Post, tag string) []Post {
	if tag == "" {
		return posts
	}

	var filtered []Post
	for _, post := range posts {
		if slices.Contains(post.Tags, tag) {
			filtered = append(filtered, post)
		}
	}
	return filtered
}
