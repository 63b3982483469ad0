package service

import (
	"fmt"
	"strconv"

	"cleanblog/internal/models"
)

// Page is one slice of the full post list plus the navigation links rendered
// under the listing. A "#" link is disabled.
type Page struct {
	Posts    []models.Post
	Number   int
	LastPage int
	Prev     string
	Next     string
}

const disabledLink = "#"

func pageLink(page int) string {
	return fmt.Sprintf("/?page=%d", page)
}

// parsePage resolves the raw page parameter. Anything that is not a positive
// integer string degrades to page 1.
func parsePage(rawPage string) int {
	page, err := strconv.Atoi(rawPage)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Paginate slices posts into a page of at most limit entries.
//
// lastPage is ceil(total/limit) and zero for an empty list. A requested page
// beyond the end is not clamped: it yields an empty slice and still computes
// both navigation links, matching the rendered behavior of the listing.
func Paginate(posts []models.Post, rawPage string, limit int) Page {
	page := parsePage(rawPage)
	lastPage := (len(posts) + limit - 1) / limit

	start := (page - 1) * limit
	end := start + limit
	if start > len(posts) {
		start = len(posts)
	}
	if end > len(posts) {
		end = len(posts)
	}

	result := Page{
		Posts:    posts[start:end],
		Number:   page,
		LastPage: lastPage,
	}

	// Branch order matters: a single-page listing (page 1 == lastPage) takes
	// the first-page branch and keeps its next link live.
	if page == 1 {
		result.Prev = disabledLink
		result.Next = pageLink(page + 1)
	} else if page != lastPage {
		result.Prev = pageLink(page - 1)
		result.Next = pageLink(page + 1)
	} else {
		result.Prev = pageLink(page - 1)
		result.Next = disabledLink
	}

	return result
}
