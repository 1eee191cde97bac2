package models

import (
	"sort"
	"strings"
)

// Admin dashboard sort keys.
const (
	SortByScore   = "score"
	SortByReviews = "reviews"
	SortByDate    = "date"
)

// Reviewer dashboard filters over the already-fetched list.
const (
	ReviewFilterAll      = "all"
	ReviewFilterPending  = "pending"
	ReviewFilterReviewed = "reviewed"
)

// AbstractFilter combines the admin dashboard predicates. Empty fields match
// everything; non-empty fields are ANDed together.
type AbstractFilter struct {
	Search         string // case-insensitive substring over title and authors
	Status         string
	AuthorResponse string
}

// Match reports whether a single abstract passes the filter.
func (f AbstractFilter) Match(a *Abstract) bool {
	if f.Status != "" && a.Status != f.Status {
		return false
	}
	if f.AuthorResponse != "" && a.AuthorResponse != f.AuthorResponse {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		title := strings.ToLower(a.Title)
		authors := strings.ToLower(a.AuthorsLine())
		if !strings.Contains(title, needle) && !strings.Contains(authors, needle) {
			return false
		}
	}
	return true
}

// FilterAbstracts returns the entries passing the filter, preserving order.
func FilterAbstracts(list []Abstract, f AbstractFilter) []Abstract {
	out := make([]Abstract, 0, len(list))
	for i := range list {
		if f.Match(&list[i]) {
			out = append(out, list[i])
		}
	}
	return out
}

// SortAbstracts orders the list in place by the given key. The sort is
// stable so that ties keep their fetched order.
func SortAbstracts(list []Abstract, key string, desc bool) {
	less := func(i, j int) bool { return list[i].SubmittedAt.Before(list[j].SubmittedAt) }
	switch key {
	case SortByScore:
		less = func(i, j int) bool { return list[i].AverageScore < list[j].AverageScore }
	case SortByReviews:
		less = func(i, j int) bool { return list[i].ReviewCount < list[j].ReviewCount }
	}

	if desc {
		asc := less
		less = func(i, j int) bool { return asc(j, i) }
	}

	sort.SliceStable(list, less)
}

// FilterByReview applies the reviewer dashboard filter locally; no server
// round-trip happens per filter change.
func FilterByReview(list []Abstract, mode string) []Abstract {
	if mode == "" || mode == ReviewFilterAll {
		return list
	}
	out := make([]Abstract, 0, len(list))
	for _, a := range list {
		switch mode {
		case ReviewFilterPending:
			if !a.HasReviewed {
				out = append(out, a)
			}
		case ReviewFilterReviewed:
			if a.HasReviewed {
				out = append(out, a)
			}
		}
	}
	return out
}

// CanRandomize is the client-side capacity guard for randomized assignment:
// at least one reviewer selected, a positive quota, and selected*quota not
// exceeding the pool of pending/under-review abstracts. The boundary is
// inclusive: an exactly-full request is allowed.
func CanRandomize(selectedReviewers, abstractsPerReviewer, pendingAbstracts int) bool {
	if selectedReviewers <= 0 || abstractsPerReviewer <= 0 {
		return false
	}
	return selectedReviewers*abstractsPerReviewer <= pendingAbstracts
}
