package logic

import (
	"searchpanel/internal/domain"
)

// Criteria is everything the filter depends on besides the results
type Criteria struct {
	Query   string
	Tab     domain.Tab
	Filters domain.ContentFilters
}

// Counts are the per-tab totals shown next to the tab labels
type Counts struct {
	All    int
	Files  int
	People int
}

// For returns the count displayed for a tab
func (c Counts) For(tab domain.Tab) int {
	switch tab {
	case domain.TabFiles:
		return c.Files
	case domain.TabPeople:
		return c.People
	}
	return c.All
}

// Outcome is the result of applying Criteria to a result list
type Outcome struct {
	Visible []domain.SearchResult
	Counts  Counts
}

// Empty reports whether nothing is visible
func (o Outcome) Empty() bool {
	return len(o.Visible) == 0
}

// Apply filters results by criteria, keeping their order, and computes the
// tab counts. Counts only look at the query: the active tab and the content
// filters do not change them.
func Apply(results []domain.SearchResult, c Criteria) Outcome {
	out := Outcome{Visible: []domain.SearchResult{}}

	for _, r := range results {
		if !r.MatchesQuery(c.Query) {
			continue
		}

		category := r.Category()
		out.Counts.All++
		switch category {
		case domain.CategoryFiles:
			out.Counts.Files++
		case domain.CategoryPeople:
			out.Counts.People++
		}

		if Visible(r, c) {
			out.Visible = append(out.Visible, r)
		}
	}

	return out
}

// Visible reports whether a single result passes every filter step
func Visible(r domain.SearchResult, c Criteria) bool {
	if !r.MatchesQuery(c.Query) {
		return false
	}
	category := r.Category()
	if category == domain.CategoryFiles && !c.Filters.Files {
		return false
	}
	if category == domain.CategoryPeople && !c.Filters.People {
		return false
	}
	return c.Tab.Includes(category)
}
