package logic

import "searchpanel/internal/domain"

// ResultSource provides read-only access to search results.
// The panel only ever reads through this interface so that a live data
// source can replace the fixture without touching the filter engine.
type ResultSource interface {
	FetchResults() []domain.SearchResult
}

// ResultStore is a ResultSource that can be filled at start-up
type ResultStore interface {
	ResultSource
	AddResult(result domain.SearchResult)
	GetResult(id string) (domain.SearchResult, bool)
	Len() int
}
