package searchlog

import "skyform/internal/domain"

// Store keeps the search requests made during this session
type Store interface {
	GetSearch(id string) (domain.SearchRequest, bool)
	GetAllSearches() []domain.SearchRequest // oldest first
	AddSearch(req domain.SearchRequest)
	Latest() (domain.SearchRequest, bool)
	Len() int
}
