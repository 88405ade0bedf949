package searchlog

import (
	"log"
	"sync"

	"skyform/internal/domain"
	"skyform/internal/eventbus"
)

// DefaultCapacity is how many searches a session log keeps
const DefaultCapacity = 50

// MemoryStore is an in-memory implementation of Store. Once full, the oldest
// search is dropped for each new one.
type MemoryStore struct {
	mu       sync.RWMutex
	capacity int
	order    []string
	searches map[string]domain.SearchRequest
}

// NewMemoryStore creates a store holding at most capacity searches
func NewMemoryStore(capacity int) *MemoryStore {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &MemoryStore{
		capacity: capacity,
		searches: make(map[string]domain.SearchRequest),
	}
}

func (s *MemoryStore) GetSearch(id string) (domain.SearchRequest, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	req, ok := s.searches[id]
	return req, ok
}

func (s *MemoryStore) GetAllSearches() []domain.SearchRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.SearchRequest, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.searches[id])
	}
	return result
}

func (s *MemoryStore) AddSearch(req domain.SearchRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.searches[req.ID]; exists {
		s.searches[req.ID] = req
		return
	}
	if len(s.order) == s.capacity {
		delete(s.searches, s.order[0])
		s.order = s.order[1:]
	}
	s.order = append(s.order, req.ID)
	s.searches[req.ID] = req
}

func (s *MemoryStore) Latest() (domain.SearchRequest, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.order) == 0 {
		return domain.SearchRequest{}, false
	}
	return s.searches[s.order[len(s.order)-1]], true
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// Record subscribes store to search requests on bus and returns the unsubscribe func
func Record(bus eventbus.EventBus, store Store) func() {
	return bus.Subscribe(eventbus.EventSearchRequested, func(e eventbus.DomainEvent) {
		event, ok := e.(eventbus.SearchRequestedEvent)
		if !ok {
			return
		}
		store.AddSearch(event.Request)
		log.Printf("Search %s recorded (%d this session)", event.Request.ID, store.Len())
	})
}
