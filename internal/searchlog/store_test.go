package searchlog

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skyform/internal/domain"
	"skyform/internal/eventbus"
)

func request(id string) domain.SearchRequest {
	return domain.SearchRequest{
		ID:          id,
		TripType:    domain.OneWay,
		Origin:      domain.Location{City: "Dhaka"},
		Destination: domain.Location{City: "Chittagong"},
		Passengers:  domain.DefaultPassengers,
		FareClass:   domain.Economy,
	}
}

func TestMemoryStoreAddAndGet(t *testing.T) {
	s := NewMemoryStore(0)

	_, ok := s.Latest()
	assert.False(t, ok)

	s.AddSearch(request("a"))
	s.AddSearch(request("b"))

	got, ok := s.GetSearch("a")
	require.True(t, ok)
	assert.Equal(t, "Dhaka", got.Origin.City)

	latest, ok := s.Latest()
	require.True(t, ok)
	assert.Equal(t, "b", latest.ID)
	assert.Equal(t, 2, s.Len())
}

func TestMemoryStoreReplacesSameID(t *testing.T) {
	s := NewMemoryStore(0)
	s.AddSearch(request("a"))

	updated := request("a")
	updated.FareClass = domain.First
	s.AddSearch(updated)

	assert.Equal(t, 1, s.Len())
	got, _ := s.GetSearch("a")
	assert.Equal(t, domain.First, got.FareClass)
}

func TestMemoryStoreDropsOldest(t *testing.T) {
	s := NewMemoryStore(3)
	for i := 0; i < 5; i++ {
		s.AddSearch(request(fmt.Sprint(i)))
	}

	all := s.GetAllSearches()
	require.Len(t, all, 3)
	assert.Equal(t, "2", all[0].ID)
	assert.Equal(t, "4", all[2].ID)

	_, ok := s.GetSearch("0")
	assert.False(t, ok)
}

func TestRecordFromBus(t *testing.T) {
	bus := eventbus.New()
	defer bus.Close()

	s := NewMemoryStore(0)
	unsubscribe := Record(bus, s)

	bus.Publish(eventbus.SearchRequestedEvent{Request: request("x")})
	require.Eventually(t, func() bool { return s.Len() == 1 }, time.Second, 10*time.Millisecond)

	unsubscribe()
	bus.Publish(eventbus.SearchRequestedEvent{Request: request("y")})
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, s.Len())
}
