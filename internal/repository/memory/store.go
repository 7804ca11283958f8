// Package memory implements the event store as an in-process repository.
//
// A single Store owns users, events, registrations, certificates and awards.
// All operations run under one read/write lock, so each call is atomic and the
// derived views (event details, dashboards, stats) read a consistent snapshot.
package memory

import (
	"sync"
	"time"

	"eventhub/internal/domain"
)

type pairKey struct {
	userID  int64
	eventID int64
}

// Store is the in-memory implementation of domain.Repository.
type Store struct {
	mu sync.RWMutex

	users         *table[domain.User]
	events        *table[domain.Event]
	registrations *table[domain.Registration]
	certificates  *table[domain.Certificate]
	awards        *table[domain.Award]

	usernames map[string]int64
	pairs     map[pairKey]int64

	now func() time.Time
}

var _ domain.Repository = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithClock sets the time source used for generated timestamps and report dates.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore returns an empty Store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		users:         newTable[domain.User](),
		events:        newTable[domain.Event](),
		registrations: newTable[domain.Registration](),
		certificates:  newTable[domain.Certificate](),
		awards:        newTable[domain.Award](),
		usernames:     make(map[string]int64),
		pairs:         make(map[pairKey]int64),
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func cloneEvent(e domain.Event) *domain.Event {
	if e.PrizePool != nil {
		prize := *e.PrizePool
		e.PrizePool = &prize
	}
	return &e
}
