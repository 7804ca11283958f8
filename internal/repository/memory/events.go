package memory

import (
	"context"
	"sort"

	"eventhub/internal/domain"
)

func (s *Store) GetEvent(ctx context.Context, id int64) (*domain.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.events.get(id)
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	return cloneEvent(e), nil
}

func (s *Store) GetEventWithDetails(ctx context.Context, id int64) (*domain.EventWithDetails, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.events.get(id)
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	return s.details(e, s.participantCount(id)), nil
}

func (s *Store) GetEvents(ctx context.Context) ([]*domain.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	events := make([]*domain.Event, 0, s.events.len())
	s.events.each(func(e domain.Event) bool {
		events = append(events, cloneEvent(e))
		return true
	})
	return events, nil
}

// GetFeaturedEvents returns up to limit events, latest start date first.
// A non-positive limit means domain.DefaultFeaturedLimit.
func (s *Store) GetFeaturedEvents(ctx context.Context, limit int) ([]*domain.Event, error) {
	if limit <= 0 {
		limit = domain.DefaultFeaturedLimit
	}
	events, err := s.GetEvents(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].StartDate.After(events[j].StartDate)
	})
	if len(events) > limit {
		events = events[:limit]
	}
	return events, nil
}

func (s *Store) CreateEvent(ctx context.Context, in domain.EventInput) (*domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	createdAt := s.now()
	e := s.events.insert(func(id int64) domain.Event {
		ev := domain.Event{
			ID:               id,
			Title:            in.Title,
			Description:      in.Description,
			StartDate:        in.StartDate,
			EndDate:          in.EndDate,
			Location:         in.Location,
			Image:            in.Image,
			EventType:        in.EventType,
			OrganizerID:      in.OrganizerID,
			ParticipantLimit: in.ParticipantLimit,
			CreatedAt:        createdAt,
		}
		if in.PrizePool != nil {
			prize := *in.PrizePool
			ev.PrizePool = &prize
		}
		return ev
	})
	return cloneEvent(e), nil
}

func (s *Store) UpdateEvent(ctx context.Context, id int64, patch domain.EventUpdate) (*domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.events.get(id)
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	patch.Apply(&e)
	s.events.put(id, e)
	return cloneEvent(e), nil
}

// DeleteEvent removes the event. Registrations, certificates and awards that
// reference it are kept.
func (s *Store) DeleteEvent(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.events.remove(id) {
		return domain.ErrEventNotFound
	}
	return nil
}

// details builds the event view. Callers must hold the lock.
func (s *Store) details(e domain.Event, participants int) *domain.EventWithDetails {
	d := &domain.EventWithDetails{
		Event:            *cloneEvent(e),
		ParticipantCount: participants,
	}
	if organizer, ok := s.users.get(e.OrganizerID); ok {
		d.Organizer = &organizer
	}
	return d
}

// participantCount counts registrations for the event regardless of status.
// Callers must hold the lock.
func (s *Store) participantCount(eventID int64) int {
	n := 0
	s.registrations.each(func(r domain.Registration) bool {
		if r.EventID == eventID {
			n++
		}
		return true
	})
	return n
}

// participantCounts counts registrations per event in one pass. Callers must hold the lock.
func (s *Store) participantCounts() map[int64]int {
	counts := make(map[int64]int)
	s.registrations.each(func(r domain.Registration) bool {
		counts[r.EventID]++
		return true
	})
	return counts
}
