package memory

import (
	"context"

	"eventhub/internal/domain"
)

// GetUserRegisteredEvents returns one entry per registration of the user, in
// registration order, carrying that registration's status. Registrations whose
// event was deleted are skipped.
func (s *Store) GetUserRegisteredEvents(ctx context.Context, userID int64) ([]*domain.EventWithDetails, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registeredEvents(userID), nil
}

func (s *Store) GetUserOrganizedEvents(ctx context.Context, userID int64) ([]*domain.EventWithDetails, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.organizedEvents(userID), nil
}

func (s *Store) GetUserEventStats(ctx context.Context, userID int64) (*domain.UserEventStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stats := s.userEventStats(userID)
	return &stats, nil
}

func (s *Store) registeredEvents(userID int64) []*domain.EventWithDetails {
	counts := s.participantCounts()
	result := make([]*domain.EventWithDetails, 0)
	s.registrations.each(func(r domain.Registration) bool {
		if r.UserID != userID {
			return true
		}
		e, ok := s.events.get(r.EventID)
		if !ok {
			return true
		}
		d := s.details(e, counts[e.ID])
		status := r.Status
		d.Status = &status
		result = append(result, d)
		return true
	})
	return result
}

func (s *Store) organizedEvents(userID int64) []*domain.EventWithDetails {
	counts := s.participantCounts()
	result := make([]*domain.EventWithDetails, 0)
	s.events.each(func(e domain.Event) bool {
		if e.OrganizerID == userID {
			result = append(result, s.details(e, counts[e.ID]))
		}
		return true
	})
	return result
}

// userEventStats composes the counts from the same views the dashboard serves,
// so the two never disagree.
func (s *Store) userEventStats(userID int64) domain.UserEventStats {
	return domain.UserEventStats{
		EventsAttended:     len(s.registeredEvents(userID)),
		EventsOrganized:    len(s.organizedEvents(userID)),
		CertificatesEarned: len(s.userCertificates(userID)),
		AwardsWon:          len(s.userAwards(userID)),
	}
}
