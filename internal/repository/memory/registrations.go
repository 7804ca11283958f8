package memory

import (
	"context"

	"eventhub/internal/domain"
)

// RegisterForEvent inserts a registration unless the user already holds one for
// the event, in which case the existing registration is returned with
// domain.ErrAlreadyRegistered. Neither the user nor the event has to exist.
func (s *Store) RegisterForEvent(ctx context.Context, in domain.RegistrationInput) (*domain.Registration, error) {
	status := in.Status
	if status == "" {
		status = domain.StatusPending
	}
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	key := pairKey{userID: in.UserID, eventID: in.EventID}
	if id, ok := s.pairs[key]; ok {
		existing, _ := s.registrations.get(id)
		return &existing, domain.ErrAlreadyRegistered
	}
	registeredAt := s.now()
	reg := s.registrations.insert(func(id int64) domain.Registration {
		return domain.Registration{
			ID:           id,
			UserID:       in.UserID,
			EventID:      in.EventID,
			Status:       status,
			RegisteredAt: registeredAt,
		}
	})
	s.pairs[key] = reg.ID
	return &reg, nil
}

func (s *Store) GetRegistration(ctx context.Context, userID, eventID int64) (*domain.Registration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.pairs[pairKey{userID: userID, eventID: eventID}]
	if !ok {
		return nil, domain.ErrRegistrationNotFound
	}
	reg, _ := s.registrations.get(id)
	return &reg, nil
}

func (s *Store) GetRegistrationsByUser(ctx context.Context, userID int64) ([]*domain.Registration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registrationsWhere(func(r domain.Registration) bool { return r.UserID == userID }), nil
}

func (s *Store) GetRegistrationsByEvent(ctx context.Context, eventID int64) ([]*domain.Registration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registrationsWhere(func(r domain.Registration) bool { return r.EventID == eventID }), nil
}

// UpdateRegistrationStatus overwrites the status. Any known status may replace any other.
func (s *Store) UpdateRegistrationStatus(ctx context.Context, id int64, status domain.RegistrationStatus) (*domain.Registration, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	reg, ok := s.registrations.get(id)
	if !ok {
		return nil, domain.ErrRegistrationNotFound
	}
	reg.Status = status
	s.registrations.put(id, reg)
	return &reg, nil
}

func (s *Store) registrationsWhere(match func(domain.Registration) bool) []*domain.Registration {
	regs := make([]*domain.Registration, 0)
	s.registrations.each(func(r domain.Registration) bool {
		if match(r) {
			regs = append(regs, &r)
		}
		return true
	})
	return regs
}
