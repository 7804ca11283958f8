package memory

import (
	"context"

	"eventhub/internal/domain"
)

func (s *Store) GetUserCertificates(ctx context.Context, userID int64) ([]*domain.Certificate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userCertificates(userID), nil
}

func (s *Store) GetUserAwards(ctx context.Context, userID int64) ([]*domain.Award, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userAwards(userID), nil
}

func (s *Store) CreateCertificate(ctx context.Context, in domain.CertificateInput) (*domain.Certificate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	awardedAt := s.now()
	c := s.certificates.insert(func(id int64) domain.Certificate {
		return domain.Certificate{ID: id, UserID: in.UserID, EventID: in.EventID, Name: in.Name, AwardedAt: awardedAt}
	})
	return &c, nil
}

func (s *Store) CreateAward(ctx context.Context, in domain.AwardInput) (*domain.Award, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	awardedAt := s.now()
	a := s.awards.insert(func(id int64) domain.Award {
		return domain.Award{ID: id, UserID: in.UserID, EventID: in.EventID, Name: in.Name, AwardedAt: awardedAt}
	})
	return &a, nil
}

func (s *Store) userCertificates(userID int64) []*domain.Certificate {
	certs := make([]*domain.Certificate, 0)
	s.certificates.each(func(c domain.Certificate) bool {
		if c.UserID == userID {
			certs = append(certs, &c)
		}
		return true
	})
	return certs
}

func (s *Store) userAwards(userID int64) []*domain.Award {
	awards := make([]*domain.Award, 0)
	s.awards.each(func(a domain.Award) bool {
		if a.UserID == userID {
			awards = append(awards, &a)
		}
		return true
	})
	return awards
}
