package memory

import (
	"context"

	"eventhub/internal/domain"
)

func (s *Store) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users.get(id)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.usernames[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u, _ := s.users.get(id)
	return &u, nil
}

// CreateUser inserts a user if the username is free. Usernames are case-sensitive.
func (s *Store) CreateUser(ctx context.Context, in domain.UserInput) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.usernames[in.Username]; taken {
		return nil, domain.ErrDuplicateUsername
	}
	memberSince := in.MemberSince
	if memberSince.IsZero() {
		memberSince = s.now()
	}
	u := s.users.insert(func(id int64) domain.User {
		return domain.User{
			ID:           id,
			Username:     in.Username,
			Password:     in.Password,
			Fullname:     in.Fullname,
			Email:        in.Email,
			Phone:        in.Phone,
			Location:     in.Location,
			About:        in.About,
			ProfileImage: in.ProfileImage,
			MemberSince:  memberSince,
		}
	})
	s.usernames[u.Username] = u.ID
	return &u, nil
}

func (s *Store) UpdateUser(ctx context.Context, id int64, patch domain.UserUpdate) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users.get(id)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	oldName := u.Username
	if patch.Username != nil && *patch.Username != oldName {
		if _, taken := s.usernames[*patch.Username]; taken {
			return nil, domain.ErrDuplicateUsername
		}
	}
	patch.Apply(&u)
	if u.Username != oldName {
		delete(s.usernames, oldName)
		s.usernames[u.Username] = id
	}
	s.users.put(id, u)
	return &u, nil
}
