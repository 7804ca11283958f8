package domain

import (
	"context"
	"time"
)

// User represents a registered account. Password is an opaque credential and is
// never serialized.
// swagger:model User
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Password     string    `json:"-"`
	Fullname     string    `json:"fullname"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Location     string    `json:"location"`
	About        string    `json:"about"`
	ProfileImage string    `json:"profileImage"`
	MemberSince  time.Time `json:"memberSince"`
}

// UserInput holds the caller-supplied fields of a new User. A zero MemberSince
// is replaced by the creation time.
type UserInput struct {
	Username     string
	Password     string
	Fullname     string
	Email        string
	Phone        string
	Location     string
	About        string
	ProfileImage string
	MemberSince  time.Time
}

// UserUpdate lists the mutable fields of a User. Nil fields are left unchanged.
type UserUpdate struct {
	Username     *string
	Password     *string
	Fullname     *string
	Email        *string
	Phone        *string
	Location     *string
	About        *string
	ProfileImage *string
	MemberSince  *time.Time
}

// Apply copies every non-nil field of the update onto u.
func (p UserUpdate) Apply(u *User) {
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.Password != nil {
		u.Password = *p.Password
	}
	if p.Fullname != nil {
		u.Fullname = *p.Fullname
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Location != nil {
		u.Location = *p.Location
	}
	if p.About != nil {
		u.About = *p.About
	}
	if p.ProfileImage != nil {
		u.ProfileImage = *p.ProfileImage
	}
	if p.MemberSince != nil {
		u.MemberSince = *p.MemberSince
	}
}

// PasswordHasher hashes and verifies passwords. Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// UserRepository defines user storage. CreateUser inserts only when the username
// is free and returns ErrDuplicateUsername otherwise.
type UserRepository interface {
	GetUser(ctx context.Context, id int64) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	CreateUser(ctx context.Context, in UserInput) (*User, error)
	UpdateUser(ctx context.Context, id int64, patch UserUpdate) (*User, error)
}

// UserService defines account operations on top of the repository.
type UserService interface {
	Register(ctx context.Context, in UserInput) (*User, error)
	Update(ctx context.Context, id int64, patch UserUpdate) (*User, error)
}
