package memstore

import (
	"context"
	"strings"
	"time"

	"profrate/internal/user"

	"github.com/google/uuid"
)

// UserRepo implements user.Repository.
type UserRepo struct {
	s *Store
}

var _ user.Repository = (*UserRepo)(nil)

func (r *UserRepo) Create(_ context.Context, u *user.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	mail := strings.ToLower(u.Email)
	if _, taken := r.s.usernames[u.Username]; taken {
		return user.ErrAlreadyExists
	}
	if _, taken := r.s.userMail[mail]; taken {
		return user.ErrAlreadyExists
	}
	u.ID = uuid.NewString()
	u.CreatedAt = r.s.now()
	r.s.users[u.ID] = *u
	r.s.usernames[u.Username] = u.ID
	r.s.userMail[mail] = u.ID
	return nil
}

func (r *UserRepo) GetByUsername(_ context.Context, username string) (user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	id, ok := r.s.usernames[username]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return r.s.users[id], nil
}

func (r *UserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

// BlacklistRepo implements auth.Blacklist.
type BlacklistRepo struct {
	s *Store
}

func (r *BlacklistRepo) Add(_ context.Context, jti, userID string, expiresAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.blacklist[jti] = revoked{userID: userID, expiresAt: expiresAt}
	return nil
}

func (r *BlacklistRepo) IsBlacklisted(_ context.Context, jti string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	entry, ok := r.s.blacklist[jti]
	if !ok {
		return false, nil
	}
	return entry.expiresAt.After(r.s.now()), nil
}

// CleanupExpired drops revoked tokens that have expired anyway.
func (r *BlacklistRepo) CleanupExpired(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := r.s.now()
	var n int64
	for jti, entry := range r.s.blacklist {
		if !entry.expiresAt.After(now) {
			delete(r.s.blacklist, jti)
			n++
		}
	}
	return n, nil
}
