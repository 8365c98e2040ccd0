// Package sessionstore keeps in-flight calendar selection sessions in
// process memory. Sessions are short-lived scratch state; losing them on
// restart only means the renter reopens the calendar.
package sessionstore

import (
	"time"

	"rentloop/internal/domain/calendar"
	"rentloop/internal/pkg/errs"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
)

type Store struct {
	cache *gocache.Cache
	ttl   time.Duration
}

func New(ttl time.Duration) *Store {
	return &Store{
		cache: gocache.New(ttl, ttl*2),
		ttl:   ttl,
	}
}

// Save writes the session and resets its TTL. Every user interaction goes
// through Save, so an active session never expires mid-selection.
func (s *Store) Save(sess *calendar.Session) {
	s.cache.Set(sess.ID().String(), sess, s.ttl)
}

func (s *Store) Find(id uuid.UUID) (*calendar.Session, error) {
	v, ok := s.cache.Get(id.String())
	if !ok {
		return nil, errs.Mark(errs.New("session missing or expired"), errs.ErrSessionNotFound)
	}
	sess, ok := v.(*calendar.Session)
	if !ok {
		return nil, errs.Mark(errs.New("unexpected session cache entry"), errs.ErrSessionNotFound)
	}
	return sess, nil
}

func (s *Store) Delete(id uuid.UUID) {
	s.cache.Delete(id.String())
}
