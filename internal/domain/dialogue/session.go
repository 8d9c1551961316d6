package dialogue

import (
	"fmt"
	"time"

	"github.com/activityboard/activityboard/activityboard/logger"
	lru "github.com/hashicorp/golang-lru"
)

// Session is the scratch data of one user's conversation in one chat
type Session struct {
	State               State
	PendingActivityName string
	PendingPoints       int
	UpdatedAt           time.Time
}

type sessionKey struct {
	chatID int64
	userID int64
}

// SessionStore keeps sessions in a bounded LRU. Sessions idle for longer
// than the timeout read as StateNone. Safe for concurrent use.
type SessionStore struct {
	cache   *lru.Cache
	timeout time.Duration
	now     func() time.Time
}

func NewSessionStore(capacity int, timeout time.Duration) (*SessionStore, error) {
	cache, err := lru.New(capacity)
	if err != nil {
		return nil, fmt.Errorf("failed to create session cache: %w", err)
	}
	return &SessionStore{
		cache:   cache,
		timeout: timeout,
		now:     time.Now,
	}, nil
}

func (s *SessionStore) Get(chatID, userID int64) Session {
	key := sessionKey{chatID: chatID, userID: userID}
	cached, ok := s.cache.Get(key)
	if !ok {
		return Session{}
	}
	session, ok := cached.(Session)
	if !ok {
		return Session{}
	}
	if s.timeout > 0 && s.now().Sub(session.UpdatedAt) > s.timeout {
		s.cache.Remove(key)
		return Session{}
	}
	return session
}

func (s *SessionStore) Set(chatID, userID int64, session Session) {
	previous := s.Get(chatID, userID)
	session.UpdatedAt = s.now()
	s.cache.Add(sessionKey{chatID: chatID, userID: userID}, session)
	logger.LogTransition(chatID, userID, previous.State.String(), session.State.String())
}

// Move changes the state and keeps the pending fields
func (s *SessionStore) Move(chatID, userID int64, to State) {
	session := s.Get(chatID, userID)
	session.State = to
	s.Set(chatID, userID, session)
}

// Clear ends the conversation
func (s *SessionStore) Clear(chatID, userID int64) {
	previous := s.Get(chatID, userID)
	s.cache.Remove(sessionKey{chatID: chatID, userID: userID})
	logger.LogTransition(chatID, userID, previous.State.String(), StateNone.String())
}

func (s *SessionStore) Len() int {
	return s.cache.Len()
}
