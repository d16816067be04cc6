package session

import (
	"log/slog"
	"maps"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserIDKey is the session key holding the authenticated user id.
const UserIDKey = "user_id"

const stateContextKey = "session.state"

// Store reads and writes session values for the current request. Every Set
// and Clear rewrites the response's session cookie.
type Store interface {
	Get(c *gin.Context, key string) (string, bool)
	Set(c *gin.Context, key, value string) error
	Clear(c *gin.Context, key string) error
	UserID(c *gin.Context) (int64, bool)
	SetUserID(c *gin.Context, userID int64) error
}

type state struct {
	id        string
	values    map[string]string
	expiresAt time.Time
}

type cookieStore struct {
	codec   Codec
	cookies *CookieHelper
	revoker Revoker
	logger  *slog.Logger
}

// NewStore creates a cookie-backed Store. revoker may be nil, in which case
// cleared cookies are only expired client-side.
func NewStore(codec Codec, cookies *CookieHelper, revoker Revoker, logger *slog.Logger) Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &cookieStore{
		codec:   codec,
		cookies: cookies,
		revoker: revoker,
		logger:  logger,
	}
}

func (s *cookieStore) Get(c *gin.Context, key string) (string, bool) {
	value, ok := s.load(c).values[key]
	return value, ok
}

func (s *cookieStore) Set(c *gin.Context, key, value string) error {
	st := s.load(c)

	// A new identity always gets a new session id.
	if st.id == "" || key == UserIDKey {
		s.revoke(c, st)
		st.id = uuid.NewString()
	}
	st.values[key] = value

	return s.save(c, st)
}

func (s *cookieStore) Clear(c *gin.Context, key string) error {
	st := s.load(c)
	delete(st.values, key)

	if len(st.values) > 0 {
		return s.save(c, st)
	}

	s.revoke(c, st)
	st.id = ""
	st.expiresAt = time.Time{}
	s.cookies.ClearSessionCookie(c)
	return nil
}

func (s *cookieStore) UserID(c *gin.Context) (int64, bool) {
	raw, ok := s.Get(c, UserIDKey)
	if !ok {
		return 0, false
	}
	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || userID <= 0 {
		return 0, false
	}
	return userID, true
}

func (s *cookieStore) SetUserID(c *gin.Context, userID int64) error {
	return s.Set(c, UserIDKey, strconv.FormatInt(userID, 10))
}

func (s *cookieStore) save(c *gin.Context, st *state) error {
	token, err := s.codec.Encode(st.id, st.values)
	if err != nil {
		return err
	}
	st.expiresAt = time.Now().Add(s.codec.MaxAge())
	s.cookies.SetSessionCookie(c, token, s.codec.MaxAge())
	return nil
}

// load decodes the request cookie once per request. Invalid, expired or
// revoked cookies yield an empty session.
func (s *cookieStore) load(c *gin.Context) *state {
	if cached, ok := c.Get(stateContextKey); ok {
		if st, ok := cached.(*state); ok {
			return st
		}
	}

	st := &state{values: map[string]string{}}
	if token := s.cookies.GetSessionToken(c); token != "" {
		claims, err := s.codec.Decode(token)
		switch {
		case err != nil:
			s.logger.Debug("discarding session cookie", "error", err)
		case s.isRevoked(c, claims.ID):
			s.logger.Debug("discarding revoked session", "session_id", claims.ID)
		default:
			st.id = claims.ID
			st.values = maps.Clone(claims.Values)
			if claims.ExpiresAt != nil {
				st.expiresAt = claims.ExpiresAt.Time
			}
		}
	}

	c.Set(stateContextKey, st)
	return st
}

// isRevoked fails closed: a revocation lookup error rejects the session.
func (s *cookieStore) isRevoked(c *gin.Context, sessionID string) bool {
	if s.revoker == nil {
		return false
	}
	revoked, err := s.revoker.IsRevoked(c.Request.Context(), sessionID)
	if err != nil {
		s.logger.Error("session revocation check failed", "error", err)
		return true
	}
	return revoked
}

func (s *cookieStore) revoke(c *gin.Context, st *state) {
	if s.revoker == nil || st.id == "" {
		return
	}
	if err := s.revoker.Revoke(c.Request.Context(), st.id, time.Until(st.expiresAt)); err != nil {
		s.logger.Error("failed to revoke session", "session_id", st.id, "error", err)
	}
}
