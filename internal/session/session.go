package session

import (
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	cookieName = "storefront_session"
	userIDKey  = "user_id"
)

// Manager issues and resolves HTTP-only cookie sessions. A session carries
// only the authenticated user id; an absent or expired session is the
// anonymous state, never an error.
type Manager struct {
	store  *sessions.CookieStore
	maxAge int
}

func NewManager(secret string, maxAge int, secure bool) *Manager {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	// Sets both the cookie lifetime and the codec validity window.
	store.MaxAge(maxAge)
	return &Manager{store: store, maxAge: maxAge}
}

// Issue binds the session cookie to the given user id.
func (m *Manager) Issue(w http.ResponseWriter, r *http.Request, userID int64) error {
	sess, _ := m.store.Get(r, cookieName)
	sess.Values[userIDKey] = userID
	sess.Options.MaxAge = m.maxAge
	return sess.Save(r, w)
}

// Clear destroys the session cookie.
func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) error {
	sess, _ := m.store.Get(r, cookieName)
	delete(sess.Values, userIDKey)
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}

// UserID resolves the session to a user id. ok is false for anonymous
// requests, including expired or tampered cookies.
func (m *Manager) UserID(r *http.Request) (int64, bool) {
	sess, err := m.store.Get(r, cookieName)
	if err != nil || sess.IsNew {
		return 0, false
	}
	id, ok := sess.Values[userIDKey].(int64)
	return id, ok
}

// Refresh re-saves the session, sliding its expiry window forward.
func (m *Manager) Refresh(w http.ResponseWriter, r *http.Request) {
	sess, err := m.store.Get(r, cookieName)
	if err != nil || sess.IsNew {
		return
	}
	if _, ok := sess.Values[userIDKey].(int64); !ok {
		return
	}
	sess.Options.MaxAge = m.maxAge
	_ = sess.Save(r, w)
}
