package session

import (
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"hawkerhero/internal/model"
)

// CookieName is the name of the session cookie.
const CookieName = "hawkerhero_session"

const (
	tokenContextKey   = "session_token"
	sessionContextKey = "session"
	managerContextKey = "session_manager"
	clearContextKey   = "session_clear"
)

// Manager binds a Store and a Signer to HTTP requests.
type Manager struct {
	store  *Store
	signer *Signer
	secure bool
	log    *zap.Logger
}

// NewManager creates a session manager. secure marks the cookie Secure.
func NewManager(store *Store, signer *Signer, secure bool, log *zap.Logger) *Manager {
	return &Manager{store: store, signer: signer, secure: secure, log: log}
}

// Middleware parses the session cookie, loads or creates the session and
// persists it right before the response header is written.
func (m *Manager) Middleware() echo.MiddlewareFunc {
	parse := echojwt.WithConfig(echojwt.Config{
		SigningKey:    m.signer.Key(),
		SigningMethod: echojwt.AlgorithmHS256,
		TokenLookup:   "cookie:" + CookieName,
		ContextKey:    tokenContextKey,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(jwt.RegisteredClaims)
		},
		// missing, expired or tampered cookies degrade to an anonymous session
		ContinueOnIgnoredError: true,
		ErrorHandler: func(c echo.Context, err error) error {
			return nil
		},
	})
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return parse(m.load(next))
	}
}

func (m *Manager) load(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		var sess *Session
		if id := tokenSessionID(c); id != "" {
			loaded, err := m.store.Load(c.Request().Context(), id)
			if err != nil {
				m.log.Warn("session load failed", zap.Error(err))
			}
			sess = loaded
		}
		if sess == nil {
			sess = m.store.New()
		}
		c.Set(sessionContextKey, sess)
		c.Set(managerContextKey, m)
		c.Response().Before(func() { m.commit(c) })
		return next(c)
	}
}

func tokenSessionID(c echo.Context) string {
	token, ok := c.Get(tokenContextKey).(*jwt.Token)
	if !ok || !token.Valid {
		return ""
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return ""
	}
	return claims.ID
}

func (m *Manager) commit(c echo.Context) {
	sess := From(c)
	expire, _ := c.Get(clearContextKey).(bool)

	if sess.IsNew() && sess.Empty() {
		if expire {
			m.clearCookie(c)
		}
		return
	}
	// an anonymous session with nothing left to carry is dropped
	if sess.Empty() {
		if err := m.store.Destroy(c.Request().Context(), sess.ID); err != nil {
			m.log.Error("session destroy failed", zap.String("session_id", sess.ID), zap.Error(err))
		}
		m.clearCookie(c)
		return
	}
	// an existing session is touched on every request to slide its TTL
	if !sess.Dirty() && !sess.IsNew() && sess.User == nil {
		return
	}
	isNew := sess.IsNew()
	if err := m.store.Save(c.Request().Context(), sess); err != nil {
		m.log.Error("session save failed", zap.String("session_id", sess.ID), zap.Error(err))
		return
	}
	if isNew {
		m.setCookie(c, sess.ID)
	}
}

func (m *Manager) setCookie(c echo.Context, id string) {
	token, expires, err := m.signer.Sign(id)
	if err != nil {
		m.log.Error("session token sign failed", zap.Error(err))
		return
	}
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  expires,
		MaxAge:   int(time.Until(expires).Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (m *Manager) clearCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// From returns the session of the request. Without the middleware a detached
// empty session is returned so callers never see nil.
func From(c echo.Context) *Session {
	if sess, ok := c.Get(sessionContextKey).(*Session); ok && sess != nil {
		return sess
	}
	sess := newSession("")
	c.Set(sessionContextKey, sess)
	return sess
}

// CurrentUser returns the authenticated identity or nil.
func CurrentUser(c echo.Context) *model.Identity {
	return From(c).User
}

// Flash queues a message for the next rendered page.
func Flash(c echo.Context, category, msg string) {
	From(c).AddFlash(category, msg)
}

// Login binds identity to a fresh session id, carrying pending flashes over.
func Login(c echo.Context, identity *model.Identity) error {
	old := From(c)
	m, ok := c.Get(managerContextKey).(*Manager)
	if !ok {
		old.SetUser(identity)
		return nil
	}
	renewed, err := m.store.Renew(c.Request().Context(), old)
	if err != nil {
		return err
	}
	renewed.SetUser(identity)
	c.Set(sessionContextKey, renewed)
	return nil
}

// Logout destroys all session data and expires the cookie.
func Logout(c echo.Context) error {
	old := From(c)
	m, ok := c.Get(managerContextKey).(*Manager)
	if !ok {
		c.Set(sessionContextKey, newSession(""))
		return nil
	}
	if !old.IsNew() {
		if err := m.store.Destroy(c.Request().Context(), old.ID); err != nil {
			return err
		}
	}
	c.Set(sessionContextKey, m.store.New())
	c.Set(clearContextKey, true)
	return nil
}
