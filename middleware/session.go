package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/kendall-kelly/storefront/models"
	"go.uber.org/zap"
)

const (
	// SessionName is the cookie name of the visitor session
	SessionName = "storefront"

	sessionContextKey = "session"
	stateKey          = "state"

	sessionMaxAge    = 86400 * 30 // 30 days
	sessionMaxLength = 64 * 1024  // large carts exceed securecookie's 4096 default
)

// NewSessionStore creates a server-side session store under dir (the OS
// temp dir when empty). Only the session id travels in the cookie.
func NewSessionStore(secret []byte, dir string, secure bool) *sessions.FilesystemStore {
	store := sessions.NewFilesystemStore(dir, secret)
	store.MaxAge(sessionMaxAge)
	store.MaxLength(sessionMaxLength)
	store.Options.Path = "/"
	store.Options.HttpOnly = true
	store.Options.Secure = secure
	store.Options.SameSite = http.SameSiteLaxMode
	return store
}

// Sessions loads the visitor's session and keeps it on the gin context.
// A cookie that cannot be decoded (expired, wrong secret) yields a new
// empty session.
func Sessions(store sessions.Store, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, err := store.Get(c.Request, SessionName)
		if err != nil {
			logger.Debug("Discarding unreadable session", zap.Error(err))
		}
		if session == nil {
			session = sessions.NewSession(store, SessionName)
		}
		c.Set(sessionContextKey, session)
		c.Next()
	}
}

// GetSession extracts the session from the Gin context
func GetSession(c *gin.Context) (*sessions.Session, error) {
	value, exists := c.Get(sessionContextKey)
	if !exists {
		return nil, &SessionError{Code: "MISSING_SESSION", Message: "Session not found in context"}
	}

	session, ok := value.(*sessions.Session)
	if !ok {
		return nil, &SessionError{Code: "INVALID_SESSION", Message: "Session is not in the expected format"}
	}

	return session, nil
}

// GetSessionState returns the typed state stored in the session. A new
// session has the zero state: not admin, empty cart.
func GetSessionState(c *gin.Context) (models.SessionState, error) {
	session, err := GetSession(c)
	if err != nil {
		return models.SessionState{}, err
	}

	state, _ := session.Values[stateKey].(models.SessionState)
	return state, nil
}

// SaveSessionState stores state in the session and writes the session.
// It must run before anything is written to the response body.
func SaveSessionState(c *gin.Context, state models.SessionState) error {
	session, err := GetSession(c)
	if err != nil {
		return err
	}

	session.Values[stateKey] = state
	return session.Save(c.Request, c.Writer)
}

// RenewSession makes the next save issue a new session id, keeping the
// values. Call it whenever the session gains privileges.
func RenewSession(c *gin.Context) error {
	session, err := GetSession(c)
	if err != nil {
		return err
	}

	session.ID = ""
	session.IsNew = true
	return nil
}

// DestroySession drops everything in the session and expires its cookie
func DestroySession(c *gin.Context) error {
	session, err := GetSession(c)
	if err != nil {
		return err
	}

	session.Values = make(map[interface{}]interface{})
	if session.Options == nil {
		session.Options = &sessions.Options{Path: "/"}
	}
	session.Options.MaxAge = -1
	return session.Save(c.Request, c.Writer)
}

// SessionError represents a session lookup error
type SessionError struct {
	Code    string
	Message string
}

func (e *SessionError) Error() string {
	return e.Message
}
