package auth

import (
	"net/http"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"

	"github.com/petrosur/ordenes/internal/models"
)

const (
	// SessionName is the cookie name of the signed session.
	SessionName = "ordenes-session"

	sessionKeyUserID  = "user_id"
	sessionKeyNombre  = "nombre"
	sessionKeyRol     = "rol"
	sessionKeyEmpresa = "empresa_id"
)

// SessionStore wraps the signed-cookie store that carries the principal
// between requests.
type SessionStore struct {
	store *sessions.CookieStore
}

// NewSessionStore builds a cookie store from the configured key. An empty
// key gets a random one, which invalidates sessions on restart.
func NewSessionStore(key string) *SessionStore {
	var secret []byte
	if key == "" {
		secret = securecookie.GenerateRandomKey(32)
	} else {
		secret = []byte(key)
	}

	store := sessions.NewCookieStore(secret)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &SessionStore{store: store}
}

// Save writes the principal into the session cookie.
func (s *SessionStore) Save(r *http.Request, w http.ResponseWriter, p models.Principal) error {
	session, _ := s.store.Get(r, SessionName)
	session.Values[sessionKeyUserID] = p.UserID
	session.Values[sessionKeyNombre] = p.Nombre
	session.Values[sessionKeyRol] = string(p.Rol)
	session.Values[sessionKeyEmpresa] = p.EmpresaID
	return session.Save(r, w)
}

// Clear expires the session cookie.
func (s *SessionStore) Clear(r *http.Request, w http.ResponseWriter) error {
	session, _ := s.store.Get(r, SessionName)
	session.Options.MaxAge = -1
	return session.Save(r, w)
}

// Principal rebuilds the principal from the session cookie; ok is false when
// there is no valid session.
func (s *SessionStore) Principal(r *http.Request) (*models.Principal, bool) {
	session, err := s.store.Get(r, SessionName)
	if err != nil || session.IsNew {
		return nil, false
	}

	userID, _ := session.Values[sessionKeyUserID].(string)
	nombre, _ := session.Values[sessionKeyNombre].(string)
	rolStr, _ := session.Values[sessionKeyRol].(string)
	empresaID, _ := session.Values[sessionKeyEmpresa].(string)

	rol := models.Role(rolStr)
	if userID == "" || !models.IsValidRole(rol) {
		return nil, false
	}
	return &models.Principal{
		UserID:    userID,
		Nombre:    nombre,
		Rol:       rol,
		EmpresaID: empresaID,
	}, true
}
