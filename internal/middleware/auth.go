package middleware

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/IsmaGarcia115/tienda-xprin/internal/flash"
	"github.com/IsmaGarcia115/tienda-xprin/internal/repository"
	"github.com/IsmaGarcia115/tienda-xprin/internal/service"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	// PrincipalKey is the gin context key holding the authenticated identity.
	PrincipalKey = "principal"

	// sesionUserID is the session key holding the logged-in user's id.
	sesionUserID = "user_id"
)

// Sesion rehydrates the session principal on every request: it reads the user
// id from the cookie session and loads the identity through AuthService. A
// stale or malformed id clears the session silently — the request simply
// proceeds unauthenticated.
func Sesion(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := sessions.Default(c)
		if id, ok := s.Get(sesionUserID).(string); ok && id != "" {
			p, err := auth.PrincipalPorID(c.Request.Context(), id)
			switch {
			case err == nil:
				c.Set(PrincipalKey, p)
			case errors.Is(err, repository.ErrNoEncontrado):
				s.Delete(sesionUserID)
				_ = s.Save()
			}
		}
		c.Next()
	}
}

// GetPrincipal returns the authenticated identity, or nil for anonymous
// requests.
func GetPrincipal(c *gin.Context) *service.Principal {
	if v, ok := c.Get(PrincipalKey); ok {
		if p, ok := v.(*service.Principal); ok {
			return p
		}
	}
	return nil
}

// IniciarSesion stores the principal in the cookie session after login.
func IniciarSesion(c *gin.Context, p *service.Principal) error {
	s := sessions.Default(c)
	s.Set(sesionUserID, p.ID)
	return s.Save()
}

// CerrarSesion drops the principal from the cookie session.
func CerrarSesion(c *gin.Context) error {
	s := sessions.Default(c)
	s.Delete(sesionUserID)
	return s.Save()
}

// LoginRequerido redirects anonymous requests to /login, preserving the
// originally requested path as the "next" parameter.
func LoginRequerido() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetPrincipal(c) == nil {
			flash.Agregar(c, flash.Peligro, "Debes iniciar sesión para acceder a esta página.")
			c.Redirect(http.StatusFound, "/login?next="+url.QueryEscape(c.Request.URL.Path))
			c.Abort()
			return
		}
		c.Next()
	}
}
