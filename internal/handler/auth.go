package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/IsmaGarcia115/tienda-xprin/internal/flash"
	"github.com/IsmaGarcia115/tienda-xprin/internal/forms"
	"github.com/IsmaGarcia115/tienda-xprin/internal/middleware"
	"github.com/IsmaGarcia115/tienda-xprin/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// ── Registro ─────────────────────────────────────────────────────────────────

func (h *AuthHandler) RegistroGET(c *gin.Context) {
	if middleware.GetPrincipal(c) != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}
	render(c, http.StatusOK, "registro.html", gin.H{"Form": &forms.RegistroForm{}})
}

func (h *AuthHandler) RegistroPOST(c *gin.Context) {
	if middleware.GetPrincipal(c) != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	var f forms.RegistroForm
	_ = c.ShouldBind(&f)
	if !f.Validar() {
		render(c, http.StatusOK, "registro.html", gin.H{"Form": &f})
		return
	}

	err := h.svc.Registrar(c.Request.Context(), &f)
	if errors.Is(err, service.ErrEmailRegistrado) {
		flash.Agregar(c, flash.Peligro, "Este email ya está registrado")
		render(c, http.StatusOK, "registro.html", gin.H{"Form": &f})
		return
	}
	if err != nil {
		log.Error().Str("request_id", c.GetString(middleware.RequestIDKey)).Err(err).Msg("registro")
		flash.Agregar(c, flash.Peligro, "No se pudo completar el registro")
		render(c, http.StatusOK, "registro.html", gin.H{"Form": &f})
		return
	}

	flash.Agregar(c, flash.Exito, "Registro exitoso. Ya puedes iniciar sesión.")
	c.Redirect(http.StatusFound, "/login")
}

// ── Login / Logout ───────────────────────────────────────────────────────────

// destinoNext sanitizes the "next" redirect target: only same-site paths are
// honored, anything else falls back to the dashboard.
func destinoNext(c *gin.Context) string {
	next := c.Query("next")
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") {
		return next
	}
	return "/"
}

func (h *AuthHandler) LoginGET(c *gin.Context) {
	if middleware.GetPrincipal(c) != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}
	render(c, http.StatusOK, "login.html", gin.H{"Form": &forms.LoginForm{}, "Next": c.Query("next")})
}

func (h *AuthHandler) LoginPOST(c *gin.Context) {
	if middleware.GetPrincipal(c) != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	var f forms.LoginForm
	_ = c.ShouldBind(&f)
	if !f.Validar() {
		render(c, http.StatusOK, "login.html", gin.H{"Form": &f, "Next": c.Query("next")})
		return
	}

	p, err := h.svc.Login(c.Request.Context(), &f)
	if errors.Is(err, service.ErrCredenciales) {
		flash.Agregar(c, flash.Peligro, "Email o contraseña incorrectos")
		render(c, http.StatusOK, "login.html", gin.H{"Form": &f, "Next": c.Query("next")})
		return
	}
	if err != nil {
		log.Error().Str("request_id", c.GetString(middleware.RequestIDKey)).Err(err).Msg("login")
		flash.Agregar(c, flash.Peligro, "No se pudo iniciar sesión")
		render(c, http.StatusOK, "login.html", gin.H{"Form": &f, "Next": c.Query("next")})
		return
	}

	if err := middleware.IniciarSesion(c, p); err != nil {
		log.Error().Err(err).Msg("guardar sesión")
	}
	flash.Agregar(c, flash.Exito, fmt.Sprintf("¡Bienvenido, %s!", p.Nombre))
	c.Redirect(http.StatusFound, destinoNext(c))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := middleware.CerrarSesion(c); err != nil {
		log.Error().Err(err).Msg("cerrar sesión")
	}
	flash.Agregar(c, flash.Exito, "Has cerrado sesión correctamente")
	c.Redirect(http.StatusFound, "/")
}
