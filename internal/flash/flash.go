// Package flash provides the one-time, severity-tagged notices rendered on the
// next page view. All user-visible failures and confirmations go through this
// package to ensure consistency and to prevent leaking internal details
// (stack traces, store errors, etc.).
package flash

import (
	"encoding/gob"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Severity categories map 1:1 to the alert styles of the templates.
const (
	Exito   = "success"
	Peligro = "danger"
)

// Mensaje is the canonical notice envelope queued in the session.
type Mensaje struct {
	Texto     string
	Categoria string
}

func init() {
	// Cookie sessions serialize values with gob.
	gob.Register(Mensaje{})
}

// Agregar queues a notice for the next rendered page.
func Agregar(c *gin.Context, categoria, texto string) {
	s := sessions.Default(c)
	s.AddFlash(Mensaje{Texto: texto, Categoria: categoria})
	_ = s.Save()
}

// Consumir returns the queued notices and clears them from the session.
func Consumir(c *gin.Context) []Mensaje {
	s := sessions.Default(c)
	raw := s.Flashes()
	if len(raw) == 0 {
		return nil
	}
	// Flashes() removed the values; persist the removal.
	_ = s.Save()

	mensajes := make([]Mensaje, 0, len(raw))
	for _, v := range raw {
		if m, ok := v.(Mensaje); ok {
			mensajes = append(mensajes, m)
		}
	}
	return mensajes
}
