package handler

import (
	"errors"
	"net/http"

	"github.com/IsmaGarcia115/tienda-xprin/internal/flash"
	"github.com/IsmaGarcia115/tienda-xprin/internal/forms"
	"github.com/IsmaGarcia115/tienda-xprin/internal/middleware"
	"github.com/IsmaGarcia115/tienda-xprin/internal/repository"
	"github.com/IsmaGarcia115/tienda-xprin/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type ProductosHandler struct{ svc service.ProductoService }

func NewProductosHandler(svc service.ProductoService) *ProductosHandler {
	return &ProductosHandler{svc: svc}
}

// errInterno logs the failure and answers a plain 500. Store-connectivity
// failures are not distinguished from logic failures here.
func errInterno(c *gin.Context, err error, donde string) {
	log.Error().Str("request_id", c.GetString(middleware.RequestIDKey)).Err(err).Msg(donde)
	c.String(http.StatusInternalServerError, "Error interno del servidor")
	c.Abort()
}

// Inicio renders the dashboard; counts are recomputed on every view.
func (h *ProductosHandler) Inicio(c *gin.Context) {
	resumen, err := h.svc.ResumenInicio(c.Request.Context())
	if err != nil {
		errInterno(c, err, "resumen inicio")
		return
	}
	render(c, http.StatusOK, "inicio.html", gin.H{"Resumen": resumen})
}

// Catalogo renders the unfiltered product listing.
func (h *ProductosHandler) Catalogo(c *gin.Context) {
	productos, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		errInterno(c, err, "listar catálogo")
		return
	}
	render(c, http.StatusOK, "catalogo.html", gin.H{"Productos": productos})
}

// ── Add ──────────────────────────────────────────────────────────────────────

func (h *ProductosHandler) AddGET(c *gin.Context) {
	opts, err := h.svc.Opciones(c.Request.Context())
	if err != nil {
		errInterno(c, err, "opciones formulario")
		return
	}
	f := &forms.ProductoForm{Activo: true}
	render(c, http.StatusOK, "add.html", gin.H{"Form": f, "Opciones": opts})
}

func (h *ProductosHandler) AddPOST(c *gin.Context) {
	opts, err := h.svc.Opciones(c.Request.Context())
	if err != nil {
		errInterno(c, err, "opciones formulario")
		return
	}

	var f forms.ProductoForm
	_ = c.ShouldBind(&f)
	if !f.Validar(opts) {
		render(c, http.StatusOK, "add.html", gin.H{"Form": &f, "Opciones": opts})
		return
	}

	if _, err := h.svc.Crear(c.Request.Context(), &f); err != nil {
		errInterno(c, err, "crear producto")
		return
	}
	flash.Agregar(c, flash.Exito, "Producto añadido correctamente")
	c.Redirect(http.StatusFound, "/catalogo")
}

// ── Update ───────────────────────────────────────────────────────────────────

func (h *ProductosHandler) UpdateGET(c *gin.Context) {
	p, err := h.svc.Obtener(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrNoEncontrado) {
		flash.Agregar(c, flash.Peligro, "Producto no encontrado")
		c.Redirect(http.StatusFound, "/catalogo")
		return
	}
	if err != nil {
		errInterno(c, err, "obtener producto")
		return
	}

	opts, err := h.svc.Opciones(c.Request.Context())
	if err != nil {
		errInterno(c, err, "opciones formulario")
		return
	}
	render(c, http.StatusOK, "update.html", gin.H{
		"Form":     formDesdeProducto(p),
		"Opciones": opts,
		"Producto": p,
	})
}

func (h *ProductosHandler) UpdatePOST(c *gin.Context) {
	id := c.Param("id")
	p, err := h.svc.Obtener(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNoEncontrado) {
		flash.Agregar(c, flash.Peligro, "Producto no encontrado")
		c.Redirect(http.StatusFound, "/catalogo")
		return
	}
	if err != nil {
		errInterno(c, err, "obtener producto")
		return
	}

	opts, err := h.svc.Opciones(c.Request.Context())
	if err != nil {
		errInterno(c, err, "opciones formulario")
		return
	}

	var f forms.ProductoForm
	_ = c.ShouldBind(&f)
	if !f.Validar(opts) {
		render(c, http.StatusOK, "update.html", gin.H{"Form": &f, "Opciones": opts, "Producto": p})
		return
	}

	// Last-writer-wins: no version check between the fetch above and this write.
	err = h.svc.Actualizar(c.Request.Context(), id, &f)
	if errors.Is(err, repository.ErrNoEncontrado) {
		flash.Agregar(c, flash.Peligro, "Producto no encontrado")
		c.Redirect(http.StatusFound, "/catalogo")
		return
	}
	if err != nil {
		errInterno(c, err, "actualizar producto")
		return
	}
	flash.Agregar(c, flash.Exito, "Producto actualizado correctamente")
	c.Redirect(http.StatusFound, "/catalogo")
}

// ── Delete ───────────────────────────────────────────────────────────────────

// DeleteGET renders the confirmation prompt; nothing is deleted until the
// explicit POST.
func (h *ProductosHandler) DeleteGET(c *gin.Context) {
	p, err := h.svc.Obtener(c.Request.Context(), c.Param("id"))
	if errors.Is(err, repository.ErrNoEncontrado) {
		flash.Agregar(c, flash.Peligro, "Producto no encontrado")
		c.Redirect(http.StatusFound, "/catalogo")
		return
	}
	if err != nil {
		errInterno(c, err, "obtener producto")
		return
	}
	render(c, http.StatusOK, "delete.html", gin.H{"Producto": p})
}

func (h *ProductosHandler) DeletePOST(c *gin.Context) {
	id := c.Param("id")
	err := h.svc.Eliminar(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNoEncontrado) {
		flash.Agregar(c, flash.Peligro, "Producto no encontrado")
		c.Redirect(http.StatusFound, "/catalogo")
		return
	}
	if err != nil {
		errInterno(c, err, "eliminar producto")
		return
	}
	flash.Agregar(c, flash.Exito, "Producto eliminado correctamente")
	c.Redirect(http.StatusFound, "/catalogo")
}
