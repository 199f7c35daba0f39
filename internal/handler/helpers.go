package handler

import (
	"strconv"

	"github.com/IsmaGarcia115/tienda-xprin/internal/flash"
	"github.com/IsmaGarcia115/tienda-xprin/internal/forms"
	"github.com/IsmaGarcia115/tienda-xprin/internal/middleware"
	"github.com/IsmaGarcia115/tienda-xprin/internal/model"

	"github.com/gin-gonic/gin"
)

// render draws a page, injecting the data every template expects: the current
// principal (for the navbar) and any queued flash notices.
func render(c *gin.Context, code int, plantilla string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Principal"] = middleware.GetPrincipal(c)
	data["Flashes"] = flash.Consumir(c)
	c.HTML(code, plantilla, data)
}

// formDesdeProducto pre-fills the product form from a stored document. This is
// a display-only default for the update page, not a write.
func formDesdeProducto(p *model.Producto) *forms.ProductoForm {
	return &forms.ProductoForm{
		Nombre:       p.Nombre,
		Categoria:    p.Categoria,
		Subcategoria: p.Subcategoria,
		Marca:        p.Marca,
		Descripcion:  p.Descripcion,
		Precio:       p.Precio.String(),
		Stock:        strconv.Itoa(p.Stock),
		Activo:       p.Activo,
	}
}
