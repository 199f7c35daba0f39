package forms

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func opcionesDePrueba() Opciones {
	return NuevasOpciones(
		[]string{"Bobinas", "Tintas"},
		[]string{"Estándar"},
		[]string{"Acme"},
	)
}

func productoValido() *ProductoForm {
	return &ProductoForm{
		Nombre:       "Cinta A",
		Categoria:    "Bobinas",
		Subcategoria: "Estándar",
		Marca:        "Acme",
		Precio:       "12.50",
		Stock:        "50",
		Activo:       true,
	}
}

func TestProductoForm_Valido(t *testing.T) {
	f := productoValido()
	require.True(t, f.Validar(opcionesDePrueba()), "errores: %v", f.Errores)
	assert.Equal(t, "12.5", f.PrecioDecimal().Truncate(1).String())
	assert.Equal(t, 50, f.StockInt())
}

func TestProductoForm_NombreCorto(t *testing.T) {
	f := productoValido()
	f.Nombre = "ab"
	assert.False(t, f.Validar(opcionesDePrueba()))
	assert.Contains(t, f.Errores, "nombre")
}

func TestProductoForm_CategoriaFueraDeOpciones(t *testing.T) {
	f := productoValido()
	f.Categoria = "Químicos"
	assert.False(t, f.Validar(opcionesDePrueba()))
	assert.Contains(t, f.Errores, "categoria")
}

func TestProductoForm_SentinelaNoEsValorValido(t *testing.T) {
	f := productoValido()
	f.Marca = ""
	assert.False(t, f.Validar(opcionesDePrueba()))
	assert.Contains(t, f.Errores, "marca")
}

func TestProductoForm_PrecioInvalido(t *testing.T) {
	for _, precio := range []string{"abc", "0", "-3", "0.001"} {
		f := productoValido()
		f.Precio = precio
		assert.False(t, f.Validar(opcionesDePrueba()), "precio %q debería rechazarse", precio)
		assert.Contains(t, f.Errores, "precio")
	}
}

func TestProductoForm_StockInvalido(t *testing.T) {
	for _, stock := range []string{"-1", "2.5", "muchos"} {
		f := productoValido()
		f.Stock = stock
		assert.False(t, f.Validar(opcionesDePrueba()), "stock %q debería rechazarse", stock)
		assert.Contains(t, f.Errores, "stock")
	}
}

func TestProductoForm_DescripcionLarga(t *testing.T) {
	f := productoValido()
	f.Descripcion = strings.Repeat("x", 501)
	assert.False(t, f.Validar(opcionesDePrueba()))
	assert.Contains(t, f.Errores, "descripcion")

	f = productoValido()
	f.Descripcion = strings.Repeat("x", 500)
	assert.True(t, f.Validar(opcionesDePrueba()))
}

func TestProductoForm_DescripcionOpcional(t *testing.T) {
	f := productoValido()
	f.Descripcion = ""
	assert.True(t, f.Validar(opcionesDePrueba()))
}

func TestNuevasOpciones_SentinelaPrimero(t *testing.T) {
	opts := opcionesDePrueba()
	for _, lista := range [][]Opcion{opts.Categorias, opts.Subcategorias, opts.Marcas} {
		require.NotEmpty(t, lista)
		assert.Equal(t, "", lista[0].Valor)
		assert.True(t, strings.HasPrefix(lista[0].Etiqueta, "Seleccione"))
	}
	assert.Len(t, opts.Categorias, 3)
}

func TestRegistroForm(t *testing.T) {
	f := &RegistroForm{Nombre: "Isma", Email: "isma@tienda.local", Password: "secreto1", Confirmar: "secreto1"}
	assert.True(t, f.Validar())

	f = &RegistroForm{Nombre: "I", Email: "no-es-email", Password: "corta", Confirmar: "otra"}
	assert.False(t, f.Validar())
	assert.Contains(t, f.Errores, "nombre")
	assert.Contains(t, f.Errores, "email")
	assert.Contains(t, f.Errores, "password")
	assert.Contains(t, f.Errores, "confirmar_password")
}

func TestLoginForm(t *testing.T) {
	f := &LoginForm{Email: "isma@tienda.local", Password: "secreto1"}
	assert.True(t, f.Validar())

	f = &LoginForm{Email: "sin-arroba", Password: ""}
	assert.False(t, f.Validar())
	assert.Contains(t, f.Errores, "email")
	assert.Contains(t, f.Errores, "password")
}
