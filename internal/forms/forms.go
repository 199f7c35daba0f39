// Package forms holds the HTML form models: binding tags for gin, validation
// via go-playground/validator, and the dynamically computed select options that
// product forms validate against.
package forms

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

// Opcion is one entry of a <select>. The sentinel "please select" option has an
// empty Valor and is always the first entry of a generated list.
type Opcion struct {
	Valor    string
	Etiqueta string
}

// Opciones are the allowed values for the selectable product fields, computed
// fresh per request from the distinct values currently in the catalog and
// passed into validation (never mutated on a shared form instance).
type Opciones struct {
	Categorias    []Opcion
	Subcategorias []Opcion
	Marcas        []Opcion
}

func conSentinela(etiqueta string, valores []string) []Opcion {
	opts := make([]Opcion, 0, len(valores)+1)
	opts = append(opts, Opcion{Valor: "", Etiqueta: etiqueta})
	for _, v := range valores {
		opts = append(opts, Opcion{Valor: v, Etiqueta: v})
	}
	return opts
}

// NuevasOpciones builds the three option lists, each headed by its sentinel.
func NuevasOpciones(categorias, subcategorias, marcas []string) Opciones {
	return Opciones{
		Categorias:    conSentinela("Seleccione una categoría", categorias),
		Subcategorias: conSentinela("Seleccione una subcategoría", subcategorias),
		Marcas:        conSentinela("Seleccione una marca", marcas),
	}
}

func permitido(opts []Opcion, valor string) bool {
	for _, o := range opts {
		if o.Valor != "" && o.Valor == valor {
			return true
		}
	}
	return false
}

// ── Formularios ──────────────────────────────────────────────────────────────

// RegistroForm backs the staff registration page.
type RegistroForm struct {
	Nombre    string `form:"nombre" validate:"required,min=2,max=50"`
	Email     string `form:"email" validate:"required,email"`
	Password  string `form:"password" validate:"required,min=6"`
	Confirmar string `form:"confirmar_password" validate:"required,eqfield=Password"`

	Errores map[string]string `form:"-"`
}

// Validar runs field validation and fills Errores with inline messages.
func (f *RegistroForm) Validar() bool {
	f.Errores = map[string]string{}
	if err := validate.Struct(f); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			switch fe.Field() {
			case "Nombre":
				if fe.Tag() == "required" {
					f.Errores["nombre"] = "El nombre es obligatorio"
				} else {
					f.Errores["nombre"] = "El nombre debe tener entre 2 y 50 caracteres"
				}
			case "Email":
				if fe.Tag() == "required" {
					f.Errores["email"] = "El email es obligatorio"
				} else {
					f.Errores["email"] = "Introduce un email válido"
				}
			case "Password":
				if fe.Tag() == "required" {
					f.Errores["password"] = "La contraseña es obligatoria"
				} else {
					f.Errores["password"] = "La contraseña debe tener al menos 6 caracteres"
				}
			case "Confirmar":
				if fe.Tag() == "required" {
					f.Errores["confirmar_password"] = "Confirma la contraseña"
				} else {
					f.Errores["confirmar_password"] = "Las contraseñas no coinciden"
				}
			}
		}
	}
	return len(f.Errores) == 0
}

// LoginForm backs the login page.
type LoginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`

	Errores map[string]string `form:"-"`
}

func (f *LoginForm) Validar() bool {
	f.Errores = map[string]string{}
	if err := validate.Struct(f); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			switch fe.Field() {
			case "Email":
				if fe.Tag() == "required" {
					f.Errores["email"] = "El email es obligatorio"
				} else {
					f.Errores["email"] = "Introduce un email válido"
				}
			case "Password":
				f.Errores["password"] = "La contraseña es obligatoria"
			}
		}
	}
	return len(f.Errores) == 0
}

// ProductoForm backs the add/update product pages. Precio and Stock bind as
// raw strings so that coercion failures surface as inline field errors instead
// of bind errors.
type ProductoForm struct {
	Nombre       string `form:"nombre" validate:"required,min=3,max=100"`
	Categoria    string `form:"categoria" validate:"required"`
	Subcategoria string `form:"subcategoria" validate:"required"`
	Marca        string `form:"marca" validate:"required"`
	Descripcion  string `form:"descripcion" validate:"max=500"`
	Precio       string `form:"precio" validate:"required"`
	Stock        string `form:"stock" validate:"required"`
	Activo       bool   `form:"activo"`

	Errores map[string]string `form:"-"`

	precio decimal.Decimal
	stock  int
}

// Validar checks field constraints and that the selectable fields hold values
// inside the dynamically computed option sets. On success the coerced price
// and stock are available via PrecioDecimal / StockInt.
func (f *ProductoForm) Validar(opts Opciones) bool {
	f.Errores = map[string]string{}
	if err := validate.Struct(f); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			switch fe.Field() {
			case "Nombre":
				if fe.Tag() == "required" {
					f.Errores["nombre"] = "El nombre es obligatorio"
				} else {
					f.Errores["nombre"] = "El nombre debe tener entre 3 y 100 caracteres"
				}
			case "Categoria":
				f.Errores["categoria"] = "Seleccione una categoría"
			case "Subcategoria":
				f.Errores["subcategoria"] = "Seleccione una subcategoría"
			case "Marca":
				f.Errores["marca"] = "Seleccione una marca"
			case "Descripcion":
				f.Errores["descripcion"] = "La descripción no puede superar los 500 caracteres"
			case "Precio":
				f.Errores["precio"] = "El precio es obligatorio"
			case "Stock":
				f.Errores["stock"] = "El stock es obligatorio"
			}
		}
	}

	if f.Categoria != "" && !permitido(opts.Categorias, f.Categoria) {
		f.Errores["categoria"] = "Categoría no válida"
	}
	if f.Subcategoria != "" && !permitido(opts.Subcategorias, f.Subcategoria) {
		f.Errores["subcategoria"] = "Subcategoría no válida"
	}
	if f.Marca != "" && !permitido(opts.Marcas, f.Marca) {
		f.Errores["marca"] = "Marca no válida"
	}

	if f.Precio != "" {
		precio, err := decimal.NewFromString(f.Precio)
		if err != nil || precio.LessThan(decimal.NewFromFloat(0.01)) {
			f.Errores["precio"] = "El precio debe ser un número mayor que 0"
		} else {
			f.precio = precio
		}
	}
	if f.Stock != "" {
		stock, err := strconv.Atoi(f.Stock)
		if err != nil || stock < 0 {
			f.Errores["stock"] = "El stock debe ser un entero mayor o igual que 0"
		} else {
			f.stock = stock
		}
	}

	return len(f.Errores) == 0
}

// PrecioDecimal returns the coerced price. Only meaningful after a successful
// Validar.
func (f *ProductoForm) PrecioDecimal() decimal.Decimal { return f.precio }

// StockInt returns the coerced stock. Only meaningful after a successful
// Validar.
func (f *ProductoForm) StockInt() int { return f.stock }
