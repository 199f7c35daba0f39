package service

import (
	"context"
	"testing"

	"github.com/IsmaGarcia115/tienda-xprin/internal/forms"
	"github.com/IsmaGarcia115/tienda-xprin/internal/model"
	"github.com/IsmaGarcia115/tienda-xprin/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ── In-memory Repository Stub ─────────────────────────────────────────────────

type stubProductoRepo struct {
	docs  map[string]model.Producto
	orden []string // insertion order, mimics natural store order
}

func newStubProductoRepo() *stubProductoRepo {
	return &stubProductoRepo{docs: make(map[string]model.Producto)}
}

func (r *stubProductoRepo) FindAll(_ context.Context) ([]model.Producto, error) {
	out := make([]model.Producto, 0, len(r.orden))
	for _, id := range r.orden {
		out = append(out, r.docs[id])
	}
	return out, nil
}

func (r *stubProductoRepo) FindByID(_ context.Context, id string) (*model.Producto, error) {
	p, ok := r.docs[id]
	if !ok {
		return nil, repository.ErrNoEncontrado
	}
	return &p, nil
}

func (r *stubProductoRepo) Insert(_ context.Context, p *model.Producto) (string, error) {
	p.ID = primitive.NewObjectID()
	id := p.ID.Hex()
	r.docs[id] = *p
	r.orden = append(r.orden, id)
	return id, nil
}

func (r *stubProductoRepo) Update(_ context.Context, id string, p *model.Producto) error {
	prev, ok := r.docs[id]
	if !ok {
		return repository.ErrNoEncontrado
	}
	actualizado := *p
	actualizado.ID = prev.ID
	r.docs[id] = actualizado
	return nil
}

func (r *stubProductoRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.docs[id]; !ok {
		return repository.ErrNoEncontrado
	}
	delete(r.docs, id)
	for i, v := range r.orden {
		if v == id {
			r.orden = append(r.orden[:i], r.orden[i+1:]...)
			break
		}
	}
	return nil
}

func (r *stubProductoRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(r.docs)), nil
}

func (r *stubProductoRepo) CountPorCategoria(_ context.Context, categoria string) (int64, error) {
	var n int64
	for _, p := range r.docs {
		if p.Categoria == categoria {
			n++
		}
	}
	return n, nil
}

func (r *stubProductoRepo) CountStockBajo(_ context.Context, umbral int) (int64, error) {
	var n int64
	for _, p := range r.docs {
		if p.Stock < umbral {
			n++
		}
	}
	return n, nil
}

func (r *stubProductoRepo) Distinct(_ context.Context, campo string) ([]string, error) {
	vistos := map[string]bool{}
	var out []string
	for _, id := range r.orden {
		p := r.docs[id]
		var v string
		switch campo {
		case "categoria":
			v = p.Categoria
		case "subcategoria":
			v = p.Subcategoria
		case "marca":
			v = p.Marca
		}
		if v != "" && !vistos[v] {
			vistos[v] = true
			out = append(out, v)
		}
	}
	return out, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

// opcionesCon builds option sets that admit the given values, standing in for
// the distinct values an existing catalog would provide.
func opcionesCon(categorias, subcategorias, marcas []string) forms.Opciones {
	return forms.NuevasOpciones(categorias, subcategorias, marcas)
}

func formCintaA(t *testing.T) *forms.ProductoForm {
	t.Helper()
	f := &forms.ProductoForm{
		Nombre:       "Cinta A",
		Categoria:    "Bobinas",
		Subcategoria: "Estándar",
		Marca:        "Acme",
		Precio:       "12.50",
		Stock:        "50",
		Activo:       true,
	}
	opts := opcionesCon([]string{"Bobinas"}, []string{"Estándar"}, []string{"Acme"})
	require.True(t, f.Validar(opts), "fixture debe validar: %v", f.Errores)
	return f
}

func seed(t *testing.T, repo *stubProductoRepo, categoria string, stock int) {
	t.Helper()
	precio, err := primitive.ParseDecimal128("10.00")
	require.NoError(t, err)
	_, err = repo.Insert(context.Background(), &model.Producto{
		Nombre:       "Producto " + categoria,
		Categoria:    categoria,
		Subcategoria: "General",
		Marca:        "Acme",
		Precio:       precio,
		Stock:        stock,
		Activo:       true,
	})
	require.NoError(t, err)
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestCrearYObtener_RoundTrip(t *testing.T) {
	repo := newStubProductoRepo()
	svc := NewProductoService(repo)

	id, err := svc.Crear(context.Background(), formCintaA(t))
	require.NoError(t, err)

	p, err := svc.Obtener(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Cinta A", p.Nombre)
	assert.Equal(t, "Bobinas", p.Categoria)
	assert.Equal(t, "Estándar", p.Subcategoria)
	assert.Equal(t, "Acme", p.Marca)
	assert.Equal(t, 50, p.Stock)
	assert.True(t, p.Activo)

	precio, err := decimal.NewFromString(p.Precio.String())
	require.NoError(t, err)
	assert.True(t, precio.Equal(decimal.RequireFromString("12.50")), "precio leído: %s", p.Precio)
}

func TestActualizar_Idempotente(t *testing.T) {
	repo := newStubProductoRepo()
	svc := NewProductoService(repo)

	id, err := svc.Crear(context.Background(), formCintaA(t))
	require.NoError(t, err)

	f := &forms.ProductoForm{
		Nombre:       "Cinta B",
		Categoria:    "Bobinas",
		Subcategoria: "Estándar",
		Marca:        "Acme",
		Descripcion:  "Cinta ancha",
		Precio:       "9.99",
		Stock:        "20",
		Activo:       false,
	}
	opts := opcionesCon([]string{"Bobinas"}, []string{"Estándar"}, []string{"Acme"})
	require.True(t, f.Validar(opts))

	require.NoError(t, svc.Actualizar(context.Background(), id, f))
	primera, err := svc.Obtener(context.Background(), id)
	require.NoError(t, err)

	require.NoError(t, svc.Actualizar(context.Background(), id, f))
	segunda, err := svc.Obtener(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, primera, segunda)
	assert.Equal(t, "Cinta B", segunda.Nombre)
	assert.False(t, segunda.Activo)
}

func TestActualizar_NoEncontrado(t *testing.T) {
	repo := newStubProductoRepo()
	svc := NewProductoService(repo)

	f := formCintaA(t)
	err := svc.Actualizar(context.Background(), primitive.NewObjectID().Hex(), f)
	assert.ErrorIs(t, err, repository.ErrNoEncontrado)
}

func TestEliminar(t *testing.T) {
	repo := newStubProductoRepo()
	svc := NewProductoService(repo)

	id, err := svc.Crear(context.Background(), formCintaA(t))
	require.NoError(t, err)

	// Deleting a missing id mutates nothing
	err = svc.Eliminar(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, repository.ErrNoEncontrado)
	assert.Len(t, repo.docs, 1)

	// Deleting the real id removes it
	require.NoError(t, svc.Eliminar(context.Background(), id))
	_, err = svc.Obtener(context.Background(), id)
	assert.ErrorIs(t, err, repository.ErrNoEncontrado)
}

func TestResumenInicio_Cuentas(t *testing.T) {
	repo := newStubProductoRepo()
	svc := NewProductoService(repo)

	categorias := []string{"Bobinas", "Bobinas", "Bobinas", "Tintas", "Tintas", "Polvo"}
	stocks := []int{10, 50, 30, 45, 5, 60}
	for i := range categorias {
		seed(t, repo, categorias[i], stocks[i])
	}

	r, err := svc.ResumenInicio(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(6), r.Total)
	assert.Equal(t, int64(3), r.Bobinas)
	assert.Equal(t, int64(2), r.Tintas)
	assert.Equal(t, int64(1), r.Polvo)
	assert.Equal(t, int64(3), r.StockBajo) // stocks 10, 30 y 5 por debajo de 40
}

func TestOpciones_SentinelaYDistintos(t *testing.T) {
	repo := newStubProductoRepo()
	svc := NewProductoService(repo)

	// Varios productos comparten categoría/marca
	seed(t, repo, "Bobinas", 10)
	seed(t, repo, "Bobinas", 20)
	seed(t, repo, "Tintas", 30)

	opts, err := svc.Opciones(context.Background())
	require.NoError(t, err)

	require.NotEmpty(t, opts.Categorias)
	assert.Equal(t, "", opts.Categorias[0].Valor, "la primera opción es la sentinela en blanco")
	valores := make([]string, 0, len(opts.Categorias)-1)
	for _, o := range opts.Categorias[1:] {
		valores = append(valores, o.Valor)
	}
	assert.Equal(t, []string{"Bobinas", "Tintas"}, valores, "cada valor distinto aparece una sola vez")

	assert.Equal(t, "", opts.Subcategorias[0].Valor)
	assert.Equal(t, "", opts.Marcas[0].Valor)
	assert.Len(t, opts.Marcas, 2) // sentinela + "Acme"
}
