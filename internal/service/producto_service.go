package service

import (
	"context"
	"fmt"

	"github.com/IsmaGarcia115/tienda-xprin/internal/forms"
	"github.com/IsmaGarcia115/tienda-xprin/internal/model"
	"github.com/IsmaGarcia115/tienda-xprin/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Dashboard constants. The category labels and the low-stock threshold are
// fixed in this iteration.
const (
	CategoriaBobinas = "Bobinas"
	CategoriaTintas  = "Tintas"
	CategoriaPolvo   = "Polvo"

	UmbralStockBajo = 40
)

// Resumen is the flat dashboard summary consumed by the inicio template.
type Resumen struct {
	Total     int64
	Bobinas   int64
	Tintas    int64
	Polvo     int64
	StockBajo int64
}

// ProductoService defines the business logic contract for the catalog.
type ProductoService interface {
	Listar(ctx context.Context) ([]model.Producto, error)
	Obtener(ctx context.Context, id string) (*model.Producto, error)
	Crear(ctx context.Context, f *forms.ProductoForm) (string, error)
	Actualizar(ctx context.Context, id string, f *forms.ProductoForm) error
	Eliminar(ctx context.Context, id string) error

	// Opciones computes the selectable form options from the distinct values
	// currently in the catalog; recomputed on every call.
	Opciones(ctx context.Context) (forms.Opciones, error)

	// ResumenInicio recomputes the dashboard counts on every call (no caching).
	ResumenInicio(ctx context.Context) (*Resumen, error)
}

type productoService struct {
	repo repository.ProductoRepository
}

func NewProductoService(repo repository.ProductoRepository) ProductoService {
	return &productoService{repo: repo}
}

func (s *productoService) Listar(ctx context.Context) ([]model.Producto, error) {
	return s.repo.FindAll(ctx)
}

func (s *productoService) Obtener(ctx context.Context, id string) (*model.Producto, error) {
	return s.repo.FindByID(ctx, id)
}

// desdeForm builds the stored document from a validated form.
func desdeForm(f *forms.ProductoForm) (*model.Producto, error) {
	precio, err := primitive.ParseDecimal128(f.PrecioDecimal().String())
	if err != nil {
		return nil, fmt.Errorf("precio: %w", err)
	}
	return &model.Producto{
		Nombre:       f.Nombre,
		Categoria:    f.Categoria,
		Subcategoria: f.Subcategoria,
		Marca:        f.Marca,
		Descripcion:  f.Descripcion,
		Precio:       precio,
		Stock:        f.StockInt(),
		Activo:       f.Activo,
	}, nil
}

func (s *productoService) Crear(ctx context.Context, f *forms.ProductoForm) (string, error) {
	p, err := desdeForm(f)
	if err != nil {
		return "", err
	}
	return s.repo.Insert(ctx, p)
}

func (s *productoService) Actualizar(ctx context.Context, id string, f *forms.ProductoForm) error {
	p, err := desdeForm(f)
	if err != nil {
		return err
	}
	return s.repo.Update(ctx, id, p)
}

func (s *productoService) Eliminar(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *productoService) Opciones(ctx context.Context) (forms.Opciones, error) {
	categorias, err := s.repo.Distinct(ctx, "categoria")
	if err != nil {
		return forms.Opciones{}, fmt.Errorf("opciones: %w", err)
	}
	subcategorias, err := s.repo.Distinct(ctx, "subcategoria")
	if err != nil {
		return forms.Opciones{}, fmt.Errorf("opciones: %w", err)
	}
	marcas, err := s.repo.Distinct(ctx, "marca")
	if err != nil {
		return forms.Opciones{}, fmt.Errorf("opciones: %w", err)
	}
	return forms.NuevasOpciones(categorias, subcategorias, marcas), nil
}

func (s *productoService) ResumenInicio(ctx context.Context) (*Resumen, error) {
	total, err := s.repo.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("resumen: %w", err)
	}
	bobinas, err := s.repo.CountPorCategoria(ctx, CategoriaBobinas)
	if err != nil {
		return nil, fmt.Errorf("resumen: %w", err)
	}
	tintas, err := s.repo.CountPorCategoria(ctx, CategoriaTintas)
	if err != nil {
		return nil, fmt.Errorf("resumen: %w", err)
	}
	polvo, err := s.repo.CountPorCategoria(ctx, CategoriaPolvo)
	if err != nil {
		return nil, fmt.Errorf("resumen: %w", err)
	}
	stockBajo, err := s.repo.CountStockBajo(ctx, UmbralStockBajo)
	if err != nil {
		return nil, fmt.Errorf("resumen: %w", err)
	}
	return &Resumen{
		Total:     total,
		Bobinas:   bobinas,
		Tintas:    tintas,
		Polvo:     polvo,
		StockBajo: stockBajo,
	}, nil
}
