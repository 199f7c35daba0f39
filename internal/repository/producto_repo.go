package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/IsmaGarcia115/tienda-xprin/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ProductoRepository defines the data access contract for catalog products.
type ProductoRepository interface {
	FindAll(ctx context.Context) ([]model.Producto, error)
	FindByID(ctx context.Context, id string) (*model.Producto, error)
	Insert(ctx context.Context, p *model.Producto) (string, error)
	// Update overwrites exactly the product fields of the matching document
	// ($set-style partial update; the _id is never touched).
	Update(ctx context.Context, id string, p *model.Producto) error
	Delete(ctx context.Context, id string) error

	CountAll(ctx context.Context) (int64, error)
	CountPorCategoria(ctx context.Context, categoria string) (int64, error)
	CountStockBajo(ctx context.Context, umbral int) (int64, error)

	// Distinct returns the set of unique values currently present for a field
	// across all stored products, in store order (no guaranteed sort).
	Distinct(ctx context.Context, campo string) ([]string, error)
}

// decimalCero is the display default for documents missing a precio field.
var decimalCero, _ = primitive.ParseDecimal128("0")

type productoRepo struct{ coll *mongo.Collection }

func NewProductoRepository(db *mongo.Database) ProductoRepository {
	return &productoRepo{coll: db.Collection("productos")}
}

func (r *productoRepo) FindAll(ctx context.Context) ([]model.Producto, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var productos []model.Producto
	if err := cur.All(ctx, &productos); err != nil {
		return nil, err
	}
	return productos, nil
}

func (r *productoRepo) FindByID(ctx context.Context, id string) (*model.Producto, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNoEncontrado
	}
	// Documents written by older versions may lack some fields; decoding leaves
	// absent fields untouched, so pre-seed activo with its display default.
	p := model.Producto{Activo: true, Precio: decimalCero}
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNoEncontrado
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productoRepo) Insert(ctx context.Context, p *model.Producto) (string, error) {
	res, err := r.coll.InsertOne(ctx, p)
	if err != nil {
		return "", err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("id generado inesperado: %T", res.InsertedID)
	}
	p.ID = oid
	return oid.Hex(), nil
}

func (r *productoRepo) Update(ctx context.Context, id string, p *model.Producto) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNoEncontrado
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"nombre":       p.Nombre,
		"categoria":    p.Categoria,
		"subcategoria": p.Subcategoria,
		"marca":        p.Marca,
		"descripcion":  p.Descripcion,
		"precio":       p.Precio,
		"stock":        p.Stock,
		"activo":       p.Activo,
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNoEncontrado
	}
	return nil
}

func (r *productoRepo) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNoEncontrado
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNoEncontrado
	}
	return nil
}

func (r *productoRepo) CountAll(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}

func (r *productoRepo) CountPorCategoria(ctx context.Context, categoria string) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"categoria": categoria})
}

func (r *productoRepo) CountStockBajo(ctx context.Context, umbral int) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"stock": bson.M{"$lt": umbral}})
}

func (r *productoRepo) Distinct(ctx context.Context, campo string) ([]string, error) {
	valores, err := r.coll.Distinct(ctx, campo, bson.M{})
	if err != nil {
		return nil, err
	}
	out := make([]string, 0, len(valores))
	for _, v := range valores {
		if s, ok := v.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out, nil
}
