package model

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Producto is a catalog entry stored in the `productos` collection. Categoria,
// Subcategoria and Marca are free-text values harvested from existing documents;
// there is no relational constraint between them.
type Producto struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty"`
	Nombre       string               `bson:"nombre"`
	Categoria    string               `bson:"categoria"`
	Subcategoria string               `bson:"subcategoria"`
	Marca        string               `bson:"marca"`
	Descripcion  string               `bson:"descripcion"`
	Precio       primitive.Decimal128 `bson:"precio"`
	Stock        int                  `bson:"stock"`
	Activo       bool                 `bson:"activo"`
}
